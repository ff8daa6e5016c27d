package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bearcourt/bear-court-api/api"
	"github.com/bearcourt/bear-court-api/config"
	"github.com/bearcourt/bear-court-api/court"
	"github.com/bearcourt/bear-court-api/models"
)

// Case exposes the case lifecycle over HTTP
type Case struct {
	Court court.Service
}

// CreateCaseHandler opens a fresh case with the caller seated in the chosen role
func (h Case) CreateCaseHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := api.IdentityFrom(r.Context())
	if !ok {
		config.ErrorKindStatus("missing identity", string(models.ErrIdentityUnavailable),
			http.StatusUnauthorized, w, nil)
		return
	}
	var req models.CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	courtCase, err := h.Court.CreateCase(ctx, req.Role, uid)
	if err != nil {
		writeCourtError(w, "failed to create case", err)
		return
	}
	writeCase(w, http.StatusCreated, courtCase, uid)
}

// CaseByIDHandler returns the case snapshot plus the caller's derived state
func (h Case) CaseByIDHandler(w http.ResponseWriter, r *http.Request) {
	uid, _ := api.IdentityFrom(r.Context())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	courtCase, err := h.Court.GetCase(ctx, mux.Vars(r)["case_id"])
	if err != nil {
		writeCourtError(w, "failed to get case", err)
		return
	}
	writeCase(w, http.StatusOK, courtCase, uid)
}

// ClaimRoleHandler seats the caller in the requested role
func (h Case) ClaimRoleHandler(w http.ResponseWriter, r *http.Request) {
	uid, _ := api.IdentityFrom(r.Context())
	var req models.ClaimRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	courtCase, err := h.Court.ClaimRole(ctx, mux.Vars(r)["case_id"], req.Role, uid)
	if err != nil {
		writeCourtError(w, "failed to claim role", err)
		return
	}
	writeCase(w, http.StatusOK, courtCase, uid)
}

// SubmitStatementHandler writes the caller's one-shot statement
func (h Case) SubmitStatementHandler(w http.ResponseWriter, r *http.Request) {
	uid, _ := api.IdentityFrom(r.Context())
	var req models.StatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	courtCase, err := h.Court.SubmitStatement(ctx, mux.Vars(r)["case_id"], uid, req.Content)
	if err != nil {
		writeCourtError(w, "failed to submit statement", err)
		return
	}
	writeCase(w, http.StatusOK, courtCase, uid)
}

// AdjudicateHandler asks the oracle for a verdict. Runs on the request context
// without the query timeout; the oracle round trip dominates and the guard
// handles superseding calls.
func (h Case) AdjudicateHandler(w http.ResponseWriter, r *http.Request) {
	uid, _ := api.IdentityFrom(r.Context())

	courtCase, err := h.Court.Adjudicate(r.Context(), mux.Vars(r)["case_id"], uid)
	if err != nil {
		writeCourtError(w, "failed to adjudicate case", err)
		return
	}
	writeCase(w, http.StatusOK, courtCase, uid)
}

// FileObjectionHandler records the one-time objection and re-adjudicates
func (h Case) FileObjectionHandler(w http.ResponseWriter, r *http.Request) {
	uid, _ := api.IdentityFrom(r.Context())
	var req models.ObjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	courtCase, err := h.Court.FileObjection(r.Context(), mux.Vars(r)["case_id"], uid, req.Content)
	if err != nil {
		writeCourtError(w, "failed to file objection", err)
		return
	}
	writeCase(w, http.StatusOK, courtCase, uid)
}

// RecordFeedbackHandler stores the single like/dislike on the verdict
func (h Case) RecordFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	uid, _ := api.IdentityFrom(r.Context())
	var req models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	courtCase, err := h.Court.RecordFeedback(ctx, mux.Vars(r)["case_id"], uid, req.Like)
	if err != nil {
		writeCourtError(w, "failed to record feedback", err)
		return
	}
	writeCase(w, http.StatusOK, courtCase, uid)
}

// ResetCaseHandler wipes verdict and statements while keeping the seats.
// Routed only outside production.
func (h Case) ResetCaseHandler(w http.ResponseWriter, r *http.Request) {
	uid, _ := api.IdentityFrom(r.Context())

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	courtCase, err := h.Court.Reset(ctx, mux.Vars(r)["case_id"])
	if err != nil {
		writeCourtError(w, "failed to reset case", err)
		return
	}
	writeCase(w, http.StatusOK, courtCase, uid)
}

func writeCase(w http.ResponseWriter, status int, courtCase *models.Case, uid string) {
	b, err := json.Marshal(models.CaseResponse{
		Case:        courtCase,
		ViewerState: string(court.ViewerStateOf(courtCase, uid)),
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(status)
	w.Write(b)
}

// writeCourtError maps the court's error kinds onto HTTP statuses
func writeCourtError(w http.ResponseWriter, message string, err error) {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		config.ErrorKindStatus(apiErr.Message, string(apiErr.Kind), apiErr.Kind.HTTPStatus(), w, apiErr.Err)
		return
	}
	config.ErrorStatus(message, http.StatusInternalServerError, w, err)
}
