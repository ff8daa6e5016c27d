package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/bearcourt/bear-court-api/court"
	"github.com/bearcourt/bear-court-api/models"
)

const pingInterval = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the api is origin-agnostic; tokens gate access, not origins
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Subscribe streams live case snapshots over a websocket
type Subscribe struct {
	Court court.Service
}

// SubscribeHandler upgrades to a websocket, sends the current snapshot and then
// every snapshot published for the case until either side hangs up
func (h Subscribe) SubscribeHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	sub, err := h.Court.Subscribe(r.Context(), caseID)
	if err != nil {
		writeCourtError(w, "failed to subscribe", err)
		return
	}

	initial, err := h.Court.GetCase(r.Context(), caseID)
	if err != nil {
		sub.Cancel()
		writeCourtError(w, "failed to subscribe", err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		sub.Cancel()
		zap.S().Errorw("websocket upgrade failed", "caseId", caseID, "error", err)
		return
	}

	go h.pump(conn, sub, *initial)
}

func (h Subscribe) pump(conn *websocket.Conn, sub *court.Subscription, initial models.Case) {
	defer conn.Close()
	defer sub.Cancel()

	// reader exists only to notice the peer closing
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(initial); err != nil {
		return
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case snapshot, ok := <-sub.C:
			if !ok {
				return
			}
			if err := conn.WriteJSON(snapshot); err != nil {
				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(5 * time.Second)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
