package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bearcourt/bear-court-api/api"
	"github.com/bearcourt/bear-court-api/api/scheduler"
	"github.com/bearcourt/bear-court-api/config"
	"github.com/bearcourt/bear-court-api/court"
	"github.com/bearcourt/bear-court-api/databases"
	"github.com/bearcourt/bear-court-api/models"
	"github.com/bearcourt/bear-court-api/oracle"
)

// requestTimeout caps every plain HTTP request; the websocket feed is exempt
const requestTimeout = 30 * time.Second

// App stores the router, config and the wired collaborators
type App struct {
	Router    *mux.Router
	Config    config.Config
	Court     court.Service
	Broker    *court.Broker
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	caseHandler := Case{Court: a.Court}
	statsHandler := &Stats{DB: databases.NewStatsDatabase(a.dbHelper)}
	subscribeHandler := Subscribe{Court: a.Court}

	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	timeout := api.TimeoutMiddleware(requestTimeout)

	apiCreate.Handle("/auth/anonymous",
		timeout(http.HandlerFunc(api.CreateAnonymousToken))).Methods("POST")

	apiCreate.Handle("/case",
		timeout(api.Middleware(http.HandlerFunc(caseHandler.CreateCaseHandler)))).Methods("POST")
	apiCreate.Handle("/case/{case_id}",
		timeout(api.Middleware(http.HandlerFunc(caseHandler.CaseByIDHandler)))).Methods("GET")
	apiCreate.Handle("/case/{case_id}/role",
		timeout(api.Middleware(http.HandlerFunc(caseHandler.ClaimRoleHandler)))).Methods("PUT")
	apiCreate.Handle("/case/{case_id}/statement",
		timeout(api.Middleware(http.HandlerFunc(caseHandler.SubmitStatementHandler)))).Methods("PUT")
	apiCreate.Handle("/case/{case_id}/verdict",
		timeout(api.Middleware(http.HandlerFunc(caseHandler.AdjudicateHandler)))).Methods("POST")
	apiCreate.Handle("/case/{case_id}/objection",
		timeout(api.Middleware(http.HandlerFunc(caseHandler.FileObjectionHandler)))).Methods("POST")
	apiCreate.Handle("/case/{case_id}/feedback",
		timeout(api.Middleware(http.HandlerFunc(caseHandler.RecordFeedbackHandler)))).Methods("PUT")
	if a.Config.Env != "production" {
		apiCreate.Handle("/case/{case_id}/reset",
			timeout(api.Middleware(http.HandlerFunc(caseHandler.ResetCaseHandler)))).Methods("POST")
	}

	// long-lived, stays outside the timeout middleware
	apiCreate.Handle("/case/{case_id}/subscribe",
		api.Middleware(http.HandlerFunc(subscribeHandler.SubscribeHandler))).Methods("GET")

	apiCreate.Handle("/stats",
		timeout(api.Middleware(http.HandlerFunc(statsHandler.StatsHandler)))).Methods("GET")

	return r
}

// Initialize connects the datastore, wires the court and starts the scheduler
func (a *App) Initialize() error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		return err
	}
	if err := client.Connect(); err != nil {
		return err
	}
	a.dbHelper = databases.NewDatabase(&a.Config, client)

	api.SetupGoGuardian(&a.Config)

	a.Broker = court.NewBroker()
	a.Court = court.New(
		databases.NewCaseDatabase(a.dbHelper),
		databases.NewStatsDatabase(a.dbHelper),
		oracle.New(&a.Config),
		court.NewGuard(),
		a.Broker,
	)

	a.Scheduler = scheduler.New(databases.NewStatsDatabase(a.dbHelper), a.Broker)
	a.Scheduler.Start()

	a.Router = a.New()
	return nil
}

// healthCheckHandler checks that the api is up and running
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.HealthCheckResponse{Alive: true})
}
