// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/model"
)

// Dependencies required by HTTP handlers. *service.Service satisfies it.
type Dependencies interface {
	// Press resolves and records one button press.
	Press(ctx context.Context, ev model.ButtonEvent) (model.ActionRecord, error)

	// Record reads back a stored press by id.
	Record(ctx context.Context, id string) (model.ActionRecord, error)

	StatsProvider
}

// Server wires HTTP routes for the local button API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	eventsHandler *EventsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(deps),
		eventsHandler: NewEventsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/events", MetricsMiddleware(s.eventsHandler.HandlePostEvent, "events"))
	mux.HandleFunc("/events/", MetricsMiddleware(s.eventsHandler.HandleGetEvent, "event"))
}

type recordedResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
