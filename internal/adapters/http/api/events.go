// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	repository "github.com/armandopadilla/lasttimei-lamdbda/internal/adapters/repository"
	service "github.com/armandopadilla/lasttimei-lamdbda/internal/app"
	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/model"
	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/recorder"
)

// maxEventBytes bounds a button payload; real ones are well under 200 bytes.
const maxEventBytes = 16 << 10

// EventsHandler handles button event requests.
type EventsHandler struct {
	deps Dependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps Dependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// HandlePostEvent handles POST /events requests. It runs the same path as a
// Lambda invocation and maps the outcome onto a status code.
func (h *EventsHandler) HandlePostEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var ev model.ButtonEvent
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBytes))
	if err := dec.Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}

	rec, err := h.deps.Press(r.Context(), ev)
	if err != nil {
		var swe *recorder.StoreWriteError
		switch {
		case errors.Is(err, service.ErrUnregisteredDevice):
			writeError(w, http.StatusNotFound, "not_registered", err)
		case errors.As(err, &swe):
			writeError(w, http.StatusBadGateway, "store_error", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, recordedResponse{Status: "recorded", ID: rec.ID})
}

// HandleGetEvent handles GET /events/{id} requests.
func (h *EventsHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/events/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingID)
		return
	}

	rec, err := h.deps.Record(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
