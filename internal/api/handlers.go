package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/starford/ansuz/internal/decorator"
	"github.com/starford/ansuz/internal/settings"
	"github.com/starford/ansuz/internal/sse"
)

// Handler holds API route handlers.
type Handler struct {
	st     *settings.Store
	dec    *decorator.Decorator
	broker *sse.Broker
}

// NewHandler creates a new Handler. broker may be nil (no broadcasts).
func NewHandler(st *settings.Store, dec *decorator.Decorator, broker *sse.Broker) *Handler {
	return &Handler{st: st, dec: dec, broker: broker}
}

// GetSettings handles GET /api/settings.
func (h *Handler) GetSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.st.Current())
}

// UpdateSettings handles PUT /api/settings: validate, persist, broadcast.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := h.st.Update(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if h.broker != nil {
		h.broker.PublishSettingsUpdated()
	}
	writeJSON(w, http.StatusOK, h.st.Current())
}

// Decorate handles POST /api/decorate: one verdict per suggestion.
// Evaluation never fails per-suggestion; a bad entry just yields fewer rows.
func (h *Handler) Decorate(w http.ResponseWriter, r *http.Request) {
	var req DecorateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	verdicts := make([]decorator.Verdict, len(req.Suggestions))
	for i, s := range req.Suggestions {
		verdicts[i] = h.dec.Evaluate(s)
	}
	slog.Debug("decorate batch", slog.Int("count", len(verdicts)))
	writeJSON(w, http.StatusOK, DecorateResponse{Verdicts: verdicts})
}
