package api

import (
	"github.com/starford/ansuz/internal/decorator"
	"github.com/starford/ansuz/internal/settings"
)

// SettingsResponse is the settings-panel representation (aliased from the
// domain layer; the record is flat and serialises as-is).
type SettingsResponse = settings.Settings

// DecorateRequest carries a batch of suggestion snapshots extracted from one
// popup by the host shim.
type DecorateRequest struct {
	Suggestions []decorator.Suggestion `json:"suggestions"`
}

// DecorateResponse returns one verdict per suggestion, in request order.
type DecorateResponse struct {
	Verdicts []decorator.Verdict `json:"verdicts"`
}
