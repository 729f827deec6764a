package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/eugenenazirov/sentiment-trading/internal/config"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler exposes a read-only view of the loaded settings over HTTP.
type Handler struct {
	settings *config.Settings

	clock func() time.Time

	loadedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler serving settings. settings must not be modified afterwards.
func NewHandler(settings *config.Settings, opts ...HandlerOption) *Handler {
	h := &Handler{
		settings: settings,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.loadedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := settingsResponse{
		Settings: h.settings.Redacted(),
		LoadedAt: h.loadedAt,
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleValidateSettings runs the business-rule checks on demand. A violation is
// reported in the body, not as an HTTP error, since the settings themselves loaded fine.
func (h *Handler) handleValidateSettings(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := validationResponse{
		Valid:     true,
		CheckedAt: h.clock(),
	}
	if err := h.settings.Validate(); err != nil {
		resp.Valid = false
		resp.Kind = config.KindName(err)
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type settingsResponse struct {
	Settings config.View `json:"settings"`
	LoadedAt time.Time   `json:"loadedAt"`
}

type validationResponse struct {
	Valid     bool      `json:"valid"`
	Kind      string    `json:"kind,omitempty"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}
