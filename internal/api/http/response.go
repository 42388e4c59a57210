package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"
)

// apiError is the JSON error body. Details carries the underlying driver or
// runtime message for operator diagnosis, Stack is only populated in debug
// mode.
type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().ErrorContext(ctx, "can't encode response",
			slog.String("err", err.Error()),
		)
	}
}

func respondError(ctx context.Context, w http.ResponseWriter, status int, msg, details, stack string) {
	if status >= http.StatusInternalServerError {
		slog.Default().ErrorContext(ctx, "request failed",
			slog.Int("status", status),
			slog.String("error", msg),
			slog.String("details", details),
		)
	}
	respondJSON(ctx, w, status, apiError{Error: msg, Details: details, Stack: stack})
}
