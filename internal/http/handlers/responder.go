package handlers

import (
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/nfl-games-service/internal/http/middleware"
	"github.com/preston-bernstein/nfl-games-service/internal/http/requestutil"
	"github.com/preston-bernstein/nfl-games-service/internal/logging"
)

const contentTypeJSON = "application/json; charset=utf-8"

// responseJSON writes compact output and leaves non-ASCII and <>& as-is.
// NaN and Inf fail to encode.
var responseJSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	body, err := responseJSON.Marshal(payload)
	if err != nil {
		logging.Error(logger, "failed to encode response", err)
		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Warn(logger, "failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
