package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/rookie-play-service/internal/http/middleware"
	"github.com/preston-bernstein/rookie-play-service/internal/logging"
	"github.com/preston-bernstein/rookie-play-service/internal/providers"
)

// upstreamUnavailable is the only message clients see for upstream failures.
const upstreamUnavailable = "upstream data unavailable"

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(middleware.RequestIDHeader)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeUpstreamError hides service failure detail behind a fixed 502.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if l := loggerFromContext(r, logger); l != nil {
		l.Debug("responding with upstream failure", upstreamFailureAttrs(err)...)
	}
	writeError(w, r, http.StatusBadGateway, upstreamUnavailable, logger)
}

// upstreamFailureAttrs classifies a service error for logs.
func upstreamFailureAttrs(err error) []any {
	attrs := []any{"error", err}
	if nf, ok := providers.AsNotFoundError(err); ok {
		attrs = append(attrs, "failure", "not_found", "resource", nf.Resource)
	} else if se, ok := providers.AsShapeError(err); ok {
		attrs = append(attrs, "failure", "shape", "path", se.Path)
	} else {
		attrs = append(attrs, "failure", "fetch")
	}
	if fe, ok := providers.AsFetchError(err); ok && fe.StatusCode > 0 {
		attrs = append(attrs, logging.FieldStatusCode, fe.StatusCode)
	}
	return attrs
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
