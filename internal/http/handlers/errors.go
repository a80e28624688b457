package handlers

import (
	"context"
	"errors"
	"net/http"

	"giftcard/internal/domain"
	"giftcard/internal/middleware"

	"github.com/rs/zerolog"
)

type errorResponse struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

// StatusFor maps pipeline and boundary errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTier):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConfiguration):
		return http.StatusInternalServerError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrUpstreamFormat),
		errors.Is(err, domain.ErrUpstreamEmptyResult),
		errors.Is(err, domain.ErrUpstreamTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	logger := zerolog.Ctx(r.Context())
	event := logger.Debug()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")
	a.json(w, r, status, errorResponse{
		Detail:    err.Error(),
		RequestID: middleware.RequestIDFromContext(r.Context()),
	})
}
