package apperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/treeboard/pkg/domain/model"
)

// StatusCode maps an application error to the HTTP status returned to the browser
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, model.ErrInvalidBorough),
		errors.Is(err, model.ErrInvalidSpecies),
		errors.Is(err, model.ErrInvalidView):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Handle logs err with the logger of ctx. Bad requests are logged as warnings.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	if StatusCode(err) < http.StatusInternalServerError {
		logger.Warn("request rejected", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
