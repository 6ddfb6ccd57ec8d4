package apperr_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/treeboard/pkg/domain/model"
	"github.com/secmon-lab/treeboard/pkg/utils/apperr"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid borough", goerr.Wrap(model.ErrInvalidBorough, "bad"), http.StatusBadRequest},
		{"invalid species", goerr.Wrap(model.ErrInvalidSpecies, "bad"), http.StatusBadRequest},
		{"invalid view", model.ErrInvalidView, http.StatusBadRequest},
		{"upstream", goerr.Wrap(errors.Join(model.ErrUpstream, errors.New("EOF")), "decode"), http.StatusBadGateway},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, apperr.StatusCode(tc.err), tc.expected)
		})
	}
}

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	apperr.Handle(ctx, goerr.Wrap(model.ErrInvalidView, "unknown"))
	gt.S(t, buf.String()).Contains(`"level":"WARN"`)

	buf.Reset()
	apperr.Handle(ctx, goerr.Wrap(model.ErrUpstream, "status 503"))
	gt.S(t, buf.String()).Contains(`"level":"ERROR"`)
	gt.S(t, buf.String()).Contains("application error")
}
