package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/product-service/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestResolveError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   any
	}{
		{
			name:   "classified",
			err:    errs.NewNotFoundError(),
			status: http.StatusNotFound,
			body:   errs.MessageBody{Error: errs.NotFoundMessage},
		},
		{
			name:   "echo not found",
			err:    echo.ErrNotFound,
			status: http.StatusNotFound,
			body:   errs.MessageBody{Error: errs.NotFoundMessage},
		},
		{
			name:   "echo method not allowed",
			err:    echo.ErrMethodNotAllowed,
			status: http.StatusMethodNotAllowed,
			body:   errs.MessageBody{Error: http.StatusText(http.StatusMethodNotAllowed)},
		},
		{
			name:   "unclassified",
			err:    errors.New("connection refused"),
			status: http.StatusInternalServerError,
			body:   errs.MessageBody{Error: "Internal Server Error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := resolveError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		assert.NoError(t, handler(c))
		assert.NotEmpty(t, rec.Body.String())
		assert.Equal(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))
	})

	t.Run("reuses the incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc")
		rec := httptest.NewRecorder()

		assert.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, "abc", rec.Body.String())
	})
}
