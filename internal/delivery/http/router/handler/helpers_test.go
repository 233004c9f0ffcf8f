package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
)

// newTestEcho builds an Echo instance mirroring the production server's
// validator and error translation, so status codes in tests match reality.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// doJSON runs a handler against a synthetic JSON request and translates any
// returned error the way the server would.
func doJSON(e *echo.Echo, method, target, body string, configure func(echo.Context), fn echo.HandlerFunc) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if configure != nil {
		configure(c)
	}

	if err := fn(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}
