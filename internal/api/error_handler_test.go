package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/planetary/planetary-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{echo.NewHTTPError(http.StatusBadRequest, "age is required"), http.StatusBadRequest, "age is required"},
		{fmt.Errorf("get: %w", domain.ErrPlanetNotFound), http.StatusNotFound, "That planet does not exist"},
		{domain.ErrPlanetExists, http.StatusConflict, "planet already exists"},
		{domain.ErrUserExists, http.StatusConflict, "That email already exists"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "You entered a bad email or password"},
		{domain.ErrRecoveryThrottled, http.StatusTooManyRequests, "too many password recovery requests"},
		{errors.New("db exploded"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Message != tc.msg {
			t.Fatalf("%v: expected %q, got %q", tc.err, tc.msg, body.Message)
		}
	}
}
