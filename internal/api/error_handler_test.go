package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lavex/account-service/internal/api/middleware"
	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_ValidationError(t *testing.T) {
	rec, body := renderError(t, &domain.ValidationError{Fields: map[string]string{
		"phone": "phone is required",
		"cpf":   "cpf must be 11 digits",
	}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["msg"] != "error" {
		t.Fatalf("expected msg error, got %v", body["msg"])
	}
	fields, ok := body["errors"].(map[string]any)
	if !ok || fields["phone"] != "phone is required" || fields["cpf"] != "cpf must be 11 digits" {
		t.Fatalf("unexpected errors map: %v", body["errors"])
	}
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing credential", domain.ErrMissingCredential, http.StatusUnauthorized},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"uninitialized", domain.ErrUninitialized, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := renderError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if body["msg"] != "error" {
				t.Fatalf("expected msg error, got %v", body["msg"])
			}
		})
	}
}

func TestErrorHandler_ChallengeHeaderOn401(t *testing.T) {
	for _, err := range []error{domain.ErrMissingCredential, domain.ErrUnauthenticated} {
		rec, _ := renderError(t, err)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got == "" {
			t.Fatalf("expected WWW-Authenticate challenge for %v", err)
		}
	}
}

func TestErrorHandler_NoChallengeOnInvalidCredentials(t *testing.T) {
	// A wrong password is a 400 without a bearer challenge; only token
	// failures advertise the auth scheme.
	rec, _ := renderError(t, domain.ErrInvalidCredentials)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "" {
		t.Fatalf("unexpected challenge header: %q", got)
	}
}

type rejectAllSource struct{}

func (rejectAllSource) Verifier() (ports.TokenVerifier, error) {
	return rejectAllVerifier{}, nil
}

type rejectAllVerifier struct{}

func (rejectAllVerifier) Verify(context.Context, ports.BearerToken) (ports.UserUID, error) {
	return "", domain.ErrUnauthenticated
}

// End-to-end shape of the gate: a protected route without (or with an
// unverifiable) bearer token renders 401 plus the challenge header.
func TestProtectedRoute_Unauthorized(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/retrieve-user", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, middleware.Auth(rejectAllSource{}))

	for _, header := range []string{"", "Bearer unverifiable-token"} {
		req := httptest.NewRequest(http.MethodGet, "/retrieve-user", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
		if rec.Header().Get(echo.HeaderWWWAuthenticate) == "" {
			t.Fatalf("header %q: missing WWW-Authenticate challenge", header)
		}
	}
}
