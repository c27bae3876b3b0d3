package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lavex/account-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors:
// {"msg":"error","errors":{<field-or-type>:<message>}}.
type errorResponse struct {
	Msg    string            `json:"msg"`
	Errors map[string]string `json:"errors,omitempty"`
}

// bearerChallenge is sent on every 401 so clients know the expected scheme.
const bearerChallenge = `Bearer error="invalid_token"`

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps each typed domain error to its HTTP status and envelope.
//   - Attaches a WWW-Authenticate challenge to all 401 responses.
//   - Logs a warning per domain failure; unexpected errors log at error level
//     without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, fieldErrors := resolveError(err, log, c)
		if code == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, bearerChallenge)
		}
		_ = c.JSON(code, errorResponse{Msg: "error", Errors: fieldErrors})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, map[string]string) {
	// Malformed input: render the per-field message map.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		log.Warn().Str("path", c.Path()).Msg(ve.Error())
		return http.StatusBadRequest, ve.Fields
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, map[string]string{"request": fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		log.Warn().Str("path", c.Path()).Msg("request without bearer credential")
		return http.StatusUnauthorized, typed("Authentication", domain.ErrMissingCredential)
	case errors.Is(err, domain.ErrUnauthenticated):
		log.Warn().Str("path", c.Path()).Err(err).Msg("bearer token rejected")
		return http.StatusUnauthorized, typed("Authentication", domain.ErrUnauthenticated)
	case errors.Is(err, domain.ErrInvalidCredentials):
		// 400, deliberately not 401: a wrong password is not a token failure.
		log.Info().Str("path", c.Path()).Msg("credentials rejected")
		return http.StatusBadRequest, typed("Business", domain.ErrInvalidCredentials)
	case errors.Is(err, domain.ErrUserNotFound):
		log.Info().Str("path", c.Path()).Msg("user not found")
		return http.StatusNotFound, typed("Business", domain.ErrUserNotFound)
	case errors.Is(err, domain.ErrUserExists):
		log.Info().Str("path", c.Path()).Msg("duplicate registration")
		return http.StatusConflict, typed("Business", domain.ErrUserExists)
	}

	// Unexpected error (ErrUninitialized lands here too): log the real cause,
	// return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, map[string]string{"internal": "internal server error"}
}

func typed(kind string, err error) map[string]string {
	return map[string]string{"type": kind, "msg": err.Error()}
}
