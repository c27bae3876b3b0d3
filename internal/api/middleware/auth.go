package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lavex/account-service/internal/api/metrics"
	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
)

// UIDKey is the echo context key the verified subject uid is stored under.
const UIDKey = "uid"

// VerifierSource hands out the shared token verifier; the dependency resolver
// satisfies it.
type VerifierSource interface {
	Verifier() (ports.TokenVerifier, error)
}

// Auth gates protected routes behind bearer-token verification: extract the
// credential, verify it against the identity provider, and inject the
// resulting uid into the request context. Failures surface as typed domain
// errors the central error handler maps to 401 with a WWW-Authenticate
// challenge.
func Auth(src VerifierSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrMissingCredential
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.AuthFailuresTotal.WithLabelValues("malformed_header").Inc()
				return domain.ErrMissingCredential
			}

			verifier, err := src.Verifier()
			if err != nil {
				return err
			}

			uid, err := verifier.Verify(c.Request().Context(), ports.BearerToken(parts[1]))
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return err
			}

			c.Set(UIDKey, string(uid))
			return next(c)
		}
	}
}
