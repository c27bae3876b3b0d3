package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lavex/account-service/internal/api/middleware"
	"github.com/lavex/account-service/internal/core/domain"
)

// ctxUID extracts the verified uid injected by the Auth middleware. An empty
// uid means the middleware did not run on this route; reject before any
// service call.
func ctxUID(c echo.Context) (string, error) {
	uid, _ := c.Get(middleware.UIDKey).(string)
	if uid == "" {
		return "", domain.ErrMissingCredential
	}
	return uid, nil
}
