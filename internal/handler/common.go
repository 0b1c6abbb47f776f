package handler

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vividh/dairy-ledger/internal/middleware"
)

// dbTimeout bounds every datastore call made from a handler.
const dbTimeout = 5 * time.Second

var errNoIdentity = errors.New("no authenticated identity in context")

// callerID returns the authenticated account id placed in the context
// by the auth middleware.
func callerID(c echo.Context) (uint64, error) {
	id, ok := c.Get(middleware.CtxUserID).(uint64)
	if !ok {
		return 0, errNoIdentity
	}
	return id, nil
}

// callerRole returns the authenticated role claim, or "" when absent.
func callerRole(c echo.Context) string {
	role, _ := c.Get(middleware.CtxRole).(string)
	return role
}

// reqCtx derives a deadline-bound context from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}
