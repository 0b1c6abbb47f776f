package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireBuyer rejects callers whose verified role claim is not
// "buyer". It assumes Authenticate ran earlier in the chain and left
// the role in the context.
func RequireBuyer(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole("buyer", "Access denied. Buyer role required.", next)
}

// RequireSeller rejects callers whose verified role claim is not
// "seller".
func RequireSeller(next echo.HandlerFunc) echo.HandlerFunc {
	return requireRole("seller", "Access denied. Seller role required.", next)
}

func requireRole(want, message string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get(CtxRole).(string)
		if !ok || role != want {
			// Missing or mismatched role is an authorization failure,
			// not an authentication one.
			return c.JSON(http.StatusForbidden, echo.Map{"message": message})
		}
		return next(c)
	}
}
