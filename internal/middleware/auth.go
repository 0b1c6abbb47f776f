package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"context"                // context carries the per-request deadline into the blacklist lookup
	"net/http"               // HTTP status codes for responses
	"strings"                // string utilities for prefix checking and trimming
	"time"                   // timeout for the blacklist lookup

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// TokenBlacklist is the read side of the revoked-token set. It is
// satisfied by repository.BlacklistRepo; tests substitute an in-memory
// implementation.
type TokenBlacklist interface {
	Contains(ctx context.Context, token string) (bool, error)
}

// Context keys under which Authenticate stores the verified claims.
// Handlers read them back via c.Get().
const (
	CtxUserID   = "user_id"  // uint64 account id
	CtxUsername = "username" // login name
	CtxRole     = "role"     // "buyer" or "seller"
	CtxToken    = "token"    // the raw bearer token (logout inserts it verbatim)
)

// Authenticate returns an Echo middleware implementing the auth gate:
//
//   1. no bearer token           -> 401
//   2. token on the blacklist    -> 403, regardless of validity
//   3. bad signature or expired  -> 403
//   4. otherwise claims {id, username, role} go into the context
//
// The blacklist check is a database read on every protected request;
// the set is append-only so there is no cache to invalidate, and the
// lookup keys on the exact token string from the header.
func Authenticate(secret string, blacklist TokenBlacklist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Read the Authorization header. A valid header starts with
			// "Bearer " followed by the JWT; anything else means the
			// caller has not authenticated at all.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Revocation comes before signature checking: a blacklisted
			// token is rejected even when it would still verify.
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			revoked, err := blacklist.Contains(ctx, raw)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error checking token blacklist"})
			}
			if revoked {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Token is blacklisted."})
			}

			// Parse with HS256 and our secret. The callback supplies the
			// signing key and rejects any other signing method.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Invalid token."})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Invalid token."})
			}
			// JSON numbers decode as float64; convert the id once here
			// so handlers can compare it against body/query ids directly.
			id, ok := claims["id"].(float64)
			if !ok {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Invalid token."})
			}
			username, _ := claims["username"].(string)
			role, _ := claims["role"].(string)

			c.Set(CtxUserID, uint64(id))
			c.Set(CtxUsername, username)
			c.Set(CtxRole, role)
			c.Set(CtxToken, raw)
			return next(c)
		}
	}
}
