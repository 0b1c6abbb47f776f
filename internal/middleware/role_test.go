package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func roleProbe(role string, gate echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/probe", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role != "" {
				c.Set(CtxRole, role)
			}
			return next(c)
		}
	}, gate)
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireBuyer(t *testing.T) {
	assert.Equal(t, http.StatusOK, roleProbe("buyer", RequireBuyer).Code)
	assert.Equal(t, http.StatusForbidden, roleProbe("seller", RequireBuyer).Code)
	assert.Equal(t, http.StatusForbidden, roleProbe("", RequireBuyer).Code)
}

func TestRequireSeller(t *testing.T) {
	assert.Equal(t, http.StatusOK, roleProbe("seller", RequireSeller).Code)
	assert.Equal(t, http.StatusForbidden, roleProbe("buyer", RequireSeller).Code)
	assert.Equal(t, http.StatusForbidden, roleProbe("", RequireSeller).Code)
}
