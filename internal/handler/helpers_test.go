package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/vividh/dairy-ledger/internal/config"
	"github.com/vividh/dairy-ledger/internal/middleware"
	"github.com/vividh/dairy-ledger/internal/model"
)

// testConfig mirrors the deployment defaults. bcrypt cost 4 keeps the
// hashing in tests fast; the handlers take the cost from config either way.
func testConfig() config.Config {
	return config.Config{
		JWTSecret:    "test-secret",
		AccessTTLMin: 60,
		BcryptCost:   4,
	}
}

// newRequest builds an echo context carrying an optional JSON body.
func newRequest(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	return c, rec
}

// asBuyer stamps the context with a verified buyer identity, the way
// the auth middleware would after a successful token check.
func asBuyer(c echo.Context, id uint64) {
	c.Set(middleware.CtxUserID, id)
	c.Set(middleware.CtxRole, model.RoleBuyer)
}

// asSeller stamps the context with a verified seller identity.
func asSeller(c echo.Context, id uint64) {
	c.Set(middleware.CtxUserID, id)
	c.Set(middleware.CtxRole, model.RoleSeller)
}

// decodeBody unmarshals the recorded JSON response into a map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// withPath sets a path parameter on the context (echo fills these from
// the router in production).
func withPath(c echo.Context, name, value string) {
	c.SetParamNames(name)
	c.SetParamValues(value)
}
