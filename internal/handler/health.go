package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running. It returns
// a plain text "ok" message with an HTTP 200 status code.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Root serves GET / for unauthenticated reachability checks.
func Root(c echo.Context) error {
	return c.HTML(http.StatusOK, "<h1>Hello, World!</h1>\n")
}

// Vividh serves GET /vividh, the authenticated variant of the
// greeting; it only answers once the auth gate has passed.
func Vividh(c echo.Context) error {
	return c.HTML(http.StatusOK, "<h1>Hello, World! My name is vividh</h1>\n")
}
