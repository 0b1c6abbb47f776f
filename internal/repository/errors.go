// Package repository defines error values shared across repositories.
// These sentinels let handlers distinguish failure scenarios without
// inspecting driver errors: ErrUsernameExists maps to HTTP 409 on
// registration, and sql.ErrNoRows is passed through where "no matching
// row" is meaningful (404 or 401 depending on the endpoint).
package repository

import "errors"

// ErrUsernameExists is returned when an insert into accounts trips the
// unique constraint on username. Handlers translate it into HTTP 409.
var ErrUsernameExists = errors.New("username already exists")
