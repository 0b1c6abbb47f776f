package repository

import (
	"context"
	"database/sql"
)

// BlacklistRepo persists revoked tokens in the 'blacklist_tokens'
// table. The set is append-only: a token stored here is rejected on
// every later request, even before its natural expiry. The raw token
// string is the key, compared verbatim.
type BlacklistRepo struct{ DB *sql.DB }

func NewBlacklistRepo(db *sql.DB) *BlacklistRepo { return &BlacklistRepo{DB: db} }

// Add appends a token to the blacklist and returns the row ID.
func (r *BlacklistRepo) Add(ctx context.Context, token string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO blacklist_tokens (token) VALUES (?)", token)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Contains reports whether a token has been blacklisted. Called once
// per authenticated request before signature verification.
func (r *BlacklistRepo) Contains(ctx context.Context, token string) (bool, error) {
	var id uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM blacklist_tokens WHERE token=? LIMIT 1", token).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
