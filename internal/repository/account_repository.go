package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/vividh/dairy-ledger/internal/model"
	"github.com/vividh/dairy-ledger/internal/utils"
)

// AccountRepo persists registered users in the 'accounts' table.
type AccountRepo struct{ DB *sql.DB }

func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{DB: db} }

// Create hashes the password and inserts the account, returning its ID.
// A duplicate username surfaces as ErrUsernameExists.
func (r *AccountRepo) Create(ctx context.Context, name, role, username, password string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO accounts (name, role, username, password_hash) VALUES (?,?,?,?)",
		name, role, username, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a full account row for login verification.
func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (model.Account, error) {
	var a model.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,role,username,password_hash FROM accounts WHERE username=? LIMIT 1",
		username).Scan(&a.ID, &a.Name, &a.Role, &a.Username, &a.PasswordHash)
	return a, err
}

// InfoByUsername fetches the public projection of an account.
func (r *AccountRepo) InfoByUsername(ctx context.Context, username string) (model.UserInfo, error) {
	var u model.UserInfo
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,role FROM accounts WHERE username=? LIMIT 1",
		username).Scan(&u.UserID, &u.Name, &u.Role)
	return u, err
}

// ListBuyers returns every buyer account as an {id, name} pair, for
// sellers choosing whom to register with.
func (r *AccountRepo) ListBuyers(ctx context.Context) ([]model.Party, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name FROM accounts WHERE role=?", model.RoleBuyer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Party{}
	for rows.Next() {
		var p model.Party
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
