// Package handler contains the HTTP handlers for the dairy ledger API.
// Handlers consume small store interfaces rather than concrete
// repository types so tests can run against in-memory fakes; the
// repository package provides the MySQL implementations.
package handler

import (
	"context"

	"github.com/vividh/dairy-ledger/internal/model"
)

// AccountStore is the account persistence surface used by the auth and
// pairing handlers. Create returns repository.ErrUsernameExists on a
// duplicate username; the lookup methods return sql.ErrNoRows when no
// account matches.
type AccountStore interface {
	Create(ctx context.Context, name, role, username, password string, cost int) (uint64, error)
	GetByUsername(ctx context.Context, username string) (model.Account, error)
	InfoByUsername(ctx context.Context, username string) (model.UserInfo, error)
	ListBuyers(ctx context.Context) ([]model.Party, error)
}

// PairingStore is the seller→buyer mapping surface. GetBySeller
// returns sql.ErrNoRows when the seller has no pairing yet.
type PairingStore interface {
	GetBySeller(ctx context.Context, sellerID uint64) (model.Pairing, error)
	UpdateBuyer(ctx context.Context, sellerID, buyerID uint64, buyerName string) (model.Pairing, error)
	Insert(ctx context.Context, p model.Pairing) (model.Pairing, error)
	SellersByBuyer(ctx context.Context, buyerID uint64) ([]model.Party, error)
	BuyerBySeller(ctx context.Context, sellerID uint64) ([]model.Party, error)
}

// MilkStore is the milk-entry persistence surface. OwnerOf, GetByID
// and Delete return sql.ErrNoRows for missing ids.
type MilkStore interface {
	ExistingID(ctx context.Context, sellerID, buyerID uint64, date, shift string) (uint64, bool, error)
	Insert(ctx context.Context, e model.MilkEntry) (model.MilkEntry, error)
	OwnerOf(ctx context.Context, id uint64) (uint64, error)
	Update(ctx context.Context, id uint64, date string, litres, fat float64, shift string) (model.MilkEntry, error)
	Delete(ctx context.Context, id uint64) (model.MilkEntry, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.MilkEntry, error)
	SumLitresFat(ctx context.Context, buyerID, sellerID uint64, start, end string) (float64, error)
}

// TransactionStore is the settlement persistence surface.
type TransactionStore interface {
	Insert(ctx context.Context, t model.Transaction) (model.Transaction, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.TransactionDetail, error)
}

// BlacklistStore is the write side of the revoked-token set; the read
// side lives in the auth middleware.
type BlacklistStore interface {
	Add(ctx context.Context, token string) (uint64, error)
}
