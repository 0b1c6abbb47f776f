package repository

import (
	"context"
	"database/sql"

	"github.com/vividh/dairy-ledger/internal/model"
)

// PairingRepo persists seller→buyer assignments in the
// 'seller_buyer_mapping' table. The one-row-per-seller invariant is a
// handler responsibility (check GetBySeller, then UpdateBuyer or
// Insert); concurrent upserts for the same seller can still race.
type PairingRepo struct{ DB *sql.DB }

func NewPairingRepo(db *sql.DB) *PairingRepo { return &PairingRepo{DB: db} }

// GetBySeller returns the seller's current pairing, or sql.ErrNoRows.
func (r *PairingRepo) GetBySeller(ctx context.Context, sellerID uint64) (model.Pairing, error) {
	var p model.Pairing
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,seller_id,buyer_id,seller_name,buyer_name FROM seller_buyer_mapping WHERE seller_id=? LIMIT 1",
		sellerID).Scan(&p.ID, &p.SellerID, &p.BuyerID, &p.SellerName, &p.BuyerName)
	return p, err
}

// UpdateBuyer repoints an existing pairing at a new buyer and returns
// the updated row.
func (r *PairingRepo) UpdateBuyer(ctx context.Context, sellerID, buyerID uint64, buyerName string) (model.Pairing, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE seller_buyer_mapping SET buyer_id=?, buyer_name=? WHERE seller_id=?",
		buyerID, buyerName, sellerID)
	if err != nil {
		return model.Pairing{}, err
	}
	return r.GetBySeller(ctx, sellerID)
}

// Insert creates a new pairing row and fills in its ID.
func (r *PairingRepo) Insert(ctx context.Context, p model.Pairing) (model.Pairing, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO seller_buyer_mapping (seller_id, buyer_id, seller_name, buyer_name) VALUES (?,?,?,?)",
		p.SellerID, p.BuyerID, p.SellerName, p.BuyerName)
	if err != nil {
		return model.Pairing{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Pairing{}, err
	}
	p.ID = uint64(id)
	return p, nil
}

// SellersByBuyer lists the sellers currently delivering to a buyer.
func (r *PairingRepo) SellersByBuyer(ctx context.Context, buyerID uint64) ([]model.Party, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT seller_id, seller_name FROM seller_buyer_mapping WHERE buyer_id=?", buyerID)
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

// BuyerBySeller lists the buyer a seller is registered with. Returned
// as a slice to mirror the API shape (empty when unpaired).
func (r *PairingRepo) BuyerBySeller(ctx context.Context, sellerID uint64) ([]model.Party, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT buyer_id, buyer_name FROM seller_buyer_mapping WHERE seller_id=?", sellerID)
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
