package repository

import (
	"context"
	"database/sql"

	"github.com/vividh/dairy-ledger/internal/model"
)

// MilkRepo persists daily milk entries in the 'milk_info' table.
// Dates travel as YYYY-MM-DD strings; DATE_FORMAT keeps the read side
// symmetric with what clients send.
type MilkRepo struct{ DB *sql.DB }

func NewMilkRepo(db *sql.DB) *MilkRepo { return &MilkRepo{DB: db} }

// ExistingID looks up an entry by its natural key. The returned bool
// reports whether a row exists; handlers use the id to point clients at
// the entry to edit instead.
func (r *MilkRepo) ExistingID(ctx context.Context, sellerID, buyerID uint64, date, shift string) (uint64, bool, error) {
	var id uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM milk_info WHERE seller_id=? AND buyer_id=? AND date=? AND shift=? LIMIT 1",
		sellerID, buyerID, date, shift).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// Insert stores a new entry and fills in its ID.
func (r *MilkRepo) Insert(ctx context.Context, e model.MilkEntry) (model.MilkEntry, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO milk_info (seller_id, buyer_id, date, milk_in_litres, fat, shift) VALUES (?,?,?,?,?,?)",
		e.SellerID, e.BuyerID, e.Date, e.Litres, e.Fat, e.Shift)
	if err != nil {
		return model.MilkEntry{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.MilkEntry{}, err
	}
	e.ID = uint64(id)
	return e, nil
}

// GetByID fetches a full entry row, sql.ErrNoRows when absent.
func (r *MilkRepo) GetByID(ctx context.Context, id uint64) (model.MilkEntry, error) {
	var e model.MilkEntry
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,seller_id,buyer_id,DATE_FORMAT(date,'%Y-%m-%d'),milk_in_litres,fat,shift FROM milk_info WHERE id=? LIMIT 1",
		id).Scan(&e.ID, &e.SellerID, &e.BuyerID, &e.Date, &e.Litres, &e.Fat, &e.Shift)
	return e, err
}

// OwnerOf returns the buyer_id recorded on an entry. Update handlers
// trust this stored value, never the request body, for ownership.
func (r *MilkRepo) OwnerOf(ctx context.Context, id uint64) (uint64, error) {
	var buyerID uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT buyer_id FROM milk_info WHERE id=? LIMIT 1", id).Scan(&buyerID)
	return buyerID, err
}

// Update rewrites the mutable fields of an entry and returns the
// updated row.
func (r *MilkRepo) Update(ctx context.Context, id uint64, date string, litres, fat float64, shift string) (model.MilkEntry, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE milk_info SET date=?, milk_in_litres=?, fat=?, shift=? WHERE id=?",
		date, litres, fat, shift, id)
	if err != nil {
		return model.MilkEntry{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes an entry and returns the removed row, sql.ErrNoRows
// when no such entry existed. MySQL has no RETURNING, so this is a
// fetch followed by a delete.
func (r *MilkRepo) Delete(ctx context.Context, id uint64) (model.MilkEntry, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return model.MilkEntry{}, err
	}
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM milk_info WHERE id=?", id); err != nil {
		return model.MilkEntry{}, err
	}
	return e, nil
}

// ListBySeller returns every entry recorded against a seller.
func (r *MilkRepo) ListBySeller(ctx context.Context, sellerID uint64) ([]model.MilkEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,seller_id,buyer_id,DATE_FORMAT(date,'%Y-%m-%d'),milk_in_litres,fat,shift FROM milk_info WHERE seller_id=?",
		sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.MilkEntry{}
	for rows.Next() {
		var e model.MilkEntry
		if err := rows.Scan(&e.ID, &e.SellerID, &e.BuyerID, &e.Date, &e.Litres, &e.Fat, &e.Shift); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SumLitresFat aggregates sum(milk_in_litres * fat) over the buyer's
// entries for one seller in [start, end]. Pure read; the caller
// multiplies by the per-unit rate.
func (r *MilkRepo) SumLitresFat(ctx context.Context, buyerID, sellerID uint64, start, end string) (float64, error) {
	var total float64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(milk_in_litres * fat), 0) FROM milk_info WHERE buyer_id=? AND seller_id=? AND date BETWEEN ? AND ?",
		buyerID, sellerID, start, end).Scan(&total)
	return total, err
}
