package repository

import (
	"context"
	"database/sql"

	"github.com/vividh/dairy-ledger/internal/model"
)

// TransactionRepo persists settlement records in the 'transactions'
// table. Rows are append-only; there is no update or delete path.
type TransactionRepo struct{ DB *sql.DB }

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{DB: db} }

// Insert stores a settlement and fills in its ID.
func (r *TransactionRepo) Insert(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO transactions (seller_id, buyer_id, start_date, end_date, rate, total_amount) VALUES (?,?,?,?,?,?)",
		t.SellerID, t.BuyerID, t.StartDate, t.EndDate, t.Rate, t.TotalAmount)
	if err != nil {
		return model.Transaction{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Transaction{}, err
	}
	t.ID = uint64(id)
	return t, nil
}

// ListBySeller returns the settlement history recorded against a seller.
func (r *TransactionRepo) ListBySeller(ctx context.Context, sellerID uint64) ([]model.TransactionDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT DATE_FORMAT(start_date,'%Y-%m-%d'),DATE_FORMAT(end_date,'%Y-%m-%d'),rate,total_amount FROM transactions WHERE seller_id=?",
		sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.TransactionDetail{}
	for rows.Next() {
		var t model.TransactionDetail
		if err := rows.Scan(&t.StartDate, &t.EndDate, &t.Rate, &t.TotalAmount); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
