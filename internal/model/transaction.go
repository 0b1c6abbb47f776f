package model

// Transaction is a row in the `transactions` table: an immutable
// record of a settled payment between a buyer and a seller for a date
// range. There is no update or delete path; the recorded total is
// whatever the buyer submitted and is not re-derived server side.
type Transaction struct {
	ID          uint64  `json:"id"`
	SellerID    uint64  `json:"seller_id"`
	BuyerID     uint64  `json:"buyer_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Rate        float64 `json:"rate"`
	TotalAmount float64 `json:"total_amount"`
}

// TransactionDetail is the projection returned to sellers and buyers
// reviewing past settlements.
type TransactionDetail struct {
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Rate        float64 `json:"rate"`
	TotalAmount float64 `json:"total_amount"`
}
