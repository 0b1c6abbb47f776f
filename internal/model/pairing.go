package model

// Pairing is a row in the `seller_buyer_mapping` table: the record of
// which buyer a seller currently delivers to. The application keeps at
// most one row per seller_id via a check-then-update/insert sequence;
// there is no uniqueness constraint backing it.
type Pairing struct {
	ID         uint64 `json:"id"`
	SellerID   uint64 `json:"seller_id"`
	BuyerID    uint64 `json:"buyer_id"`
	SellerName string `json:"seller_name"`
	BuyerName  string `json:"buyer_name"`
}
