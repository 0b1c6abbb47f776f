package model

// Shift values for a milk entry. Milk is collected twice a day.
const (
	ShiftMorning = "morning"
	ShiftEvening = "evening"
)

// MilkEntry is a row in the `milk_info` table: one delivery by a
// seller to a buyer on a given date and shift. At most one entry may
// exist per (seller_id, buyer_id, date, shift); the check happens in
// the handler before insert, not in the schema. Date travels as a
// plain YYYY-MM-DD string end to end.
type MilkEntry struct {
	ID       uint64  `json:"id"`
	SellerID uint64  `json:"seller_id"`
	BuyerID  uint64  `json:"buyer_id"`
	Date     string  `json:"date"`
	Litres   float64 `json:"milk_in_litres"`
	Fat      float64 `json:"fat"`
	Shift    string  `json:"shift"`
}
