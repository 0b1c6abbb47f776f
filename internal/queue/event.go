// Package queue defines message payloads exchanged over the message broker.
package queue

// SettlementRecordedEvent is published when a buyer records a paid
// settlement. It carries enough for downstream consumers to log or
// notify without querying the primary database.
type SettlementRecordedEvent struct {
	TransactionID uint64  `json:"transaction_id"`
	SellerID      uint64  `json:"seller_id"`
	BuyerID       uint64  `json:"buyer_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Rate          float64 `json:"rate"`
	TotalAmount   float64 `json:"total_amount"`
	RecordedAt    string  `json:"recorded_at"`
}

// SettlementQueueName is the durable queue both the publisher and the
// consumer declare.
const SettlementQueueName = "settlement.recorded"
