package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vividh/dairy-ledger/internal/model"
	"github.com/vividh/dairy-ledger/internal/queue"
)

// BillingHandler serves amount calculation and settlement recording.
// Publish, when set, emits a settlement.recorded event after a
// successful addTransaction; failures are logged and never fail the
// request, so the write path does not depend on the broker.
type BillingHandler struct {
	Milk    MilkStore
	Txns    TransactionStore
	Publish func(ctx context.Context, ev queue.SettlementRecordedEvent) error
}

func NewBillingHandler(m MilkStore, t TransactionStore) *BillingHandler {
	return &BillingHandler{Milk: m, Txns: t}
}

// CalculateAmount handles POST /calculateAmount (buyer only). It is a
// pure aggregation: sum(litres * fat) over the buyer's entries for one
// seller in [start_date, end_date], multiplied by the per-unit rate.
func (h *BillingHandler) CalculateAmount(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var req struct {
		BuyerID   uint64   `json:"buyer_id"`
		SellerID  uint64   `json:"seller_id"`
		StartDate string   `json:"start_date"`
		EndDate   string   `json:"end_date"`
		Rate      *float64 `json:"rate"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.BuyerID == 0 || req.SellerID == 0 || req.StartDate == "" || req.EndDate == "" || req.Rate == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required: buyer_id, seller_id, start_date, end_date, rate"})
	}
	if req.BuyerID != caller {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "You can only calculate amounts for your own transactions"})
	}
	if *req.Rate <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Rate must be greater than 0"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	sum, err := h.Milk.SumLitresFat(ctx, req.BuyerID, req.SellerID, req.StartDate, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error calculating amount"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Amount calculated successfully",
		"totalAmount": sum * *req.Rate,
	})
}

// AddTransaction handles POST /addTransaction (buyer only). The
// submitted total is trusted as-is; there is no cross-check against a
// prior calculateAmount call.
func (h *BillingHandler) AddTransaction(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var req struct {
		SellerID    uint64   `json:"seller_id"`
		BuyerID     uint64   `json:"buyer_id"`
		StartDate   string   `json:"start_date"`
		EndDate     string   `json:"end_date"`
		Rate        *float64 `json:"rate"`
		TotalAmount *float64 `json:"total_amount"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.SellerID == 0 || req.BuyerID == 0 || req.StartDate == "" || req.EndDate == "" || req.Rate == nil || req.TotalAmount == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required: seller_id, buyer_id, start_date, end_date, rate, total_amount"})
	}
	if req.BuyerID != caller {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "You can only add transactions as the logged-in buyer"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	txn, err := h.Txns.Insert(ctx, model.Transaction{
		SellerID:    req.SellerID,
		BuyerID:     req.BuyerID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Rate:        *req.Rate,
		TotalAmount: *req.TotalAmount,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error inserting transaction data"})
	}

	if h.Publish != nil {
		ev := queue.SettlementRecordedEvent{
			TransactionID: txn.ID,
			SellerID:      txn.SellerID,
			BuyerID:       txn.BuyerID,
			StartDate:     txn.StartDate,
			EndDate:       txn.EndDate,
			Rate:          txn.Rate,
			TotalAmount:   txn.TotalAmount,
			RecordedAt:    time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Publish(context.WithoutCancel(ctx), ev); err != nil {
			log.Printf("billing: publish settlement event failed: %v", err)
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Transaction data inserted successfully", "data": txn})
}

// GetTransactionDetails handles GET /getTransactionDetails. Sellers
// may only read their own settlement history; buyers may read any
// seller's.
func (h *BillingHandler) GetTransactionDetails(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	sellerID, _ := strconv.ParseUint(c.QueryParam("seller_id"), 10, 64)
	if callerRole(c) == model.RoleSeller && sellerID != caller {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "You can only view your own transaction details"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	details, err := h.Txns.ListBySeller(ctx, sellerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching transaction details"})
	}
	return c.JSON(http.StatusOK, details)
}
