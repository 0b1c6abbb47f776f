package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vividh/dairy-ledger/internal/model"
	"github.com/vividh/dairy-ledger/internal/queue"
)

func seedEntry(t *testing.T, milk *fakeMilk, date string, litres, fat float64) {
	t.Helper()
	_, err := milk.Insert(context.Background(), model.MilkEntry{
		SellerID: 1, BuyerID: 2, Date: date, Litres: litres, Fat: fat, Shift: "morning",
	})
	require.NoError(t, err)
}

func TestCalculateAmount(t *testing.T) {
	milk := newFakeMilk()
	h := NewBillingHandler(milk, &fakeTxns{})

	// One entry: 10 litres * fat 4 * rate 5 = 200. Values are exact in
	// binary floating point, so the comparison is exact.
	seedEntry(t, milk, "2024-01-01", 10, 4)

	body := map[string]any{
		"buyer_id": 2, "seller_id": 1,
		"start_date": "2024-01-01", "end_date": "2024-01-31", "rate": 5,
	}
	c, rec := newRequest(t, http.MethodPost, "/calculateAmount", body)
	asBuyer(c, 2)
	require.NoError(t, h.CalculateAmount(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(200), decodeBody(t, rec)["totalAmount"])

	// A second entry inside the range adds to the sum; one outside does not.
	seedEntry(t, milk, "2024-01-15", 8, 5)
	seedEntry(t, milk, "2024-02-01", 100, 9)
	c, rec = newRequest(t, http.MethodPost, "/calculateAmount", body)
	asBuyer(c, 2)
	require.NoError(t, h.CalculateAmount(c))
	assert.Equal(t, float64(200+8*5*5), decodeBody(t, rec)["totalAmount"])
}

func TestCalculateAmountValidation(t *testing.T) {
	h := NewBillingHandler(newFakeMilk(), &fakeTxns{})

	body := map[string]any{
		"buyer_id": 2, "seller_id": 1,
		"start_date": "2024-01-01", "end_date": "2024-01-31", "rate": 0,
	}
	c, rec := newRequest(t, http.MethodPost, "/calculateAmount", body)
	asBuyer(c, 2)
	require.NoError(t, h.CalculateAmount(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	delete(body, "rate")
	c, rec = newRequest(t, http.MethodPost, "/calculateAmount", body)
	asBuyer(c, 2)
	require.NoError(t, h.CalculateAmount(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body["rate"] = 5
	c, rec = newRequest(t, http.MethodPost, "/calculateAmount", body)
	asBuyer(c, 9)
	require.NoError(t, h.CalculateAmount(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAddTransaction(t *testing.T) {
	txns := &fakeTxns{}
	h := NewBillingHandler(newFakeMilk(), txns)
	var published []queue.SettlementRecordedEvent
	h.Publish = func(_ context.Context, ev queue.SettlementRecordedEvent) error {
		published = append(published, ev)
		return nil
	}

	body := map[string]any{
		"seller_id": 1, "buyer_id": 2,
		"start_date": "2024-01-01", "end_date": "2024-01-31",
		"rate": 5, "total_amount": 200,
	}
	c, rec := newRequest(t, http.MethodPost, "/addTransaction", body)
	asBuyer(c, 2)
	require.NoError(t, h.AddTransaction(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, txns.txns, 1)
	assert.Equal(t, float64(200), txns.txns[0].TotalAmount)
	require.Len(t, published, 1)
	assert.Equal(t, uint64(1), published[0].TransactionID)
	assert.Equal(t, float64(200), published[0].TotalAmount)

	// Ownership violation records nothing and publishes nothing.
	c, rec = newRequest(t, http.MethodPost, "/addTransaction", body)
	asBuyer(c, 7)
	require.NoError(t, h.AddTransaction(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Len(t, txns.txns, 1)
	assert.Len(t, published, 1)

	delete(body, "total_amount")
	c, rec = newRequest(t, http.MethodPost, "/addTransaction", body)
	asBuyer(c, 2)
	require.NoError(t, h.AddTransaction(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddTransactionPublishFailureDoesNotFailRequest(t *testing.T) {
	txns := &fakeTxns{}
	h := NewBillingHandler(newFakeMilk(), txns)
	h.Publish = func(context.Context, queue.SettlementRecordedEvent) error {
		return context.DeadlineExceeded
	}

	c, rec := newRequest(t, http.MethodPost, "/addTransaction", map[string]any{
		"seller_id": 1, "buyer_id": 2,
		"start_date": "2024-01-01", "end_date": "2024-01-31",
		"rate": 5, "total_amount": 200,
	})
	asBuyer(c, 2)
	require.NoError(t, h.AddTransaction(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, txns.txns, 1)
}

func TestGetTransactionDetails(t *testing.T) {
	txns := &fakeTxns{}
	h := NewBillingHandler(newFakeMilk(), txns)
	_, err := txns.Insert(context.Background(), model.Transaction{
		SellerID: 1, BuyerID: 2, StartDate: "2024-01-01", EndDate: "2024-01-31",
		Rate: 5, TotalAmount: 200,
	})
	require.NoError(t, err)

	c, rec := newRequest(t, http.MethodGet, "/getTransactionDetails?seller_id=1", nil)
	asSeller(c, 1)
	require.NoError(t, h.GetTransactionDetails(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2024-01-01")

	c, rec = newRequest(t, http.MethodGet, "/getTransactionDetails?seller_id=1", nil)
	asSeller(c, 9)
	require.NoError(t, h.GetTransactionDetails(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Buyers may read any seller's history.
	c, rec = newRequest(t, http.MethodGet, "/getTransactionDetails?seller_id=1", nil)
	asBuyer(c, 2)
	require.NoError(t, h.GetTransactionDetails(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
