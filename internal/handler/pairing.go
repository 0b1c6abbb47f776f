package handler

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vividh/dairy-ledger/internal/model"
)

// PairingHandler serves the seller→buyer mapping endpoints.
type PairingHandler struct {
	Pairings PairingStore
	Accounts AccountStore
}

func NewPairingHandler(p PairingStore, a AccountStore) *PairingHandler {
	return &PairingHandler{Pairings: p, Accounts: a}
}

// AddSellerBuyerMapping handles POST /addSellerBuyerMapping (seller
// only). Upsert semantics: a seller with an existing pairing has its
// buyer replaced (200); otherwise a fresh row is inserted (201). The
// check and the write are two separate queries; two concurrent calls
// for the same seller can both pass the check and insert twice. That
// matches the workload this was built for and is left as is.
func (h *PairingHandler) AddSellerBuyerMapping(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var req struct {
		SellerID   uint64 `json:"seller_id"`
		BuyerID    uint64 `json:"buyer_id"`
		SellerName string `json:"seller_name"`
		BuyerName  string `json:"buyer_name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.SellerID == 0 || req.BuyerID == 0 || req.SellerName == "" || req.BuyerName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required: seller_id, buyer_id, seller_name, buyer_name"})
	}
	// Sellers may only register themselves.
	if req.SellerID != caller {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "You can only register yourself as a seller"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Pairings.GetBySeller(ctx, req.SellerID); err == nil {
		updated, err := h.Pairings.UpdateBuyer(ctx, req.SellerID, req.BuyerID, req.BuyerName)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error updating seller"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Seller updated successfully", "data": updated})
	} else if err != sql.ErrNoRows {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error checking existing seller"})
	}

	inserted, err := h.Pairings.Insert(ctx, model.Pairing{
		SellerID:   req.SellerID,
		BuyerID:    req.BuyerID,
		SellerName: req.SellerName,
		BuyerName:  req.BuyerName,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error inserting seller"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Seller added successfully", "data": inserted})
}

// GetSellersByBuyer handles GET /getSellersByBuyer (buyer only). A
// buyer may only list their own sellers.
func (h *PairingHandler) GetSellersByBuyer(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	buyerID, _ := strconv.ParseUint(c.QueryParam("buyer_id"), 10, 64)
	if buyerID != caller {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "You can only view your own associated sellers"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	sellers, err := h.Pairings.SellersByBuyer(ctx, buyerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching sellers"})
	}
	if len(sellers) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No sellers found for the given buyer"})
	}
	return c.JSON(http.StatusOK, sellers)
}

// GetBuyers handles GET /getBuyers (seller only): every buyer account
// a seller could register with.
func (h *PairingHandler) GetBuyers(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	buyers, err := h.Accounts.ListBuyers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching buyers"})
	}
	return c.JSON(http.StatusOK, buyers)
}

// GetBuyerBySeller handles GET /getBuyerBySeller (seller only). A
// seller may only look up their own pairing; the result is an array,
// empty when the seller has not registered with any buyer yet.
func (h *PairingHandler) GetBuyerBySeller(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	sellerID, _ := strconv.ParseUint(c.QueryParam("seller_id"), 10, 64)
	if sellerID != caller {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "You can only view your own associated buyer"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	buyers, err := h.Pairings.BuyerBySeller(ctx, sellerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching buyer details"})
	}
	return c.JSON(http.StatusOK, buyers)
}
