package handler

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vividh/dairy-ledger/internal/model"
)

// MilkHandler serves the milk-entry lifecycle endpoints.
type MilkHandler struct {
	Milk MilkStore
}

func NewMilkHandler(m MilkStore) *MilkHandler { return &MilkHandler{Milk: m} }

// milkEntryReq carries a create/update body. Litres and fat are
// pointers so that an absent field fails the required check while an
// explicit zero reaches range validation.
type milkEntryReq struct {
	SellerID uint64   `json:"seller_id"`
	BuyerID  uint64   `json:"buyer_id"`
	Date     string   `json:"date"`
	Litres   *float64 `json:"milk_in_litres"`
	Fat      *float64 `json:"fat"`
	Shift    string   `json:"shift"`
}

// validate applies the value rules in their fixed order: shift, then
// fat range, then litres. The required-field and ownership checks run
// before this in the handlers. Returns "" when valid.
func (r *milkEntryReq) validate() string {
	if r.Shift != model.ShiftMorning && r.Shift != model.ShiftEvening {
		return `Shift must be either "morning" or "evening"`
	}
	if *r.Fat < 0 || *r.Fat > 10 {
		return "Fat must be between 0 and 10"
	}
	if *r.Litres <= 0 {
		return "Milk quantity must be greater than 0"
	}
	return ""
}

// AddMilkInfo handles POST /addMilkInfo (buyer only). A duplicate
// entry for the same (seller, buyer, date, shift) returns 409 with the
// existing id surfaced so the client can switch to an edit flow. The
// existence check and the insert are two queries; concurrent identical
// requests can both pass the check.
func (h *MilkHandler) AddMilkInfo(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var req milkEntryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.SellerID == 0 || req.BuyerID == 0 || req.Date == "" || req.Litres == nil || req.Fat == nil || req.Shift == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required: seller_id, buyer_id, date, milk_in_litres, fat, shift"})
	}
	// On create the ownership check runs against the body: buyers may
	// only log milk for themselves.
	if req.BuyerID != caller {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "You can only add milk info as the logged-in buyer"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	existingID, exists, err := h.Milk.ExistingID(ctx, req.SellerID, req.BuyerID, req.Date, req.Shift)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error inserting milk info data"})
	}
	if exists {
		return c.JSON(http.StatusConflict, echo.Map{
			"message":    fmt.Sprintf("Entry already exists for %s (%s shift). Please edit the existing entry instead.", req.Date, req.Shift),
			"existingId": existingID,
		})
	}

	entry, err := h.Milk.Insert(ctx, model.MilkEntry{
		SellerID: req.SellerID,
		BuyerID:  req.BuyerID,
		Date:     req.Date,
		Litres:   *req.Litres,
		Fat:      *req.Fat,
		Shift:    req.Shift,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error inserting milk info data"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Milk info data inserted successfully", "data": entry})
}

// UpdateMilkInfo handles PUT /updateMilkInfo/:id (buyer only). Unlike
// create, ownership is decided from the stored row's buyer_id, never
// from the body, so a caller cannot spoof their way into editing
// someone else's entry.
func (h *MilkHandler) UpdateMilkInfo(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Valid milk info ID is required"})
	}
	var req milkEntryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.SellerID == 0 || req.BuyerID == 0 || req.Date == "" || req.Litres == nil || req.Fat == nil || req.Shift == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}
	if req.BuyerID != caller {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "You can only update your own entries"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	owner, err := h.Milk.OwnerOf(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Entry not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error updating entry"})
	}
	if owner != caller {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "You can only update your own entries"})
	}

	entry, err := h.Milk.Update(ctx, id, req.Date, *req.Litres, *req.Fat, req.Shift)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error updating entry"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Entry updated successfully", "data": entry})
}

// DeleteMilkInfo handles DELETE /deleteMilkInfo/:id (buyer only). Any
// authenticated buyer may delete any entry by id; there is
// deliberately no ownership re-check here, unlike update.
func (h *MilkHandler) DeleteMilkInfo(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Valid milk info ID is required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	entry, err := h.Milk.Delete(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Milk info not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error deleting milk info"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Milk info deleted successfully", "data": entry})
}

// GetMilkInfoBySeller handles GET /getMilkInfoBySeller. Sellers may
// only read their own entries; buyers may read any seller's (which
// sellers they should look at is a presentation-layer concern).
func (h *MilkHandler) GetMilkInfoBySeller(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	sellerID, _ := strconv.ParseUint(c.QueryParam("seller_id"), 10, 64)
	if callerRole(c) == model.RoleSeller && sellerID != caller {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "You can only view your own milk information"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	entries, err := h.Milk.ListBySeller(ctx, sellerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching milk info"})
	}
	return c.JSON(http.StatusOK, entries)
}
