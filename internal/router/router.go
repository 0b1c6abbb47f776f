package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework for routing

	"github.com/vividh/dairy-ledger/internal/handler"    // handlers implementing endpoint logic
	"github.com/vividh/dairy-ledger/internal/middleware" // auth gate and role middleware
)

// Handlers groups everything the router needs to wire the API.
type Handlers struct {
	Auth    *handler.AuthHandler
	Pairing *handler.PairingHandler
	Milk    *handler.MilkHandler
	Billing *handler.BillingHandler
}

// Register wires every route onto the Echo instance. The public paths
// are flat and preserved verbatim from the original API; clients
// depend on them. Three middleware tiers exist: none (register/login
// and the reachability endpoints), authenticated (the auth gate), and
// authenticated+role (buyer or seller gates composed after it).
func Register(e *echo.Echo, h Handlers, jwtSecret string, blacklist middleware.TokenBlacklist) {
	// Unauthenticated reachability and auth bootstrap endpoints.
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
	e.POST("/register", h.Auth.Register)
	e.POST("/login", h.Auth.Login)

	authGate := middleware.Authenticate(jwtSecret, blacklist)

	// Endpoints open to any authenticated caller, either role.
	authed := e.Group("", authGate)
	authed.GET("/vividh", handler.Vividh)
	authed.POST("/logout", h.Auth.Logout)
	authed.POST("/addToBlacklist", h.Auth.AddToBlacklist)
	authed.GET("/getUserInfo", h.Auth.GetUserInfo)
	authed.GET("/getMilkInfoBySeller", h.Milk.GetMilkInfoBySeller)
	authed.GET("/getTransactionDetails", h.Billing.GetTransactionDetails)

	// Seller-only endpoints: pairing management and buyer discovery.
	seller := e.Group("", authGate, middleware.RequireSeller)
	seller.POST("/addSellerBuyerMapping", h.Pairing.AddSellerBuyerMapping)
	seller.GET("/getBuyers", h.Pairing.GetBuyers)
	seller.GET("/getBuyerBySeller", h.Pairing.GetBuyerBySeller)

	// Buyer-only endpoints: milk entry lifecycle and billing.
	buyer := e.Group("", authGate, middleware.RequireBuyer)
	buyer.POST("/addMilkInfo", h.Milk.AddMilkInfo)
	buyer.PUT("/updateMilkInfo/:id", h.Milk.UpdateMilkInfo)
	buyer.DELETE("/deleteMilkInfo/:id", h.Milk.DeleteMilkInfo)
	buyer.POST("/calculateAmount", h.Billing.CalculateAmount)
	buyer.POST("/addTransaction", h.Billing.AddTransaction)
	buyer.GET("/getSellersByBuyer", h.Pairing.GetSellersByBuyer)
}
