package handler

import (
	"database/sql" // sentinel errors such as sql.ErrNoRows
	"net/http"     // HTTP status codes and primitives
	"strings"      // string trimming for credentials

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/vividh/dairy-ledger/internal/config"     // app configuration
	"github.com/vividh/dairy-ledger/internal/middleware" // context keys set by the auth gate
	"github.com/vividh/dairy-ledger/internal/repository" // sentinel errors from the DB layer
	"github.com/vividh/dairy-ledger/internal/utils"      // token issuing
)

// AuthHandler bundles dependencies for registration, login, logout and
// account lookups.
type AuthHandler struct {
	Cfg       config.Config
	Accounts  AccountStore
	Blacklist BlacklistStore
}

func NewAuthHandler(cfg config.Config, a AccountStore, b BlacklistStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: a, Blacklist: b}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Role     string `json:"role"` // buyer | seller
	Username string `json:"username"`
	Password string `json:"password"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accountPart struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// Register: create an account with a bcrypt-hashed password.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	if req.Name == "" || req.Role == "" || req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required: name, role, username, password"})
	}
	if req.Role != "buyer" && req.Role != "seller" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": `Role must be either "buyer" or "seller"`})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Accounts.Create(ctx, req.Name, req.Role, req.Username, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrUsernameExists {
			return c.JSON(http.StatusConflict, echo.Map{"message": "Username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error registering user"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"data":    accountPart{ID: id, Name: req.Name, Role: req.Role, Username: req.Username},
	})
}

// Login: verify credentials and issue a one-hour token. Unknown user
// and wrong password are deliberately indistinguishable.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Username and password are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Accounts.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error logging in"})
	}
	if !utils.VerifyPassword(a.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, a.ID, a.Username, a.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error logging in"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Login successful", "token": access.Token})
}

// Logout: blacklist the presented token so the session dies before its
// natural expiry.
func (h *AuthHandler) Logout(c echo.Context) error {
	return h.blacklistToken(c, http.StatusOK, "Logout successful. Token added to blacklist.")
}

// AddToBlacklist: same write as Logout, kept as a separate endpoint
// with a 201 so clients can revoke a token explicitly.
func (h *AuthHandler) AddToBlacklist(c echo.Context) error {
	return h.blacklistToken(c, http.StatusCreated, "Token added to blacklist successfully")
}

func (h *AuthHandler) blacklistToken(c echo.Context, status int, message string) error {
	// The auth middleware already verified this token and stored the
	// raw string; insert it verbatim so the blacklist lookup matches.
	token, _ := c.Get(middleware.CtxToken).(string)

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Blacklist.Add(ctx, token)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error adding token to blacklist"})
	}
	return c.JSON(status, echo.Map{
		"message": message,
		"data":    echo.Map{"id": id, "token": token},
	})
}

// GetUserInfo: public projection of an account, looked up by username.
func (h *AuthHandler) GetUserInfo(c echo.Context) error {
	username := c.QueryParam("username")

	ctx, cancel := reqCtx(c)
	defer cancel()

	info, err := h.Accounts.InfoByUsername(ctx, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching user info"})
	}
	return c.JSON(http.StatusOK, info)
}
