package model

// Account represents a registered user as stored in the `accounts`
// table. Role is fixed at registration time and drives every
// authorization decision; it is either "buyer" or "seller". The
// password is only ever stored as a bcrypt hash. Repository code
// works with this struct directly; handlers define separate response
// types with the JSON tags they need.
//
// Fields:
//  ID           – primary key identifier of the account.
//  Name         – display name shown to the counterparty.
//  Role         – "buyer" or "seller" (accounts.role).
//  Username     – unique login name (accounts.username).
//  PasswordHash – bcrypt hash of the password (accounts.password_hash).
type Account struct {
	ID           uint64 // accounts.id
	Name         string // accounts.name
	Role         string // accounts.role
	Username     string // accounts.username
	PasswordHash string // accounts.password_hash
}

// Role values accepted at registration.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// Party is a minimal {id, name} projection used by the pairing and
// account listing endpoints.
type Party struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// UserInfo is the projection returned by the user-info lookup. The
// `userid` key is part of the public API surface and is kept as-is.
type UserInfo struct {
	UserID uint64 `json:"userid"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}
