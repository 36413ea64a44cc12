// Package accounts holds the account domain: the record model, the store
// interface with its PostgreSQL implementation, and the Service exposing the
// account operations shared by the HTTP API and the desktop console.
package accounts

import "time"

// Role is the flat access level of an account. There are exactly two.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account is a stored user record. PasswordHash never leaves the accounts /
// auth boundary; every outward shape goes through Public.
type Account struct {
	ID           string
	Name         string
	Login        string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}

// PublicAccount is the outward representation of an account: everything
// except the credential digest.
type PublicAccount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
	Role  Role   `json:"role"`
}

// Public strips the account down to its exposable fields.
func (a *Account) Public() PublicAccount {
	return PublicAccount{ID: a.ID, Name: a.Name, Login: a.Login, Role: a.Role}
}
