// Package accounts is the thin auth API: candidate and employer accounts
// with password signup and login, bearer-token account settings, Google
// sign-in for candidates and claiming anonymous guest state on login.
package accounts

import "time"

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
)

// Roles lists the account collections in route order.
var Roles = []Role{RoleCandidate, RoleEmployer}

// Account is one record in a role's collection. Email is unique per role.
type Account struct {
	ID           string         `json:"id"`
	Role         Role           `json:"role"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Profile      map[string]any `json:"profile,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// User is the public view returned on login.
type User struct {
	ID      string         `json:"id"`
	Email   string         `json:"email"`
	Role    Role           `json:"role"`
	Profile map[string]any `json:"profile,omitempty"`
}

func (a Account) User() User {
	return User{ID: a.ID, Email: a.Email, Role: a.Role, Profile: a.Profile}
}
