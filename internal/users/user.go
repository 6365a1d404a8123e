// Package users manages the registry's user records. Users are referenced by
// every audited entity and by provider site admin and tester memberships.
package users

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated identity known to the registry,
// identified by the subject/issuer pair of its identity token.
type User struct {
	ID        uuid.UUID `json:"id"`
	Sub       string    `json:"sub"`
	Issuer    string    `json:"issuer"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand contains the data required to create a new user.
type CreateCommand struct {
	Sub    string `json:"sub"`
	Issuer string `json:"issuer"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// UpdateCommand contains the optional fields of a partial user update.
// Nil fields are left unchanged.
type UpdateCommand struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
