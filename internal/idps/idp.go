// Package idps manages the identity providers that user groups belong to.
package idps

import (
	"time"

	"github.com/google/uuid"
)

// IdentityProvider represents an external identity provider trusted by the
// federation, identified by its unique endpoint.
type IdentityProvider struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Endpoint    string    `json:"endpoint"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   uuid.UUID `json:"created_by"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   uuid.UUID `json:"updated_by"`
}

// CreateCommand contains the data required to register a new identity provider.
type CreateCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Endpoint    string `json:"endpoint"`
}

// UpdateCommand contains the optional fields of a partial identity provider
// update. Nil fields are left unchanged.
type UpdateCommand struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Endpoint    *string `json:"endpoint,omitempty"`
}
