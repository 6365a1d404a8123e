// Package usergroups manages the user groups published by identity providers.
// A group's name is unique within its identity provider.
package usergroups

import (
	"time"

	"github.com/google/uuid"
)

// UserGroup represents a group of users sharing an SLA, scoped to an
// identity provider.
type UserGroup struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IdpID       uuid.UUID `json:"idp_id"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   uuid.UUID `json:"created_by"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   uuid.UUID `json:"updated_by"`
}

// CreateCommand contains the data required to create a new user group.
type CreateCommand struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IdpID       uuid.UUID `json:"idp_id"`
}

// UpdateCommand contains the optional fields of a partial user group update.
// Nil fields are left unchanged.
type UpdateCommand struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
