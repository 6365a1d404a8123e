// Package slas manages service level agreements between user groups and
// providers. An SLA's document URL is unique across the federation.
package slas

import (
	"time"

	"github.com/google/uuid"
)

// SLA represents a service level agreement with a validity window,
// owned by a user group.
type SLA struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	UserGroupID uuid.UUID `json:"user_group_id"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   uuid.UUID `json:"created_by"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   uuid.UUID `json:"updated_by"`
}

// CreateCommand contains the data required to create a new SLA.
type CreateCommand struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	UserGroupID uuid.UUID `json:"user_group_id"`
}

// UpdateCommand contains the optional fields of a partial SLA update.
// Nil fields are left unchanged.
type UpdateCommand struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	URL         *string    `json:"url,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}
