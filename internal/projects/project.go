// Package projects manages the tenant projects mapped onto provider
// infrastructure. Project names are unique within their provider; the
// iaas_project_id links the record to the provider's own tenancy.
package projects

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a tenancy on a provider, optionally bound to the SLA
// that grants it.
type Project struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	IaasProjectID string     `json:"iaas_project_id"`
	IsRoot        bool       `json:"is_root"`
	ProviderID    uuid.UUID  `json:"provider_id"`
	SlaID         *uuid.UUID `json:"sla_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	CreatedBy     uuid.UUID  `json:"created_by"`
	UpdatedAt     time.Time  `json:"updated_at"`
	UpdatedBy     uuid.UUID  `json:"updated_by"`
}

// CreateCommand contains the data required to create a new project.
type CreateCommand struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	IaasProjectID string     `json:"iaas_project_id"`
	IsRoot        bool       `json:"is_root"`
	ProviderID    uuid.UUID  `json:"provider_id"`
	SlaID         *uuid.UUID `json:"sla_id,omitempty"`
}

// UpdateCommand contains the optional fields of a partial project update.
// Nil fields are left unchanged.
type UpdateCommand struct {
	Name          *string    `json:"name,omitempty"`
	Description   *string    `json:"description,omitempty"`
	IaasProjectID *string    `json:"iaas_project_id,omitempty"`
	IsRoot        *bool      `json:"is_root,omitempty"`
	SlaID         *uuid.UUID `json:"sla_id,omitempty"`
}
