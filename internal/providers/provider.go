// Package providers manages the federation's resource providers: their
// registration, lifecycle status, and site admin and tester memberships.
package providers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies the infrastructure technology a provider runs.
type Kind string

// Supported provider kinds.
const (
	KindOpenStack  Kind = "openstack"
	KindKubernetes Kind = "kubernetes"
)

// ParseKind validates a raw kind value.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindOpenStack, KindKubernetes:
		return Kind(raw), nil
	default:
		return "", fmt.Errorf("invalid provider type: %q", raw)
	}
}

// Provider represents a resource provider registered with the federation.
// The site admin set is never empty after creation; testers claim a provider
// while it is submitted and carry it through evaluation.
type Provider struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Type          Kind        `json:"type"`
	AuthEndpoint  string      `json:"auth_endpoint"`
	IsPublic      bool        `json:"is_public"`
	SupportEmails []string    `json:"support_emails"`
	ImageTags     []string    `json:"image_tags"`
	NetworkTags   []string    `json:"network_tags"`
	Status        Status      `json:"status"`
	SiteAdmins    []uuid.UUID `json:"site_admins"`
	SiteTesters   []uuid.UUID `json:"site_testers"`
	CreatedAt     time.Time   `json:"created_at"`
	CreatedBy     uuid.UUID   `json:"created_by"`
	UpdatedAt     time.Time   `json:"updated_at"`
	UpdatedBy     uuid.UUID   `json:"updated_by"`
}

// CreateCommand contains the data required to register a new provider.
// Every provider starts in draft; SiteAdmins and SupportEmails must be
// non-empty.
type CreateCommand struct {
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Type          Kind        `json:"type"`
	AuthEndpoint  string      `json:"auth_endpoint"`
	IsPublic      bool        `json:"is_public"`
	SupportEmails []string    `json:"support_emails"`
	ImageTags     []string    `json:"image_tags"`
	NetworkTags   []string    `json:"network_tags"`
	SiteAdmins    []uuid.UUID `json:"site_admins"`
}

// UpdateCommand contains the optional fields of a partial provider update.
// Nil fields are left unchanged. Status changes go through ChangeStatus,
// memberships through the dedicated membership operations.
type UpdateCommand struct {
	Name          *string   `json:"name,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Type          *Kind     `json:"type,omitempty"`
	AuthEndpoint  *string   `json:"auth_endpoint,omitempty"`
	IsPublic      *bool     `json:"is_public,omitempty"`
	SupportEmails *[]string `json:"support_emails,omitempty"`
	ImageTags     *[]string `json:"image_tags,omitempty"`
	NetworkTags   *[]string `json:"network_tags,omitempty"`
}
