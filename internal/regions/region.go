// Package regions manages the capacity regions a provider exposes. Region
// names are unique within their provider; the overbooking and bandwidth
// factors tune how the region's raw capacity is advertised.
package regions

import (
	"time"

	"github.com/google/uuid"
)

// Region represents an isolated slice of a provider's infrastructure,
// optionally pinned to a geographic location.
type Region struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	OverbookingCPU float64    `json:"overbooking_cpu"`
	OverbookingRAM float64    `json:"overbooking_ram"`
	BandwidthIn    float64    `json:"bandwidth_in"`
	BandwidthOut   float64    `json:"bandwidth_out"`
	ProviderID     uuid.UUID  `json:"provider_id"`
	LocationID     *uuid.UUID `json:"location_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	CreatedBy      uuid.UUID  `json:"created_by"`
	UpdatedAt      time.Time  `json:"updated_at"`
	UpdatedBy      uuid.UUID  `json:"updated_by"`
}

// Default capacity factors applied when a create request omits them.
const (
	DefaultOverbooking = 1.0
	DefaultBandwidth   = 10.0
)

// CreateCommand contains the data required to create a new region.
// Omitted capacity factors fall back to the defaults.
type CreateCommand struct {
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	OverbookingCPU *float64   `json:"overbooking_cpu,omitempty"`
	OverbookingRAM *float64   `json:"overbooking_ram,omitempty"`
	BandwidthIn    *float64   `json:"bandwidth_in,omitempty"`
	BandwidthOut   *float64   `json:"bandwidth_out,omitempty"`
	ProviderID     uuid.UUID  `json:"provider_id"`
	LocationID     *uuid.UUID `json:"location_id,omitempty"`
}

// UpdateCommand contains the optional fields of a partial region update.
// Nil fields are left unchanged.
type UpdateCommand struct {
	Name           *string    `json:"name,omitempty"`
	Description    *string    `json:"description,omitempty"`
	OverbookingCPU *float64   `json:"overbooking_cpu,omitempty"`
	OverbookingRAM *float64   `json:"overbooking_ram,omitempty"`
	BandwidthIn    *float64   `json:"bandwidth_in,omitempty"`
	BandwidthOut   *float64   `json:"bandwidth_out,omitempty"`
	LocationID     *uuid.UUID `json:"location_id,omitempty"`
}
