// Package locations manages the physical sites that provider regions
// reference. Coordinates are optional; a location without them is still valid.
package locations

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a geographic site hosting provider infrastructure.
type Location struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Country     string    `json:"country"`
	Lat         *float64  `json:"lat,omitempty"`
	Lon         *float64  `json:"lon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   uuid.UUID `json:"created_by"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   uuid.UUID `json:"updated_by"`
}

// CreateCommand contains the data required to create a new location.
type CreateCommand struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Country     string   `json:"country"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
}

// UpdateCommand contains the optional fields of a partial location update.
// Nil fields are left unchanged.
type UpdateCommand struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
}
