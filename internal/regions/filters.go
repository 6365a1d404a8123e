package regions

import (
	"net/url"

	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/google/uuid"
)

// Filters contains optional filtering criteria for region queries. Capacity
// factors filter as overbooking_cpu/overbooking_ram/bandwidth_in/bandwidth_out
// with optional _gte/_lte suffixes.
type Filters struct {
	Name       *string
	ProviderID *uuid.UUID
	LocationID *uuid.UUID

	conditions query.Conditions
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	f := Filters{conditions: query.ConditionsFromQuery(
		values,
		"overbooking_cpu", "overbooking_ram", "bandwidth_in", "bandwidth_out",
	)}

	if v := values.Get("name"); v != "" {
		f.Name = &v
	}
	if v := values.Get("provider_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			f.ProviderID = &id
		}
	}
	if v := values.Get("location_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			f.LocationID = &id
		}
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.Name)
	if f.ProviderID != nil {
		b.WhereEquals("ProviderID", *f.ProviderID)
	}
	if f.LocationID != nil {
		b.WhereEquals("LocationID", *f.LocationID)
	}
	return f.conditions.Apply(b)
}
