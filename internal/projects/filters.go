package projects

import (
	"net/url"
	"strconv"

	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/google/uuid"
)

// Filters contains optional filtering criteria for project queries.
type Filters struct {
	Name       *string
	ProviderID *uuid.UUID
	SlaID      *uuid.UUID
	IsRoot     *bool

	conditions query.Conditions
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	f := Filters{conditions: query.ConditionsFromQuery(values)}

	if v := values.Get("name"); v != "" {
		f.Name = &v
	}
	if v := values.Get("provider_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			f.ProviderID = &id
		}
	}
	if v := values.Get("sla_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			f.SlaID = &id
		}
	}
	if v := values.Get("is_root"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.IsRoot = &b
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
	if f.SlaID != nil {
		b.WhereEquals("SlaID", *f.SlaID)
	}
	if f.IsRoot != nil {
		b.WhereEquals("IsRoot", *f.IsRoot)
	}
	return f.conditions.Apply(b)
}
