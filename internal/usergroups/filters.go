package usergroups

import (
	"net/url"

	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/google/uuid"
)

// Filters contains optional filtering criteria for user group queries.
type Filters struct {
	Name  *string
	IdpID *uuid.UUID

	conditions query.Conditions
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	f := Filters{conditions: query.ConditionsFromQuery(values)}

	if v := values.Get("name"); v != "" {
		f.Name = &v
	}
	if v := values.Get("idp_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			f.IdpID = &id
		}
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.Name)
	if f.IdpID != nil {
		b.WhereEquals("IdpID", *f.IdpID)
	}
	return f.conditions.Apply(b)
}
