package slas

import (
	"net/url"

	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/google/uuid"
)

// Filters contains optional filtering criteria for SLA queries. Validity
// window bounds arrive as start_before/start_after/end_before/end_after.
type Filters struct {
	Name        *string
	UserGroupID *uuid.UUID

	conditions query.Conditions
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	f := Filters{conditions: query.ConditionsFromQuery(values)}

	if v := values.Get("name"); v != "" {
		f.Name = &v
	}
	if v := values.Get("user_group_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			f.UserGroupID = &id
		}
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.Name)
	if f.UserGroupID != nil {
		b.WhereEquals("UserGroupID", *f.UserGroupID)
	}
	return f.conditions.Apply(b)
}
