package users

import (
	"net/url"

	"github.com/fedstack/federation-registry/pkg/query"
)

// Filters contains optional filtering criteria for user queries.
type Filters struct {
	Name   *string
	Email  *string
	Sub    *string
	Issuer *string

	conditions query.Conditions
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	f := Filters{conditions: query.ConditionsFromQuery(values)}

	if v := values.Get("name"); v != "" {
		f.Name = &v
	}
	if v := values.Get("email"); v != "" {
		f.Email = &v
	}
	if v := values.Get("sub"); v != "" {
		f.Sub = &v
	}
	if v := values.Get("issuer"); v != "" {
		f.Issuer = &v
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.Name).
		WhereContains("Email", f.Email).
		WhereContains("Sub", f.Sub).
		WhereContains("Issuer", f.Issuer)
	return f.conditions.Apply(b)
}
