package idps

import (
	"net/url"

	"github.com/fedstack/federation-registry/pkg/query"
)

// Filters contains optional filtering criteria for identity provider queries.
type Filters struct {
	Name     *string
	Endpoint *string

	conditions query.Conditions
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	f := Filters{conditions: query.ConditionsFromQuery(values)}

	if v := values.Get("name"); v != "" {
		f.Name = &v
	}
	if v := values.Get("endpoint"); v != "" {
		f.Endpoint = &v
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.Name).
		WhereContains("Endpoint", f.Endpoint)
	return f.conditions.Apply(b)
}
