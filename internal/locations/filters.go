package locations

import (
	"net/url"

	"github.com/fedstack/federation-registry/pkg/query"
)

// Filters contains optional filtering criteria for location queries.
// Coordinate ranges arrive as lat/lon with optional _gte/_lte suffixes.
type Filters struct {
	Name    *string
	Country *string

	conditions query.Conditions
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	f := Filters{conditions: query.ConditionsFromQuery(values, "lat", "lon")}

	if v := values.Get("name"); v != "" {
		f.Name = &v
	}
	if v := values.Get("country"); v != "" {
		f.Country = &v
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.Name).
		WhereContains("Country", f.Country)
	return f.conditions.Apply(b)
}
