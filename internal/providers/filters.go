package providers

import (
	"net/url"
	"strconv"

	"github.com/fedstack/federation-registry/pkg/query"
)

// Filters contains optional filtering criteria for provider queries.
type Filters struct {
	Name         *string
	Type         *Kind
	AuthEndpoint *string
	Status       *Status
	IsPublic     *bool

	conditions query.Conditions
}

// FiltersFromQuery extracts filter values from URL query parameters. Invalid
// type or status values are dropped rather than rejected.
func FiltersFromQuery(values url.Values) Filters {
	f := Filters{conditions: query.ConditionsFromQuery(values)}

	if v := values.Get("name"); v != "" {
		f.Name = &v
	}
	if v := values.Get("type"); v != "" {
		if k, err := ParseKind(v); err == nil {
			f.Type = &k
		}
	}
	if v := values.Get("auth_endpoint"); v != "" {
		f.AuthEndpoint = &v
	}
	if v := values.Get("status"); v != "" {
		if s, err := ParseStatus(v); err == nil {
			f.Status = &s
		}
	}
	if v := values.Get("is_public"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.IsPublic = &b
		}
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.Name).
		WhereContains("AuthEndpoint", f.AuthEndpoint)
	if f.Type != nil {
		b.WhereEquals("Type", string(*f.Type))
	}
	if f.Status != nil {
		b.WhereEquals("Status", string(*f.Status))
	}
	if f.IsPublic != nil {
		b.WhereEquals("IsPublic", *f.IsPublic)
	}
	return f.conditions.Apply(b)
}
