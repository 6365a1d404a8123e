package idps

import (
	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/fedstack/federation-registry/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "identity_providers", "idp").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("endpoint", "Endpoint").
	Project("created_at", "CreatedAt").
	Project("created_by", "CreatedBy").
	Project("updated_at", "UpdatedAt").
	Project("updated_by", "UpdatedBy")

var defaultSort = query.SortField{Field: "Name"}

func scanIdentityProvider(s repository.Scanner) (IdentityProvider, error) {
	var p IdentityProvider
	err := s.Scan(
		&p.ID, &p.Name, &p.Description, &p.Endpoint,
		&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
	)
	return p, err
}

// Mapping describes the identity_providers table for the generic store.
var Mapping = repository.Mapping[IdentityProvider]{
	Entity:      "identity provider",
	Projection:  projection,
	DefaultSort: defaultSort,
	Scan:        scanIdentityProvider,
}
