package usergroups

import (
	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/fedstack/federation-registry/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "user_groups", "ug").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("idp_id", "IdpID").
	Project("created_at", "CreatedAt").
	Project("created_by", "CreatedBy").
	Project("updated_at", "UpdatedAt").
	Project("updated_by", "UpdatedBy")

var defaultSort = query.SortField{Field: "Name"}

func scanUserGroup(s repository.Scanner) (UserGroup, error) {
	var g UserGroup
	err := s.Scan(
		&g.ID, &g.Name, &g.Description, &g.IdpID,
		&g.CreatedAt, &g.CreatedBy, &g.UpdatedAt, &g.UpdatedBy,
	)
	return g, err
}

// Mapping describes the user_groups table for the generic store.
var Mapping = repository.Mapping[UserGroup]{
	Entity:      "user group",
	Projection:  projection,
	DefaultSort: defaultSort,
	Scan:        scanUserGroup,
}
