package projects

import (
	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/fedstack/federation-registry/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "projects", "p").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("iaas_project_id", "IaasProjectID").
	Project("is_root", "IsRoot").
	Project("provider_id", "ProviderID").
	Project("sla_id", "SlaID").
	Project("created_at", "CreatedAt").
	Project("created_by", "CreatedBy").
	Project("updated_at", "UpdatedAt").
	Project("updated_by", "UpdatedBy")

var defaultSort = query.SortField{Field: "Name"}

func scanProject(s repository.Scanner) (Project, error) {
	var p Project
	err := s.Scan(
		&p.ID, &p.Name, &p.Description, &p.IaasProjectID, &p.IsRoot,
		&p.ProviderID, &p.SlaID,
		&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
	)
	return p, err
}

// Mapping describes the projects table for the generic store.
var Mapping = repository.Mapping[Project]{
	Entity:      "project",
	Projection:  projection,
	DefaultSort: defaultSort,
	Scan:        scanProject,
}
