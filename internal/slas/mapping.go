package slas

import (
	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/fedstack/federation-registry/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "slas", "s").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("url", "URL").
	Project("start_date", "StartDate").
	Project("end_date", "EndDate").
	Project("user_group_id", "UserGroupID").
	Project("created_at", "CreatedAt").
	Project("created_by", "CreatedBy").
	Project("updated_at", "UpdatedAt").
	Project("updated_by", "UpdatedBy")

var defaultSort = query.SortField{Field: "Name"}

func scanSLA(s repository.Scanner) (SLA, error) {
	var a SLA
	err := s.Scan(
		&a.ID, &a.Name, &a.Description, &a.URL, &a.StartDate, &a.EndDate,
		&a.UserGroupID, &a.CreatedAt, &a.CreatedBy, &a.UpdatedAt, &a.UpdatedBy,
	)
	return a, err
}

// Mapping describes the slas table for the generic store.
var Mapping = repository.Mapping[SLA]{
	Entity:      "sla",
	Projection:  projection,
	DefaultSort: defaultSort,
	Scan:        scanSLA,
}
