package regions

import (
	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/fedstack/federation-registry/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "regions", "r").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("overbooking_cpu", "OverbookingCPU").
	Project("overbooking_ram", "OverbookingRAM").
	Project("bandwidth_in", "BandwidthIn").
	Project("bandwidth_out", "BandwidthOut").
	Project("provider_id", "ProviderID").
	Project("location_id", "LocationID").
	Project("created_at", "CreatedAt").
	Project("created_by", "CreatedBy").
	Project("updated_at", "UpdatedAt").
	Project("updated_by", "UpdatedBy")

var defaultSort = query.SortField{Field: "Name"}

func scanRegion(s repository.Scanner) (Region, error) {
	var r Region
	err := s.Scan(
		&r.ID, &r.Name, &r.Description,
		&r.OverbookingCPU, &r.OverbookingRAM, &r.BandwidthIn, &r.BandwidthOut,
		&r.ProviderID, &r.LocationID,
		&r.CreatedAt, &r.CreatedBy, &r.UpdatedAt, &r.UpdatedBy,
	)
	return r, err
}

// Mapping describes the regions table for the generic store.
var Mapping = repository.Mapping[Region]{
	Entity:      "region",
	Projection:  projection,
	DefaultSort: defaultSort,
	Scan:        scanRegion,
}
