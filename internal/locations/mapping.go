package locations

import (
	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/fedstack/federation-registry/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "locations", "l").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("country", "Country").
	Project("lat", "Lat").
	Project("lon", "Lon").
	Project("created_at", "CreatedAt").
	Project("created_by", "CreatedBy").
	Project("updated_at", "UpdatedAt").
	Project("updated_by", "UpdatedBy")

var defaultSort = query.SortField{Field: "Name"}

func scanLocation(s repository.Scanner) (Location, error) {
	var l Location
	err := s.Scan(
		&l.ID, &l.Name, &l.Description, &l.Country, &l.Lat, &l.Lon,
		&l.CreatedAt, &l.CreatedBy, &l.UpdatedAt, &l.UpdatedBy,
	)
	return l, err
}

// Mapping describes the locations table for the generic store.
var Mapping = repository.Mapping[Location]{
	Entity:      "location",
	Projection:  projection,
	DefaultSort: defaultSort,
	Scan:        scanLocation,
}
