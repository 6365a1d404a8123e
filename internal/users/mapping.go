package users

import (
	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/fedstack/federation-registry/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "users", "u").
	Project("id", "ID").
	Project("sub", "Sub").
	Project("issuer", "Issuer").
	Project("name", "Name").
	Project("email", "Email").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Name"}

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(&u.ID, &u.Sub, &u.Issuer, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Mapping describes the users table for the generic store.
var Mapping = repository.Mapping[User]{
	Entity:      "user",
	Projection:  projection,
	DefaultSort: defaultSort,
	Scan:        scanUser,
}
