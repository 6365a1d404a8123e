package providers

import (
	"encoding/json"
	"fmt"

	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/fedstack/federation-registry/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "providers", "p").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("type", "Type").
	Project("auth_endpoint", "AuthEndpoint").
	Project("is_public", "IsPublic").
	Project("support_emails", "SupportEmails").
	Project("image_tags", "ImageTags").
	Project("network_tags", "NetworkTags").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("created_by", "CreatedBy").
	Project("updated_at", "UpdatedAt").
	Project("updated_by", "UpdatedBy")

var defaultSort = query.SortField{Field: "Name"}

func scanProvider(s repository.Scanner) (Provider, error) {
	var (
		p           Provider
		emails      []byte
		imageTags   []byte
		networkTags []byte
	)

	err := s.Scan(
		&p.ID, &p.Name, &p.Description, &p.Type, &p.AuthEndpoint, &p.IsPublic,
		&emails, &imageTags, &networkTags, &p.Status,
		&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
	)
	if err != nil {
		return p, err
	}

	if err := json.Unmarshal(emails, &p.SupportEmails); err != nil {
		return p, fmt.Errorf("decode support_emails: %w", err)
	}
	if err := json.Unmarshal(imageTags, &p.ImageTags); err != nil {
		return p, fmt.Errorf("decode image_tags: %w", err)
	}
	if err := json.Unmarshal(networkTags, &p.NetworkTags); err != nil {
		return p, fmt.Errorf("decode network_tags: %w", err)
	}
	return p, nil
}

// jsonList encodes a tag or email list for a jsonb column. Nil encodes as an
// empty list so the column never holds SQL null.
func jsonList(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

// Mapping describes the providers table for the generic store. Site admin
// and tester memberships live in join tables and are loaded separately.
var Mapping = repository.Mapping[Provider]{
	Entity:      "provider",
	Projection:  projection,
	DefaultSort: defaultSort,
	Scan:        scanProvider,
}
