package main

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

var seedProviderID = uuid.MustParse("0a6fd1a3-55c4-4f0e-9d8e-2b5f6a7c8d90")

func init() {
	registerSeeder(&ProviderSeeder{})
}

// ProviderSeeder populates a sample provider owned by the seeded admin.
type ProviderSeeder struct{}

func (s *ProviderSeeder) Name() string { return "providers" }

func (s *ProviderSeeder) Description() string {
	return "Creates a sample draft provider administered by the seeded admin"
}

func (s *ProviderSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO providers (
			id, name, description, type, auth_endpoint, is_public,
			support_emails, status, created_by, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (name) DO NOTHING`,
		seedProviderID,
		"example-cloud",
		"Sample OpenStack provider",
		"openstack",
		"https://keystone.example.org:5000/v3",
		true,
		[]byte(`["support@example.org"]`),
		"draft",
		seedAdminID,
		seedAdminID,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO provider_site_admins (provider_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		seedProviderID, seedAdminID,
	)
	return err
}
