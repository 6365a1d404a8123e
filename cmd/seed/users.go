package main

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Fixed ids so dependent seeders can reference seeded users.
var (
	seedAdminID  = uuid.MustParse("6f1bafb4-94b4-4a4e-b7da-9e41a0a640f6")
	seedTesterID = uuid.MustParse("d3f1a5e8-20bb-4a52-9c04-6ad27e7f0f3b")
)

func init() {
	registerSeeder(&UserSeeder{})
}

// UserSeeder populates a baseline set of users.
type UserSeeder struct{}

func (s *UserSeeder) Name() string { return "users" }

func (s *UserSeeder) Description() string {
	return "Creates a baseline site admin and site tester"
}

func (s *UserSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	users := []struct {
		id     uuid.UUID
		sub    string
		issuer string
		name   string
		email  string
	}{
		{seedAdminID, "admin-0001", "https://iam.example.org", "Ada Admin", "ada@example.org"},
		{seedTesterID, "tester-0001", "https://iam.example.org", "Tess Tester", "tess@example.org"},
	}

	for _, u := range users {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, sub, issuer, name, email)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (sub, issuer) DO NOTHING`,
			u.id, u.sub, u.issuer, u.name, u.email,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
