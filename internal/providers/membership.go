package providers

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/fedstack/federation-registry/pkg/repository"
	"github.com/google/uuid"
)

const (
	siteAdminsTable  = "provider_site_admins"
	siteTestersTable = "provider_site_testers"
)

// AddSiteAdmins links the given users as site admins. Duplicate links are
// ignored; every referenced user must exist.
func (r *repo) AddSiteAdmins(ctx context.Context, id uuid.UUID, userIDs []uuid.UUID, actor uuid.UUID) (*Provider, error) {
	p, err := repository.WithTx(ctx, r.store.DB(), func(tx *sql.Tx) (Provider, error) {
		var zero Provider

		if _, err := r.store.GetTxForUpdate(ctx, tx, id); err != nil {
			return zero, err
		}
		if err := verifyUsersTx(ctx, tx, userIDs); err != nil {
			return zero, err
		}
		if err := insertMembers(ctx, tx, siteAdminsTable, id, userIDs); err != nil {
			return zero, err
		}
		return r.touchTx(ctx, tx, id, actor)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("site admins added", "id", p.ID, "count", len(userIDs))
	return &p, nil
}

// RemoveSiteAdmin unlinks a site admin. The admin set must never become
// empty; removing the last admin fails in any status. The provider row lock
// serializes concurrent removals so the count only ever sees committed
// membership.
func (r *repo) RemoveSiteAdmin(ctx context.Context, id uuid.UUID, userID uuid.UUID, actor uuid.UUID) (*Provider, error) {
	p, err := repository.WithTx(ctx, r.store.DB(), func(tx *sql.Tx) (Provider, error) {
		var zero Provider

		if _, err := r.store.GetTxForUpdate(ctx, tx, id); err != nil {
			return zero, err
		}

		removed, err := deleteMember(ctx, tx, siteAdminsTable, id, userID)
		if err != nil {
			return zero, err
		}
		if !removed {
			return zero, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}

		remaining, err := countMembers(ctx, tx, siteAdminsTable, id)
		if err != nil {
			return zero, err
		}
		if remaining == 0 {
			return zero, ErrLastSiteAdmin
		}

		return r.touchTx(ctx, tx, id, actor)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("site admin removed", "id", p.ID, "user_id", userID)
	return &p, nil
}

// AddSiteTesters links the given users as site testers. Testers claim a
// provider for evaluation, so assignment is only legal while it is submitted.
func (r *repo) AddSiteTesters(ctx context.Context, id uuid.UUID, userIDs []uuid.UUID, actor uuid.UUID) (*Provider, error) {
	p, err := repository.WithTx(ctx, r.store.DB(), func(tx *sql.Tx) (Provider, error) {
		var zero Provider

		current, err := r.store.GetTxForUpdate(ctx, tx, id)
		if err != nil {
			return zero, err
		}
		if current.Status != StatusSubmitted {
			return zero, ErrTesterAssignment
		}
		if err := verifyUsersTx(ctx, tx, userIDs); err != nil {
			return zero, err
		}
		if err := insertMembers(ctx, tx, siteTestersTable, id, userIDs); err != nil {
			return zero, err
		}
		return r.touchTx(ctx, tx, id, actor)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("site testers added", "id", p.ID, "count", len(userIDs))
	return &p, nil
}

// RemoveSiteTester unlinks a site tester. While the provider is in a state
// that requires testers, the last tester cannot be removed; the provider row
// lock serializes concurrent removals.
func (r *repo) RemoveSiteTester(ctx context.Context, id uuid.UUID, userID uuid.UUID, actor uuid.UUID) (*Provider, error) {
	p, err := repository.WithTx(ctx, r.store.DB(), func(tx *sql.Tx) (Provider, error) {
		var zero Provider

		current, err := r.store.GetTxForUpdate(ctx, tx, id)
		if err != nil {
			return zero, err
		}

		removed, err := deleteMember(ctx, tx, siteTestersTable, id, userID)
		if err != nil {
			return zero, err
		}
		if !removed {
			return zero, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}

		remaining, err := countMembers(ctx, tx, siteTestersTable, id)
		if err != nil {
			return zero, err
		}
		if remaining == 0 && current.Status.RequiresTester() {
			return zero, ErrLastSiteTester
		}

		return r.touchTx(ctx, tx, id, actor)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("site tester removed", "id", p.ID, "user_id", userID)
	return &p, nil
}

// touchTx refreshes the audit fields after a membership change and returns
// the provider with memberships loaded.
func (r *repo) touchTx(ctx context.Context, tx *sql.Tx, id uuid.UUID, actor uuid.UUID) (Provider, error) {
	fields := query.Fields{}.
		Set("updated_at", time.Now().UTC()).
		Set("updated_by", actor)

	updated, err := r.store.UpdateTx(ctx, tx, id, fields)
	if err != nil {
		return Provider{}, err
	}
	if err := loadMembers(ctx, tx, &updated); err != nil {
		return Provider{}, err
	}
	return updated, nil
}

func loadMembers(ctx context.Context, q repository.Querier, p *Provider) error {
	admins, err := memberIDs(ctx, q, siteAdminsTable, p.ID)
	if err != nil {
		return err
	}
	testers, err := memberIDs(ctx, q, siteTestersTable, p.ID)
	if err != nil {
		return err
	}

	p.SiteAdmins = admins
	p.SiteTesters = testers
	return nil
}

func memberIDs(ctx context.Context, q repository.Querier, table string, providerID uuid.UUID) ([]uuid.UUID, error) {
	stmt := fmt.Sprintf("SELECT user_id FROM %s WHERE provider_id = $1 ORDER BY user_id", table)

	rows, err := q.QueryContext(ctx, stmt, providerID)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertMembers(ctx context.Context, tx *sql.Tx, table string, providerID uuid.UUID, userIDs []uuid.UUID) error {
	stmt := fmt.Sprintf(
		"INSERT INTO %s (provider_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		table,
	)

	for _, userID := range userIDs {
		if _, err := tx.ExecContext(ctx, stmt, providerID, userID); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	return nil
}

func deleteMember(ctx context.Context, tx *sql.Tx, table string, providerID, userID uuid.UUID) (bool, error) {
	stmt := fmt.Sprintf("DELETE FROM %s WHERE provider_id = $1 AND user_id = $2", table)

	result, err := tx.ExecContext(ctx, stmt, providerID, userID)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", table, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func countMembers(ctx context.Context, q repository.Querier, table string, providerID uuid.UUID) (int, error) {
	stmt := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE provider_id = $1", table)

	var n int
	if err := q.QueryRowContext(ctx, stmt, providerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func verifyUsersTx(ctx context.Context, tx *sql.Tx, userIDs []uuid.UUID) error {
	for _, id := range userIDs {
		var exists bool
		if err := tx.QueryRowContext(
			ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)", id,
		).Scan(&exists); err != nil {
			return fmt.Errorf("verify user %s: %w", id, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrUserNotFound, id)
		}
	}
	return nil
}
