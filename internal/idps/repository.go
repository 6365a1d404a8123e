package idps

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/fedstack/federation-registry/pkg/pagination"
	"github.com/fedstack/federation-registry/pkg/query"
	"github.com/fedstack/federation-registry/pkg/repository"
	"github.com/google/uuid"
)

// System defines the interface for identity provider storage and retrieval operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[IdentityProvider], error)
	Find(ctx context.Context, id uuid.UUID) (*IdentityProvider, error)
	Create(ctx context.Context, cmd CreateCommand, actor uuid.UUID) (*IdentityProvider, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, actor uuid.UUID) (*IdentityProvider, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct {
	store      *repository.Store[IdentityProvider]
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a new identity providers repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		store:      repository.NewStore(db, Mapping),
		logger:     logger.With("system", "idp"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[IdentityProvider], error) {
	page.Normalize(r.pagination)

	items, total, err := r.store.List(ctx, page.Window(), page.Sort, func(b *query.Builder) {
		b.WhereSearch(page.Search, "Name", "Endpoint")
		filters.Apply(b)
	})
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*IdentityProvider, error) {
	return r.store.Get(ctx, id)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand, actor uuid.UUID) (*IdentityProvider, error) {
	fields := query.Fields{}.
		Set("name", cmd.Name).
		Set("description", cmd.Description).
		Set("endpoint", cmd.Endpoint).
		Set("created_by", actor).
		Set("updated_by", actor)

	p, err := r.store.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	r.logger.Info("identity provider created", "id", p.ID, "endpoint", p.Endpoint)
	return p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, actor uuid.UUID) (*IdentityProvider, error) {
	fields := query.Fields{}
	if cmd.Name != nil {
		fields = fields.Set("name", *cmd.Name)
	}
	if cmd.Description != nil {
		fields = fields.Set("description", *cmd.Description)
	}
	if cmd.Endpoint != nil {
		fields = fields.Set("endpoint", *cmd.Endpoint)
	}
	fields = fields.
		Set("updated_at", time.Now().UTC()).
		Set("updated_by", actor)

	p, err := r.store.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	r.logger.Info("identity provider updated", "id", p.ID)
	return p, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}

	r.logger.Info("identity provider deleted", "id", id)
	return nil
}
