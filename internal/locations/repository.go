package locations

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

// System defines the interface for location storage and retrieval operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Location], error)
	Find(ctx context.Context, id uuid.UUID) (*Location, error)
	Create(ctx context.Context, cmd CreateCommand, actor uuid.UUID) (*Location, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, actor uuid.UUID) (*Location, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct {
	store      *repository.Store[Location]
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a new locations repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		store:      repository.NewStore(db, Mapping),
		logger:     logger.With("system", "location"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Location], error) {
	page.Normalize(r.pagination)

	items, total, err := r.store.List(ctx, page.Window(), page.Sort, func(b *query.Builder) {
		b.WhereSearch(page.Search, "Name", "Country")
		filters.Apply(b)
	})
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Location, error) {
	return r.store.Get(ctx, id)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand, actor uuid.UUID) (*Location, error) {
	fields := query.Fields{}.
		Set("name", cmd.Name).
		Set("description", cmd.Description).
		Set("country", cmd.Country).
		Set("lat", cmd.Lat).
		Set("lon", cmd.Lon).
		Set("created_by", actor).
		Set("updated_by", actor)

	l, err := r.store.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	r.logger.Info("location created", "id", l.ID, "name", l.Name)
	return l, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, actor uuid.UUID) (*Location, error) {
	fields := query.Fields{}
	if cmd.Name != nil {
		fields = fields.Set("name", *cmd.Name)
	}
	if cmd.Description != nil {
		fields = fields.Set("description", *cmd.Description)
	}
	if cmd.Country != nil {
		fields = fields.Set("country", *cmd.Country)
	}
	if cmd.Lat != nil {
		fields = fields.Set("lat", *cmd.Lat)
	}
	if cmd.Lon != nil {
		fields = fields.Set("lon", *cmd.Lon)
	}
	fields = fields.
		Set("updated_at", time.Now().UTC()).
		Set("updated_by", actor)

	l, err := r.store.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	r.logger.Info("location updated", "id", l.ID)
	return l, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}

	r.logger.Info("location deleted", "id", id)
	return nil
}
