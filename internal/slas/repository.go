package slas

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

// System defines the interface for SLA storage and retrieval operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[SLA], error)
	Find(ctx context.Context, id uuid.UUID) (*SLA, error)
	Create(ctx context.Context, cmd CreateCommand, actor uuid.UUID) (*SLA, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, actor uuid.UUID) (*SLA, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct {
	store      *repository.Store[SLA]
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a new SLA repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		store:      repository.NewStore(db, Mapping),
		logger:     logger.With("system", "sla"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[SLA], error) {
	page.Normalize(r.pagination)

	items, total, err := r.store.List(ctx, page.Window(), page.Sort, func(b *query.Builder) {
		b.WhereSearch(page.Search, "Name", "URL")
		filters.Apply(b)
	})
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*SLA, error) {
	return r.store.Get(ctx, id)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand, actor uuid.UUID) (*SLA, error) {
	fields := query.Fields{}.
		Set("name", cmd.Name).
		Set("description", cmd.Description).
		Set("url", cmd.URL).
		Set("start_date", cmd.StartDate).
		Set("end_date", cmd.EndDate).
		Set("user_group_id", cmd.UserGroupID).
		Set("created_by", actor).
		Set("updated_by", actor)

	a, err := r.store.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	r.logger.Info("sla created", "id", a.ID, "url", a.URL)
	return a, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, actor uuid.UUID) (*SLA, error) {
	fields := query.Fields{}
	if cmd.Name != nil {
		fields = fields.Set("name", *cmd.Name)
	}
	if cmd.Description != nil {
		fields = fields.Set("description", *cmd.Description)
	}
	if cmd.URL != nil {
		fields = fields.Set("url", *cmd.URL)
	}
	if cmd.StartDate != nil {
		fields = fields.Set("start_date", *cmd.StartDate)
	}
	if cmd.EndDate != nil {
		fields = fields.Set("end_date", *cmd.EndDate)
	}
	fields = fields.
		Set("updated_at", time.Now().UTC()).
		Set("updated_by", actor)

	a, err := r.store.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	r.logger.Info("sla updated", "id", a.ID)
	return a, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}

	r.logger.Info("sla deleted", "id", id)
	return nil
}
