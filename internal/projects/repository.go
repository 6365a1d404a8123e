package projects

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

// System defines the interface for project storage and retrieval operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Project], error)
	Find(ctx context.Context, id uuid.UUID) (*Project, error)
	Create(ctx context.Context, cmd CreateCommand, actor uuid.UUID) (*Project, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, actor uuid.UUID) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct {
	store      *repository.Store[Project]
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a new projects repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		store:      repository.NewStore(db, Mapping),
		logger:     logger.With("system", "project"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Project], error) {
	page.Normalize(r.pagination)

	items, total, err := r.store.List(ctx, page.Window(), page.Sort, func(b *query.Builder) {
		b.WhereSearch(page.Search, "Name", "IaasProjectID")
		filters.Apply(b)
	})
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Project, error) {
	return r.store.Get(ctx, id)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand, actor uuid.UUID) (*Project, error) {
	fields := query.Fields{}.
		Set("name", cmd.Name).
		Set("description", cmd.Description).
		Set("iaas_project_id", cmd.IaasProjectID).
		Set("is_root", cmd.IsRoot).
		Set("provider_id", cmd.ProviderID).
		Set("sla_id", cmd.SlaID).
		Set("created_by", actor).
		Set("updated_by", actor)

	p, err := r.store.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	r.logger.Info("project created", "id", p.ID, "name", p.Name, "provider_id", p.ProviderID)
	return p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, actor uuid.UUID) (*Project, error) {
	fields := query.Fields{}
	if cmd.Name != nil {
		fields = fields.Set("name", *cmd.Name)
	}
	if cmd.Description != nil {
		fields = fields.Set("description", *cmd.Description)
	}
	if cmd.IaasProjectID != nil {
		fields = fields.Set("iaas_project_id", *cmd.IaasProjectID)
	}
	if cmd.IsRoot != nil {
		fields = fields.Set("is_root", *cmd.IsRoot)
	}
	if cmd.SlaID != nil {
		fields = fields.Set("sla_id", *cmd.SlaID)
	}
	fields = fields.
		Set("updated_at", time.Now().UTC()).
		Set("updated_by", actor)

	p, err := r.store.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	r.logger.Info("project updated", "id", p.ID)
	return p, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}

	r.logger.Info("project deleted", "id", id)
	return nil
}
