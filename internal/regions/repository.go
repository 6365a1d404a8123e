package regions

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

// System defines the interface for region storage and retrieval operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Region], error)
	Find(ctx context.Context, id uuid.UUID) (*Region, error)
	Create(ctx context.Context, cmd CreateCommand, actor uuid.UUID) (*Region, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, actor uuid.UUID) (*Region, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct {
	store      *repository.Store[Region]
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a new regions repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		store:      repository.NewStore(db, Mapping),
		logger:     logger.With("system", "region"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Region], error) {
	page.Normalize(r.pagination)

	items, total, err := r.store.List(ctx, page.Window(), page.Sort, func(b *query.Builder) {
		b.WhereSearch(page.Search, "Name", "Description")
		filters.Apply(b)
	})
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Region, error) {
	return r.store.Get(ctx, id)
}

func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand, actor uuid.UUID) (*Region, error) {
	fields := query.Fields{}.
		Set("name", cmd.Name).
		Set("description", cmd.Description).
		Set("overbooking_cpu", orDefault(cmd.OverbookingCPU, DefaultOverbooking)).
		Set("overbooking_ram", orDefault(cmd.OverbookingRAM, DefaultOverbooking)).
		Set("bandwidth_in", orDefault(cmd.BandwidthIn, DefaultBandwidth)).
		Set("bandwidth_out", orDefault(cmd.BandwidthOut, DefaultBandwidth)).
		Set("provider_id", cmd.ProviderID).
		Set("location_id", cmd.LocationID).
		Set("created_by", actor).
		Set("updated_by", actor)

	reg, err := r.store.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	r.logger.Info("region created", "id", reg.ID, "name", reg.Name, "provider_id", reg.ProviderID)
	return reg, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, actor uuid.UUID) (*Region, error) {
	fields := query.Fields{}
	if cmd.Name != nil {
		fields = fields.Set("name", *cmd.Name)
	}
	if cmd.Description != nil {
		fields = fields.Set("description", *cmd.Description)
	}
	if cmd.OverbookingCPU != nil {
		fields = fields.Set("overbooking_cpu", *cmd.OverbookingCPU)
	}
	if cmd.OverbookingRAM != nil {
		fields = fields.Set("overbooking_ram", *cmd.OverbookingRAM)
	}
	if cmd.BandwidthIn != nil {
		fields = fields.Set("bandwidth_in", *cmd.BandwidthIn)
	}
	if cmd.BandwidthOut != nil {
		fields = fields.Set("bandwidth_out", *cmd.BandwidthOut)
	}
	if cmd.LocationID != nil {
		fields = fields.Set("location_id", *cmd.LocationID)
	}
	fields = fields.
		Set("updated_at", time.Now().UTC()).
		Set("updated_by", actor)

	reg, err := r.store.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	r.logger.Info("region updated", "id", reg.ID)
	return reg, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}

	r.logger.Info("region deleted", "id", id)
	return nil
}
