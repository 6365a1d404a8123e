package providers

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

// System defines the interface for provider storage, lifecycle, and
// membership operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Provider], error)
	Find(ctx context.Context, id uuid.UUID) (*Provider, error)
	Create(ctx context.Context, cmd CreateCommand, actor uuid.UUID) (*Provider, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, actor uuid.UUID) (*Provider, error)

	// Delete retires a provider according to its status: providers still in
	// draft or ready are hard deleted and nil is returned; everything else is
	// force-transitioned to deprecated or removed and the updated provider is
	// returned.
	Delete(ctx context.Context, id uuid.UUID, actor uuid.UUID) (*Provider, error)

	ChangeStatus(ctx context.Context, id uuid.UUID, next Status, actor uuid.UUID) (*Provider, error)

	AddSiteAdmins(ctx context.Context, id uuid.UUID, userIDs []uuid.UUID, actor uuid.UUID) (*Provider, error)
	RemoveSiteAdmin(ctx context.Context, id uuid.UUID, userID uuid.UUID, actor uuid.UUID) (*Provider, error)
	AddSiteTesters(ctx context.Context, id uuid.UUID, userIDs []uuid.UUID, actor uuid.UUID) (*Provider, error)
	RemoveSiteTester(ctx context.Context, id uuid.UUID, userID uuid.UUID, actor uuid.UUID) (*Provider, error)
}

type repo struct {
	store      *repository.Store[Provider]
	logger     *slog.Logger
	pagination pagination.Config
	dispatcher EvaluationDispatcher
}

// New creates a new providers repository implementing the System interface.
// A nil dispatcher disables evaluation hand-off.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config, dispatcher EvaluationDispatcher) System {
	if dispatcher == nil {
		dispatcher = NopDispatcher{}
	}
	return &repo{
		store:      repository.NewStore(db, Mapping),
		logger:     logger.With("system", "provider"),
		pagination: pagination,
		dispatcher: dispatcher,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Provider], error) {
	page.Normalize(r.pagination)

	items, total, err := r.store.List(ctx, page.Window(), page.Sort, func(b *query.Builder) {
		b.WhereSearch(page.Search, "Name", "AuthEndpoint")
		filters.Apply(b)
	})
	if err != nil {
		return nil, err
	}

	for i := range items {
		if err := loadMembers(ctx, r.store.DB(), &items[i]); err != nil {
			return nil, err
		}
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Provider, error) {
	p, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := loadMembers(ctx, r.store.DB(), p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand, actor uuid.UUID) (*Provider, error) {
	if len(cmd.SiteAdmins) == 0 {
		return nil, ErrLastSiteAdmin
	}
	if len(cmd.SupportEmails) == 0 {
		return nil, ErrNoSupportEmails
	}
	if _, err := ParseKind(string(cmd.Type)); err != nil {
		return nil, err
	}

	emails, err := jsonList(cmd.SupportEmails)
	if err != nil {
		return nil, err
	}
	imageTags, err := jsonList(cmd.ImageTags)
	if err != nil {
		return nil, err
	}
	networkTags, err := jsonList(cmd.NetworkTags)
	if err != nil {
		return nil, err
	}

	fields := query.Fields{}.
		Set("name", cmd.Name).
		Set("description", cmd.Description).
		Set("type", string(cmd.Type)).
		Set("auth_endpoint", cmd.AuthEndpoint).
		Set("is_public", cmd.IsPublic).
		Set("support_emails", emails).
		Set("image_tags", imageTags).
		Set("network_tags", networkTags).
		Set("status", string(StatusDraft)).
		Set("created_by", actor).
		Set("updated_by", actor)

	p, err := repository.WithTx(ctx, r.store.DB(), func(tx *sql.Tx) (Provider, error) {
		var zero Provider

		if err := verifyUsersTx(ctx, tx, cmd.SiteAdmins); err != nil {
			return zero, err
		}

		created, err := r.store.CreateTx(ctx, tx, fields)
		if err != nil {
			return zero, err
		}

		if err := insertMembers(ctx, tx, siteAdminsTable, created.ID, cmd.SiteAdmins); err != nil {
			return zero, err
		}
		if err := loadMembers(ctx, tx, &created); err != nil {
			return zero, err
		}
		return created, nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("provider created", "id", p.ID, "name", p.Name, "type", p.Type)

	req := EvaluationRequest{ProviderID: p.ID, AuthEndpoint: p.AuthEndpoint}
	if err := r.dispatcher.Dispatch(ctx, req); err != nil {
		r.logger.Warn("evaluation dispatch failed", "id", p.ID, "error", err)
	}

	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, actor uuid.UUID) (*Provider, error) {
	fields := query.Fields{}
	if cmd.Name != nil {
		fields = fields.Set("name", *cmd.Name)
	}
	if cmd.Description != nil {
		fields = fields.Set("description", *cmd.Description)
	}
	if cmd.Type != nil {
		if _, err := ParseKind(string(*cmd.Type)); err != nil {
			return nil, err
		}
		fields = fields.Set("type", string(*cmd.Type))
	}
	if cmd.AuthEndpoint != nil {
		fields = fields.Set("auth_endpoint", *cmd.AuthEndpoint)
	}
	if cmd.IsPublic != nil {
		fields = fields.Set("is_public", *cmd.IsPublic)
	}
	if cmd.SupportEmails != nil {
		if len(*cmd.SupportEmails) == 0 {
			return nil, ErrNoSupportEmails
		}
		emails, err := jsonList(*cmd.SupportEmails)
		if err != nil {
			return nil, err
		}
		fields = fields.Set("support_emails", emails)
	}
	if cmd.ImageTags != nil {
		imageTags, err := jsonList(*cmd.ImageTags)
		if err != nil {
			return nil, err
		}
		fields = fields.Set("image_tags", imageTags)
	}
	if cmd.NetworkTags != nil {
		networkTags, err := jsonList(*cmd.NetworkTags)
		if err != nil {
			return nil, err
		}
		fields = fields.Set("network_tags", networkTags)
	}
	fields = fields.
		Set("updated_at", time.Now().UTC()).
		Set("updated_by", actor)

	p, err := r.store.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if err := loadMembers(ctx, r.store.DB(), p); err != nil {
		return nil, err
	}

	r.logger.Info("provider updated", "id", p.ID)
	return p, nil
}

func (r *repo) ChangeStatus(ctx context.Context, id uuid.UUID, next Status, actor uuid.UUID) (*Provider, error) {
	p, err := repository.WithTx(ctx, r.store.DB(), func(tx *sql.Tx) (Provider, error) {
		var zero Provider

		current, err := r.store.GetTxForUpdate(ctx, tx, id)
		if err != nil {
			return zero, err
		}
		if !current.Status.CanTransition(next) {
			return zero, &StateChangeError{From: current.Status, To: next}
		}

		updated, err := r.transitionTx(ctx, tx, id, next, actor)
		if err != nil {
			return zero, err
		}
		return updated, nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("provider status changed", "id", p.ID, "status", p.Status)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID, actor uuid.UUID) (*Provider, error) {
	var deleted bool

	p, err := repository.WithTx(ctx, r.store.DB(), func(tx *sql.Tx) (Provider, error) {
		var zero Provider

		current, err := r.store.GetTxForUpdate(ctx, tx, id)
		if err != nil {
			return zero, err
		}

		switch current.Status.DeleteAction() {
		case DeleteHard:
			deleted = true
			return zero, r.store.DeleteTx(ctx, tx, id)
		case DeleteDeprecate:
			return r.transitionTx(ctx, tx, id, StatusDeprecated, actor)
		default:
			return r.transitionTx(ctx, tx, id, StatusRemoved, actor)
		}
	})
	if err != nil {
		return nil, err
	}

	if deleted {
		r.logger.Info("provider deleted", "id", id)
		return nil, nil
	}

	r.logger.Info("provider retired", "id", p.ID, "status", p.Status)
	return &p, nil
}

// transitionTx forces the status write without edge validation; callers
// validate the edge or derive the target from the delete mapping.
func (r *repo) transitionTx(ctx context.Context, tx *sql.Tx, id uuid.UUID, next Status, actor uuid.UUID) (Provider, error) {
	fields := query.Fields{}.
		Set("status", string(next)).
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
