package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fedstack/federation-registry/pkg/handlers"
	"github.com/fedstack/federation-registry/pkg/pagination"
	"github.com/fedstack/federation-registry/pkg/routes"
	"github.com/google/uuid"
)

// Handler provides HTTP handlers for provider CRUD, lifecycle, and
// membership operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a new providers HTTP handler.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger,
		pagination: pagination,
	}
}

// StatusRequest is the body of a status transition request.
type StatusRequest struct {
	Status string `json:"status"`
}

// MembersRequest is the body of a membership assignment request.
type MembersRequest struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

// Routes returns the route group configuration for provider endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/providers",
		Description: "Resource providers and their lifecycle",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "PATCH", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
			{Method: "POST", Pattern: "/{id}/status", Handler: h.ChangeStatus},
			{Method: "POST", Pattern: "/{id}/site-admins", Handler: h.AddSiteAdmins},
			{Method: "DELETE", Pattern: "/{id}/site-admins/{user_id}", Handler: h.RemoveSiteAdmin},
			{Method: "POST", Pattern: "/{id}/site-testers", Handler: h.AddSiteTesters},
			{Method: "DELETE", Pattern: "/{id}/site-testers/{user_id}", Handler: h.RemoveSiteTester},
		},
	}
}

// List handles GET /api/providers to retrieve a paginated list of providers.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.WithLinks(r.URL))
}

// Find handles GET /api/providers/{id} to retrieve a single provider.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create handles POST /api/providers to register a new provider in draft.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Create(r.Context(), cmd, actor)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update handles PATCH /api/providers/{id} to update the supplied fields of a provider.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Update(r.Context(), id, cmd, actor)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /api/providers/{id}. Providers still in draft or
// ready are hard deleted (204); anything else is retired through a forced
// status transition and the updated provider is returned (200).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Delete(r.Context(), id, actor)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ChangeStatus handles POST /api/providers/{id}/status to apply a lifecycle transition.
func (h *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	next, err := ParseStatus(req.Status)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.ChangeStatus(r.Context(), id, next, actor)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// AddSiteAdmins handles POST /api/providers/{id}/site-admins.
func (h *Handler) AddSiteAdmins(w http.ResponseWriter, r *http.Request) {
	h.addMembers(w, r, h.sys.AddSiteAdmins)
}

// AddSiteTesters handles POST /api/providers/{id}/site-testers.
func (h *Handler) AddSiteTesters(w http.ResponseWriter, r *http.Request) {
	h.addMembers(w, r, h.sys.AddSiteTesters)
}

// RemoveSiteAdmin handles DELETE /api/providers/{id}/site-admins/{user_id}.
func (h *Handler) RemoveSiteAdmin(w http.ResponseWriter, r *http.Request) {
	h.removeMember(w, r, h.sys.RemoveSiteAdmin)
}

// RemoveSiteTester handles DELETE /api/providers/{id}/site-testers/{user_id}.
func (h *Handler) RemoveSiteTester(w http.ResponseWriter, r *http.Request) {
	h.removeMember(w, r, h.sys.RemoveSiteTester)
}

type addMembersFunc func(ctx context.Context, id uuid.UUID, userIDs []uuid.UUID, actor uuid.UUID) (*Provider, error)

func (h *Handler) addMembers(w http.ResponseWriter, r *http.Request, add addMembersFunc) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var req MembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := add(r.Context(), id, req.UserIDs, actor)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

type removeMemberFunc func(ctx context.Context, id uuid.UUID, userID uuid.UUID, actor uuid.UUID) (*Provider, error)

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request, remove removeMemberFunc) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := remove(r.Context(), id, userID, actor)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
