package main

import (
	"net/http"

	"github.com/fedstack/federation-registry/internal/idps"
	"github.com/fedstack/federation-registry/internal/locations"
	"github.com/fedstack/federation-registry/internal/projects"
	"github.com/fedstack/federation-registry/internal/providers"
	"github.com/fedstack/federation-registry/internal/regions"
	"github.com/fedstack/federation-registry/internal/slas"
	"github.com/fedstack/federation-registry/internal/usergroups"
	"github.com/fedstack/federation-registry/internal/users"
	"github.com/fedstack/federation-registry/pkg/middleware"
	"github.com/fedstack/federation-registry/pkg/routes"
)

// routes wires every resource system, registers its route group, and wraps
// the mux with the middleware chain.
func (app *Application) routes() http.Handler {
	r := routes.New()

	page := app.config.Pagination

	userSys := users.New(app.db, app.logger, page)
	r.RegisterGroup(users.NewHandler(userSys, app.logger, page).Routes())

	locationSys := locations.New(app.db, app.logger, page)
	r.RegisterGroup(locations.NewHandler(locationSys, app.logger, page).Routes())

	idpSys := idps.New(app.db, app.logger, page)
	r.RegisterGroup(idps.NewHandler(idpSys, app.logger, page).Routes())

	userGroupSys := usergroups.New(app.db, app.logger, page)
	r.RegisterGroup(usergroups.NewHandler(userGroupSys, app.logger, page).Routes())

	slaSys := slas.New(app.db, app.logger, page)
	r.RegisterGroup(slas.NewHandler(slaSys, app.logger, page).Routes())

	providerSys := providers.New(app.db, app.logger, page, providers.NopDispatcher{})
	r.RegisterGroup(providers.NewHandler(providerSys, app.logger, page).Routes())

	regionSys := regions.New(app.db, app.logger, page)
	r.RegisterGroup(regions.NewHandler(regionSys, app.logger, page).Routes())

	projectSys := projects.New(app.db, app.logger, page)
	r.RegisterGroup(projects.NewHandler(projectSys, app.logger, page).Routes())

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})
	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: app.handleReadinessCheck,
	})

	chain := middleware.New().
		Use(middleware.Logger(app.logger)).
		Use(middleware.CORS(&app.config.CORS)).
		Use(middleware.TrimSlash())

	return chain.Wrap(r.Build())
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReadinessCheck verifies the database is reachable.
func (app *Application) handleReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if err := app.db.PingContext(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
