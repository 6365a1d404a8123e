// Package routes provides route registration and HTTP multiplexer construction.
package routes

import "net/http"

// System defines the interface for route registration and HTTP handler building.
type System interface {
	RegisterGroup(group Group)
	RegisterRoute(route Route)
	Build() http.Handler
	Groups() []Group
	Routes() []Route
}

type system struct {
	groups []Group
	routes []Route
}

// New creates an empty route system backed by the standard library mux.
func New() System {
	return &system{}
}

func (s *system) RegisterGroup(group Group) {
	s.groups = append(s.groups, group)
}

func (s *system) RegisterRoute(route Route) {
	s.routes = append(s.routes, route)
}

func (s *system) Groups() []Group { return s.groups }
func (s *system) Routes() []Route { return s.routes }

// Build constructs the http.Handler from all registered groups and routes.
func (s *system) Build() http.Handler {
	mux := http.NewServeMux()

	for _, route := range s.routes {
		register(mux, "", route)
	}
	for _, group := range s.groups {
		registerGroup(mux, "", group)
	}

	return mux
}

func registerGroup(mux *http.ServeMux, prefix string, group Group) {
	base := prefix + group.Prefix
	for _, route := range group.Routes {
		register(mux, base, route)
	}
	for _, child := range group.Children {
		registerGroup(mux, base, child)
	}
}

func register(mux *http.ServeMux, prefix string, route Route) {
	pattern := prefix + route.Pattern
	if route.Method != "" {
		pattern = route.Method + " " + pattern
	}
	mux.HandleFunc(pattern, route.Handler)
}
