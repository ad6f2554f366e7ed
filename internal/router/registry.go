package router

import (
	"sync"

	"healthcare-assistant/internal/model"
)

// Registry holds the ordered set of routes the router can classify into.
// It is populated at startup and read-only while serving traffic; the lock
// exists so dynamic intent management can be added without changing callers.
type Registry struct {
	mu     sync.RWMutex
	routes []model.Route
	names  map[string]struct{}
}

// NewRegistry creates an empty route registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]struct{}),
	}
}

// Register appends a route. Registration order is significant: it is the
// tie-break when two routes score identically.
func (r *Registry) Register(route model.Route) error {
	if route.Name == "" || len(route.Utterances) == 0 {
		return ErrInvalidRoute
	}
	for _, u := range route.Utterances {
		if u == "" {
			return ErrInvalidRoute
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[route.Name]; exists {
		return ErrDuplicateName
	}

	r.names[route.Name] = struct{}{}
	r.routes = append(r.routes, route)
	return nil
}

// Unregister removes a route by name.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[name]; !exists {
		return ErrRouteNotFound
	}

	delete(r.names, name)
	for i, route := range r.routes {
		if route.Name == name {
			r.routes = append(r.routes[:i], r.routes[i+1:]...)
			break
		}
	}
	return nil
}

// Routes returns a snapshot of the registered routes in registration order.
func (r *Registry) Routes() []model.Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}
