// Package view maps route names to handlers and their declared dependencies.
package view

import (
	"slices"
	"strconv"

	"github.com/sghaida/lexi/di"
)

// Binding attaches a handler to a route. The handler is invoked through an
// Injector with the values of Dependencies, in order.
type Binding struct {
	Route        string
	Handler      di.Func
	Dependencies []string
}

// New builds a Binding.
func New(routeName string, handler di.Func, deps ...string) Binding {
	return Binding{Route: routeName, Handler: handler, Dependencies: slices.Clone(deps)}
}

// InvalidViewError is returned for a binding with no route name or no handler.
type InvalidViewError struct {
	Route  string
	Reason string
}

func (e InvalidViewError) Error() string {
	return "view: invalid view for route " + strconv.Quote(e.Route) + ": " + e.Reason
}

// DuplicateViewError is returned when a route already has a view.
type DuplicateViewError struct{ Route string }

func (e DuplicateViewError) Error() string {
	return "view: view already assigned for route " + strconv.Quote(e.Route)
}

// UnknownRouteError is returned by Create for a view bound to a route that
// does not exist.
type UnknownRouteError struct{ Route string }

func (e UnknownRouteError) Error() string {
	return "view: view mapped to nonexistent route " + strconv.Quote(e.Route)
}

// UnknownDependencyError is returned by Create for a view that depends on a
// name no binding provides.
type UnknownDependencyError struct {
	Route      string
	Dependency string
}

func (e UnknownDependencyError) Error() string {
	return "view: view for route " + strconv.Quote(e.Route) + " depends on nonexistent dependency " + strconv.Quote(e.Dependency)
}

// Table collects bindings during composition.
type Table struct {
	bindings map[string]Binding
	order    []string
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{bindings: make(map[string]Binding)}
}

// AddView registers b. A route has at most one view.
func (t *Table) AddView(b Binding) error {
	if b.Route == "" {
		return InvalidViewError{Route: b.Route, Reason: "empty route name"}
	}
	if b.Handler == nil {
		return InvalidViewError{Route: b.Route, Reason: "nil handler"}
	}
	if _, dup := t.bindings[b.Route]; dup {
		return DuplicateViewError{Route: b.Route}
	}
	b.Dependencies = slices.Clone(b.Dependencies)
	t.bindings[b.Route] = b
	t.order = append(t.order, b.Route)
	return nil
}

// Create validates every binding, in registration order, against the known
// route names and the known dependency names, and returns the frozen Map.
func (t *Table) Create(knownRoutes, knownDependencies []string) (*Map, error) {
	routes := toSet(knownRoutes)
	deps := toSet(knownDependencies)

	for _, name := range t.order {
		b := t.bindings[name]
		if _, ok := routes[b.Route]; !ok {
			return nil, UnknownRouteError{Route: b.Route}
		}
		for _, dep := range b.Dependencies {
			if _, ok := deps[dep]; !ok {
				return nil, UnknownDependencyError{Route: b.Route, Dependency: dep}
			}
		}
	}

	bindings := make(map[string]Binding, len(t.bindings))
	for name, b := range t.bindings {
		bindings[name] = b
	}
	return &Map{bindings: bindings}, nil
}

// Map is the frozen route name -> Binding lookup. It is safe for concurrent use.
type Map struct {
	bindings map[string]Binding
}

// View returns the binding for routeName. A false result is not an error:
// the caller decides what a route without a view means.
func (m *Map) View(routeName string) (Binding, bool) {
	b, ok := m.bindings[routeName]
	return b, ok
}

// Routes returns, sorted, the route names that have a view.
func (m *Map) Routes() []string {
	names := make([]string, 0, len(m.bindings))
	for name := range m.bindings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
