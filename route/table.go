package route

import "slices"

// Definition is a named route: an HTTP method plus a compiled path.
type Definition struct {
	Name   string
	Method string
	Path   *Path
}

// Match is the result of a forward lookup. The zero Match means no route
// matched.
type Match struct {
	Name   string
	Values map[string]string
}

// Matched reports whether m identifies a route.
func (m Match) Matched() bool { return m.Name != "" }

// Table collects routes during composition. Registration order is kept and is
// the tie-break for overlapping templates.
//
// Table is not safe for concurrent use; call Routing once composition is done.
type Table struct {
	routes []Definition
	names  map[string]struct{}
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{names: make(map[string]struct{})}
}

// AddRoute compiles template and appends the route. Names are unique and
// compared case-sensitively.
func (t *Table) AddRoute(name, method, template string) error {
	if name == "" {
		return InvalidRouteError{Name: name, Reason: "empty name"}
	}
	if method == "" {
		return InvalidRouteError{Name: name, Reason: "empty method"}
	}
	if _, dup := t.names[name]; dup {
		return DuplicateRouteError{Name: name}
	}
	p, err := Compile(template)
	if err != nil {
		return err
	}
	t.routes = append(t.routes, Definition{Name: name, Method: method, Path: p})
	t.names[name] = struct{}{}
	return nil
}

// Len returns the number of routes added so far.
func (t *Table) Len() int { return len(t.routes) }

// Routing freezes the current routes into a Routing. Routes added to t later
// do not affect the returned value.
func (t *Table) Routing() *Routing {
	routes := slices.Clone(t.routes)
	byName := make(map[string]Definition, len(routes))
	for _, r := range routes {
		byName[r.Name] = r
	}
	return &Routing{routes: routes, byName: byName}
}

// Routing is an immutable, ordered route set. It is safe for concurrent use.
type Routing struct {
	routes []Definition
	byName map[string]Definition
}

// PathToRoute returns the first route, in registration order, whose method
// equals method exactly and whose path matches path completely.
func (r *Routing) PathToRoute(path, method string) (Match, bool) {
	for _, def := range r.routes {
		if def.Method != method {
			continue
		}
		if values, ok := def.Path.Match(path); ok {
			return Match{Name: def.Name, Values: values}, true
		}
	}
	return Match{}, false
}

// RouteToPath builds the path of the named route from values.
func (r *Routing) RouteToPath(name string, values map[string]any) (string, error) {
	def, ok := r.byName[name]
	if !ok {
		return "", UnknownRouteError{Name: name}
	}
	return def.Path.Build(values)
}

// Route returns the named definition.
func (r *Routing) Route(name string) (Definition, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// Names returns route names in registration order.
func (r *Routing) Names() []string {
	names := make([]string, len(r.routes))
	for i, def := range r.routes {
		names[i] = def.Name
	}
	return names
}

// Routes returns the definitions in registration order.
func (r *Routing) Routes() []Definition { return slices.Clone(r.routes) }
