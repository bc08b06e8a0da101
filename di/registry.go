package di

import (
	"maps"
	"slices"
)

// Func is a factory or handler invoked positionally with the resolved values
// of its declared dependencies.
//
// Use Func0..Func3 to adapt typed functions.
type Func func(args ...any) (any, error)

// binding is a registered factory plus the ordered names it is called with.
type binding struct {
	fn   Func
	deps []string
}

// Registry accumulates bindings during composition and validates them.
//
// A Registry is a builder: it is used from a single goroutine while the
// application is composed, then either used to build injectors directly
// (BuildInjector) or frozen into an immutable Snapshot (Freeze).
//
// Expected usage:
//
//	reg := di.NewRegistry()
//	_ = reg.RegisterValue("dsn", "postgres://")
//	_ = reg.RegisterFactory("db", di.Func1(openDB), "dsn")
//	_ = reg.RegisterLateBoundValue("request")
//	if err := reg.CheckDependencies(); err != nil {
//		log.Fatal(err)
//	}
//	inj, err := reg.BuildInjector(map[string]any{"request": req})
type Registry struct {
	factories map[string]binding
	late      map[string]struct{}
	frozen    bool
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]binding),
		late:      make(map[string]struct{}),
	}
}

// RegisterValue binds a constant. The injector always returns value as-is.
func (r *Registry) RegisterValue(name string, value any) error {
	return r.RegisterFactory(name, func(...any) (any, error) { return value, nil })
}

// RegisterFactory binds fn to name. fn is called at most once per session, the
// first time name is resolved, with the resolved values of deps in order.
func (r *Registry) RegisterFactory(name string, fn Func, deps ...string) error {
	if err := r.checkName(name); err != nil {
		return err
	}
	if fn == nil {
		return ErrNilFactory
	}
	r.factories[name] = binding{fn: fn, deps: slices.Clone(deps)}
	return nil
}

// RegisterDependant binds a Dependant, using its own dependency list.
func (r *Registry) RegisterDependant(name string, d Dependant) error {
	return r.RegisterFactory(name, d.Fn, d.Dependencies...)
}

// RegisterLateBoundValue reserves name for a value supplied per session.
func (r *Registry) RegisterLateBoundValue(name string) error {
	if err := r.checkName(name); err != nil {
		return err
	}
	r.late[name] = struct{}{}
	return nil
}

func (r *Registry) checkName(name string) error {
	if r.frozen {
		return ErrFrozen
	}
	if name == "" {
		return BadNameError{Name: name}
	}
	if _, ok := r.factories[name]; ok {
		return DuplicateNameError{Name: name}
	}
	if _, ok := r.late[name]; ok {
		return DuplicateNameError{Name: name}
	}
	return nil
}

// ProvidedDependencies returns, sorted, every name an injector built from this
// Registry can supply: factories, values and late-bound names.
func (r *Registry) ProvidedDependencies() []string {
	names := make([]string, 0, len(r.factories)+len(r.late))
	for name := range r.factories {
		names = append(names, name)
	}
	for name := range r.late {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CheckDependencies validates the Registry assuming every declared late-bound
// value will be supplied.
func (r *Registry) CheckDependencies() error {
	return checkGraph(r.factories, r.late)
}

// BuildInjector validates the Registry against the supplied late-bound values
// and returns a new session Injector.
//
// The late value names must equal the declared late-bound names exactly:
// absent names fail with MissingDependencyError, undeclared ones with
// UnexpectedLateBindingError. The session holds a copy of the bindings, so
// later registrations do not reach it.
func (r *Registry) BuildInjector(late map[string]any) (*Injector, error) {
	if err := checkLateBound(r.late, late); err != nil {
		return nil, err
	}
	if err := checkGraph(r.factories, r.late); err != nil {
		return nil, err
	}
	return newInjector(maps.Clone(r.factories), late), nil
}

// Freeze validates the Registry once and returns an immutable Snapshot.
// Any registration after Freeze fails with ErrFrozen.
func (r *Registry) Freeze() (*Snapshot, error) {
	if err := r.CheckDependencies(); err != nil {
		return nil, err
	}
	r.frozen = true
	return &Snapshot{
		factories: maps.Clone(r.factories),
		late:      maps.Clone(r.late),
	}, nil
}

// Snapshot is a validated, read-only copy of a Registry.
//
// It is safe for concurrent use: every NewInjector call returns an independent
// session with its own cache.
type Snapshot struct {
	factories map[string]binding
	late      map[string]struct{}
}

// NewInjector starts a session. The graph was validated by Freeze, so only the
// late-bound names are checked here.
func (s *Snapshot) NewInjector(late map[string]any) (*Injector, error) {
	if err := checkLateBound(s.late, late); err != nil {
		return nil, err
	}
	return newInjector(s.factories, late), nil
}

// ProvidedDependencies is the Snapshot counterpart of Registry.ProvidedDependencies.
func (s *Snapshot) ProvidedDependencies() []string {
	names := slices.Collect(maps.Keys(s.factories))
	names = slices.AppendSeq(names, maps.Keys(s.late))
	slices.Sort(names)
	return names
}

// checkLateBound compares the declared late-bound names with the supplied ones.
// Missing names are reported before unexpected ones.
func checkLateBound(declared map[string]struct{}, supplied map[string]any) error {
	var missing []string
	for name := range declared {
		if _, ok := supplied[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return MissingDependencyError{Names: missing}
	}

	var extra []string
	for name := range supplied {
		if _, ok := declared[name]; !ok {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		slices.Sort(extra)
		return UnexpectedLateBindingError{Names: extra}
	}
	return nil
}

// checkGraph builds the full dependency graph (late-bound names as leaves) and
// reports missing names before cycles.
func checkGraph(factories map[string]binding, late map[string]struct{}) error {
	nodes := make(map[string][]string, len(factories)+len(late))
	for name, b := range factories {
		nodes[name] = b.deps
	}
	for name := range late {
		nodes[name] = nil
	}

	g := NewDependencyGraph(nodes)
	if g.HasMissingDependencies() {
		return MissingDependencyError{Names: g.MissingDependencies()}
	}
	if unresolved := g.Unresolved(); len(unresolved) > 0 {
		return CircularDependencyError{Names: unresolved}
	}
	return nil
}
