package di

import (
	"fmt"
	"maps"
)

// Injector resolves dependencies for one session.
//
// Every name is computed at most once per Injector: the first GetDependency
// call runs the factory and caches the value, later calls return the cached
// value. Build a new Injector per request; sessions share no mutable state.
//
// An Injector is not safe for concurrent use.
type Injector struct {
	factories map[string]binding
	late      map[string]any
	cache     map[string]any
}

// newInjector copies late so the session keeps the set that was checked.
// factories must not change after the call.
func newInjector(factories map[string]binding, late map[string]any) *Injector {
	return &Injector{
		factories: factories,
		late:      maps.Clone(late),
		cache:     make(map[string]any),
	}
}

// HasDependency reports whether name can be resolved by this Injector.
func (i *Injector) HasDependency(name string) bool {
	if _, ok := i.late[name]; ok {
		return true
	}
	_, ok := i.factories[name]
	return ok
}

// GetDependency returns the value bound to name, computing and caching it on
// first use.
//
// A MissingDependencyError here means the Registry was not validated before the
// session was built.
func (i *Injector) GetDependency(name string) (any, error) {
	if v, ok := i.late[name]; ok {
		return v, nil
	}
	if v, ok := i.cache[name]; ok {
		return v, nil
	}

	b, ok := i.factories[name]
	if !ok {
		return nil, MissingDependencyError{Names: []string{name}}
	}

	v, err := i.Inject(b.fn, b.deps)
	if err != nil {
		return nil, fmt.Errorf("di: resolve %q: %w", name, err)
	}
	i.cache[name] = v
	return v, nil
}

// Inject resolves deps in order and calls fn with the results.
//
// It is used both to evaluate factories and to invoke handlers.
func (i *Injector) Inject(fn Func, deps []string) (any, error) {
	if fn == nil {
		return nil, ErrNilFactory
	}
	args := make([]any, len(deps))
	for k, dep := range deps {
		v, err := i.GetDependency(dep)
		if err != nil {
			return nil, err
		}
		args[k] = v
	}
	return call(fn, args)
}

// InjectDependant is Inject for a Dependant.
func (i *Injector) InjectDependant(d Dependant) (any, error) {
	return i.Inject(d.Fn, d.Dependencies)
}

// call runs fn and converts a panic into an ErrFactoryPanic error.
func call(fn Func, args []any) (val any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			err = fmt.Errorf("%w: %v", ErrFactoryPanic, rec)
		}
	}()
	return fn(args...)
}
