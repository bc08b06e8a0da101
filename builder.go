package lexi

import (
	"errors"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	rerrors "rivaas.dev/errors"

	"github.com/sghaida/lexi/di"
	"github.com/sghaida/lexi/route"
	"github.com/sghaida/lexi/view"
)

// ErrBuilt is returned by every Builder method once Build has been called.
var ErrBuilt = errors.New("lexi: application already built")

// Option configures a Builder.
type Option func(*Builder)

// WithLogr sets the logger. The default discards everything.
var WithLogr = func(log logr.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

// WithSettings sets the value of the "settings" dependency.
var WithSettings = func(settings map[string]any) Option {
	return func(b *Builder) {
		b.settings = settings
	}
}

// WithErrorFormatter sets how not-found and failure responses are rendered.
// The default is rerrors.NewSimple().
var WithErrorFormatter = func(f rerrors.Formatter) Option {
	return func(b *Builder) {
		b.formatter = f
	}
}

// WithMetrics registers dispatch metrics with reg.
var WithMetrics = func(reg prometheus.Registerer) Option {
	return func(b *Builder) {
		b.registerer = reg
	}
}

// Builder composes an application: dependencies, routes and views are
// registered, then Build validates everything once and returns the App.
//
// A Builder is not safe for concurrent use and cannot be reused after Build.
type Builder struct {
	reg    *di.Registry
	routes *route.Table
	views  *view.Table
	tables *tables

	log        logr.Logger
	settings   map[string]any
	formatter  rerrors.Formatter
	registerer prometheus.Registerer

	built bool
	err   error
}

// New returns a Builder with the request and routing dependencies already
// registered (see the Dep* constants).
func New(opts ...Option) *Builder {
	b := &Builder{
		reg:       di.NewRegistry(),
		routes:    route.NewTable(),
		views:     view.NewTable(),
		tables:    &tables{},
		log:       logr.Discard(),
		settings:  map[string]any{},
		formatter: rerrors.NewSimple(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := registerRequestNodes(b.reg, b.settings); err != nil {
		b.err = err
	} else if err := registerRoutingNodes(b.reg, b.tables); err != nil {
		b.err = err
	}
	return b
}

func (b *Builder) check() error {
	if b.built {
		return ErrBuilt
	}
	return b.err
}

// AddRoute registers a route. See route.Compile for the template syntax.
func (b *Builder) AddRoute(name, method, template string) error {
	if err := b.check(); err != nil {
		return err
	}
	return b.routes.AddRoute(name, method, template)
}

// AddView binds handler to the route named routeName. The handler is called
// with the resolved values of deps, in order.
func (b *Builder) AddView(routeName string, handler di.Func, deps ...string) error {
	if err := b.check(); err != nil {
		return err
	}
	return b.views.AddView(view.New(routeName, handler, deps...))
}

// AddViewFn binds a Dependant to the route named routeName.
func (b *Builder) AddViewFn(routeName string, d di.Dependant) error {
	return b.AddView(routeName, d.Fn, d.Dependencies...)
}

// AddValue registers a constant dependency.
func (b *Builder) AddValue(name string, value any) error {
	if err := b.check(); err != nil {
		return err
	}
	return b.reg.RegisterValue(name, value)
}

// AddFactory registers a dependency computed once per request.
func (b *Builder) AddFactory(name string, fn di.Func, deps ...string) error {
	if err := b.check(); err != nil {
		return err
	}
	return b.reg.RegisterFactory(name, fn, deps...)
}

// AddDependant registers a Dependant as a per-request dependency.
func (b *Builder) AddDependant(name string, d di.Dependant) error {
	if err := b.check(); err != nil {
		return err
	}
	return b.reg.RegisterDependant(name, d)
}

// Build validates the dependency graph, freezes the routes and checks every
// view against them, in that order. Any error is a wiring defect and the
// application must not be served.
func (b *Builder) Build() (*App, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	b.built = true

	snapshot, err := b.reg.Freeze()
	if err != nil {
		return nil, err
	}
	provided := snapshot.ProvidedDependencies()

	routing := b.routes.Routing()
	views, err := b.views.Create(routing.Names(), provided)
	if err != nil {
		return nil, err
	}
	b.tables.routing = routing
	b.tables.views = views

	m, err := newMetrics(b.registerer)
	if err != nil {
		return nil, err
	}

	b.log.Info("application built",
		"routes", len(routing.Names()),
		"views", len(views.Routes()),
		"dependencies", len(provided),
	)

	return &App{
		snapshot:  snapshot,
		routing:   routing,
		views:     views,
		log:       b.log,
		formatter: b.formatter,
		metrics:   m,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *App {
	app, err := b.Build()
	if err != nil {
		panic(err)
	}
	return app
}
