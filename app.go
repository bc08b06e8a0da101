package lexi

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	rerrors "rivaas.dev/errors"

	"github.com/sghaida/lexi/di"
	"github.com/sghaida/lexi/route"
	"github.com/sghaida/lexi/view"
)

// App serves a built application. Every request runs in its own injector
// session seeded with the request as the "environ" dependency.
//
// App is immutable and safe for concurrent use.
type App struct {
	snapshot  *di.Snapshot
	routing   *route.Routing
	views     *view.Map
	log       logr.Logger
	formatter rerrors.Formatter
	metrics   *metrics
}

var _ http.Handler = (*App)(nil)

// ServeHTTP dispatches r to the view of the first matching route.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	routeName, res, err := a.Dispatch(r)
	label := outcome(err)
	a.metrics.observe(routeName, label, time.Since(start))
	a.log.V(1).Info("dispatch", "method", r.Method, "path", r.URL.Path, "route", routeName, "outcome", label)

	if err != nil {
		a.fail(w, r, routeName, err)
		return
	}
	writeResult(w, res)
}

// Dispatch resolves r to a Result without writing anything. It returns the
// name of the matched route, if any.
//
// ErrRouteNotFound and NoViewError are expected outcomes; any other error
// comes from a factory or the view itself.
func (a *App) Dispatch(r *http.Request) (string, Result, error) {
	inj, err := a.snapshot.NewInjector(map[string]any{DepEnviron: r})
	if err != nil {
		return "", nil, err
	}

	m, err := di.GetAs[route.Match](inj, DepRoute)
	if err != nil {
		return "", nil, err
	}
	if !m.Matched() {
		return "", nil, ErrRouteNotFound
	}

	b, err := di.GetAs[*view.Binding](inj, DepView)
	if err != nil {
		return m.Name, nil, err
	}
	if b == nil {
		return m.Name, nil, NoViewError{Route: m.Name}
	}

	out, err := inj.Inject(b.Handler, b.Dependencies)
	if err != nil {
		return m.Name, nil, err
	}
	res, err := toResult(out)
	if err != nil {
		return m.Name, nil, err
	}
	return m.Name, res, nil
}

// URLFor builds the path of the named route.
func (a *App) URLFor(routeName string, values map[string]any) (string, error) {
	return a.routing.RouteToPath(routeName, values)
}

// Routing returns the frozen route table.
func (a *App) Routing() *route.Routing { return a.routing }

// PrintRoutes writes the route table, with a column telling which routes
// have a view.
func (a *App) PrintRoutes(w io.Writer) error {
	return RenderRoutes(w, a.routing.Routes(), func(name string) bool {
		_, ok := a.views.View(name)
		return ok
	})
}

func (a *App) fail(w http.ResponseWriter, r *http.Request, routeName string, err error) {
	public := err
	if outcome(err) == outcomeError {
		a.log.Error(err, "dispatch failed", "method", r.Method, "path", r.URL.Path, "route", routeName)
		public = errInternal
	}

	resp := a.formatter.Format(r, public)
	for k, vs := range resp.Headers {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.Header().Set("Content-Type", resp.ContentType)
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp.Body); err != nil {
		a.log.Error(err, "write error response", "route", routeName)
	}
}
