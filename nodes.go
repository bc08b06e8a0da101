package lexi

import (
	"net/http"
	"net/url"

	"github.com/sghaida/lexi/di"
	"github.com/sghaida/lexi/route"
	"github.com/sghaida/lexi/view"
)

// Names of the dependencies every application provides. They are reserved:
// registering one of them again fails with di.DuplicateNameError.
const (
	// DepEnviron is the late-bound *http.Request of the session.
	DepEnviron = "environ"

	// DepRequest is the *http.Request with its form parsed.
	DepRequest = "request"

	DepMethod      = "method"       // string
	DepPath        = "path"         // string, URL path
	DepQueryString = "query_string" // string, raw query
	DepQuery       = "query"        // url.Values
	DepHeaders     = "headers"      // http.Header

	// DepSettings is the settings map given with WithSettings.
	DepSettings = "settings"

	// DepRespond is a Respond function.
	DepRespond = "respond"

	// DepRoute is the route.Match for the request; the zero Match if nothing matched.
	DepRoute = "route"

	// DepPathValues is map[string]string of the matched placeholders.
	DepPathValues = "path_values"

	// DepView is the *view.Binding for the matched route, nil if none.
	DepView = "view"

	// DepURLFor is a URLFor function for reverse routing.
	DepURLFor = "url_for"
)

// URLFor is the function bound to the "url_for" dependency.
type URLFor func(routeName string, values map[string]any) (string, error)

// tables is filled by Build, once routes and views are frozen. The routing
// nodes registered by New read it; no session starts before Build returns.
type tables struct {
	routing *route.Routing
	views   *view.Map
}

func registerRequestNodes(reg *di.Registry, settings map[string]any) error {
	nodes := []struct {
		name string
		fn   di.Func
		dep  string
	}{
		{DepRequest, di.Func1(func(r *http.Request) (*http.Request, error) {
			if err := r.ParseForm(); err != nil {
				return nil, err
			}
			return r, nil
		}), DepEnviron},
		{DepMethod, di.Func1(func(r *http.Request) (string, error) { return r.Method, nil }), DepEnviron},
		{DepPath, di.Func1(func(r *http.Request) (string, error) { return r.URL.Path, nil }), DepEnviron},
		{DepQueryString, di.Func1(func(r *http.Request) (string, error) { return r.URL.RawQuery, nil }), DepEnviron},
		{DepHeaders, di.Func1(func(r *http.Request) (http.Header, error) { return r.Header, nil }), DepEnviron},
		{DepQuery, di.Func1(func(raw string) (url.Values, error) {
			// Malformed pairs are dropped, the rest is kept.
			values, _ := url.ParseQuery(raw)
			return values, nil
		}), DepQueryString},
	}

	if err := reg.RegisterLateBoundValue(DepEnviron); err != nil {
		return err
	}
	if err := reg.RegisterValue(DepSettings, settings); err != nil {
		return err
	}
	if err := reg.RegisterValue(DepRespond, Respond(NewResponse)); err != nil {
		return err
	}
	for _, n := range nodes {
		if err := reg.RegisterFactory(n.name, n.fn, n.dep); err != nil {
			return err
		}
	}
	return nil
}

func registerRoutingNodes(reg *di.Registry, t *tables) error {
	if err := reg.RegisterFactory(DepRoute, di.Func2(func(path, method string) (route.Match, error) {
		m, _ := t.routing.PathToRoute(path, method)
		return m, nil
	}), DepPath, DepMethod); err != nil {
		return err
	}

	if err := reg.RegisterFactory(DepPathValues, di.Func1(func(m route.Match) (map[string]string, error) {
		if m.Values == nil {
			return map[string]string{}, nil
		}
		return m.Values, nil
	}), DepRoute); err != nil {
		return err
	}

	if err := reg.RegisterFactory(DepView, di.Func1(func(m route.Match) (*view.Binding, error) {
		if !m.Matched() {
			return nil, nil
		}
		b, ok := t.views.View(m.Name)
		if !ok {
			return nil, nil
		}
		return &b, nil
	}), DepRoute); err != nil {
		return err
	}

	return reg.RegisterFactory(DepURLFor, di.Func0(func() (URLFor, error) {
		return t.routing.RouteToPath, nil
	}))
}
