// Package lexi is a small web framework built on explicit dependency
// injection.
//
// An application is composed once, from a single goroutine, with a Builder:
//
//   - dependencies (values and per-request factories) go into a di.Registry,
//   - routes (name, method, path template) go into a route.Table,
//   - views bind a handler and its ordered dependency names to a route.
//
// Build validates the whole graph and returns an App, an http.Handler. Each
// request gets a fresh injector session seeded with the *http.Request; the
// request fields, the matched route and the view itself are ordinary graph
// nodes (see the Dep* constants), so a handler can depend on any of them.
//
// Keep wiring in your composition root (usually main):
//
//	b := lexi.New(lexi.WithLogr(log))
//	_ = b.AddRoute("profile", http.MethodGet, `/user/{id:\d+}/`)
//	_ = b.AddView("profile", di.Func1(func(v map[string]string) (lexi.Text, error) {
//		return lexi.Text("user " + v["id"]), nil
//	}), lexi.DepPathValues)
//	app := b.MustBuild()
//	_ = http.ListenAndServe(":8080", app)
//
// Subpackages:
//   - di: registry, dependency graph checks and injector sessions
//   - route: path templates and the forward / reverse route lookup
//   - view: route name to handler bindings
//   - cmd/lexi: route tooling over a configuration file
//   - examples/hello: runnable demo server
package lexi
