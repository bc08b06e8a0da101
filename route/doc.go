// Package route compiles path templates and resolves routes in both directions.
//
// A Table collects named (method, template) routes during composition and is
// frozen into a Routing. Routing.PathToRoute scans routes in registration
// order and returns the first whose method is equal and whose template
// consumes the entire path; Routing.RouteToPath renders a path back from a
// route name and placeholder values.
//
//	t := route.NewTable()
//	_ = t.AddRoute("signup", "GET", "/user/signup/")
//	_ = t.AddRoute("profile", "GET", `/user/{id:\d+}/`)
//	r := t.Routing()
//
//	m, _ := r.PathToRoute("/user/42/", "GET")   // {profile map[id:42]}
//	p, _ := r.RouteToPath("profile", map[string]any{"id": 42}) // /user/42/
package route
