package di

import "slices"

// Dependant bundles a function with the ordered names of the dependencies it
// is called with.
type Dependant struct {
	Fn           Func
	Dependencies []string
}

// DependsOn builds a Dependant.
//
// Example:
//
//	var getMethod = di.DependsOn(di.Func1(func(r *http.Request) (string, error) {
//		return r.Method, nil
//	}), "environ")
func DependsOn(fn Func, deps ...string) Dependant {
	return Dependant{Fn: fn, Dependencies: slices.Clone(deps)}
}
