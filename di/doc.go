// Package di provides a small, name-based dependency injector.
//
// Dependencies are identified by strings. A Registry collects three kinds of
// bindings during composition:
//
//   - values: constants, returned as-is
//   - factories: a Func plus the ordered names it is called with
//   - late-bound names: no factory, the value is supplied per session
//
// Before anything is served the Registry is validated (CheckDependencies or
// Freeze): every referenced name must exist and the graph must be acyclic.
// Validation failures are composition errors (errors.Is(err, ErrComposition))
// and should stop the process.
//
// Resolution happens in sessions. Each Injector is built with the session's
// late-bound values and resolves names lazily, calling each factory at most once
// and caching the result. Sessions are independent, so a frozen Snapshot can
// start sessions from many goroutines at once.
//
// There is no reflection-based argument binding: a handler is a Func plus an
// explicit list of names, and Injector.Inject walks that list. Func0..Func3
// adapt typed functions to Func.
//
// Import
//
//	"github.com/sghaida/lexi/di"
package di
