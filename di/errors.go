package di

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrComposition is matched (via errors.Is) by every wiring error raised while
	// registering bindings or validating a Registry. These errors mean the
	// composition root is wrong and the process should not start serving.
	ErrComposition = errors.New("di: composition error")

	// ErrFrozen is returned when a binding is registered after Freeze.
	ErrFrozen = errors.New("di: registry is frozen")

	// ErrNilFactory is returned when a nil Func is registered or injected.
	ErrNilFactory = errors.New("di: nil factory function")

	// ErrFactoryPanic wraps a panic raised by a factory or injected function.
	ErrFactoryPanic = errors.New("di: panic during factory call")
)

// BadNameError is returned when a binding name is empty.
type BadNameError struct{ Name string }

// Error implements the error interface.
func (e BadNameError) Error() string {
	// Example: di: bad name ""
	return "di: bad name " + strconv.Quote(e.Name)
}

// Is reports whether target is ErrComposition.
func (e BadNameError) Is(target error) bool { return target == ErrComposition }

// DuplicateNameError is returned when a name is registered twice, in any
// combination of value, factory and late-bound registrations.
type DuplicateNameError struct{ Name string }

// Error implements the error interface.
func (e DuplicateNameError) Error() string {
	// Example: di: duplicate name "db"
	return "di: duplicate name " + strconv.Quote(e.Name)
}

// Is reports whether target is ErrComposition.
func (e DuplicateNameError) Is(target error) bool { return target == ErrComposition }

// MissingDependencyError is returned when a required name has no binding.
//
// At build time it lists every late-bound value that was not supplied, or every
// name referenced by a factory that nothing provides. During a session it names
// the single dependency that could not be found.
type MissingDependencyError struct{ Names []string }

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	// Example: di: missing dependency "db", "cache"
	return "di: missing dependency " + quoteAll(e.Names)
}

// Is reports whether target is ErrComposition.
func (e MissingDependencyError) Is(target error) bool { return target == ErrComposition }

// CircularDependencyError is returned when the dependency graph has a cycle.
//
// Names holds every node that could not be ordered. That includes the nodes on
// the cycle and anything downstream of them, so it is a superset of the cycle.
type CircularDependencyError struct{ Names []string }

// Error implements the error interface.
func (e CircularDependencyError) Error() string {
	if len(e.Names) == 0 {
		return "di: circular dependency"
	}
	return "di: circular dependency among " + quoteAll(e.Names)
}

// Is reports whether target is ErrComposition.
func (e CircularDependencyError) Is(target error) bool { return target == ErrComposition }

// UnexpectedLateBindingError is returned when a session is built with late-bound
// values that were never declared with RegisterLateBoundValue.
type UnexpectedLateBindingError struct{ Names []string }

// Error implements the error interface.
func (e UnexpectedLateBindingError) Error() string {
	return "di: unexpected late-bound value " + quoteAll(e.Names)
}

// Is reports whether target is ErrComposition.
func (e UnexpectedLateBindingError) Is(target error) bool { return target == ErrComposition }

// WrongTypeDependencyError is returned by GetAs when a dependency resolves to a
// value of a different type than requested.
type WrongTypeDependencyError struct {
	// Name is the dependency requested.
	Name string

	// Want is the requested type.
	Want string

	// Got is the dynamic type of the resolved value.
	Got string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	// Example: di: dependency "db" has wrong type (want *sql.DB, got string)
	return "di: dependency " + strconv.Quote(e.Name) + " has wrong type (want " + e.Want + ", got " + e.Got + ")"
}

// ArgumentCountError is returned by the Func adapters when called with the
// wrong number of positional arguments.
type ArgumentCountError struct{ Want, Got int }

// Error implements the error interface.
func (e ArgumentCountError) Error() string {
	return "di: want " + strconv.Itoa(e.Want) + " arguments, got " + strconv.Itoa(e.Got)
}

// ArgumentTypeError is returned by the Func adapters when a positional argument
// has the wrong type.
type ArgumentTypeError struct {
	Index int
	Want  string
	Got   string
}

// Error implements the error interface.
func (e ArgumentTypeError) Error() string {
	return "di: argument " + strconv.Itoa(e.Index) + " has wrong type (want " + e.Want + ", got " + e.Got + ")"
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return strings.Join(quoted, ", ")
}
