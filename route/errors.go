package route

import (
	"strconv"
)

// TemplateError is returned when a path template cannot be compiled.
type TemplateError struct {
	Template string
	// Offset is the byte offset in Template where the problem was found.
	Offset int
	Reason string
	// Err is the underlying regexp error, if any.
	Err error
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	msg := "route: bad template " + strconv.Quote(e.Template) + " at offset " + strconv.Itoa(e.Offset) + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *TemplateError) Unwrap() error { return e.Err }

// InvalidRouteError is returned when a route has an empty name or method.
type InvalidRouteError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e InvalidRouteError) Error() string {
	return "route: invalid route " + strconv.Quote(e.Name) + ": " + e.Reason
}

// DuplicateRouteError is returned when a route name is registered twice.
type DuplicateRouteError struct{ Name string }

// Error implements the error interface.
func (e DuplicateRouteError) Error() string {
	return "route: duplicate route name " + strconv.Quote(e.Name)
}

// UnknownRouteError is returned by reverse routing for an unregistered name.
type UnknownRouteError struct{ Name string }

// Error implements the error interface.
func (e UnknownRouteError) Error() string {
	return "route: unknown route " + strconv.Quote(e.Name)
}

// BuildPathError is returned when a path cannot be rendered from values.
type BuildPathError struct {
	// Param is the placeholder that could not be rendered.
	Param  string
	Reason string
}

// Error implements the error interface.
func (e BuildPathError) Error() string {
	return "route: cannot build path: parameter " + strconv.Quote(e.Param) + " " + e.Reason
}
