package lexi

import (
	"errors"
	"net/http"
	"strconv"
)

// Dispatch outcomes. Both are expected per request and render as 404; neither
// reaches user code.

// ErrRouteNotFound is the outcome when no route matches the request.
var ErrRouteNotFound error = routeNotFoundError{}

type routeNotFoundError struct{}

func (routeNotFoundError) Error() string   { return "route not found" }
func (routeNotFoundError) HTTPStatus() int { return http.StatusNotFound }
func (routeNotFoundError) Code() string    { return "ROUTE_NOT_FOUND" }

// NoViewError is the outcome when the matched route has no view bound.
type NoViewError struct{ Route string }

func (e NoViewError) Error() string   { return "no view found for route " + strconv.Quote(e.Route) }
func (e NoViewError) HTTPStatus() int { return http.StatusNotFound }
func (e NoViewError) Code() string    { return "NO_VIEW" }

type internalError struct{}

func (internalError) Error() string   { return http.StatusText(http.StatusInternalServerError) }
func (internalError) HTTPStatus() int { return http.StatusInternalServerError }
func (internalError) Code() string    { return "INTERNAL" }

// errInternal replaces handler and factory errors in responses. The real
// error is logged, not sent.
var errInternal error = internalError{}

// Outcome labels used in logs and the lexi_dispatch_total metric.
const (
	outcomeOK            = "ok"
	outcomeRouteNotFound = "route_not_found"
	outcomeNoView        = "no_view"
	outcomeError         = "error"
)

func outcome(err error) string {
	var noView NoViewError
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrRouteNotFound):
		return outcomeRouteNotFound
	case errors.As(err, &noView):
		return outcomeNoView
	default:
		return outcomeError
	}
}
