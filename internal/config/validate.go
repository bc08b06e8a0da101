package config

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"

	"github.com/sghaida/lexi/route"
)

var (
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"json", "text", "console"}
	errorFormats = []string{"simple", "rfc9457", "jsonapi"}
)

// FieldError is a single invalid value.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return "config: " + e.Field + ": " + e.Reason
}

// Validate reports every invalid field at once. Use multierr.Errors to
// split the result.
func (c *Config) Validate() error {
	var err error

	if strings.TrimSpace(c.Server.Addr) == "" {
		err = multierr.Append(err, FieldError{Field: "server.addr", Reason: "must not be empty"})
	}
	if c.Server.ReadHeaderTimeout < 0 {
		err = multierr.Append(err, FieldError{Field: "server.read_header_timeout", Reason: "must not be negative"})
	}
	if c.Server.ShutdownTimeout < 0 {
		err = multierr.Append(err, FieldError{Field: "server.shutdown_timeout", Reason: "must not be negative"})
	}
	err = multierr.Append(err, oneOf("log.level", c.Log.Level, logLevels))
	err = multierr.Append(err, oneOf("log.format", c.Log.Format, logFormats))
	err = multierr.Append(err, oneOf("errors.format", c.Errors.Format, errorFormats))
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		err = multierr.Append(err, FieldError{Field: "metrics.path", Reason: "must start with /"})
	}

	table := route.NewTable()
	for i, r := range c.Routes {
		if addErr := table.AddRoute(r.Name, r.Method, r.Path); addErr != nil {
			err = multierr.Append(err, FieldError{Field: fmt.Sprintf("routes[%d]", i), Reason: addErr.Error()})
		}
	}

	return err
}

// Routing compiles Routes in order.
func (c *Config) Routing() (*route.Routing, error) {
	table := route.NewTable()
	for _, r := range c.Routes {
		if err := table.AddRoute(r.Name, r.Method, r.Path); err != nil {
			return nil, err
		}
	}
	return table.Routing(), nil
}

func oneOf(field, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return FieldError{Field: field, Reason: fmt.Sprintf("%q is not one of %s", value, strings.Join(allowed, ", "))}
}
