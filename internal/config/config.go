// Package config loads the lexi configuration from defaults, an optional
// YAML or TOML file, and LEXI_* environment variables, in that order of
// precedence (later wins).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cast"
	rerrors "rivaas.dev/errors"
)

// Config is the decoded configuration.
type Config struct {
	Server   Server         `config:"server"`
	Log      Log            `config:"log"`
	Errors   Errors         `config:"errors"`
	Metrics  Metrics        `config:"metrics"`
	Settings map[string]any `config:"settings"`
	Routes   []Route        `config:"routes"`
}

type Server struct {
	Addr              string        `config:"addr"`
	ReadHeaderTimeout time.Duration `config:"read_header_timeout"`
	ShutdownTimeout   time.Duration `config:"shutdown_timeout"`
}

type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `config:"level"`
	// Format is one of json, text, console.
	Format string `config:"format"`
}

type Errors struct {
	// Format is one of simple, rfc9457, jsonapi.
	Format         string `config:"format"`
	ProblemBaseURL string `config:"problem_base_url"`
}

type Metrics struct {
	Enabled bool   `config:"enabled"`
	Path    string `config:"path"`
}

// Route is a route declaration, as listed by cmd/lexi.
type Route struct {
	Name   string `config:"name"`
	Method string `config:"method"`
	Path   string `config:"path"`
}

// Error reports where loading failed.
type Error struct {
	Source string // file path, "env" or "decode"
	Op     string // read, parse, merge, override, decode
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s %s: %v", e.Op, e.Source, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrUnsupportedFormat is returned for a file that is neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported file format")

func defaults() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"addr":                ":8080",
			"read_header_timeout": "5s",
			"shutdown_timeout":    "10s",
		},
		"log": map[string]any{
			"level":  "info",
			"format": "json",
		},
		"errors": map[string]any{
			"format": "simple",
		},
		"metrics": map[string]any{
			"enabled": false,
			"path":    "/metrics",
		},
		"settings": map[string]any{},
	}
}

// envOverrides maps environment variables to dotted config keys and the cast
// applied to their value.
var envOverrides = []struct {
	env  string
	key  string
	cast func(string) (any, error)
}{
	{"LEXI_SERVER_ADDR", "server.addr", asString},
	{"LEXI_SERVER_SHUTDOWN_TIMEOUT", "server.shutdown_timeout", asDuration},
	{"LEXI_LOG_LEVEL", "log.level", asString},
	{"LEXI_LOG_FORMAT", "log.format", asString},
	{"LEXI_ERRORS_FORMAT", "errors.format", asString},
	{"LEXI_METRICS_ENABLED", "metrics.enabled", asBool},
}

func asString(s string) (any, error) { return s, nil }

func asDuration(s string) (any, error) {
	d, err := cast.ToDurationE(s)
	if err != nil {
		return nil, err
	}
	return d.String(), nil
}

func asBool(s string) (any, error) { return cast.ToBoolE(s) }

// Load builds a Config. path may be empty; environ is a KEY=VALUE list as
// returned by os.Environ. The result is validated.
func Load(path string, environ []string) (*Config, error) {
	values := defaults()

	if path != "" {
		file, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if err := mergo.Map(&values, file, mergo.WithOverride); err != nil {
			return nil, &Error{Source: path, Op: "merge", Err: err}
		}
	}

	if err := applyEnv(values, environ); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := decode(values, cfg); err != nil {
		return nil, &Error{Source: "decode", Op: "decode", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Source: path, Op: "read", Err: err}
	}

	out := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &out)
	case ".toml":
		_, err = toml.NewDecoder(bytes.NewReader(raw)).Decode(&out)
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return nil, &Error{Source: path, Op: "parse", Err: err}
	}
	return out, nil
}

func applyEnv(values map[string]any, environ []string) error {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	for _, o := range envOverrides {
		raw, ok := env[o.env]
		if !ok {
			continue
		}
		v, err := o.cast(raw)
		if err != nil {
			return &Error{Source: "env", Op: "override", Err: fmt.Errorf("%s: %w", o.env, err)}
		}
		setPath(values, o.key, v)
	}
	return nil
}

// setPath sets a dotted key, creating intermediate maps as needed.
func setPath(m map[string]any, key string, v any) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = v
}

func decode(values map[string]any, out *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Result: out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(values)
}

// ErrorFormatter returns the rivaas formatter selected by Format.
func (e Errors) ErrorFormatter() rerrors.Formatter {
	switch e.Format {
	case "rfc9457":
		return rerrors.NewRFC9457(e.ProblemBaseURL)
	case "jsonapi":
		return rerrors.NewJSONAPI()
	default:
		return rerrors.NewSimple()
	}
}
