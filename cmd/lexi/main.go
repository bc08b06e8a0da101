// lexi/cmd/lexi/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/sghaida/lexi"
	"github.com/sghaida/lexi/internal/config"
	"github.com/sghaida/lexi/internal/logging"
	"github.com/sghaida/lexi/route"
)

const usage = `usage: lexi <command> [flags] [args]

commands:
  check   validate the configuration
  routes  print the declared routes
  match   resolve a path:        lexi match [-method GET] /user/42/
  url     build a route's path:  lexi url profile id=42
`

// errNoMatch is returned by match when no route matches.
var errNoMatch = errors.New("no route matches")

func run(args, environ []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	cmd, rest := args[0], args[1:]

	fs := flag.NewFlagSet("lexi "+cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "path to a .yaml, .yml or .toml configuration file")
	method := fs.String("method", http.MethodGet, "HTTP method for match")

	if err := fs.Parse(rest); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath, environ)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	routing, err := cfg.Routing()
	if err != nil {
		return err
	}
	log.V(1).Info("configuration loaded", "command", cmd, "config", *configPath, "routes", len(routing.Names()))

	switch cmd {
	case "check":
		_, err := fmt.Fprintf(stdout, "ok: %d routes\n", len(routing.Names()))
		return err
	case "routes":
		return lexi.RenderRoutes(stdout, routing.Routes(), nil)
	case "match":
		err := match(stdout, routing, *method, fs.Args())
		if errors.Is(err, errNoMatch) {
			log.Info("no route matched", "method", *method, "path", fs.Arg(0))
		}
		return err
	case "url":
		return reverse(stdout, routing, fs.Args())
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func match(w io.Writer, routing *route.Routing, method string, args []string) error {
	if len(args) != 1 {
		return errors.New("match: expected exactly one path")
	}
	m, ok := routing.PathToRoute(args[0], method)
	if !ok {
		return fmt.Errorf("%w: %s %s", errNoMatch, method, args[0])
	}

	keys := make([]string, 0, len(m.Values))
	for k := range m.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := []string{m.Name}
	for _, k := range keys {
		parts = append(parts, k+"="+m.Values[k])
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func reverse(w io.Writer, routing *route.Routing, args []string) error {
	if len(args) == 0 {
		return errors.New("url: expected a route name")
	}
	values := make(map[string]any, len(args)-1)
	for _, kv := range args[1:] {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return fmt.Errorf("url: bad value %q, want key=value", kv)
		}
		values[k] = v
	}

	path, err := routing.RouteToPath(args[0], values)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, path)
	return err
}

func main() {
	if err := run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lexi: "+err.Error())
		os.Exit(1)
	}
}
