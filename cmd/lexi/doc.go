// Command lexi inspects the routes declared in a lexi configuration file.
//
// The routes section of the configuration lists route declarations in the
// order they are registered by the application:
//
//	routes:
//	  - name: signup
//	    method: GET
//	    path: /user/signup/
//	  - name: profile
//	    method: GET
//	    path: /user/{id:\d+}/
//
// Commands
//
//	lexi check  -config lexi.yaml               validate the whole file
//	lexi routes -config lexi.yaml               print the route table
//	lexi match  -config lexi.yaml /user/42/     -> profile id=42
//	lexi url    -config lexi.yaml profile id=42 -> /user/42/
//
// match takes -method (default GET). Overlapping templates resolve to the
// first declared route, exactly as they do at serve time.
//
// LEXI_* environment variables apply as for the server; see internal/config.
// Diagnostics go to stderr through the configured logger (log.level and
// log.format); results go to stdout.
package main
