// Package cli implements the vrpctl command-line interface.
//
// # Commands
//
// validate - Check a routing problem for semantic errors:
//
//	vrpctl validate --problem problem.json
//	vrpctl validate -p problem.yaml -c config.yaml -m car.json --format json
//	vrpctl validate -p cm://routing/problem -o cm://routing/report
//	vrpctl validate -p problem.json --fail-on-error=false
//
// Loads the problem, optionally checks an algorithm config and routing
// matrices against it, and writes a ValidationReport. The command exits with
// a non-zero status when any input cannot be read or, unless
// --fail-on-error=false is given, when the report lists violations.
//
// locations - List the unique locations of a problem in matrix order:
//
//	vrpctl locations -p problem.json --format json
//
// codes - List every violation code with its description:
//
//	vrpctl codes --format table
//
// serve - Run the validation API (see pkg/api):
//
//	vrpctl serve --port 8080 --rate-limit 50
//
// # Global Flags
//
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	VRPCTL_PROBLEM  Default for --problem
//	VRPCTL_FORMAT   Default for --format
//	KUBECONFIG      Path to kubeconfig used for cm:// locations
//	PORT            Default for serve --port
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/vrpkit/vrpctl/pkg/cli.version=1.0.0'"
package cli
