// Package cli implements the command-line interface for the fibercheck tool.
//
// # Overview
//
// The fibercheck CLI validates fiber network design exports. A design tool
// exports the network as a set of ESRI shapefile layers (OUT_Closures,
// OUT_FeederCables, cluster polygons, and so on); fibercheck runs design
// rule checks against those layers and reports every violation it finds.
//
// # Commands
//
// validate - Run design rule checks:
//
//	fibercheck validate --workspace DIR|ZIP|URL [--check NAME]... [--format yaml|json|table]
//
// Resolves the workspace (directories are used in place, archives and URLs
// are staged to a scratch directory), runs the requested checks, and emits
// a validation report. Defaults to every registered check and stdout in
// YAML format.
//
// checks - List available checks:
//
//	fibercheck checks [--format yaml|json|table]
//
// Prints the check names the validate command accepts, in default
// execution order.
//
// serve - Run the HTTP API:
//
//	fibercheck serve [--port 8080]
//
// Starts the validation service; equivalent to the fibercheckd daemon.
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML (default):
//   - Human-readable, preserves structure
//   - Suitable for version control
//
// JSON:
//   - Machine-parseable, compact
//   - Suitable for programmatic consumption
//
// Table:
//   - Hierarchical text representation
//   - Suitable for terminal viewing
//
// # Usage Examples
//
// Validate an export directory and write the report to a file:
//
//	fibercheck validate -w ./export/output -o report.yaml
//
// Run two checks against a zipped export in CI, failing on violations:
//
//	fibercheck validate -w export.zip \
//	  -c "OSC Duplicates Check" -c "Splice Count Report" \
//	  --fail-on-error --format json
//
// # Environment Variables
//
//	LOG_LEVEL          Set logging verbosity (debug, info, warn, error)
//	FIBERCHECK_FORMAT  Default output format
//	PORT               HTTP listen port for the serve command
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure, --fail-on-error)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/workspace - Shapefile layer reading and archive staging
//   - pkg/checks - Design rule checks and report assembly
//   - pkg/server - The HTTP API behind the serve command
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/fiberforge/fibercheck/pkg/cli.version=1.0.0'"
package cli
