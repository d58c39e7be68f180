// Package api provides the HTTP API layer for the Fibercheck validation service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with the service identity and structured logging before
// handing over lifecycle management. The server exposes workspace validation
// over REST: clients upload a zipped shapefile export and receive the full
// validation report in the response.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/fiberforge/fibercheck/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Stamping the server config with the build version
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Workspace upload, extraction, and check execution
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - POST /v1/validate - Validate an uploaded workspace archive
//   - GET /v1/checks    - List available check names
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Request (POST /v1/validate)
//
// The endpoint accepts a multipart form with the zipped workspace in the
// "file" field ("workspace" is accepted as an alias), an optional "checks"
// field holding a JSON array of check names (repeated "check" fields are an
// alias), and an optional "tolerance" field. Unknown check names are
// reported as error results in the report, not rejected.
//
// Example curl command:
//
//	curl -X POST http://localhost:8080/v1/validate \
//	  -F file=@export.zip \
//	  -F 'checks=["OSC Duplicates Check", "Splice Count Report"]'
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - MAX_UPLOAD_MB: Workspace archive size cap
//   - SHUTDOWN_TIMEOUT_SECONDS: Graceful shutdown budget
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/fiberforge/fibercheck/pkg/api.version=1.0.0'"
package api
