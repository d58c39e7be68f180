// Copyright (c) 2025, Fiberforge.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements the Fibercheck Design Validation API.
//
// The service accepts zipped shapefile workspaces, runs the configured
// design checks against them, and returns a structured validation report.
//
// # Architecture
//
// The server implements a stateless HTTP API with the following key components:
//
//   - Multipart workspace upload with size limits and safe zip extraction
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//   - Prometheus metrics on /metrics
//
// # Usage
//
// Basic server startup:
//
//	package main
//
//	import (
//	    "github.com/fiberforge/fibercheck/pkg/server"
//	)
//
//	func main() {
//	    if err := server.Run(); err != nil {
//	        panic(err)
//	    }
//	}
//
// Custom configuration:
//
//	config := server.NewConfig()
//	config.Port = 9090
//	config.RateLimit = 200  // 200 requests/sec
//	config.RateLimitBurst = 400
//	config.MaxUploadBytes = 1 << 30
//
//	if err := server.RunWithConfig(config); err != nil {
//	    panic(err)
//	}
//
// # API Endpoints
//
// POST /v1/validate - Validate a workspace archive
//
//	Multipart form fields:
//	  - file: the zipped workspace (required; "workspace" accepted as alias)
//	  - checks: JSON array of check names (default: all checks)
//	  - check: single check name, repeatable alias of checks
//	  - tolerance: minimum point separation in layer units (default: 0.01)
//
//	A name that matches no check yields an error result in its slot of the
//	report rather than rejecting the request.
//
//	Example:
//	  curl -F file=@export.zip -F 'checks=["OSC Duplicates Check"]' http://localhost:8080/v1/validate
//
// GET /v1/checks - List available check names
//
// GET /health - Health check (for liveness probe)
//
//	Always returns 200 OK with {"status": "healthy", "timestamp": "..."}
//
// GET /ready - Readiness check (for readiness probe)
//
//	Returns 200 OK when ready, 503 when not ready
//
// GET /metrics - Prometheus metrics
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses for tracing.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per window
//	  X-RateLimit-Remaining: Requests remaining in current window
//	  X-RateLimit-Reset: Unix timestamp when window resets
//
//	When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "Unknown check requested",
//	  "details": {"check": "Bogus Check"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Error codes:
//   - INVALID_REQUEST: Invalid parameter or malformed upload (400)
//   - PAYLOAD_TOO_LARGE: Archive exceeds upload limit (413)
//   - RATE_LIMIT_EXCEEDED: Too many requests (429)
//   - INTERNAL: Server error (500)
//   - TIMEOUT: Validation run exceeded its deadline (504)
//
// Note: a report whose checks found design violations is still a 200;
// the outcome is carried in the report's summary, not the HTTP status.
//
// # Configuration
//
// Environment variables:
//
//	PORT                      HTTP listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget
//	MAX_UPLOAD_MB             workspace archive size cap
//	LOG_LEVEL                 debug, info, warn, error
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Error groups: https://pkg.go.dev/golang.org/x/sync/errgroup
//   - HTTP best practices: https://datatracker.ietf.org/doc/html/rfc7807
//   - Kubernetes probes: https://kubernetes.io/docs/tasks/configure-pod-container/configure-liveness-readiness-startup-probes/
package server
