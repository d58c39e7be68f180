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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// ValidateHandlerTimeout is the timeout for workspace validation requests.
	// It covers upload extraction plus the full check pass.
	ValidateHandlerTimeout = 120 * time.Second

	// ValidateRunTimeout is the internal timeout for the check pass itself.
	// Should be less than ValidateHandlerTimeout to allow error handling.
	ValidateRunTimeout = 110 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading a request body.
	// Uploads are large, so this is generous compared to the header timeout.
	ServerReadTimeout = 120 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 150 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Upload limits for workspace archives.
const (
	// UploadMaxBytes caps the size of an uploaded workspace archive.
	UploadMaxBytes = 500 << 20

	// UploadMaxExtractedBytes caps the total decompressed size of an
	// archive, guarding against decompression bombs.
	UploadMaxExtractedBytes = 2 << 30
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	// Remote workspace archives can be large.
	HTTPClientTimeout = 120 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIValidateTimeout is the default timeout for a full validation pass.
	CLIValidateTimeout = 10 * time.Minute
)
