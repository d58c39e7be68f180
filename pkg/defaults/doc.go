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

// Package defaults provides centralized configuration constants for fibercheck.
//
// This package defines timeout values, upload limits, and other configuration
// defaults used across the codebase. Centralizing these values ensures
// consistency and makes tuning easier.
//
// # Categories
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - Upload limits: For workspace archive uploads
//   - HTTP client timeouts: For outbound HTTP requests
//   - CLI timeouts: For command-line operations
//
// # Usage
//
//	srv := &http.Server{
//	    ReadTimeout:  defaults.ServerReadTimeout,
//	    WriteTimeout: defaults.ServerWriteTimeout,
//	    IdleTimeout:  defaults.ServerIdleTimeout,
//	}
//
// Values here are compile-time defaults; the server config layer allows
// environment overrides where operators need them.
package defaults
