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

// Package serializer provides encoding of validation reports in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, compact representation
//   - Suitable for API responses and programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for archiving reports in version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value text representation
//   - Suitable for terminal/console viewing
//   - Write-only (no deserialization support)
//
// # Usage
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, report); err != nil {
//	    log.Fatal(err)
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, report)
//
// The package also provides HttpReader for fetching remote workspace
// archives with sane connection pooling and timeout defaults.
package serializer
