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

// Package header provides the common envelope type for fibercheck data
// structures.
//
// The Header carries API versioning and metadata for serialized resources,
// currently the validation report:
//
//	header := header.New(
//	    header.WithKind(header.KindValidationReport),
//	    header.WithAPIVersion("fiberforge.io/v1alpha1"),
//	    header.WithMetadata("id", runID),
//	)
//
// Headers serialize consistently to JSON and YAML:
//
//	{
//	  "kind": "ValidationReport",
//	  "apiVersion": "fiberforge.io/v1alpha1",
//	  "metadata": {
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
//
// Consumers should check APIVersion before parsing; new fields are added in a
// backward-compatible way within one version.
package header
