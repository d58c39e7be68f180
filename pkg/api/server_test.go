package api

import (
	"testing"
)

// Test Coverage Note:
// The pkg/api package contains a single Serve() function that:
// 1. Initializes logging
// 2. Stamps the server config with the build version
// 3. Starts a blocking HTTP server
//
// Direct unit testing of Serve() is impractical because:
// - It's a blocking function that runs until shutdown
// - It requires full server initialization
// - It integrates with the pkg/server package
//
// The handler behavior itself is covered by pkg/server's tests; end-to-end
// behavior is exercised by the integration suite against a deployed instance.

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	if name != "fibercheckd" {
		t.Errorf("name = %q, want %q", name, "fibercheckd")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	// Verify buildtime variables exist (they may have default values)
	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}
