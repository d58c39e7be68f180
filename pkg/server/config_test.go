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

package server

import (
	"testing"
	"time"

	"github.com/fiberforge/fibercheck/pkg/checks"
	"github.com/fiberforge/fibercheck/pkg/defaults"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}

		if cfg.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Port)
		}

		if cfg.RateLimit != 100 {
			t.Errorf("expected rate limit 100, got %v", cfg.RateLimit)
		}

		if cfg.RateLimitBurst != 200 {
			t.Errorf("expected rate limit burst 200, got %d", cfg.RateLimitBurst)
		}

		if cfg.MaxUploadBytes != defaults.UploadMaxBytes {
			t.Errorf("expected max upload %d, got %d", defaults.UploadMaxBytes, cfg.MaxUploadBytes)
		}

		if cfg.Tolerance != checks.DefaultTolerance {
			t.Errorf("expected tolerance %v, got %v", checks.DefaultTolerance, cfg.Tolerance)
		}

		if cfg.ReadTimeout != defaults.ServerReadTimeout {
			t.Errorf("expected read timeout %v, got %v", defaults.ServerReadTimeout, cfg.ReadTimeout)
		}

		if cfg.WriteTimeout != defaults.ServerWriteTimeout {
			t.Errorf("expected write timeout %v, got %v", defaults.ServerWriteTimeout, cfg.WriteTimeout)
		}

		if cfg.IdleTimeout != defaults.ServerIdleTimeout {
			t.Errorf("expected idle timeout %v, got %v", defaults.ServerIdleTimeout, cfg.IdleTimeout)
		}

		if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
			t.Errorf("expected shutdown timeout %v, got %v", defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
		}
	})

	t.Run("custom port from environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")

		cfg := parseConfig()

		if cfg.Port != 9090 {
			t.Errorf("expected port 9090 from env, got %d", cfg.Port)
		}
	})

	t.Run("invalid port from environment uses default", func(t *testing.T) {
		t.Setenv("PORT", "invalid")

		cfg := parseConfig()

		if cfg.Port != 8080 {
			t.Errorf("expected default port 8080 for invalid env, got %d", cfg.Port)
		}
	})

	t.Run("custom shutdown timeout from environment", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "45")

		cfg := parseConfig()

		if cfg.ShutdownTimeout != 45*time.Second {
			t.Errorf("expected shutdown timeout 45s from env, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("custom upload limit from environment", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_MB", "1024")

		cfg := parseConfig()

		if cfg.MaxUploadBytes != 1024<<20 {
			t.Errorf("expected upload limit 1GiB from env, got %d", cfg.MaxUploadBytes)
		}
	})

	t.Run("invalid upload limit from environment uses default", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_MB", "-5")

		cfg := parseConfig()

		if cfg.MaxUploadBytes != defaults.UploadMaxBytes {
			t.Errorf("expected default upload limit, got %d", cfg.MaxUploadBytes)
		}
	})
}
