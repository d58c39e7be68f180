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
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fiberforge/fibercheck/pkg/checks"
	"github.com/fiberforge/fibercheck/pkg/defaults"
	fcerrors "github.com/fiberforge/fibercheck/pkg/errors"
	"github.com/fiberforge/fibercheck/pkg/serializer"
	"github.com/fiberforge/fibercheck/pkg/workspace"
)

const (
	// uploadFieldName is the multipart field carrying the zipped workspace.
	// uploadFieldAlias is accepted as well for older clients.
	uploadFieldName  = "file"
	uploadFieldAlias = "workspace"

	// checksFieldName selects checks as a JSON array of display names. The
	// repeatable "check" field is accepted as an alias.
	checksFieldName = "checks"
)

// handleChecks handles GET /v1/checks. It lists the check names the
// service can run, in default execution order.
func (s *Server) handleChecks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed, fcerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"allowed": "GET"})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ChecksResponse{Checks: checks.DefaultChecks()})
}

// handleValidate handles POST /v1/validate. It accepts a multipart upload
// of a zipped workspace in the "file" field, extracts it, locates the
// layer directory, runs the checks selected by the "checks" JSON array
// (or repeated "check" fields), and responds with the validation report.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, r, http.StatusMethodNotAllowed, fcerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"allowed": "POST"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ValidateHandlerTimeout)
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, r, http.StatusRequestEntityTooLarge, fcerrors.ErrCodePayloadTooLarge,
				"Workspace archive exceeds upload limit", false,
				map[string]any{"limit_bytes": s.config.MaxUploadBytes})
			return
		}
		WriteError(w, r, http.StatusBadRequest, fcerrors.ErrCodeInvalidRequest,
			"Malformed multipart request", false, map[string]any{"error": err.Error()})
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll() //nolint:errcheck
	}

	// Unknown names are not rejected up front. The runner answers each with
	// an error result, so the response keeps one result per requested name.
	names := r.Form["check"]
	if raw := r.FormValue(checksFieldName); raw != "" {
		var selected []string
		if err := json.Unmarshal([]byte(raw), &selected); err != nil {
			WriteError(w, r, http.StatusBadRequest, fcerrors.ErrCodeInvalidRequest,
				"Field checks must be a JSON array of check names", false,
				map[string]any{checksFieldName: raw})
			return
		}
		names = append(names, selected...)
	}

	tolerance := s.config.Tolerance
	if tolStr := r.FormValue("tolerance"); tolStr != "" {
		tol, err := strconv.ParseFloat(tolStr, 64)
		if err != nil || tol <= 0 {
			WriteError(w, r, http.StatusBadRequest, fcerrors.ErrCodeInvalidRequest,
				"Tolerance must be a positive number", false, map[string]any{"tolerance": tolStr})
			return
		}
		tolerance = tol
	}

	file, fileHeader, err := r.FormFile(uploadFieldName)
	if err != nil {
		file, fileHeader, err = r.FormFile(uploadFieldAlias)
	}
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, fcerrors.ErrCodeInvalidRequest,
			"Missing workspace archive", false, map[string]any{"field": uploadFieldName})
		return
	}
	defer file.Close()

	dir, cleanup, err := s.stageWorkspace(file)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		WriteErrorFromErr(w, r, err, "Failed to stage workspace", nil)
		return
	}

	runCtx, runCancel := context.WithTimeout(ctx, defaults.ValidateRunTimeout)
	defer runCancel()

	start := time.Now()
	results := checks.New(checks.WithTolerance(tolerance)).Run(runCtx, dir, names)
	report := checks.NewReport(fileHeader.Filename, results, time.Since(start), s.config.Version)

	slog.Info("validation completed",
		"workspace", fileHeader.Filename,
		"status", report.Summary.Status,
		"violations", report.Summary.Violations,
		"duration", report.Summary.Duration,
		"requestID", r.Context().Value(contextKeyRequestID),
	)

	serializer.RespondJSON(w, http.StatusOK, report)
}

// stageWorkspace writes the uploaded archive to a scratch directory,
// extracts it, and locates the directory holding the exported layers.
// The returned cleanup removes the scratch directory and is non-nil
// whenever the directory was created, even on error.
func (s *Server) stageWorkspace(archive io.Reader) (string, func(), error) {
	tmp, err := os.MkdirTemp("", "fibercheck-upload-*")
	if err != nil {
		return "", nil, fcerrors.Wrap(fcerrors.ErrCodeInternal, "failed to create scratch directory", err)
	}
	cleanup := func() {
		if rerr := os.RemoveAll(tmp); rerr != nil {
			slog.Warn("failed to remove scratch directory", "dir", tmp, "error", rerr)
		}
	}

	archivePath := filepath.Join(tmp, "workspace.zip")
	out, err := os.OpenFile(archivePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return "", cleanup, fcerrors.Wrap(fcerrors.ErrCodeInternal, "failed to create archive file", err)
	}
	written, err := io.Copy(out, archive)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return "", cleanup, fcerrors.Wrap(fcerrors.ErrCodeInternal, "failed to store uploaded archive", err)
	}
	uploadBytesTotal.Add(float64(written))

	extracted := filepath.Join(tmp, "workspace")
	if err := os.MkdirAll(extracted, 0750); err != nil {
		return "", cleanup, fcerrors.Wrap(fcerrors.ErrCodeInternal, "failed to create extraction directory", err)
	}
	if err := workspace.Extract(archivePath, extracted); err != nil {
		return "", cleanup, fcerrors.Wrap(fcerrors.ErrCodeInvalidRequest, "invalid workspace archive", err)
	}

	dir, err := workspace.Discover(extracted)
	if err != nil {
		return "", cleanup, fcerrors.Wrap(fcerrors.ErrCodeInternal, "failed to locate layer directory", err)
	}
	return dir, cleanup, nil
}
