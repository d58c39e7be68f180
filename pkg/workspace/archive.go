/*
Copyright © 2025 Fiberforge
SPDX-License-Identifier: Apache-2.0
*/

package workspace

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fiberforge/fibercheck/pkg/defaults"
)

// exportPrefix marks directories produced by the design tool's export step.
const exportPrefix = "MRO_"

// Extract unpacks a workspace ZIP archive into dest. Entry paths are
// confined to dest and the total decompressed size is capped to guard
// against hostile archives.
func Extract(archivePath, dest string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}
	defer zr.Close()

	var written int64
	for _, f := range zr.File {
		if err := extractEntry(f, dest, &written); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(f *zip.File, dest string, written *int64) error {
	target := filepath.Join(dest, filepath.Clean(f.Name))
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry %q escapes extraction directory", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0750)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", f.Name, err)
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", f.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer dst.Close()

	remaining := defaults.UploadMaxExtractedBytes - *written
	if remaining <= 0 {
		return fmt.Errorf("archive exceeds %d byte extraction limit", int64(defaults.UploadMaxExtractedBytes))
	}
	n, err := io.Copy(dst, io.LimitReader(src, remaining))
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", f.Name, err)
	}
	*written += n
	if *written >= defaults.UploadMaxExtractedBytes {
		return fmt.Errorf("archive exceeds %d byte extraction limit", int64(defaults.UploadMaxExtractedBytes))
	}
	return nil
}

// Discover locates the workspace directory under root. Design tool exports
// nest the shapefiles unpredictably, so discovery tries, in order:
//
//  1. an MRO_* export directory directly under root (using its output/
//     subdirectory when present),
//  2. an output/ subdirectory of root itself,
//  3. a walk for the first directory containing the Closures layer.
//
// The root itself is the fallback when nothing more specific is found.
func Discover(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("failed to read workspace root %s: %w", root, err)
	}

	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), exportPrefix) {
			return preferOutputDir(filepath.Join(root, e.Name())), nil
		}
	}

	if dirExists(filepath.Join(root, "output")) {
		return filepath.Join(root, "output"), nil
	}

	if dir := findLayerDir(root, "Closures"); dir != "" {
		return dir, nil
	}
	return root, nil
}

// preferOutputDir returns dir's output/ subdirectory when it exists.
func preferOutputDir(dir string) string {
	if out := filepath.Join(dir, "output"); dirExists(out) {
		return out
	}
	return dir
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// findLayerDir walks root for the first directory holding the named layer.
func findLayerDir(root, layer string) string {
	var found string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || found != "" {
			return fs.SkipAll
		}
		if !d.IsDir() && d.Name() == LayerFileName(layer) {
			found = filepath.Dir(path)
			return fs.SkipAll
		}
		return nil
	})
	return found
}
