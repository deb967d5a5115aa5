// Package fsutil collects the small, shared filesystem helpers the rest of
// ffind leans on: root validation, home-directory expansion, and relative
// path computation against the current working directory.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" (or "~/...") in path with the value of
// $HOME. A bare "~" expands to $HOME itself. Paths that don't start with
// "~" are returned unchanged. If HOME cannot be resolved, path is returned
// unchanged rather than erroring, so a bad or missing HOME never turns a
// path expansion into a hard failure.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}

	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// NormalizeRoot expands ~, makes the path absolute, and verifies it names an
// existing directory. It is the per-root validation step a Query's roots go
// through while becoming a Config.
func NormalizeRoot(path string) (string, error) {
	expanded := ExpandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolving root %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("root %q: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("root %q is not a directory", path)
	}

	return abs, nil
}

// NormalizeRoots normalizes a list of root path strings. An empty list
// normalizes to the current working directory.
func NormalizeRoots(paths []string) ([]string, error) {
	if len(paths) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving current directory: %w", err)
		}
		return []string{cwd}, nil
	}

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		norm, err := NormalizeRoot(p)
		if err != nil {
			return nil, err
		}
		out = append(out, norm)
	}
	return out, nil
}

// RelativeToCWD strips the current working directory prefix from an
// absolute path when possible, otherwise falls back to the path as-is.
// This is the "match record" computation from the data model: emitted
// paths are relative to CWD when that's meaningful, and the full path
// otherwise (e.g. a root outside CWD's tree).
func RelativeToCWD(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	// filepath.Rel happily returns paths that climb out of cwd with "../..";
	// the CWD-stripped form is only useful when the path actually is a
	// descendant; otherwise fall back to the full path string.
	if strings.HasPrefix(rel, "..") {
		return path
	}

	return rel
}

// Basename returns the raw bytes of path's final segment, which is what
// the walker tests the compiled regex against -- OS-faithful, not a
// UTF-8-validated string.
func Basename(path string) []byte {
	return []byte(filepath.Base(path))
}
