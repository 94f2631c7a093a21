// Package fileutil holds small filesystem helpers shared across fnm.
package fileutil

import (
	"fmt"
	"os"
)

// EnsureDir creates path and any missing parents, returning the path. A
// directory that already exists is success, so concurrent invocations
// against the same tree are safe.
func EnsureDir(path string) (string, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("create directory %q: %w", path, err)
	}
	return path, nil
}

// Exists reports whether path currently exists on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
