package fileutil_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fnm/internal/fileutil"
)

func TestEnsureDirCreatesAndIsIdempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "c")

	got, err := fileutil.EnsureDir(target)
	if err != nil {
		t.Fatalf("EnsureDir returned error: %v", err)
	}
	if got != target {
		t.Fatalf("expected %q, got %q", target, got)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("expected directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be a directory", target)
	}

	if _, err := fileutil.EnsureDir(target); err != nil {
		t.Fatalf("second EnsureDir returned error: %v", err)
	}
}

func TestEnsureDirFailsOnFileCollision(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := fileutil.EnsureDir(filepath.Join(file, "child"))
	if err == nil {
		t.Fatal("expected error when parent path is a file")
	}
	if !strings.Contains(err.Error(), "create directory") {
		t.Fatalf("error missing context: %v", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if !fileutil.Exists(dir) {
		t.Fatalf("expected %q to exist", dir)
	}
	if fileutil.Exists(filepath.Join(dir, "missing")) {
		t.Fatal("expected missing path to report false")
	}
}
