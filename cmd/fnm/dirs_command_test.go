package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirsCommandMaterializesLayoutUnderOverride(t *testing.T) {
	base := filepath.Join(t.TempDir(), "fnmroot")

	out, err := runCLI(t, "dirs", "--fnm-dir", base)
	if err != nil {
		t.Fatalf("dirs: %v", err)
	}
	requireContains(t, out, base)

	for _, rel := range []string{"node-versions", "aliases", filepath.Join("aliases", "default")} {
		dir := filepath.Join(base, rel)
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be a directory", dir)
		}
	}
}

func TestDirsCommandHonorsEnvBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "env-root")
	t.Setenv("FNM_DIR", base)

	out, err := runCLI(t, "dirs")
	if err != nil {
		t.Fatalf("dirs: %v", err)
	}
	requireContains(t, out, base)
}
