package main

import (
	"strings"
	"testing"
)

func TestConfigShowReportsValuesAndOrigins(t *testing.T) {
	t.Setenv("FNM_VERSION_FILE_STRATEGY", "recursive")

	out, err := runCLI(t, "config", "show", "--arch", "arm64")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}

	requireContains(t, out, "https://nodejs.org/dist")
	requireContains(t, out, "recursive")
	requireContains(t, out, "arm64")
	requireContains(t, out, "flag")
	requireContains(t, out, "env")
	requireContains(t, out, "default")
	requireContains(t, out, "(not set)")
}

func TestConfigShowFlagBeatsEnv(t *testing.T) {
	t.Setenv("FNM_VERSION_FILE_STRATEGY", "recursive")

	out, err := runCLI(t, "config", "show", "--version-file-strategy", "local")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "local")
	if strings.Contains(out, "recursive") {
		t.Fatalf("expected flag value to shadow env value, got:\n%s", out)
	}
}
