// Package testsupport builds isolated configurations for tests.
package testsupport

import (
	"net/url"
	"path/filepath"
	"testing"

	"fnm/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(config.Config) config.Config

// NewConfig produces a config rooted in a unique temp directory per test, so
// directory materialization never touches real user directories. Options are
// applied in order.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default().WithBaseDir(filepath.Join(t.TempDir(), "fnm"))
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return &cfg
}

// WithBaseDir overrides the base directory on the test config.
func WithBaseDir(dir string) ConfigOption {
	return func(c config.Config) config.Config {
		return c.WithBaseDir(dir)
	}
}

// WithMirror overrides the distribution mirror on the test config. The raw
// value must be a valid absolute URL.
func WithMirror(t testing.TB, raw string) ConfigOption {
	t.Helper()
	return func(c config.Config) config.Config {
		mirror, err := url.Parse(raw)
		if err != nil {
			t.Fatalf("parse test mirror %q: %v", raw, err)
		}
		c.NodeDistMirror = mirror
		return c
	}
}

// WithVersionFileStrategy overrides the version-file strategy on the test
// config.
func WithVersionFileStrategy(strategy config.VersionFileStrategy) ConfigOption {
	return func(c config.Config) config.Config {
		return c.WithVersionFileStrategy(strategy)
	}
}
