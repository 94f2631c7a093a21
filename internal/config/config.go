package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Environment variables recognized as the middle resolution tier.
const (
	EnvNodeDistMirror      = "FNM_NODE_DIST_MIRROR"
	EnvBaseDir             = "FNM_DIR"
	EnvMultishellPath      = "FNM_MULTISHELL_PATH"
	EnvLogLevel            = "FNM_LOGLEVEL"
	EnvArch                = "FNM_ARCH"
	EnvVersionFileStrategy = "FNM_VERSION_FILE_STRATEGY"
)

// Sources carries the explicit, caller-supplied values for one invocation,
// normally collected from command-line flags. An empty string means the
// setting was not supplied and resolution falls through to the environment
// variable and then the compiled-in default. The multishell path has no
// entry here: it is injected by shell integration through
// FNM_MULTISHELL_PATH only.
type Sources struct {
	NodeDistMirror      string
	BaseDir             string
	LogLevel            string
	Arch                string
	VersionFileStrategy string
}

// Config encapsulates every resolved fnm setting. It is constructed once per
// invocation and read-only afterwards; two configs built from identical
// sources are interchangeable.
type Config struct {
	// NodeDistMirror is the mirror serving Node distribution archives.
	// Always an absolute URL.
	NodeDistMirror *url.URL

	// BaseDir is the explicit root override for all fnm state. Empty means
	// unset; when set it is never stat'd or created by resolution.
	BaseDir string

	// Arch selects which Node binary variant to fetch.
	Arch Arch

	multishellPath      string
	logLevel            LogLevel
	versionFileStrategy VersionFileStrategy
}

// Load resolves a configuration from the given explicit sources, the FNM_*
// environment, and compiled-in defaults, in that order of precedence. Any
// malformed value, explicit or environment-supplied, is an error; nothing
// silently downgrades to a default.
func Load(src Sources) (*Config, error) {
	cfg := Default()

	if raw := resolveSetting(src.NodeDistMirror, EnvNodeDistMirror); raw != "" {
		mirror, err := parseMirrorURL(raw)
		if err != nil {
			return nil, err
		}
		cfg.NodeDistMirror = mirror
	}

	if dir := resolveSetting(src.BaseDir, EnvBaseDir); dir != "" {
		cfg.BaseDir = dir
	}

	if path, ok := os.LookupEnv(EnvMultishellPath); ok && strings.TrimSpace(path) != "" {
		cfg.multishellPath = strings.TrimSpace(path)
	}

	if token := resolveSetting(src.LogLevel, EnvLogLevel); token != "" {
		level, err := ParseLogLevel(token)
		if err != nil {
			return nil, err
		}
		cfg.logLevel = level
	}

	if token := resolveSetting(src.Arch, EnvArch); token != "" {
		arch, err := ParseArch(token)
		if err != nil {
			return nil, err
		}
		cfg.Arch = arch
	}

	if token := resolveSetting(src.VersionFileStrategy, EnvVersionFileStrategy); token != "" {
		strategy, err := ParseVersionFileStrategy(token)
		if err != nil {
			return nil, err
		}
		cfg.versionFileStrategy = strategy
	}

	return &cfg, nil
}

// LogLevel returns the diagnostic verbosity for this invocation.
func (c *Config) LogLevel() LogLevel {
	return c.logLevel
}

// MultishellPath returns the shell-integration symlink path, or "" when the
// invocation is not running under an evaluated shell setup.
func (c *Config) MultishellPath() string {
	return c.multishellPath
}

// VersionFileStrategy returns the policy governing project version-file
// lookup.
func (c *Config) VersionFileStrategy() VersionFileStrategy {
	return c.versionFileStrategy
}

// WithBaseDir returns a copy of the config with the base directory override
// replaced. Intended for programmatic construction in tests.
func (c Config) WithBaseDir(dir string) Config {
	c.BaseDir = dir
	return c
}

// WithLogLevel returns a copy of the config with the log level replaced.
func (c Config) WithLogLevel(level LogLevel) Config {
	c.logLevel = level
	return c
}

// WithVersionFileStrategy returns a copy of the config with the version-file
// strategy replaced.
func (c Config) WithVersionFileStrategy(strategy VersionFileStrategy) Config {
	c.versionFileStrategy = strategy
	return c
}

func resolveSetting(explicit, envKey string) string {
	if value := strings.TrimSpace(explicit); value != "" {
		return value
	}
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return ""
}

func parseMirrorURL(raw string) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("node-dist-mirror: parse %q: %w", raw, err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("node-dist-mirror: %q is not an absolute URL", raw)
	}
	return parsed, nil
}

func acceptedTokens[T ~string](values []T) string {
	tokens := make([]string, len(values))
	for i, value := range values {
		tokens[i] = string(value)
	}
	return strings.Join(tokens, ", ")
}
