package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"fnm/internal/fileutil"
)

// BaseDirWithDefault resolves the root directory holding all fnm state. It
// is evaluated on every call, not cached at construction:
//
//  1. An explicit override is returned unchanged, with no existence check.
//  2. Otherwise a pre-existing legacy install at ~/.fnm wins, so upgrades
//     never abandon a populated legacy directory for an empty modern one.
//  3. Otherwise the platform data directory gets an fnm subdirectory,
//     created on first use.
//
// Resolution fails only when neither the home directory nor the platform
// data directory can be determined.
func (c *Config) BaseDirWithDefault() (string, error) {
	if c.BaseDir != "" {
		return c.BaseDir, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		legacy := filepath.Join(home, legacyBaseDirName)
		if fileutil.Exists(legacy) {
			return legacy, nil
		}
	}

	if xdg.DataHome == "" {
		return "", errors.New("resolve base directory: no home or data directory available")
	}
	return fileutil.EnsureDir(filepath.Join(xdg.DataHome, modernBaseDirName))
}

// InstallationsDir returns the directory holding each installed Node
// version, creating it if absent.
func (c *Config) InstallationsDir() (string, error) {
	base, err := c.BaseDirWithDefault()
	if err != nil {
		return "", err
	}
	return fileutil.EnsureDir(filepath.Join(base, installationsDirName))
}

// AliasesDir returns the directory holding named pointers to installed
// versions, creating it if absent.
func (c *Config) AliasesDir() (string, error) {
	base, err := c.BaseDirWithDefault()
	if err != nil {
		return "", err
	}
	return fileutil.EnsureDir(filepath.Join(base, aliasesDirName))
}

// DefaultVersionDir returns the alias consulted when no other version is
// selected, creating it if absent.
func (c *Config) DefaultVersionDir() (string, error) {
	aliases, err := c.AliasesDir()
	if err != nil {
		return "", err
	}
	return fileutil.EnsureDir(filepath.Join(aliases, defaultAliasName))
}
