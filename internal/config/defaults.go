package config

import "net/url"

// DefaultNodeDistMirror is the upstream distribution mirror used when no
// override is supplied.
const DefaultNodeDistMirror = "https://nodejs.org/dist"

const (
	legacyBaseDirName    = ".fnm"
	modernBaseDirName    = "fnm"
	installationsDirName = "node-versions"
	aliasesDirName       = "aliases"
	defaultAliasName     = "default"
)

// Default returns a Config populated with compiled-in defaults: the upstream
// mirror, no base directory override, no multishell path, info logging, the
// host architecture, and local version-file lookup.
func Default() Config {
	mirror, err := url.Parse(DefaultNodeDistMirror)
	if err != nil {
		panic("config: default mirror URL does not parse: " + err.Error())
	}
	return Config{
		NodeDistMirror:      mirror,
		Arch:                HostArch(),
		logLevel:            LogLevelInfo,
		versionFileStrategy: StrategyLocal,
	}
}
