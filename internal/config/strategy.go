package config

import "fmt"

// VersionFileStrategy governs how the version resolver searches for a
// project's declared Node version.
type VersionFileStrategy string

const (
	// StrategyLocal consults only the current directory.
	StrategyLocal VersionFileStrategy = "local"
	// StrategyRecursive walks the current directory and all parents.
	StrategyRecursive VersionFileStrategy = "recursive"
)

// VersionFileStrategies lists the accepted strategy variants.
func VersionFileStrategies() []VersionFileStrategy {
	return []VersionFileStrategy{StrategyLocal, StrategyRecursive}
}

// ParseVersionFileStrategy maps a lowercase token onto its strategy variant.
func ParseVersionFileStrategy(token string) (VersionFileStrategy, error) {
	for _, strategy := range VersionFileStrategies() {
		if token == string(strategy) {
			return strategy, nil
		}
	}
	return "", fmt.Errorf("version-file-strategy: unsupported value %q (accepted values: %s)", token, acceptedTokens(VersionFileStrategies()))
}

func (s VersionFileStrategy) String() string {
	return string(s)
}
