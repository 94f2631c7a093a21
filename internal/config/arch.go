package config

import (
	"fmt"
	"runtime"
)

// Arch identifies which Node binary variant to fetch from the mirror. The
// tokens match the architecture component of upstream release artifact
// names.
type Arch string

const (
	ArchX86     Arch = "x86"
	ArchX64     Arch = "x64"
	ArchArm64   Arch = "arm64"
	ArchArmv7l  Arch = "armv7l"
	ArchPpc64le Arch = "ppc64le"
	ArchPpc64   Arch = "ppc64"
	ArchS390x   Arch = "s390x"
)

// SupportedArchs lists the accepted architecture variants.
func SupportedArchs() []Arch {
	return []Arch{ArchX86, ArchX64, ArchArm64, ArchArmv7l, ArchPpc64le, ArchPpc64, ArchS390x}
}

// ParseArch maps a lowercase token onto its Arch variant.
func ParseArch(token string) (Arch, error) {
	for _, arch := range SupportedArchs() {
		if token == string(arch) {
			return arch, nil
		}
	}
	return "", fmt.Errorf("arch: unsupported value %q (accepted values: %s)", token, acceptedTokens(SupportedArchs()))
}

// HostArch returns the architecture of the running fnm binary, the default
// when no override is supplied.
func HostArch() Arch {
	switch runtime.GOARCH {
	case "386":
		return ArchX86
	case "arm64":
		return ArchArm64
	case "arm":
		return ArchArmv7l
	case "ppc64le":
		return ArchPpc64le
	case "ppc64":
		return ArchPpc64
	case "s390x":
		return ArchS390x
	default:
		return ArchX64
	}
}

func (a Arch) String() string {
	return string(a)
}
