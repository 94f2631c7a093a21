package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fnm/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every resolved setting and where it came from",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			flags := cmd.Root().PersistentFlags()

			rows := [][]string{
				{"node-dist-mirror", cfg.NodeDistMirror.String(), settingOrigin(flags, "node-dist-mirror", config.EnvNodeDistMirror)},
				{"fnm-dir", displayValue(cfg.BaseDir), settingOrigin(flags, "fnm-dir", config.EnvBaseDir)},
				{"multishell-path", displayValue(cfg.MultishellPath()), envOrigin(config.EnvMultishellPath)},
				{"log-level", cfg.LogLevel().String(), settingOrigin(flags, "log-level", config.EnvLogLevel)},
				{"arch", cfg.Arch.String(), settingOrigin(flags, "arch", config.EnvArch)},
				{"version-file-strategy", cfg.VersionFileStrategy().String(), settingOrigin(flags, "version-file-strategy", config.EnvVersionFileStrategy)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Setting", "Value", "Origin"}, rows))
			return nil
		},
	}
}

func settingOrigin(flags *pflag.FlagSet, name, envKey string) string {
	if flags.Changed(name) {
		return "flag"
	}
	return envOrigin(envKey)
}

func envOrigin(envKey string) string {
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		return "env"
	}
	return "default"
}

func displayValue(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}
