package main

import (
	"github.com/spf13/cobra"

	"fnm/internal/config"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "fnm",
		Short:         "Fast and simple Node.js version manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig(sourcesFromFlags(cmd))
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("node-dist-mirror", config.DefaultNodeDistMirror, "Mirror serving Node distribution archives (env: "+config.EnvNodeDistMirror+")")
	flags.String("fnm-dir", "", "Root directory of fnm installations (env: "+config.EnvBaseDir+")")
	flags.String("log-level", config.LogLevelInfo.String(), "Log level of fnm commands (env: "+config.EnvLogLevel+")")
	flags.String("arch", config.HostArch().String(), "Architecture of the installed Node binaries (env: "+config.EnvArch+")")
	flags.String("version-file-strategy", config.StrategyLocal.String(), "Strategy for resolving the Node version from version files (env: "+config.EnvVersionFileStrategy+")")

	rootCmd.AddCommand(newDirsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// sourcesFromFlags collects only the flags the caller actually set, so
// untouched flag defaults never shadow environment variables.
func sourcesFromFlags(cmd *cobra.Command) config.Sources {
	flags := cmd.Root().PersistentFlags()
	var src config.Sources
	if flags.Changed("node-dist-mirror") {
		src.NodeDistMirror, _ = flags.GetString("node-dist-mirror")
	}
	if flags.Changed("fnm-dir") {
		src.BaseDir, _ = flags.GetString("fnm-dir")
	}
	if flags.Changed("log-level") {
		src.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("arch") {
		src.Arch, _ = flags.GetString("arch")
	}
	if flags.Changed("version-file-strategy") {
		src.VersionFileStrategy, _ = flags.GetString("version-file-strategy")
	}
	return src
}
