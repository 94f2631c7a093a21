package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDirsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: "Print the resolved fnm directory layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			base, err := cfg.BaseDirWithDefault()
			if err != nil {
				return err
			}
			installations, err := cfg.InstallationsDir()
			if err != nil {
				return err
			}
			aliases, err := cfg.AliasesDir()
			if err != nil {
				return err
			}
			defaultAlias, err := cfg.DefaultVersionDir()
			if err != nil {
				return err
			}

			ctx.log().Debug("resolved directory layout", "base", base)

			rows := [][]string{
				{"base", base},
				{"installations", installations},
				{"aliases", aliases},
				{"default alias", defaultAlias},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Directory", "Path"}, rows))
			return nil
		},
	}
}
