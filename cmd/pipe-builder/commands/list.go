package commands

import (
	"github.com/FilipeBeck/pipe-builder/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List buildings, tasks and transforms without building",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return c.app.List(cmd.Context(), cmd.OutOrStdout(), app.ListOptions{ConfigPath: configPath})
		},
	}
}
