package commands

import (
	"github.com/FilipeBeck/pipe-builder/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [-- --flag[=value]...]",
		Short: "Build every building of the pipefile",
		Long: "Build every building of the pipefile.\n\n" +
			"Arguments after \"--\" are build flags such as --release or --mode=prod.\n" +
			"Buildings and hooks guarded by a flag only run when the flag is present.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			defines, _ := cmd.Flags().GetStringArray("define")
			watch, _ := cmd.Flags().GetBool("watch")
			tolerate, _ := cmd.Flags().GetBool("tolerate-failures")
			compare, _ := cmd.Flags().GetString("compare")
			metricsFile, _ := cmd.Flags().GetString("metrics-file")
			concurrency, _ := cmd.Flags().GetInt("concurrency")

			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath:       configPath,
				FlagSet:          cmd.Flags(),
				Defines:          defines,
				Args:             args,
				Watch:            watch,
				TolerateFailures: tolerate,
				Compare:          compare,
				MetricsFile:      metricsFile,
				Concurrency:      concurrency,
			})
		},
	}
	cmd.Flags().Bool("overwrite-all", false, "Skip change detection and rewrite every file")
	cmd.Flags().StringArrayP("define", "F", nil, "Set a build flag as name or name=value (repeatable)")
	cmd.Flags().BoolP("watch", "w", false, "Rebuild whenever a source file changes")
	cmd.Flags().Bool("tolerate-failures", false, "Exit successfully even when pipelines fail")
	cmd.Flags().String("compare", "mtime", "Change detection mode: mtime or content")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file after the build")
	cmd.Flags().Int("concurrency", 0, "Maximum number of pipelines running at once (0 means unlimited)")
	return cmd
}
