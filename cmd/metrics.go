package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/codedoc/internal/model"
)

var metricsBaseFlag string

// metricsCmd represents the metrics command.
var metricsCmd = newMetricsCmd()

func newMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics [files...]",
		Short: "Show size, line and declaration counts per file",
		Long: `Show the metrics stored in the Metrics column of a workbook for each
selected file, without writing anything. File selection works as for encode.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := runContext(cmd)
			defer stop()

			base := firstNonEmpty(metricsBaseFlag, settings.Paths.BaseDir)

			files, err := resolveFiles(ctx, base, args)
			if err != nil {
				return err
			}

			inspection, err := workflow.Inspect(ctx, m.Path(base), files)
			if err != nil {
				return err
			}

			ui.DisplayInspection(inspection.Records, inspection.Failures)

			return nil
		},
	}
	cmd.Flags().StringVarP(&metricsBaseFlag, "base", "b", "", "directory the file paths are relative to (default paths.base_dir)")

	return cmd
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
