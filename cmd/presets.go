package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/codedoc/internal/controller"
	"github.com/mouse-blink/codedoc/internal/domain"
	m "github.com/mouse-blink/codedoc/internal/model"
)

const presetsLongDescription = `Work with the presets of the settings file.

A preset is a named list of files relative to paths.base_dir:

  [presets]
  api = ["api/server.py", "api/models.py"]

Running a preset writes its artifacts into <output_dir>/<preset> using the
preset name as prefix.`

var presetsFormatFlag string
var presetsBaseFlag string
var presetsOutFlag string
var presetsStyleFlag string

// presetsCmd represents the presets command.
var presetsCmd = newPresetsCmd()

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List or run configured presets",
		Long:  presetsLongDescription,
	}
	cmd.AddCommand(newPresetsListCmd(), newPresetsRunCmd())

	return cmd
}

func newPresetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured presets",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ui.DisplayPresets(settings.PresetNames(), settings.Presets)
			return nil
		},
	}
}

func newPresetsRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [names...]",
		Short: "Encode every named preset, or all presets when none are named",
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(presetsFormatFlag)
			if err != nil {
				return err
			}

			style, err := pathStyle(presetsStyleFlag)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = settings.PresetNames()
			}

			ctx, stop := runContext(cmd)
			defer stop()

			if err := ui.Start(controller.WithPresetsMode()); err != nil {
				return err
			}

			reports, err := workflow.EncodePresets(ctx, domain.PresetRequest{
				Presets:   settings.Presets,
				Names:     names,
				Root:      m.Path(firstNonEmpty(presetsBaseFlag, settings.Paths.BaseDir)),
				OutputDir: m.Path(firstNonEmpty(presetsOutFlag, settings.Paths.OutputDir)),
				Formats:   formats,
				Style:     style,
				SizeUnit:  settings.Metrics.SizeUnit,
				Reporter:  ui,
			})

			ui.Close()
			ui.DisplayPresetReports(reports)

			return err
		},
	}
	cmd.Flags().StringVarP(&presetsFormatFlag, "format", "f", string(m.FormatTranscript), "document format: transcript, tabular or all")
	cmd.Flags().StringVarP(&presetsBaseFlag, "base", "b", "", "directory the preset paths are relative to (default paths.base_dir)")
	cmd.Flags().StringVarP(&presetsOutFlag, "out", "o", "", "parent directory of the preset outputs (default paths.output_dir)")
	cmd.Flags().StringVarP(&presetsStyleFlag, "style", "s", "", "path style in documents: windows or unix (default paths.path_style)")

	return cmd
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
