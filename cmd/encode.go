package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/codedoc/internal/controller"
	"github.com/mouse-blink/codedoc/internal/domain"
	m "github.com/mouse-blink/codedoc/internal/model"
)

const encodeLongDescription = `Encode source files into a transcript, a workbook, or both.

Files named on the command line are relative to --base. Without files the
selection configured in the settings file is used: every file below base_dir
except ignored extensions, files and directories, or the specific_files list
when use_file_specific is set.

Each run writes new versioned artifacts into --out and never overwrites an
earlier one:
  <prefix>_NN.md                          transcript
  <prefix>_NN_where_each_file_line_is.md  line manifest
  <prefix>_NN.xlsx                        workbook`

var encodeFormatFlag string
var encodeBaseFlag string
var encodeOutFlag string
var encodeStyleFlag string
var encodePrefixFlag string
var encodeClipboardFlag bool

// encodeCmd represents the encode command.
var encodeCmd = newEncodeCmd()

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [files...]",
		Short: "Encode source files into a single document",
		Long:  encodeLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(encodeFormatFlag)
			if err != nil {
				return err
			}

			style, err := pathStyle(encodeStyleFlag)
			if err != nil {
				return err
			}

			ctx, stop := runContext(cmd)
			defer stop()

			base := firstNonEmpty(encodeBaseFlag, settings.Paths.BaseDir)

			files, err := resolveFiles(ctx, base, args)
			if err != nil {
				return err
			}

			logger.Debug("encoding", "files", len(files), "base", base, "formats", formats)

			if err := ui.Start(controller.WithEncodeMode()); err != nil {
				return err
			}

			reports, err := workflow.Encode(ctx, domain.EncodeRequest{
				Files:            files,
				Root:             m.Path(base),
				OutputDir:        m.Path(firstNonEmpty(encodeOutFlag, settings.Paths.OutputDir)),
				Formats:          formats,
				Style:            style,
				SizeUnit:         settings.Metrics.SizeUnit,
				TranscriptPrefix: firstNonEmpty(encodePrefixFlag, settings.Output.MarkdownFilePrefix),
				TabularPrefix:    firstNonEmpty(encodePrefixFlag, settings.Output.CSVFilePrefix),
				Clipboard:        encodeClipboardFlag,
				Reporter:         ui,
			})

			ui.Close()
			ui.DisplayEncodeReports(reports)

			return err
		},
	}
	cmd.Flags().StringVarP(&encodeFormatFlag, "format", "f", string(m.FormatTranscript), "document format: transcript, tabular or all")
	cmd.Flags().StringVarP(&encodeBaseFlag, "base", "b", "", "directory the file paths are relative to (default paths.base_dir)")
	cmd.Flags().StringVarP(&encodeOutFlag, "out", "o", "", "directory for the artifacts (default paths.output_dir)")
	cmd.Flags().StringVarP(&encodeStyleFlag, "style", "s", "", "path style in documents: windows or unix (default paths.path_style)")
	cmd.Flags().StringVarP(&encodePrefixFlag, "prefix", "p", "", "artifact name prefix (default output.*_file_prefix)")
	cmd.Flags().BoolVar(&encodeClipboardFlag, "clipboard", false, "also copy the transcript to the clipboard")

	return cmd
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
