package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/codedoc/internal/controller"
	"github.com/mouse-blink/codedoc/internal/domain"
	m "github.com/mouse-blink/codedoc/internal/model"
)

const decodeLongDescription = `Reconstruct files from a transcript or workbook.

The document is read from the given path, or from the clipboard with
--clipboard. A .xlsx document is decoded as a workbook; anything else as a
transcript. Every recovered file is written below --out; paths that would
leave it are rejected.

With --declaration NAME, each block replaces only the declaration called NAME
(class, function, struct...) inside the existing destination file. A
"## Declaration: NAME" line inside a section does the same for that block.`

var decodeOutFlag string
var decodeFormatFlag string
var decodeClipboardFlag bool
var decodeDeclarationFlag string

var errNoDocument = errors.New("a document path or --clipboard is required")

// decodeCmd represents the decode command.
var decodeCmd = newDecodeCmd()

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [document]",
		Short: "Reconstruct files from a document",
		Long:  decodeLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !decodeClipboardFlag {
				return errNoDocument
			}

			format, err := parseDecodeFormat(decodeFormatFlag)
			if err != nil {
				return err
			}

			var source m.Path
			if len(args) == 1 {
				source = m.Path(args[0])
			}

			ctx, stop := runContext(cmd)
			defer stop()

			if err := ui.Start(controller.WithDecodeMode()); err != nil {
				return err
			}

			report, err := workflow.Decode(ctx, domain.DecodeRequest{
				Source:            source,
				Clipboard:         decodeClipboardFlag,
				Format:            format,
				OutputDir:         m.Path(decodeOutFlag),
				DeclarationTarget: decodeDeclarationFlag,
				Reporter:          ui,
			})

			ui.Close()

			if err != nil {
				return err
			}

			ui.DisplayDecodeReport(report)

			return nil
		},
	}
	cmd.Flags().StringVarP(&decodeOutFlag, "out", "o", "", "directory to write the recovered files into")
	cmd.Flags().StringVarP(&decodeFormatFlag, "format", "f", formatAuto, "document format: auto, transcript or tabular")
	cmd.Flags().BoolVar(&decodeClipboardFlag, "clipboard", false, "read a transcript from the clipboard")
	cmd.Flags().StringVarP(&decodeDeclarationFlag, "declaration", "d", "", "replace only this declaration inside existing files")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
