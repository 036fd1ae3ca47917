// Package cmd provides the root command and CLI setup for codedoc.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/codedoc/internal/adapter"
	"github.com/mouse-blink/codedoc/internal/config"
	"github.com/mouse-blink/codedoc/internal/controller"
	"github.com/mouse-blink/codedoc/internal/domain"
)

var workflow domain.Workflow
var ui controller.UI
var settings config.Settings

var logLevel = new(slog.LevelVar)
var logger = newLogger(os.Stderr)

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalGoFileAdapter(),
		adapter.NewLocalWorkbookAdapter(),
		adapter.NewLocalClipboardAdapter(),
		logger,
	)
}

var configFlag string
var verboseFlag bool
var plainFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codedoc",
		Short: "Pack source files into one document and unpack them again",
		Long: `codedoc turns a set of source files into a single self-describing document
and reconstructs the files from such a document.

Two encodings are produced:
  - transcript   an annotated Markdown file plus a line manifest
  - tabular      a one-sheet workbook with Path, Metrics and Code columns

Decoding a transcript tolerates loosely structured text: file paths are
recovered from headings, directives and comment lines inside code blocks.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logLevel.Set(slog.LevelWarn)
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}

			loaded, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			settings = loaded

			if _, isTUI := ui.(*controller.TUI); isTUI && plainFlag {
				ui = controller.NewUI(cmd, false)
			}

			logger.Debug("settings loaded", "config", configFlag, "base_dir", settings.Paths.BaseDir)

			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "settings file (TOML)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug details to stderr")
	cmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "plain text output even on a terminal")

	return cmd
}

func newLogger(w io.Writer) *slog.Logger {
	logLevel.Set(slog.LevelWarn)

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
