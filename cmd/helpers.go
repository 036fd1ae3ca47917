package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/codedoc/internal/domain"
	m "github.com/mouse-blink/codedoc/internal/model"
)

const (
	formatAll  = "all"
	formatAuto = "auto"
)

var errUnknownFormat = errors.New("unknown format")

// runContext is cancelled on SIGINT or SIGTERM.
func runContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

// parseFormats maps the --format value of encoding commands.
func parseFormats(value string) ([]m.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(m.FormatTranscript), "md", "markdown":
		return []m.Format{m.FormatTranscript}, nil
	case string(m.FormatTabular), "xlsx":
		return []m.Format{m.FormatTabular}, nil
	case formatAll:
		return []m.Format{m.FormatTranscript, m.FormatTabular}, nil
	default:
		return nil, fmt.Errorf("%w %q: want transcript, tabular or all", errUnknownFormat, value)
	}
}

// parseDecodeFormat maps the --format value of decode; auto selects by
// document extension.
func parseDecodeFormat(value string) (m.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", formatAuto:
		return "", nil
	case string(m.FormatTranscript), "md", "markdown":
		return m.FormatTranscript, nil
	case string(m.FormatTabular), "xlsx":
		return m.FormatTabular, nil
	default:
		return "", fmt.Errorf("%w %q: want auto, transcript or tabular", errUnknownFormat, value)
	}
}

// pathStyle returns the --style value, or the configured style when empty.
func pathStyle(value string) (m.PathStyle, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return settings.Style(), nil
	case string(m.PathStyleWindows):
		return m.PathStyleWindows, nil
	case string(m.PathStyleUnix):
		return m.PathStyleUnix, nil
	default:
		return "", fmt.Errorf("unknown path style %q: want windows or unix", value)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}

// resolveFiles returns the files named on the command line, relative to base
// unless absolute, or the configured selection when none are named.
func resolveFiles(ctx context.Context, base string, args []string) ([]m.Path, error) {
	if len(args) == 0 {
		sel := domain.SelectionFromSettings(settings)
		sel.BaseDir = m.Path(base)

		return workflow.Collect(ctx, sel)
	}

	files := make([]m.Path, 0, len(args))

	for _, arg := range args {
		p := filepath.Clean(arg)
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}

		files = append(files, m.Path(p))
	}

	return files, nil
}
