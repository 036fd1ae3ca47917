package controller

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/codedoc/internal/model"
)

const clipboardSource = "clipboard"

var (
	failureColor = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
)

// summaryWriter renders run results as tables. Both UIs print their final
// summaries through it.
type summaryWriter struct {
	w io.Writer
}

func (s summaryWriter) encodeReports(reports []m.EncodeReport) {
	if len(reports) == 0 {
		s.printf("Nothing to encode\n")
		return
	}

	table, buf := newTable([]string{"Format", "Outcome", "Files", "Artifacts"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	for _, report := range reports {
		table.Append([]string{
			string(report.Format),
			outcomeText(report.Outcome),
			fmt.Sprintf("%d/%d", report.Encoded, report.Total),
			joinPaths(report.Artifacts),
		})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	for _, report := range reports {
		s.failures(report.Failures)
		s.warnings(report.Warnings)
	}
}

func (s summaryWriter) presetReports(reports []m.PresetReport) {
	if len(reports) == 0 {
		s.printf("No presets to run\n")
		return
	}

	table, buf := newTable([]string{"Preset", "Format", "Outcome", "Files", "Artifacts"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	failed := 0

	for _, preset := range reports {
		if preset.Err != nil {
			failed++
		}

		if len(preset.Reports) == 0 {
			table.Append([]string{preset.Name, "-", "failed", "-", ""})
			continue
		}

		for _, report := range preset.Reports {
			table.Append([]string{
				preset.Name,
				string(report.Format),
				outcomeText(report.Outcome),
				fmt.Sprintf("%d/%d", report.Encoded, report.Total),
				joinPaths(report.Artifacts),
			})
		}
	}

	table.SetFooter([]string{fmt.Sprintf("Presets %d", len(reports)), "", fmt.Sprintf("Failed %d", failed), "", ""})
	table.Render()
	s.printf("\n%s", buf.String())

	for _, preset := range reports {
		if preset.Err != nil {
			_, _ = failureColor.Fprintf(s.w, "preset %s: %v\n", preset.Name, preset.Err)
		}

		for _, report := range preset.Reports {
			s.failures(report.Failures)
			s.warnings(report.Warnings)
		}
	}
}

func (s summaryWriter) decodeReport(report m.DecodeReport) {
	source := report.Source
	if source == "" {
		source = clipboardSource
	}

	s.printf("Decoded %d block(s) from %s (%s): %d written, %d dropped, %d failed\n",
		report.Blocks, source, report.Format, len(report.Written), report.Dropped, len(report.Failures))

	if report.Outcome != m.OutcomeCompleted {
		s.printf("Outcome: %s\n", outcomeText(report.Outcome))
	}

	if len(report.Written) > 0 {
		table, buf := newTable([]string{"Written to " + string(report.OutputDir)})

		for _, path := range report.Written {
			table.Append([]string{string(path)})
		}

		table.Render()
		s.printf("\n%s", buf.String())
	}

	s.failures(report.Failures)
}

func (s summaryWriter) presets(names []string, presets map[string][]string) {
	if len(names) == 0 {
		s.printf("No presets configured\n")
		return
	}

	table, buf := newTable([]string{"Preset", "Files"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, name := range names {
		count := len(presets[name])
		total += count

		table.Append([]string{name, fmt.Sprintf("%d", count)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Presets %d", len(names)), fmt.Sprintf("%d", total)})
	table.Render()
	s.printf("\n%s", buf.String())
}

func (s summaryWriter) inspection(records []m.FileRecord, failures []m.ItemFailure) {
	table, buf := newTable([]string{"Path", "Size", "Chars", "Words", "Lines", "Classes", "Functions", "Variables"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	var (
		size  uint64
		total m.Metrics
	)

	for _, record := range records {
		if record.Metrics == nil {
			continue
		}

		metrics := *record.Metrics
		bytesLen := uint64(math.Round(metrics.SizeKB * 1024))
		size += bytesLen

		total.CharCount += metrics.CharCount
		total.WordCount += metrics.WordCount
		total.LineCount += metrics.LineCount
		total.ClassCount += metrics.ClassCount
		total.FunctionCount += metrics.FunctionCount
		total.VariableCount += metrics.VariableCount

		table.Append([]string{
			string(record.RelativePath),
			humanize.Bytes(bytesLen),
			humanize.Comma(int64(metrics.CharCount)),
			humanize.Comma(int64(metrics.WordCount)),
			humanize.Comma(int64(metrics.LineCount)),
			fmt.Sprintf("%d", metrics.ClassCount),
			fmt.Sprintf("%d", metrics.FunctionCount),
			fmt.Sprintf("%d", metrics.VariableCount),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(records)),
		humanize.Bytes(size),
		humanize.Comma(int64(total.CharCount)),
		humanize.Comma(int64(total.WordCount)),
		humanize.Comma(int64(total.LineCount)),
		fmt.Sprintf("%d", total.ClassCount),
		fmt.Sprintf("%d", total.FunctionCount),
		fmt.Sprintf("%d", total.VariableCount),
	})

	table.Render()
	s.printf("\n%s", buf.String())
	s.failures(failures)
}

func (s summaryWriter) failures(failures []m.ItemFailure) {
	for _, f := range failures {
		_, _ = failureColor.Fprintf(s.w, "failed %s: %v\n", f.Path, f.Err)
	}
}

func (s summaryWriter) warnings(warnings []m.ItemFailure) {
	for _, w := range warnings {
		_, _ = warningColor.Fprintf(s.w, "warning %s: %v\n", w.Path, w.Err)
	}
}

func (s summaryWriter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.w, format, args...)
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table, &buf
}

func outcomeText(o m.Outcome) string {
	return strings.ReplaceAll(string(o), "_", " ")
}

func joinPaths(paths []m.Path) string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, string(p))
	}

	return strings.Join(out, ", ")
}
