package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mouse-blink/codedoc/internal/adapter"
	m "github.com/mouse-blink/codedoc/internal/model"
)

const (
	pathColumn    = "Path"
	metricsColumn = "Metrics"
	codeColumn    = "Code"
)

// TabularHeader is the header row of the tabular document.
var TabularHeader = []string{pathColumn, metricsColumn, codeColumn}

// Table is an encoded tabular document, ready for a WorkbookAdapter.
type Table struct {
	Header   []string
	Rows     [][]string
	Encoded  int
	Failures []m.ItemFailure
	Warnings []m.ItemFailure
}

// TabularEncoder renders a file list as one row per file.
type TabularEncoder struct {
	fsAdapter adapter.SourceFSAdapter
	logger    *slog.Logger
}

// NewTabularEncoder constructs a TabularEncoder.
func NewTabularEncoder(fsAdapter adapter.SourceFSAdapter, logger *slog.Logger) *TabularEncoder {
	return &TabularEncoder{fsAdapter: fsAdapter, logger: orDiscard(logger)}
}

// Encode builds one `(path, metrics, code)` row per readable file. Binary
// content is kept in degraded form. Content longer than a cell can hold is
// reported as a warning.
func (e *TabularEncoder) Encode(ctx context.Context, in EncodeInput) (Table, error) {
	reporter := in.reporter()
	out := Table{Header: TabularHeader, Rows: make([][]string, 0, len(in.Files))}

	for i, file := range in.Files {
		if err := ctx.Err(); err != nil {
			return Table{}, err
		}

		record, err := loadRecord(e.fsAdapter, in.Root, file)
		if err != nil {
			e.logger.Warn("skipping unreadable file", "path", string(file), "error", err)
			reporter.Status(fmt.Sprintf("Error processing file: %s", filepath.Base(string(file))))
			out.Failures = append(out.Failures, m.ItemFailure{Path: string(file), Err: err})
			reporter.Progress(i+1, len(in.Files))

			continue
		}

		metrics := ComputeMetrics(record.Content)
		content := degradeText(record.Content)

		if n := utf8.RuneCountInString(content); n > adapter.MaxCellChars {
			e.logger.Warn("cell will be truncated", "path", string(record.RelativePath), "chars", n)
			out.Warnings = append(out.Warnings, m.ItemFailure{
				Path: string(record.RelativePath),
				Err:  fmt.Errorf("%w: %d characters", ErrCellTruncated, n),
			})
		}

		out.Rows = append(out.Rows, []string{string(record.RelativePath), metrics.Pack(in.SizeUnit), content})
		out.Encoded++

		reporter.Progress(i+1, len(in.Files))
	}

	return out, nil
}

// DecodedTable is the result of decoding a tabular document.
type DecodedTable struct {
	Blocks  []m.CodeBlock
	Dropped int
}

// DecodeTable maps the rows of a sheet to code blocks. The first row must be
// a header naming the Path and Code columns. Rows without a path are dropped.
func DecodeTable(rows [][]string) (DecodedTable, error) {
	if len(rows) == 0 {
		return DecodedTable{}, ErrNoTabularHeader
	}

	pathIdx, codeIdx := -1, -1

	for i, name := range rows[0] {
		switch {
		case strings.EqualFold(strings.TrimSpace(name), pathColumn):
			pathIdx = i
		case strings.EqualFold(strings.TrimSpace(name), codeColumn):
			codeIdx = i
		}
	}

	if pathIdx < 0 || codeIdx < 0 {
		return DecodedTable{}, fmt.Errorf("%w: found %q", ErrNoTabularHeader, rows[0])
	}

	var out DecodedTable

	for _, row := range rows[1:] {
		raw := strings.TrimSpace(cell(row, pathIdx))
		if raw == "" {
			out.Dropped++
			continue
		}

		rel := strings.ReplaceAll(raw, `\`, "/")
		out.Blocks = append(out.Blocks, m.CodeBlock{
			Path:     rel,
			Language: LanguageOf(rel),
			Content:  cell(row, codeIdx),
			Style:    StyleOf(raw),
		})
	}

	return out, nil
}

// cell tolerates the short rows spreadsheets return for trailing empty cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}

	return ""
}
