package adapter

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	m "github.com/mouse-blink/codedoc/internal/model"
)

// MaxCellChars is the longest text a single spreadsheet cell can hold.
const MaxCellChars = excelize.TotalCellChars

// ErrEmptyWorkbook is returned when a workbook has no sheet to read.
var ErrEmptyWorkbook = errors.New("workbook has no sheets")

// WorkbookAdapter persists single-sheet tables.
type WorkbookAdapter interface {
	// RenderSheet encodes header and rows as the first sheet of a new
	// workbook, sizing every column to its longest value.
	RenderSheet(header []string, rows [][]string) ([]byte, error)
	// ReadSheet returns all rows of the first sheet, header included.
	ReadSheet(path m.Path) ([][]string, error)
}

// LocalWorkbookAdapter writes .xlsx files with excelize.
type LocalWorkbookAdapter struct{}

// NewLocalWorkbookAdapter constructs a LocalWorkbookAdapter.
func NewLocalWorkbookAdapter() *LocalWorkbookAdapter {
	return &LocalWorkbookAdapter{}
}

// RenderSheet implements WorkbookAdapter.
func (a *LocalWorkbookAdapter) RenderSheet(header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()

	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)
	widths := make([]int, len(header))

	all := append([][]string{header}, rows...)
	for i, row := range all {
		cells := make([]interface{}, len(row))
		for j, value := range row {
			cells[j] = value

			if j < len(widths) {
				widths[j] = max(widths[j], utf8.RuneCountInString(value))
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}

		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	for j, width := range widths {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return nil, err
		}

		if err := f.SetColWidth(sheet, col, col, float64(max(1, min(width, excelize.MaxColumnWidth)))); err != nil {
			return nil, fmt.Errorf("size column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// ReadSheet implements WorkbookAdapter.
func (a *LocalWorkbookAdapter) ReadSheet(path m.Path) ([][]string, error) {
	f, err := excelize.OpenFile(string(path))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	return f.GetRows(sheets[0])
}
