package model

import "fmt"

// Metrics holds naive per-file statistics. Counts of classes, functions and
// variables come from textual pattern occurrence, not from parsing.
type Metrics struct {
	SizeKB        float64
	CharCount     int
	WordCount     int
	LineCount     int
	ClassCount    int
	FunctionCount int
	VariableCount int
}

// Pack renders the metrics as the compact string stored in the tabular
// document, e.g. "0.01KB,C6,W3,L2,CL0,F0,V1".
func (m Metrics) Pack(unit string) string {
	return fmt.Sprintf("%.2f%s,C%d,W%d,L%d,CL%d,F%d,V%d",
		m.SizeKB, unit,
		m.CharCount, m.WordCount, m.LineCount,
		m.ClassCount, m.FunctionCount, m.VariableCount,
	)
}

// FileRecord is a file selected for one encode pass.
type FileRecord struct {
	RelativePath Path // slash-separated, relative to the encode root
	AbsolutePath Path
	IsBinary     bool
	Content      []byte
	Metrics      *Metrics
}
