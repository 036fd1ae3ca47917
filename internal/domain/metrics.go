package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/codedoc/internal/model"
)

var (
	classRe    = regexp.MustCompile(`\bclass\b`)
	functionRe = regexp.MustCompile(`\b(?:def|func|function|fn)\b`)
	variableRe = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\s*=\s*`)
)

// ComputeMetrics derives Metrics from raw file content. Class, function and
// variable counts are occurrences of `class`, a def-like keyword
// (def/func/function/fn) and the `identifier =` shape.
func ComputeMetrics(content []byte) m.Metrics {
	text := decodeText(content)

	return m.Metrics{
		SizeKB:        float64(len(content)) / 1024,
		CharCount:     utf8.RuneCountInString(text),
		WordCount:     len(strings.Fields(text)),
		LineCount:     strings.Count(text, "\n") + 1,
		ClassCount:    len(classRe.FindAllStringIndex(text, -1)),
		FunctionCount: len(functionRe.FindAllStringIndex(text, -1)),
		VariableCount: len(variableRe.FindAllStringIndex(text, -1)),
	}
}

// decodeText turns bytes into text, replacing invalid UTF-8 sequences.
func decodeText(content []byte) string {
	return strings.ToValidUTF8(string(content), "�")
}

// degradeText is decodeText for content that may be binary: NUL bytes are
// removed as well.
func degradeText(content []byte) string {
	return strings.ReplaceAll(decodeText(content), "\x00", "")
}
