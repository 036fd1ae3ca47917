package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pythonSource = "import os\n" +
	"\n" +
	"class Foo:\n" +
	"    def a(self):\n" +
	"        return 1\n" +
	"\n" +
	"    def b(self):\n" +
	"        return 2\n" +
	"\n" +
	"\n" +
	"@decorator\n" +
	"class Bar:\n" +
	"    pass\n"

const goSource = "package x\n" +
	"\n" +
	"// Server serves.\n" +
	"type Server struct{}\n" +
	"\n" +
	"// Start starts.\n" +
	"func (s *Server) Start() error {\n" +
	"\treturn nil\n" +
	"}\n" +
	"\n" +
	"// Stop stops.\n" +
	"func (s *Server) Stop() {}\n"

func TestFindDeclarationSpan(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		target    string
		startLine int
		endLine   int
		text      string
	}{
		{
			name:      "python class stops before the next decorated sibling",
			src:       pythonSource,
			target:    "Foo",
			startLine: 3,
			endLine:   8,
			text:      "class Foo:\n    def a(self):\n        return 1\n\n    def b(self):\n        return 2",
		},
		{
			name:      "nested method stops at its sibling",
			src:       pythonSource,
			target:    "a",
			startLine: 4,
			endLine:   5,
			text:      "def a(self):\n        return 1",
		},
		{
			name:      "last declaration runs to EOF",
			src:       pythonSource,
			target:    "Bar",
			startLine: 12,
			endLine:   13,
			text:      "class Bar:\n    pass",
		},
		{
			name:      "go method with receiver excludes the next doc comment",
			src:       goSource,
			target:    "Start",
			startLine: 7,
			endLine:   9,
			text:      "func (s *Server) Start() error {\n\treturn nil\n}",
		},
		{
			name:      "go type",
			src:       goSource,
			target:    "Server",
			startLine: 4,
			endLine:   4,
			text:      "type Server struct{}",
		},
		{
			name:      "dotted name resolves a member",
			src:       pythonSource,
			target:    "Foo.b",
			startLine: 7,
			endLine:   8,
			text:      "def b(self):\n        return 2",
		},
		{
			name:      "javascript modifiers",
			src:       "export default class App {\n  render() {}\n}\n\nasync function load() {\n  return 1\n}\n",
			target:    "load",
			startLine: 5,
			endLine:   7,
			text:      "async function load() {\n  return 1\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := FindDeclarationSpan(tt.src, tt.target)
			require.True(t, ok)

			assert.Equal(t, tt.startLine, span.StartLine)
			assert.Equal(t, tt.endLine, span.EndLine)
			assert.Equal(t, tt.text, tt.src[span.Start:span.End])
		})
	}
}

func TestFindDeclarationSpan_NotFound(t *testing.T) {
	_, ok := FindDeclarationSpan(pythonSource, "Missing")
	assert.False(t, ok)

	_, ok = FindDeclarationSpan(pythonSource, "os")
	assert.False(t, ok, "an import is not a declaration")

	_, ok = FindDeclarationSpan("", "Foo")
	assert.False(t, ok)

	_, ok = FindDeclarationSpan(pythonSource, "Bar.a")
	assert.False(t, ok, "a is not a member of Bar")

	_, ok = FindDeclarationSpan(pythonSource, "Foo.Foo")
	assert.False(t, ok, "the outer declaration line is not its own member")
}

func TestReplaceDeclaration(t *testing.T) {
	got, ok := ReplaceDeclaration(goSource, "Start", "func (s *Server) Start() error {\n\treturn errStart\n}")
	require.True(t, ok)

	assert.Equal(t, "package x\n"+
		"\n"+
		"// Server serves.\n"+
		"type Server struct{}\n"+
		"\n"+
		"// Start starts.\n"+
		"func (s *Server) Start() error {\n"+
		"\treturn errStart\n"+
		"}\n"+
		"\n"+
		"// Stop stops.\n"+
		"func (s *Server) Stop() {}\n", got)

	got, ok = ReplaceDeclaration(pythonSource, "a", "def a(self):\n        return 42")
	require.True(t, ok)
	assert.Contains(t, got, "class Foo:\n    def a(self):\n        return 42\n\n    def b(self):")
}
