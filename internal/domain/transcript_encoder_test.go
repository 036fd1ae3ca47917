package domain

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/codedoc/internal/adapter"
	m "github.com/mouse-blink/codedoc/internal/model"
)

type fixtureFile struct {
	rel     string
	content string
}

// writeFixture creates files below root and returns their absolute paths in
// the given order.
func writeFixture(t *testing.T, root string, files ...fixtureFile) []m.Path {
	t.Helper()

	paths := make([]m.Path, 0, len(files))

	for _, f := range files {
		abs := filepath.Join(root, filepath.FromSlash(f.rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(f.content), 0o600))

		paths = append(paths, m.Path(abs))
	}

	return paths
}

type recordingReporter struct {
	statuses []string
	progress [][2]int
}

func (r *recordingReporter) Status(message string) { r.statuses = append(r.statuses, message) }

func (r *recordingReporter) Progress(done, total int) {
	r.progress = append(r.progress, [2]int{done, total})
}

func TestTranscriptEncoder_Encode(t *testing.T) {
	root := t.TempDir()
	files := writeFixture(t, root,
		fixtureFile{rel: "a.py", content: "x = 1"},
		fixtureFile{rel: "b/c.txt", content: "hello"},
	)

	enc := NewTranscriptEncoder(adapter.NewLocalSourceFSAdapter(), nil)
	reporter := &recordingReporter{}

	got, err := enc.Encode(context.Background(), EncodeInput{
		Files:    files,
		Root:     m.Path(root),
		Style:    m.PathStyleUnix,
		Reporter: reporter,
	})
	require.NoError(t, err)

	want := "# Project Details\n\n" +
		"# Table of Contents\n" +
		"- [a.py](#a-py)\n" +
		"- [b/c.txt](#b-c-txt)\n" +
		"\n\n" +
		"# ./a.py\n## File: ./a.py\n\n```py\n# ./a.py\nx = 1\n```\n\n---\n\n" +
		"# ./b/c.txt\n## File: ./b/c.txt\n\n```txt\n# ./b/c.txt\nhello\n```\n\n---\n\n"

	assert.Equal(t, want, got.Document)
	assert.Equal(t, []m.ManifestEntry{
		{DisplayPath: "./a.py", StartLine: 8, EndLine: 17},
		{DisplayPath: "./b/c.txt", StartLine: 18, EndLine: 27},
	}, got.Manifest)
	assert.Equal(t, 2, got.Encoded)
	assert.Empty(t, got.Failures)
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, reporter.progress)
}

func TestTranscriptEncoder_ManifestSlicesSections(t *testing.T) {
	root := t.TempDir()
	files := writeFixture(t, root,
		fixtureFile{rel: "main.go", content: "package main\n\nfunc main() {}\n"},
		fixtureFile{rel: "img.png", content: "\x89PNG\x00\x00data"},
		fixtureFile{rel: "docs/readme.md", content: "# Title\n\n```sh\nmake\n```\n"},
		fixtureFile{rel: "empty.txt", content: ""},
	)

	got, err := NewTranscriptEncoder(adapter.NewLocalSourceFSAdapter(), nil).Encode(context.Background(), EncodeInput{
		Files: files,
		Root:  m.Path(root),
		Style: m.PathStyleWindows,
	})
	require.NoError(t, err)
	require.Len(t, got.Manifest, 4)

	lines := strings.Split(got.Document, "\n")

	for i, entry := range got.Manifest {
		section := lines[entry.StartLine-1 : entry.EndLine]

		if i > 0 {
			assert.GreaterOrEqual(t, entry.StartLine, got.Manifest[i-1].EndLine+1)
		}

		if entry.DisplayPath == `..\img.png` {
			assert.Equal(t, []string{`# File: ..\img.png`, "", "**Binary file cannot be displayed.**", "", "---"}, section)
			continue
		}

		assert.Equal(t, "# "+entry.DisplayPath, section[0])
		assert.Equal(t, "## File: "+entry.DisplayPath, section[1])
		assert.Equal(t, "---", section[len(section)-2])
		assert.Empty(t, section[len(section)-1])
	}

	assert.Equal(t, len(lines), got.Manifest[3].EndLine+1, "last section ends the document")
}

func TestTranscriptEncoder_LengthensFence(t *testing.T) {
	root := t.TempDir()
	files := writeFixture(t, root, fixtureFile{rel: "README.md", content: "Run:\n```sh\nmake\n```"})

	got, err := NewTranscriptEncoder(adapter.NewLocalSourceFSAdapter(), nil).Encode(context.Background(), EncodeInput{
		Files: files,
		Root:  m.Path(root),
		Style: m.PathStyleUnix,
	})
	require.NoError(t, err)

	assert.Contains(t, got.Document, "````md\n# ./README.md\nRun:\n```sh\nmake\n```\n````\n")
}

func TestTranscriptEncoder_UnreadableFile(t *testing.T) {
	root := t.TempDir()
	files := writeFixture(t, root, fixtureFile{rel: "a.py", content: "x = 1"})
	files = append([]m.Path{m.Path(filepath.Join(root, "missing.py"))}, files...)
	reporter := &recordingReporter{}

	got, err := NewTranscriptEncoder(adapter.NewLocalSourceFSAdapter(), nil).Encode(context.Background(), EncodeInput{
		Files:    files,
		Root:     m.Path(root),
		Style:    m.PathStyleUnix,
		Reporter: reporter,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, got.Encoded)
	require.Len(t, got.Failures, 1)
	require.ErrorIs(t, got.Failures[0].Err, ErrFileRead)
	assert.Equal(t, []string{"Error processing file: missing.py"}, reporter.statuses)
	require.Len(t, got.Manifest, 1)
	assert.Equal(t, "./a.py", got.Manifest[0].DisplayPath)
}

func TestTranscriptEncoder_EmptyInput(t *testing.T) {
	got, err := NewTranscriptEncoder(adapter.NewLocalSourceFSAdapter(), nil).Encode(context.Background(), EncodeInput{
		Root:  m.Path(t.TempDir()),
		Style: m.PathStyleUnix,
	})
	require.NoError(t, err)

	assert.Equal(t, "# Project Details\n\n# Table of Contents\n\n\n", got.Document)
	assert.Empty(t, got.Manifest)
	assert.Zero(t, got.Encoded)
}

func TestTranscriptEncoder_Cancelled(t *testing.T) {
	root := t.TempDir()
	files := writeFixture(t, root, fixtureFile{rel: "a.py", content: "x = 1"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := NewTranscriptEncoder(adapter.NewLocalSourceFSAdapter(), nil).Encode(ctx, EncodeInput{
		Files: files,
		Root:  m.Path(root),
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got.Document)
}

func TestRenderManifest(t *testing.T) {
	got := RenderManifest([]m.ManifestEntry{
		{DisplayPath: "./a.py", StartLine: 8, EndLine: 17},
		{DisplayPath: "./b/c.txt", StartLine: 18, EndLine: 27},
	}, "project_00.md")

	assert.True(t, strings.HasPrefix(got, "# Where each file is in project_00.md\n"))
	assert.Contains(t, got, "sed -n '12,19p' project_00.md")
	assert.True(t, strings.HasSuffix(got,
		"## File: ./a.py\nLine = 8, Starts = 10, Ends = 18\n\n"+
			"## File: ./b/c.txt\nLine = 18, Starts = 20, Ends = 28\n\n"))
}
