package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mouse-blink/codedoc/internal/adapter"
	m "github.com/mouse-blink/codedoc/internal/model"
)

const (
	transcriptTitle = "# Project Details\n\n"
	tocTitle        = "# Table of Contents\n"
	binaryNotice    = "**Binary file cannot be displayed.**"
	minFenceLen     = 3
)

var backtickRunRe = regexp.MustCompile("(?m)^[ \t]*(`{3,})")

// manifestHeader precedes the manifest entries. %[1]s is the transcript file
// name.
const manifestHeader = "# Where each file is in %[1]s\n\n" +
	"Every entry below gives the line range of one file section. `Line` is the\n" +
	"section heading, `Starts` is two lines below it and `Ends` is one past the\n" +
	"last line of the section. To print the section with `Line = 12, Ends = 20`:\n\n" +
	"```sh\n" +
	"sed -n '12,19p' %[1]s\n" +
	"```\n\n"

// Reporter receives status lines and progress from a run. Implementations
// must tolerate calls after their consumer has gone away.
type Reporter interface {
	Status(message string)
	Progress(done, total int)
}

type nopReporter struct{}

func (nopReporter) Status(string)     {}
func (nopReporter) Progress(int, int) {}

// EncodeInput is the file selection handed to an encoder.
type EncodeInput struct {
	Files    []m.Path // absolute paths, encoded in this order
	Root     m.Path   // relative paths are computed against Root
	Style    m.PathStyle
	SizeUnit string
	Reporter Reporter
}

func (in EncodeInput) reporter() Reporter {
	if in.Reporter == nil {
		return nopReporter{}
	}

	return in.Reporter
}

// Transcript is an encoded transcript document with its manifest.
type Transcript struct {
	Document string
	Manifest []m.ManifestEntry
	Encoded  int
	Failures []m.ItemFailure
}

// TranscriptEncoder renders a file list as a Markdown transcript.
type TranscriptEncoder struct {
	fsAdapter adapter.SourceFSAdapter
	logger    *slog.Logger
}

// NewTranscriptEncoder constructs a TranscriptEncoder.
func NewTranscriptEncoder(fsAdapter adapter.SourceFSAdapter, logger *slog.Logger) *TranscriptEncoder {
	return &TranscriptEncoder{fsAdapter: fsAdapter, logger: orDiscard(logger)}
}

// Encode builds the transcript. Files that cannot be read are reported and
// skipped. The context is checked before every file; on cancellation the
// partial transcript is discarded and ctx.Err() returned.
func (e *TranscriptEncoder) Encode(ctx context.Context, in EncodeInput) (Transcript, error) {
	reporter := in.reporter()

	var doc strings.Builder

	doc.WriteString(transcriptTitle)
	doc.WriteString(e.tableOfContents(in))
	doc.WriteString("\n\n")

	line := strings.Count(doc.String(), "\n") + 1
	out := Transcript{Manifest: make([]m.ManifestEntry, 0, len(in.Files))}

	for i, file := range in.Files {
		if err := ctx.Err(); err != nil {
			return Transcript{}, err
		}

		record, err := loadRecord(e.fsAdapter, in.Root, file)
		if err != nil {
			e.logger.Warn("skipping unreadable file", "path", string(file), "error", err)
			reporter.Status(fmt.Sprintf("Error processing file: %s", filepath.Base(string(file))))
			out.Failures = append(out.Failures, m.ItemFailure{Path: string(file), Err: err})
			reporter.Progress(i+1, len(in.Files))

			continue
		}

		display := FormatPath(string(record.RelativePath), in.Style)

		var section string
		if record.IsBinary {
			section = binarySection(display)
		} else {
			section = textSection(display, string(record.RelativePath), decodeText(record.Content))
		}

		lines := strings.Count(section, "\n")
		out.Manifest = append(out.Manifest, m.ManifestEntry{
			DisplayPath: display,
			StartLine:   line,
			EndLine:     line + lines - 1,
		})
		line += lines

		doc.WriteString(section)

		out.Encoded++

		e.logger.Debug("encoded file", "path", display, "binary", record.IsBinary, "lines", lines)
		reporter.Progress(i+1, len(in.Files))
	}

	out.Document = doc.String()

	return out, nil
}

func (e *TranscriptEncoder) tableOfContents(in EncodeInput) string {
	var toc strings.Builder

	toc.WriteString(tocTitle)

	for _, file := range in.Files {
		rel := relativeTo(e.fsAdapter, in.Root, file)
		fmt.Fprintf(&toc, "- [%s](#%s)\n", rel, Anchor(rel))
	}

	return toc.String()
}

// RenderManifest renders the companion manifest for a transcript saved as
// transcriptName.
func RenderManifest(entries []m.ManifestEntry, transcriptName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, manifestHeader, transcriptName)

	for _, entry := range entries {
		fmt.Fprintf(&b, "## File: %s\n", entry.DisplayPath)
		fmt.Fprintf(&b, "Line = %d, Starts = %d, Ends = %d\n\n", entry.StartLine, entry.StartLine+2, entry.EndLine+1)
	}

	return b.String()
}

func binarySection(display string) string {
	return fmt.Sprintf("# File: %s\n\n%s\n\n---\n", display, binaryNotice)
}

func textSection(display, rel, content string) string {
	fence := fenceFor(content)

	return fmt.Sprintf("# %[1]s\n## File: %[1]s\n\n%[2]s%[3]s\n%[4]s %[1]s\n%[5]s\n%[2]s\n\n---\n\n",
		display, fence, FenceTag(rel), CommentPrefixOf(rel), content)
}

// fenceFor returns a backtick fence longer than any fence-like run inside
// content.
func fenceFor(content string) string {
	n := minFenceLen

	for _, match := range backtickRunRe.FindAllStringSubmatch(content, -1) {
		n = max(n, len(match[1])+1)
	}

	return strings.Repeat("`", n)
}

// loadRecord reads file and classifies it.
func loadRecord(fsAdapter adapter.SourceFSAdapter, root, file m.Path) (m.FileRecord, error) {
	content, err := fsAdapter.ReadFile(file)
	if err != nil {
		return m.FileRecord{}, fmt.Errorf("%w %s: %w", ErrFileRead, file, err)
	}

	return m.FileRecord{
		RelativePath: m.Path(relativeTo(fsAdapter, root, file)),
		AbsolutePath: file,
		IsBinary:     IsBinary(content),
		Content:      content,
	}, nil
}

// relativeTo returns file relative to root with forward slashes, falling back
// to the file name when no relative path exists.
func relativeTo(fsAdapter adapter.SourceFSAdapter, root, file m.Path) string {
	rel, err := fsAdapter.RelPath(root, file)
	if err != nil {
		return filepath.Base(string(file))
	}

	return filepath.ToSlash(string(rel))
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return logger
}
