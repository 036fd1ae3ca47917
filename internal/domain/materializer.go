package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/codedoc/internal/adapter"
	m "github.com/mouse-blink/codedoc/internal/model"
)

// MaterializeOptions tunes how blocks are written.
type MaterializeOptions struct {
	// PreserveWhitespace writes content verbatim instead of trimmed.
	PreserveWhitespace bool
}

// Materializer writes decoded code blocks below a root directory.
type Materializer struct {
	fsAdapter adapter.SourceFSAdapter
	goFiles   adapter.GoFileAdapter
}

// NewMaterializer constructs a Materializer. goFiles may be nil, in which
// case Go destinations are patched with the text scan like any other file.
func NewMaterializer(fsAdapter adapter.SourceFSAdapter, goFiles adapter.GoFileAdapter) *Materializer {
	return &Materializer{fsAdapter: fsAdapter, goFiles: goFiles}
}

// Write stores block below root and returns the written path. A block with a
// DeclarationTarget patches that declaration inside the existing file instead
// of replacing the file.
func (mt *Materializer) Write(root m.Path, block m.CodeBlock, opts MaterializeOptions) (m.Path, error) {
	rel, err := confine(block.Path)
	if err != nil {
		return "", err
	}

	dest := mt.fsAdapter.JoinPath(string(root), filepath.FromSlash(rel))

	content := block.Content
	if !opts.PreserveWhitespace {
		content = strings.TrimSpace(content)
	}

	if block.DeclarationTarget != "" {
		content, err = mt.patch(dest, block.DeclarationTarget, content)
		if err != nil {
			return "", err
		}
	}

	if err := mt.fsAdapter.MkdirAll(m.Path(filepath.Dir(string(dest)))); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrFileWrite, dest, err)
	}

	if err := mt.fsAdapter.WriteFile(dest, []byte(content)); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrFileWrite, dest, err)
	}

	return dest, nil
}

func (mt *Materializer) patch(dest m.Path, target, replacement string) (string, error) {
	existing, err := mt.fsAdapter.ReadFile(dest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrDestinationMissing, dest)
		}

		return "", fmt.Errorf("%w %s: %w", ErrFileRead, dest, err)
	}

	src := string(existing)

	span, ok := mt.goDeclarationSpan(dest, existing, target)
	if !ok {
		span, ok = FindDeclarationSpan(src, target)
	}

	if !ok {
		return "", fmt.Errorf("%w: %s in %s", ErrDeclarationNotFound, target, dest)
	}

	return src[:span.Start] + replacement + src[span.End:], nil
}

// goDeclarationSpan resolves target through the Go parser. Sources that do not
// parse report false so the caller falls back to the text scan.
func (mt *Materializer) goDeclarationSpan(dest m.Path, src []byte, target string) (DeclarationSpan, bool) {
	if mt.goFiles == nil || !strings.EqualFold(filepath.Ext(string(dest)), ".go") {
		return DeclarationSpan{}, false
	}

	decls, err := mt.goFiles.Declarations(string(dest), src)
	if err != nil {
		return DeclarationSpan{}, false
	}

	for _, decl := range decls {
		if decl.Matches(target) {
			return DeclarationSpan{
				Start:     decl.Start,
				End:       decl.End,
				StartLine: 1 + bytes.Count(src[:decl.Start], []byte("\n")),
				EndLine:   1 + bytes.Count(src[:decl.End], []byte("\n")),
			}, true
		}
	}

	return DeclarationSpan{}, false
}

// confine turns a block path into a clean root-relative path, rejecting
// anything that still points outside the root.
func confine(p string) (string, error) {
	p = strings.ReplaceAll(strings.TrimSpace(p), `\`, "/")

	for {
		switch {
		case strings.HasPrefix(p, "./"):
			p = p[2:]
		case strings.HasPrefix(p, "../"):
			p = p[3:]
		default:
			p = path.Clean(strings.TrimLeft(p, "/"))
			first, _, _ := strings.Cut(p, "/")
			if p == "." || driveLetterRe.MatchString(first) || !filepath.IsLocal(filepath.FromSlash(p)) {
				return "", fmt.Errorf("%w: %q", ErrPathEscapesRoot, p)
			}

			return p, nil
		}
	}
}
