package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mouse-blink/codedoc/internal/adapter"
	m "github.com/mouse-blink/codedoc/internal/model"
)

const (
	maxVersionIndex   = 99
	companionSuffix   = "_where_each_file_line_is"
	transcriptExt     = "md"
	tabularExt        = "xlsx"
	prefixPathReplace = "_"
)

// Versioner picks the next free `{prefix}_{NN}.{ext}` name in a directory.
// It assumes a single writer per directory and prefix; writers still create
// artifacts exclusively so a concurrent writer surfaces as
// ErrVersionCollision rather than an overwrite.
type Versioner struct {
	fs adapter.SourceFSAdapter
}

// NewVersioner constructs a Versioner over the given filesystem.
func NewVersioner(fs adapter.SourceFSAdapter) *Versioner {
	return &Versioner{fs: fs}
}

// NextIndex returns the lowest suffix above every existing `{prefix}_NN.{ext}`
// in dir, 0 when there is none.
func (v *Versioner) NextIndex(dir m.Path, prefix, ext string) (int, error) {
	names, err := v.fs.ListNames(dir)
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", dir, err)
	}

	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `_(\d{2})\.` + regexp.QuoteMeta(strings.TrimPrefix(ext, ".")) + `$`)

	next := 0

	for _, name := range names {
		match := pattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}

		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}

		next = max(next, n+1)
	}

	if next > maxVersionIndex {
		return 0, fmt.Errorf("%w %q in %s", ErrVersionsExhausted, prefix, dir)
	}

	return next, nil
}

// NextPath returns the path of the next `{prefix}_{NN}.{ext}` artifact.
func (v *Versioner) NextPath(dir m.Path, prefix, ext string) (m.Path, error) {
	n, err := v.NextIndex(dir, prefix, ext)
	if err != nil {
		return "", err
	}

	return v.fs.JoinPath(string(dir), versionedName(prefix, n, "", ext)), nil
}

// TranscriptPaths returns the next transcript path and its manifest companion
// `{prefix}_{NN}_where_each_file_line_is.md`, sharing one suffix.
func (v *Versioner) TranscriptPaths(dir m.Path, prefix string) (m.Path, m.Path, error) {
	n, err := v.NextIndex(dir, prefix, transcriptExt)
	if err != nil {
		return "", "", err
	}

	main := v.fs.JoinPath(string(dir), versionedName(prefix, n, "", transcriptExt))
	companion := v.fs.JoinPath(string(dir), versionedName(prefix, n, companionSuffix, transcriptExt))

	return main, companion, nil
}

// PresetPrefix derives an artifact prefix from a preset name.
func PresetPrefix(name string) string {
	return strings.NewReplacer("/", prefixPathReplace, `\`, prefixPathReplace).Replace(name)
}

func versionedName(prefix string, n int, suffix, ext string) string {
	return fmt.Sprintf("%s_%02d%s.%s", prefix, n, suffix, strings.TrimPrefix(ext, "."))
}
