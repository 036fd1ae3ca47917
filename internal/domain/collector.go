package domain

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/codedoc/internal/adapter"
	"github.com/mouse-blink/codedoc/internal/config"
	m "github.com/mouse-blink/codedoc/internal/model"
)

// Selection describes which files below BaseDir take part in an encode.
type Selection struct {
	BaseDir            m.Path
	UseSpecific        bool
	SpecificFiles      []string // BaseDir-relative
	IgnoredExtensions  []string // lower-case, with leading dot
	IgnoredFiles       []string
	IgnoredDirectories []string
	SkipPaths          []string // BaseDir-relative directory prefixes
}

// SelectionFromSettings builds the selection configured in settings.
func SelectionFromSettings(settings config.Settings) Selection {
	return Selection{
		BaseDir:            m.Path(settings.Paths.BaseDir),
		UseSpecific:        settings.FileSpecific.UseFileSpecific,
		SpecificFiles:      settings.FileSpecific.SpecificFiles,
		IgnoredExtensions:  settings.Files.IgnoredExtensions,
		IgnoredFiles:       settings.Files.IgnoredFiles,
		IgnoredDirectories: settings.Directories.IgnoredDirectories,
		SkipPaths:          settings.Paths.SkipPaths,
	}
}

// Collector turns a Selection into an ordered file list.
type Collector struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewCollector constructs a Collector.
func NewCollector(fsAdapter adapter.SourceFSAdapter) *Collector {
	return &Collector{fsAdapter: fsAdapter}
}

// Collect returns the selected files. With UseSpecific the configured list is
// returned as given; otherwise BaseDir is walked in lexical order.
func (c *Collector) Collect(ctx context.Context, sel Selection) ([]m.Path, error) {
	if sel.UseSpecific {
		files := make([]m.Path, 0, len(sel.SpecificFiles))

		for _, file := range sel.SpecificFiles {
			if strings.TrimSpace(file) == "" {
				continue
			}

			files = append(files, c.fsAdapter.JoinPath(string(sel.BaseDir), filepath.FromSlash(file)))
		}

		return files, nil
	}

	ignoredExt := toSet(sel.IgnoredExtensions, strings.ToLower)
	ignoredFiles := toSet(sel.IgnoredFiles, nil)
	ignoredDirs := toSet(sel.IgnoredDirectories, nil)

	var files []m.Path

	err := c.fsAdapter.Walk(sel.BaseDir, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return err
		}

		if info.IsDir() {
			if path == string(sel.BaseDir) {
				return nil
			}

			if _, ok := ignoredDirs[info.Name()]; ok {
				return filepath.SkipDir
			}

			if c.skipped(sel, m.Path(path)) {
				return filepath.SkipDir
			}

			return nil
		}

		if _, ok := ignoredFiles[info.Name()]; ok {
			return nil
		}

		if _, ok := ignoredExt[strings.ToLower(filepath.Ext(info.Name()))]; ok {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (c *Collector) skipped(sel Selection, dir m.Path) bool {
	rel, err := c.fsAdapter.RelPath(sel.BaseDir, dir)
	if err != nil {
		return false
	}

	relSlash := filepath.ToSlash(string(rel))

	for _, skip := range sel.SkipPaths {
		skip = strings.TrimSuffix(filepath.ToSlash(skip), "/")
		if skip == "" || skip == "." {
			continue
		}

		if relSlash == skip || strings.HasPrefix(relSlash, skip+"/") {
			return true
		}
	}

	return false
}

func toSet(values []string, transform func(string) string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))

	for _, v := range values {
		if transform != nil {
			v = transform(v)
		}

		set[v] = struct{}{}
	}

	return set
}
