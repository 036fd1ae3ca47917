package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/codedoc/internal/model"
)

// Sentinel validation errors.
var (
	ErrUnknownPathStyle = errors.New("path_style must be \"windows\" or \"unix\"")
	ErrEmptyPrefix      = errors.New("output prefix must not be empty")
	ErrEmptyOutputDir   = errors.New("output_dir must not be empty")
	ErrEmptySizeUnit    = errors.New("size_unit must not be empty")
)

// Validate checks the invariants the engine relies on.
func Validate(s Settings) error {
	style := strings.ToLower(strings.TrimSpace(s.Paths.PathStyle))
	if style != string(m.PathStyleWindows) && style != string(m.PathStyleUnix) {
		return &Error{Section: "paths", Err: fmt.Errorf("%w: got %q", ErrUnknownPathStyle, s.Paths.PathStyle)}
	}

	if strings.TrimSpace(s.Paths.OutputDir) == "" {
		return &Error{Section: "paths", Err: ErrEmptyOutputDir}
	}

	if strings.TrimSpace(s.Output.MarkdownFilePrefix) == "" || strings.TrimSpace(s.Output.CSVFilePrefix) == "" {
		return &Error{Section: "output", Err: ErrEmptyPrefix}
	}

	if strings.TrimSpace(s.Metrics.SizeUnit) == "" {
		return &Error{Section: "metrics", Err: ErrEmptySizeUnit}
	}

	return nil
}

// normalize returns a copy of s with paths cleaned to forward slashes and
// extensions lower-cased with a leading dot.
func normalize(s Settings) Settings {
	out := s

	out.Paths.BaseDir = cleanPath(s.Paths.BaseDir)
	out.Paths.OutputDir = cleanPath(s.Paths.OutputDir)
	out.Paths.PathStyle = strings.ToLower(strings.TrimSpace(s.Paths.PathStyle))
	out.Paths.SkipPaths = cleanPaths(s.Paths.SkipPaths)

	out.Files.IgnoredExtensions = make([]string, 0, len(s.Files.IgnoredExtensions))
	for _, ext := range s.Files.IgnoredExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		out.Files.IgnoredExtensions = append(out.Files.IgnoredExtensions, ext)
	}

	out.Files.IgnoredFiles = append([]string(nil), s.Files.IgnoredFiles...)
	out.Directories.IgnoredDirectories = append([]string(nil), s.Directories.IgnoredDirectories...)
	out.FileSpecific.SpecificFiles = cleanPaths(s.FileSpecific.SpecificFiles)

	out.Presets = make(map[string][]string, len(s.Presets))
	for name, files := range s.Presets {
		out.Presets[name] = cleanPaths(files)
	}

	return out
}

func cleanPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}

	return filepath.ToSlash(filepath.Clean(strings.ReplaceAll(p, `\`, "/")))
}

func cleanPaths(paths []string) []string {
	out := make([]string, 0, len(paths))

	for _, p := range paths {
		if c := cleanPath(p); c != "" {
			out = append(out, c)
		}
	}

	return out
}
