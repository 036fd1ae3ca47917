// Package adapter contains filesystem, clipboard and workbook adapters for the
// codedoc CLI.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/codedoc/internal/model"
)

const (
	defaultFilePerm = 0o644
	defaultDirPerm  = 0o755
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when reading source trees and writing documents. It intentionally
// hides direct `os` access so the workflow logic can be tested without
// touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses root in lexical order. Returning filepath.SkipDir from fn
	// for a directory skips it.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ListNames returns the names of the entries of dir. A missing directory
	// yields an empty list.
	ListNames(dir m.Path) ([]string, error)

	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir m.Path) error

	// WriteFile replaces path atomically (temp file in the same directory, then
	// rename).
	WriteFile(path m.Path, content []byte) error

	// CreateExclusive writes a new file and fails with fs.ErrExist when path
	// already exists.
	CreateExclusive(path m.Path, content []byte) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

var _ SourceFSAdapter = (*LocalSourceFSAdapter)(nil)

// Walk iterates over root and everything below it.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), filepath.WalkFunc(fn))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-selected files is the purpose of the tool
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ListNames returns the entry names of dir.
func (a *LocalSourceFSAdapter) ListNames(dir m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}

		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}

// MkdirAll creates dir and its parents.
func (a *LocalSourceFSAdapter) MkdirAll(dir m.Path) error {
	return os.MkdirAll(string(dir), defaultDirPerm)
}

// WriteFile writes content through a temporary file and renames it over path.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	dest := string(path)

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".tmp-*")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Chmod(tmpPath, defaultFilePerm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", dest, err)
	}

	return nil
}

// CreateExclusive creates path with O_EXCL and writes content to it.
func (a *LocalSourceFSAdapter) CreateExclusive(path m.Path, content []byte) error {
	// #nosec G304 - destination is built from the configured output directory
	f, err := os.OpenFile(string(path), os.O_CREATE|os.O_EXCL|os.O_WRONLY, defaultFilePerm)
	if err != nil {
		return err
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
