package adapter

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when the system has no clipboard utility.
var ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")

// ClipboardAdapter reads and writes the system clipboard.
type ClipboardAdapter interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// LocalClipboardAdapter is backed by github.com/atotto/clipboard.
type LocalClipboardAdapter struct{}

// NewLocalClipboardAdapter constructs a LocalClipboardAdapter.
func NewLocalClipboardAdapter() *LocalClipboardAdapter {
	return &LocalClipboardAdapter{}
}

// ReadAll returns the clipboard text.
func (a *LocalClipboardAdapter) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}

	return clipboard.ReadAll()
}

// WriteAll replaces the clipboard text.
func (a *LocalClipboardAdapter) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}

	return clipboard.WriteAll(text)
}
