package domain

import "errors"

// Per-item failures. They are reported and counted, never abort a batch.
var (
	ErrFileRead            = errors.New("cannot read file")
	ErrFileWrite           = errors.New("cannot write file")
	ErrDeclarationNotFound = errors.New("declaration not found")
	ErrDestinationMissing  = errors.New("destination file does not exist")
	ErrPathEscapesRoot     = errors.New("path escapes the output root")
	ErrCellTruncated       = errors.New("content exceeds the spreadsheet cell limit and was truncated")
	ErrPathDiscovery       = errors.New("no file path found for section")
)

// Run-level failures.
var (
	ErrVersionCollision  = errors.New("output artifact already exists")
	ErrVersionsExhausted = errors.New("no two-digit suffix left for prefix")
	ErrNoTabularHeader   = errors.New("sheet has no Path/Code header row")
	ErrEmptyDocument     = errors.New("document is empty")
	ErrUnknownPreset     = errors.New("unknown preset")
)
