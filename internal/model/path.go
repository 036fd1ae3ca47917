// Package model defines the data structures shared by the encoders, decoders
// and the materializer.
package model

import "strings"

// Path represents a file system path.
type Path string

// PathStyle selects how relative paths are rendered inside documents.
type PathStyle string

const (
	// PathStyleWindows renders paths as `..\dir\file.ext`.
	PathStyleWindows PathStyle = "windows"
	// PathStyleUnix renders paths as `./dir/file.ext`.
	PathStyleUnix PathStyle = "unix"
)

// ParsePathStyle maps a settings value to a PathStyle. Anything that is not
// "unix" falls back to windows.
func ParsePathStyle(s string) PathStyle {
	if strings.EqualFold(strings.TrimSpace(s), string(PathStyleUnix)) {
		return PathStyleUnix
	}

	return PathStyleWindows
}

// Format identifies one of the two document encodings.
type Format string

const (
	// FormatTranscript is the annotated Markdown transcript.
	FormatTranscript Format = "transcript"
	// FormatTabular is the single-sheet spreadsheet.
	FormatTabular Format = "tabular"
)
