package model

// ManifestEntry records where a file's section lives inside a transcript.
// Line numbers are 1-based and inclusive on both ends.
type ManifestEntry struct {
	DisplayPath string
	StartLine   int
	EndLine     int
}
