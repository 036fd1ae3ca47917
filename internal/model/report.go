package model

// Outcome summarizes how a run ended.
type Outcome string

const (
	// OutcomeCompleted means at least one item was processed.
	OutcomeCompleted Outcome = "completed"
	// OutcomeNothingProcessed means the run finished without processing any item.
	OutcomeNothingProcessed Outcome = "nothing_processed"
	// OutcomeCancelled means the run was stopped before it finished.
	OutcomeCancelled Outcome = "cancelled"
)

// ItemFailure is a recoverable per-item error.
type ItemFailure struct {
	Path string
	Err  error
}

// EncodeReport describes one encoder run.
type EncodeReport struct {
	Format    Format
	Outcome   Outcome
	Artifacts []Path
	Manifest  []ManifestEntry
	Encoded   int
	Total     int
	Failures  []ItemFailure
	Warnings  []ItemFailure
}

// DecodeReport describes one decode + materialize run.
type DecodeReport struct {
	Format    Format
	Outcome   Outcome
	Source    string
	OutputDir Path
	Written   []Path
	Blocks    int
	Dropped   int
	Failures  []ItemFailure
}

// PresetReport groups the encoder runs of a single preset.
type PresetReport struct {
	Name    string
	Reports []EncodeReport
	Err     error
}
