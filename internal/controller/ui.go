// Package controller provides output adapters for displaying encode and decode runs.
package controller

import (
	m "github.com/mouse-blink/codedoc/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEncode StartMode = iota
	ModeDecode
	ModePresets
)

func (s StartMode) title() string {
	switch s {
	case ModeDecode:
		return "Decoding"
	case ModePresets:
		return "Encoding presets"
	default:
		return "Encoding"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithEncodeMode sets the UI to encode mode.
func WithEncodeMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEncode
	}
}

// WithDecodeMode sets the UI to decode mode.
func WithDecodeMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeDecode
	}
}

// WithPresetsMode sets the UI to preset run mode.
func WithPresetsMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePresets
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for reporting a run and displaying its results.
// Implementations can use different output methods (simple text, TUI, etc).
// Status and Progress may be called from several goroutines and are ignored
// once the UI is closed.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Status(message string)
	Progress(done, total int)
	DisplayEncodeReports(reports []m.EncodeReport)
	DisplayPresetReports(reports []m.PresetReport)
	DisplayDecodeReport(report m.DecodeReport)
	DisplayPresets(names []string, presets map[string][]string)
	DisplayInspection(records []m.FileRecord, failures []m.ItemFailure)
}
