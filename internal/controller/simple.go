package controller

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/codedoc/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command

	mu      sync.Mutex
	closed  bool
	percent int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, percent: -1}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = false
	s.percent = -1

	return nil
}

// Close finalizes the UI. Later Status and Progress calls are dropped.
func (s *SimpleUI) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

// Status prints a status line.
func (s *SimpleUI) Status(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.printf("%s\n", message)
}

// Progress prints the completion percentage whenever it changes.
func (s *SimpleUI) Progress(done, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || total <= 0 {
		return
	}

	percent := done * 100 / total
	if percent == s.percent {
		return
	}

	s.percent = percent
	s.printf("Progress: %d%% (%d/%d)\n", percent, done, total)
}

// DisplayEncodeReports prints one row per encoder run followed by any failures.
func (s *SimpleUI) DisplayEncodeReports(reports []m.EncodeReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summary().encodeReports(reports)
}

// DisplayPresetReports prints the encoder runs of every preset.
func (s *SimpleUI) DisplayPresetReports(reports []m.PresetReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summary().presetReports(reports)
}

// DisplayDecodeReport prints the files written by a decode run.
func (s *SimpleUI) DisplayDecodeReport(report m.DecodeReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summary().decodeReport(report)
}

// DisplayPresets prints the configured presets.
func (s *SimpleUI) DisplayPresets(names []string, presets map[string][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summary().presets(names, presets)
}

// DisplayInspection prints per-file metrics.
func (s *SimpleUI) DisplayInspection(records []m.FileRecord, failures []m.ItemFailure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summary().inspection(records, failures)
}

func (s *SimpleUI) summary() summaryWriter {
	return summaryWriter{w: s.cmd.OutOrStdout()}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
