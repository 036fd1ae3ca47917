package controller

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/codedoc/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
	closed  bool
	runErr  error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress view in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	return t.startWithModel(newRunModel(cfg.mode))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	// Signals are handled by the command context; input stays with the shell.
	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	t.done = make(chan struct{})
	t.started = true
	t.closed = false

	program, done := t.program, t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			t.mu.Lock()
			t.runErr = err
			t.mu.Unlock()
		}
	}()

	return nil
}

// Close stops the progress view and waits for its last frame.
func (t *TUI) Close() {
	t.mu.Lock()

	if !t.started || t.closed {
		t.closed = true
		t.mu.Unlock()

		return
	}

	t.closed = true
	program, done := t.program, t.done
	t.mu.Unlock()

	program.Quit()
	<-done
}

// Err returns the error the progress view stopped with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.runErr
}

// Status shows message as the current status, or in the error box when it
// reports a failure.
func (t *TUI) Status(message string) {
	t.send(statusMsg{text: message})
}

// Progress advances the progress bar.
func (t *TUI) Progress(done, total int) {
	t.send(progressMsg{done: done, total: total})
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started || t.closed {
		return
	}

	t.program.Send(msg)
}

// DisplayEncodeReports prints the encode summary below the progress view.
func (t *TUI) DisplayEncodeReports(reports []m.EncodeReport) {
	t.summary().encodeReports(reports)
}

// DisplayPresetReports prints the preset summary below the progress view.
func (t *TUI) DisplayPresetReports(reports []m.PresetReport) {
	t.summary().presetReports(reports)
}

// DisplayDecodeReport prints the decode summary below the progress view.
func (t *TUI) DisplayDecodeReport(report m.DecodeReport) {
	t.summary().decodeReport(report)
}

// DisplayPresets prints the configured presets.
func (t *TUI) DisplayPresets(names []string, presets map[string][]string) {
	t.summary().presets(names, presets)
}

// DisplayInspection prints per-file metrics.
func (t *TUI) DisplayInspection(records []m.FileRecord, failures []m.ItemFailure) {
	t.summary().inspection(records, failures)
}

func (t *TUI) summary() summaryWriter {
	return summaryWriter{w: t.output}
}
