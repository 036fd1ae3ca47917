package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/codedoc/internal/adapter"
	m "github.com/mouse-blink/codedoc/internal/model"
)

const tabularSourceExt = ".xlsx"

// Workflow defines the encode/decode operations exposed to the CLI.
type Workflow interface {
	Collect(ctx context.Context, sel Selection) ([]m.Path, error)
	Encode(ctx context.Context, req EncodeRequest) ([]m.EncodeReport, error)
	EncodePresets(ctx context.Context, req PresetRequest) ([]m.PresetReport, error)
	Decode(ctx context.Context, req DecodeRequest) (m.DecodeReport, error)
	Inspect(ctx context.Context, root m.Path, files []m.Path) (Inspection, error)
}

// EncodeRequest selects the files, formats and destination of an encode run.
type EncodeRequest struct {
	Files            []m.Path
	Root             m.Path
	OutputDir        m.Path
	Formats          []m.Format
	Style            m.PathStyle
	SizeUnit         string
	TranscriptPrefix string
	TabularPrefix    string
	// Clipboard also copies the transcript document to the clipboard.
	Clipboard bool
	Reporter  Reporter
}

// PresetRequest runs an encode per named preset.
type PresetRequest struct {
	Presets   map[string][]string // name -> Root-relative files
	Names     []string            // run order
	Root      m.Path
	OutputDir m.Path
	Formats   []m.Format
	Style     m.PathStyle
	SizeUnit  string
	Reporter  Reporter
}

// DecodeRequest selects the document to decode and where to write files.
type DecodeRequest struct {
	Source    m.Path
	Clipboard bool     // read a transcript from the clipboard instead of Source
	Format    m.Format // empty selects by the Source extension
	OutputDir m.Path
	// DeclarationTarget applies to every block that does not name its own.
	DeclarationTarget string
	Reporter          Reporter
}

// Inspection holds per-file metrics.
type Inspection struct {
	Records  []m.FileRecord
	Failures []m.ItemFailure
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	workbook    adapter.WorkbookAdapter
	clipboard   adapter.ClipboardAdapter
	logger      *slog.Logger
	collector   *Collector
	versioner   *Versioner
	transcripts *TranscriptEncoder
	tables      *TabularEncoder
	decoder     *TranscriptDecoder
	writer      *Materializer
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	goFiles adapter.GoFileAdapter,
	workbook adapter.WorkbookAdapter,
	clipboard adapter.ClipboardAdapter,
	logger *slog.Logger,
) Workflow {
	logger = orDiscard(logger)

	return &workflow{
		fsAdapter:   fsAdapter,
		workbook:    workbook,
		clipboard:   clipboard,
		logger:      logger,
		collector:   NewCollector(fsAdapter),
		versioner:   NewVersioner(fsAdapter),
		transcripts: NewTranscriptEncoder(fsAdapter, logger),
		tables:      NewTabularEncoder(fsAdapter, logger),
		decoder:     NewTranscriptDecoder(logger),
		writer:      NewMaterializer(fsAdapter, goFiles),
	}
}

func (w *workflow) Collect(ctx context.Context, sel Selection) ([]m.Path, error) {
	return w.collector.Collect(ctx, sel)
}

// Encode runs one encoder per requested format. Several formats run
// concurrently and independently: a failing format does not stop the others,
// and the errors of all formats are joined. A cancelled run writes nothing
// and reports OutcomeCancelled without an error.
func (w *workflow) Encode(ctx context.Context, req EncodeRequest) ([]m.EncodeReport, error) {
	reports := make([]m.EncodeReport, len(req.Formats))
	errs := make([]error, len(req.Formats))
	fanIn := newFanInReporter(orNop(req.Reporter), len(req.Formats), len(req.Files))

	var g errgroup.Group

	for i, format := range req.Formats {
		lane := fanIn.lane(i)

		g.Go(func() error {
			switch format {
			case m.FormatTranscript:
				reports[i], errs[i] = w.encodeTranscript(ctx, req, lane)
			case m.FormatTabular:
				reports[i], errs[i] = w.encodeTabular(ctx, req, lane)
			default:
				errs[i] = fmt.Errorf("unsupported format %q", format)
			}

			return errs[i]
		})
	}

	if err := g.Wait(); err != nil {
		return reports, errors.Join(errs...)
	}

	return reports, nil
}

func (w *workflow) encodeTranscript(ctx context.Context, req EncodeRequest, reporter Reporter) (m.EncodeReport, error) {
	report := m.EncodeReport{Format: m.FormatTranscript, Total: len(req.Files)}

	transcript, err := w.transcripts.Encode(ctx, EncodeInput{
		Files:    req.Files,
		Root:     req.Root,
		Style:    req.Style,
		SizeUnit: req.SizeUnit,
		Reporter: reporter,
	})
	if err != nil {
		return cancelled(report, err)
	}

	report.Encoded = transcript.Encoded
	report.Failures = transcript.Failures
	report.Manifest = transcript.Manifest

	if transcript.Encoded == 0 && len(req.Files) > 0 {
		report.Outcome = m.OutcomeNothingProcessed
		return report, nil
	}

	if err := ctx.Err(); err != nil {
		return cancelled(report, err)
	}

	if err := w.fsAdapter.MkdirAll(req.OutputDir); err != nil {
		return report, fmt.Errorf("%w %s: %w", ErrFileWrite, req.OutputDir, err)
	}

	main, companion, err := w.versioner.TranscriptPaths(req.OutputDir, req.TranscriptPrefix)
	if err != nil {
		return report, err
	}

	if err := w.create(main, []byte(transcript.Document)); err != nil {
		return report, err
	}

	report.Artifacts = append(report.Artifacts, main)

	manifest := RenderManifest(transcript.Manifest, filepath.Base(string(main)))
	if err := w.create(companion, []byte(manifest)); err != nil {
		return report, err
	}

	report.Artifacts = append(report.Artifacts, companion)
	report.Outcome = completedOutcome(report.Encoded)

	if req.Clipboard {
		if err := w.clipboard.WriteAll(transcript.Document); err != nil {
			w.logger.Warn("clipboard copy failed", "error", err)
			report.Warnings = append(report.Warnings, m.ItemFailure{Path: "clipboard", Err: err})
		}
	}

	w.logger.Info("transcript written", "path", string(main), "files", report.Encoded)

	return report, nil
}

func (w *workflow) encodeTabular(ctx context.Context, req EncodeRequest, reporter Reporter) (m.EncodeReport, error) {
	report := m.EncodeReport{Format: m.FormatTabular, Total: len(req.Files)}

	table, err := w.tables.Encode(ctx, EncodeInput{
		Files:    req.Files,
		Root:     req.Root,
		Style:    req.Style,
		SizeUnit: req.SizeUnit,
		Reporter: reporter,
	})
	if err != nil {
		return cancelled(report, err)
	}

	report.Encoded = table.Encoded
	report.Failures = table.Failures
	report.Warnings = table.Warnings

	if table.Encoded == 0 && len(req.Files) > 0 {
		report.Outcome = m.OutcomeNothingProcessed
		return report, nil
	}

	content, err := w.workbook.RenderSheet(table.Header, table.Rows)
	if err != nil {
		return report, fmt.Errorf("render workbook: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return cancelled(report, err)
	}

	if err := w.fsAdapter.MkdirAll(req.OutputDir); err != nil {
		return report, fmt.Errorf("%w %s: %w", ErrFileWrite, req.OutputDir, err)
	}

	dest, err := w.versioner.NextPath(req.OutputDir, req.TabularPrefix, tabularExt)
	if err != nil {
		return report, err
	}

	if err := w.create(dest, content); err != nil {
		return report, err
	}

	report.Artifacts = append(report.Artifacts, dest)
	report.Outcome = completedOutcome(report.Encoded)

	w.logger.Info("workbook written", "path", string(dest), "rows", len(table.Rows))

	return report, nil
}

// create writes a new artifact, refusing to replace an existing one.
func (w *workflow) create(path m.Path, content []byte) error {
	if err := w.fsAdapter.CreateExclusive(path, content); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrVersionCollision, path)
		}

		return fmt.Errorf("%w %s: %w", ErrFileWrite, path, err)
	}

	return nil
}

// EncodePresets encodes every named preset into OutputDir/<name>. A failing
// preset is reported and the loop continues.
func (w *workflow) EncodePresets(ctx context.Context, req PresetRequest) ([]m.PresetReport, error) {
	reporter := orNop(req.Reporter)
	out := make([]m.PresetReport, 0, len(req.Names))

	for i, name := range req.Names {
		if ctx.Err() != nil {
			w.logger.Info("preset run cancelled", "remaining", len(req.Names)-i)
			break
		}

		reporter.Status(fmt.Sprintf("Preset %d/%d: %s", i+1, len(req.Names), name))

		files, ok := req.Presets[name]
		if !ok {
			out = append(out, m.PresetReport{Name: name, Err: fmt.Errorf("%w: %s", ErrUnknownPreset, name)})
			continue
		}

		abs := make([]m.Path, 0, len(files))
		for _, file := range files {
			abs = append(abs, w.fsAdapter.JoinPath(string(req.Root), filepath.FromSlash(file)))
		}

		prefix := PresetPrefix(name)
		reports, err := w.Encode(ctx, EncodeRequest{
			Files:            abs,
			Root:             req.Root,
			OutputDir:        w.fsAdapter.JoinPath(string(req.OutputDir), filepath.FromSlash(name)),
			Formats:          req.Formats,
			Style:            req.Style,
			SizeUnit:         req.SizeUnit,
			TranscriptPrefix: prefix,
			TabularPrefix:    prefix,
			Reporter:         reporter,
		})
		if err != nil {
			w.logger.Warn("preset failed", "preset", name, "error", err)
		}

		out = append(out, m.PresetReport{Name: name, Reports: reports, Err: err})
	}

	return out, nil
}

// Decode reads a document and materializes its code blocks below OutputDir.
func (w *workflow) Decode(ctx context.Context, req DecodeRequest) (m.DecodeReport, error) {
	reporter := orNop(req.Reporter)
	report := m.DecodeReport{OutputDir: req.OutputDir, Source: string(req.Source)}

	blocks, opts, err := w.readBlocks(&report, req)
	if err != nil {
		return report, err
	}

	report.Blocks = len(blocks)

	if len(blocks) == 0 {
		report.Outcome = m.OutcomeNothingProcessed
		return report, nil
	}

	for i, block := range blocks {
		if ctx.Err() != nil {
			report.Outcome = m.OutcomeCancelled
			return report, nil
		}

		if block.DeclarationTarget == "" {
			block.DeclarationTarget = req.DeclarationTarget
		}

		dest, err := w.writer.Write(req.OutputDir, block, opts)
		if err != nil {
			w.logger.Warn("skipping block", "path", block.Path, "error", err)
			reporter.Status(fmt.Sprintf("Error writing file: %s", block.Path))
			report.Failures = append(report.Failures, m.ItemFailure{Path: block.Path, Err: err})
		} else {
			report.Written = append(report.Written, dest)
		}

		reporter.Progress(i+1, len(blocks))
	}

	report.Outcome = m.OutcomeCompleted
	if len(report.Written) == 0 {
		report.Outcome = m.OutcomeNothingProcessed
	}

	return report, nil
}

func (w *workflow) readBlocks(report *m.DecodeReport, req DecodeRequest) ([]m.CodeBlock, MaterializeOptions, error) {
	format := req.Format
	if format == "" {
		format = m.FormatTranscript
		if !req.Clipboard && strings.EqualFold(filepath.Ext(string(req.Source)), tabularSourceExt) {
			format = m.FormatTabular
		}
	}

	report.Format = format

	if format == m.FormatTabular {
		if req.Clipboard {
			return nil, MaterializeOptions{}, errors.New("tabular documents cannot be read from the clipboard")
		}

		rows, err := w.workbook.ReadSheet(req.Source)
		if err != nil {
			return nil, MaterializeOptions{}, fmt.Errorf("%w %s: %w", ErrFileRead, req.Source, err)
		}

		decoded, err := DecodeTable(rows)
		if err != nil {
			return nil, MaterializeOptions{}, err
		}

		report.Dropped = decoded.Dropped

		return decoded.Blocks, MaterializeOptions{PreserveWhitespace: true}, nil
	}

	doc, err := w.readDocument(req)
	if err != nil {
		return nil, MaterializeOptions{}, err
	}

	decoded := w.decoder.Decode(doc)
	report.Dropped = decoded.Dropped

	w.logger.Debug("transcript decoded", "sections", decoded.Sections, "blocks", len(decoded.Blocks))

	return decoded.Blocks, MaterializeOptions{}, nil
}

func (w *workflow) readDocument(req DecodeRequest) (string, error) {
	var doc string

	if req.Clipboard {
		text, err := w.clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}

		doc = text
	} else {
		content, err := w.fsAdapter.ReadFile(req.Source)
		if err != nil {
			return "", fmt.Errorf("%w %s: %w", ErrFileRead, req.Source, err)
		}

		doc = decodeText(content)
	}

	if strings.TrimSpace(doc) == "" {
		return "", ErrEmptyDocument
	}

	return doc, nil
}

// Inspect computes metrics for files without encoding them.
func (w *workflow) Inspect(ctx context.Context, root m.Path, files []m.Path) (Inspection, error) {
	var out Inspection

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		record, err := loadRecord(w.fsAdapter, root, file)
		if err != nil {
			out.Failures = append(out.Failures, m.ItemFailure{Path: string(file), Err: err})
			continue
		}

		metrics := ComputeMetrics(record.Content)
		record.Metrics = &metrics
		record.Content = nil

		out.Records = append(out.Records, record)
	}

	return out, nil
}

// completedOutcome reports an empty input, which still yields an empty
// document, as OutcomeNothingProcessed.
func completedOutcome(encoded int) m.Outcome {
	if encoded == 0 {
		return m.OutcomeNothingProcessed
	}

	return m.OutcomeCompleted
}

// cancelled marks report as cancelled when err is a context error and
// returns any other error unchanged.
func cancelled(report m.EncodeReport, err error) (m.EncodeReport, error) {
	if !isCancellation(err) {
		return report, err
	}

	report.Outcome = m.OutcomeCancelled

	return report, nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func orNop(r Reporter) Reporter {
	if r == nil {
		return nopReporter{}
	}

	return r
}

// fanInReporter merges the progress of concurrent encoders into one bar.
type fanInReporter struct {
	mu    sync.Mutex
	inner Reporter
	done  []int
	total int
}

func newFanInReporter(inner Reporter, lanes, perLane int) *fanInReporter {
	return &fanInReporter{inner: inner, done: make([]int, lanes), total: lanes * perLane}
}

func (f *fanInReporter) lane(i int) Reporter {
	return laneReporter{fanIn: f, index: i}
}

type laneReporter struct {
	fanIn *fanInReporter
	index int
}

func (l laneReporter) Status(message string) {
	l.fanIn.mu.Lock()
	defer l.fanIn.mu.Unlock()

	l.fanIn.inner.Status(message)
}

func (l laneReporter) Progress(done, _ int) {
	l.fanIn.mu.Lock()
	defer l.fanIn.mu.Unlock()

	l.fanIn.done[l.index] = done

	sum := 0
	for _, d := range l.fanIn.done {
		sum += d
	}

	l.fanIn.inner.Progress(sum, l.fanIn.total)
}
