package dataprocessing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"importcli/internal/exporter"
	"importcli/pkg/contracts/domain"
)

// Options are the explicit pipeline options. Every knob the run honors
// is passed in here; there is no ambient global configuration.
type Options struct {
	TimeLogPath   string
	ImportLogPath string
	OutputPath    string
	WorkbookPath  string // optional xlsx copy of the export, empty to skip
	Delimiter     rune   // export field separator, 0 means tab
	DateColumn    string // canonical name of the date key column
}

// Result represents the statistics of one pipeline run.
type Result struct {
	TimeRows          int
	ImportRows        int
	DuplicatesDropped int
	MergedRows        int
	AbsentProcessA    int
	AbsentProcessB    int
}

// Pipeline is the single-pass batch pipeline: load both logs,
// deduplicate the import statistics, merge on date, derive calendar
// features, export. There is no retry or resume; a failed run is rerun
// wholesale.
type Pipeline struct {
	logger *slog.Logger
	tracer trace.Tracer
	opts   Options
}

// NewPipeline creates a pipeline with the given options. A nil logger
// falls back to slog.Default, a nil tracer to a no-op tracer.
func NewPipeline(logger *slog.Logger, tracer trace.Tracer, opts Options) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("dataprocessing")
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = '\t'
	}
	if opts.DateColumn == "" {
		opts.DateColumn = "Date"
	}
	return &Pipeline{logger: logger, tracer: tracer, opts: opts}
}

// Run executes the pipeline once and returns its statistics. The merged
// records are returned alongside so callers can hand them to the
// charting or modeling collaborators.
func (p *Pipeline) Run(ctx context.Context) ([]domain.MergedRecord, *Result, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.run")
	defer span.End()

	result := &Result{}

	times, err := p.loadTimeLog(ctx)
	if err != nil {
		return nil, nil, p.fail(span, err)
	}
	result.TimeRows = len(times)
	for _, rec := range times {
		if rec.ProcessA == nil {
			result.AbsentProcessA++
		}
		if rec.ProcessB == nil {
			result.AbsentProcessB++
		}
	}

	imports, err := p.loadImportLog(ctx)
	if err != nil {
		return nil, nil, p.fail(span, err)
	}
	result.ImportRows = len(imports)

	deduped, stats := DeduplicateImports(imports)
	result.DuplicatesDropped = stats.DroppedRows
	if stats.DroppedRows > 0 {
		p.logger.InfoContext(ctx, "duplicate dates resolved in import log",
			slog.Int("dropped_rows", stats.DroppedRows))
	}

	merged, err := p.merge(ctx, times, deduped)
	if err != nil {
		return nil, nil, p.fail(span, err)
	}
	merged = DeriveCalendar(merged)
	result.MergedRows = len(merged)

	if err := p.export(ctx, merged); err != nil {
		return nil, nil, p.fail(span, err)
	}

	span.SetAttributes(
		attribute.Int("pipeline.time_rows", result.TimeRows),
		attribute.Int("pipeline.import_rows", result.ImportRows),
		attribute.Int("pipeline.merged_rows", result.MergedRows),
	)

	p.logger.InfoContext(ctx, "pipeline completed",
		slog.Int("time_rows", result.TimeRows),
		slog.Int("import_rows", result.ImportRows),
		slog.Int("duplicates_dropped", result.DuplicatesDropped),
		slog.Int("merged_rows", result.MergedRows),
		slog.Int("absent_process_a", result.AbsentProcessA),
		slog.Int("absent_process_b", result.AbsentProcessB),
		slog.String("output", p.opts.OutputPath))

	return merged, result, nil
}

func (p *Pipeline) loadTimeLog(ctx context.Context) ([]domain.TimeRecord, error) {
	_, span := p.tracer.Start(ctx, "pipeline.load_time_log")
	defer span.End()
	return LoadTimeLog(p.opts.TimeLogPath, p.opts.DateColumn, p.logger)
}

func (p *Pipeline) loadImportLog(ctx context.Context) ([]domain.ImportRecord, error) {
	_, span := p.tracer.Start(ctx, "pipeline.load_import_log")
	defer span.End()
	return LoadImportLog(p.opts.ImportLogPath, p.opts.DateColumn, p.logger)
}

func (p *Pipeline) merge(ctx context.Context, times []domain.TimeRecord, imports []domain.ImportRecord) ([]domain.MergedRecord, error) {
	_, span := p.tracer.Start(ctx, "pipeline.merge")
	defer span.End()
	return MergeRecords(times, imports)
}

func (p *Pipeline) export(ctx context.Context, merged []domain.MergedRecord) error {
	_, span := p.tracer.Start(ctx, "pipeline.export")
	defer span.End()

	headers := exporter.MergedHeaders(p.opts.DateColumn)
	rows := exporter.MergedRows(merged)

	writer := exporter.NewDelimitedWriter(p.opts.Delimiter, p.logger)
	if err := writer.WriteTable(p.opts.OutputPath, headers, rows); err != nil {
		return err
	}

	if p.opts.WorkbookPath != "" {
		workbook := exporter.NewWorkbookWriter(p.logger)
		if err := workbook.WriteWorkbook(p.opts.WorkbookPath, headers, rows); err != nil {
			return err
		}
	}

	return nil
}

func (p *Pipeline) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
