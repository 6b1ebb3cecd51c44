package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"importcli/internal/config"
	"importcli/internal/dataprocessing"
	"importcli/internal/infrastructure"
	"importcli/internal/validation"
)

func main() {
	os.Exit(run())
}

func run() int {
	timeLog := flag.String("time-log", "", "path to the import time log (overrides config)")
	importLog := flag.String("import-log", "", "path to the import statistics log (overrides config)")
	out := flag.String("out", "", "output path for the merged table (overrides config)")
	workbook := flag.String("workbook", "", "optional xlsx copy of the merged table")
	traceRun := flag.Bool("trace", false, "emit OpenTelemetry spans for this run")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	// Flags take precedence over environment and file configuration.
	if *timeLog != "" {
		cfg.Pipeline.TimeLogPath = *timeLog
	}
	if *importLog != "" {
		cfg.Pipeline.ImportLogPath = *importLog
	}
	if *out != "" {
		cfg.Pipeline.OutputPath = *out
	}
	if *workbook != "" {
		cfg.Pipeline.WorkbookPath = *workbook
	}
	if *traceRun {
		cfg.Tracing.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		return 1
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	providers, err := infrastructure.InitializeTracing(cfg.Tracing, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize tracing", slog.String("error", err.Error()))
		return 1
	}
	defer providers.Shutdown(ctx)

	logger.InfoContext(ctx, "Starting merge pipeline",
		slog.String("time_log", cfg.Pipeline.TimeLogPath),
		slog.String("import_log", cfg.Pipeline.ImportLogPath),
		slog.String("output", cfg.Pipeline.OutputPath))

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateInputFile(cfg.Pipeline.TimeLogPath); err != nil {
		logger.ErrorContext(ctx, "Time log validation failed", slog.String("error", err.Error()))
		return 1
	}
	if err := validator.ValidateInputFile(cfg.Pipeline.ImportLogPath); err != nil {
		logger.ErrorContext(ctx, "Import log validation failed", slog.String("error", err.Error()))
		return 1
	}
	if err := validator.ValidateOutputFile(cfg.Pipeline.OutputPath); err != nil {
		logger.ErrorContext(ctx, "Output destination validation failed", slog.String("error", err.Error()))
		return 1
	}

	pipeline := dataprocessing.NewPipeline(logger, providers.Tracer, dataprocessing.Options{
		TimeLogPath:   cfg.Pipeline.TimeLogPath,
		ImportLogPath: cfg.Pipeline.ImportLogPath,
		OutputPath:    cfg.Pipeline.OutputPath,
		WorkbookPath:  cfg.Pipeline.WorkbookPath,
		Delimiter:     cfg.OutputDelimiter(),
		DateColumn:    cfg.Pipeline.DateColumn,
	})

	_, result, err := pipeline.Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Pipeline failed", slog.String("error", err.Error()))
		return 1
	}

	// Progress summary on stdout for callers that do not parse JSON logs.
	fmt.Printf("Merged %d dates (%d time rows, %d import rows, %d duplicates dropped) into %s\n",
		result.MergedRows, result.TimeRows, result.ImportRows, result.DuplicatesDropped,
		cfg.Pipeline.OutputPath)

	return 0
}
