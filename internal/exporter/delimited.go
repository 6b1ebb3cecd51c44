package exporter

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "importcli/internal/errors"
)

// DelimitedWriter writes tabular data with a fixed field separator.
type DelimitedWriter struct {
	delimiter rune
	logger    *slog.Logger
}

// NewDelimitedWriter creates a writer for the given field separator.
// A zero delimiter means tab.
func NewDelimitedWriter(delimiter rune, logger *slog.Logger) *DelimitedWriter {
	if delimiter == 0 {
		delimiter = '\t'
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DelimitedWriter{delimiter: delimiter, logger: logger}
}

// WriteTable writes the header row followed by all records to path,
// creating parent directories as needed. An unwritable destination is
// a fatal storage error.
func (w *DelimitedWriter) WriteTable(path string, headers []string, records [][]string) error {
	w.logger.Info("writing delimited table",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create output file", err).WithContext("path", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = w.delimiter

	if err := writer.Write(headers); err != nil {
		return apperrors.NewStorageError("failed to write header row", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError("failed to write record", err).WithContext("row", i+1)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewStorageError("failed to flush output file", err).WithContext("path", path)
	}
	return nil
}
