package exporter

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "importcli/internal/errors"
)

// SheetName is the sheet the merged table is written to.
const SheetName = "Merged"

// WorkbookWriter writes the merged table as an xlsx workbook for the
// downstream reporting surface.
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates a new workbook writer.
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{logger: logger}
}

// WriteWorkbook writes the header row and all records to a single
// sheet. Cells stay strings so absent values remain empty cells and the
// file mirrors the delimited export exactly.
func (w *WorkbookWriter) WriteWorkbook(path string, headers []string, records [][]string) error {
	w.logger.Info("writing workbook",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return apperrors.NewStorageError("failed to name workbook sheet", err)
	}

	if err := w.writeRow(f, 1, headers); err != nil {
		return err
	}
	for i, record := range records {
		if err := w.writeRow(f, i+2, record); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError("failed to save workbook", err).WithContext("path", path)
	}
	return nil
}

func (w *WorkbookWriter) writeRow(f *excelize.File, rowNum int, fields []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return apperrors.NewStorageError("failed to compute workbook cell", err).WithContext("row", rowNum)
	}

	row := make([]interface{}, len(fields))
	for i, field := range fields {
		row[i] = field
	}
	if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
		return apperrors.NewStorageError("failed to write workbook row", err).WithContext("row", rowNum)
	}
	return nil
}
