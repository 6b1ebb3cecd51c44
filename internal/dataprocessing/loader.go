package dataprocessing

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "importcli/internal/errors"
	"importcli/pkg/contracts/domain"
)

// DateFormat is the date notation shared by both log files and the export.
const DateFormat = "2006-01-02"

// importLogSkipLines is the metadata line the import statistics log
// carries before its column headers.
const importLogSkipLines = 1

// TimeLogColumns returns the canonical column names assigned to the
// import time log, replacing whatever header line the file carries.
func TimeLogColumns(dateColumn string) []string {
	return []string{dateColumn, "ProcessA", "ProcessB"}
}

// ImportLogColumns returns the canonical column names assigned to the
// import statistics log.
func ImportLogColumns(dateColumn string) []string {
	return []string{dateColumn, "Total", "SWB", "ZDB", "EZB", "Online", "LargeSubfields", "LargeSize"}
}

// tableRow is one data row of a loaded log file together with its
// physical line number, kept for diagnostics.
type tableRow struct {
	line   int
	fields []string
}

// loadRows reads a space-delimited log file. The first skipLines lines
// are discarded, then one header line is discarded in favor of the
// caller-supplied canonical names. Every remaining row must carry
// exactly columnCount fields; a mismatch is a fatal load error naming
// the file and row. Rows are returned in file order, none dropped.
func loadRows(path string, skipLines, columnCount int) ([]tableRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewLoadError(fmt.Sprintf("cannot open input file %s", path), err)
	}
	defer file.Close()

	var rows []tableRow
	scanner := bufio.NewScanner(file)
	lineNum := 0
	headerSeen := false

	for scanner.Scan() {
		lineNum++
		if lineNum <= skipLines {
			continue
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !headerSeen {
			// Header field count is not validated: headers like
			// ">4000 Subfields" tokenize differently than the data.
			headerSeen = true
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != columnCount {
			return nil, apperrors.NewLoadErrorAt(
				fmt.Sprintf("column count mismatch: want %d fields, got %d", columnCount, len(fields)),
				nil, path, lineNum)
		}
		rows = append(rows, tableRow{line: lineNum, fields: fields})
	}

	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewLoadError(fmt.Sprintf("failed reading %s", path), err)
	}
	if !headerSeen {
		return nil, apperrors.NewLoadError(fmt.Sprintf("missing header line in %s", path), nil)
	}

	return rows, nil
}

// LoadTimeLog reads the import time log into TimeRecords. Malformed
// duration fields become absent values and are only logged; a bad date
// aborts the load.
func LoadTimeLog(path, dateColumn string, logger *slog.Logger) ([]domain.TimeRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	columns := TimeLogColumns(dateColumn)
	rows, err := loadRows(path, 0, len(columns))
	if err != nil {
		return nil, err
	}

	records := make([]domain.TimeRecord, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(DateFormat, row.fields[0])
		if err != nil {
			return nil, apperrors.NewLoadErrorAt("unparseable date in time log", err, path, row.line)
		}

		rec := domain.TimeRecord{
			Date:     date,
			ProcessA: ParseClock(row.fields[1]),
			ProcessB: ParseClock(row.fields[2]),
		}
		if rec.ProcessA == nil {
			logger.Debug("duration treated as absent",
				slog.String("file", path),
				slog.Int("line", row.line),
				slog.String("column", "ProcessA"),
				slog.String("value", row.fields[1]))
		}
		if rec.ProcessB == nil {
			logger.Debug("duration treated as absent",
				slog.String("file", path),
				slog.Int("line", row.line),
				slog.String("column", "ProcessB"),
				slog.String("value", row.fields[2]))
		}
		records = append(records, rec)
	}

	logger.Info("time log loaded",
		slog.String("file", path),
		slog.Int("rows", len(records)))

	return records, nil
}

// LoadImportLog reads the import statistics log into ImportRecords.
// All count fields are fixed-schema integers; a value that fails
// coercion aborts the load.
func LoadImportLog(path, dateColumn string, logger *slog.Logger) ([]domain.ImportRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	columns := ImportLogColumns(dateColumn)
	rows, err := loadRows(path, importLogSkipLines, len(columns))
	if err != nil {
		return nil, err
	}

	records := make([]domain.ImportRecord, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(DateFormat, row.fields[0])
		if err != nil {
			return nil, apperrors.NewLoadErrorAt("unparseable date in import log", err, path, row.line)
		}

		counts := make([]int64, len(columns)-1)
		for i, field := range row.fields[1:] {
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, apperrors.NewLoadErrorAt(
					fmt.Sprintf("unparseable count in column %s", columns[i+1]), err, path, row.line)
			}
			counts[i] = v
		}

		records = append(records, domain.ImportRecord{
			Date:           date,
			Total:          counts[0],
			SWB:            counts[1],
			ZDB:            counts[2],
			EZB:            counts[3],
			Online:         counts[4],
			LargeSubfields: counts[5],
			LargeSize:      counts[6],
		})
	}

	logger.Info("import log loaded",
		slog.String("file", path),
		slog.Int("rows", len(records)))

	return records, nil
}
