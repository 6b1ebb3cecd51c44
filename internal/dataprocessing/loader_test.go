package dataprocessing

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "importcli/internal/errors"
	"importcli/internal/shared/testutil"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTimeLog(t *testing.T) {
	path := writeFile(t, "importtimes.log",
		"Datum KUPICA AKKUAK\n"+
			"2021-01-04 00:45 01:10\n"+
			"2021-01-05 00:30 --:--\n")

	records, err := LoadTimeLog(path, "Date", nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, date(2021, time.January, 4), records[0].Date)
	require.NotNil(t, records[0].ProcessA)
	assert.Equal(t, 45*time.Minute, *records[0].ProcessA)
	require.NotNil(t, records[0].ProcessB)
	assert.Equal(t, 70*time.Minute, *records[0].ProcessB)

	// Malformed duration fails soft to absent.
	require.NotNil(t, records[1].ProcessA)
	assert.Nil(t, records[1].ProcessB)
}

func TestLoadTimeLog_LogsAbsentDurations(t *testing.T) {
	path := writeFile(t, "importtimes.log",
		"Datum KUPICA AKKUAK\n"+
			"2021-01-05 00:30 --:--\n")

	logger, handler := testutil.NewTestLogger(t)
	_, err := LoadTimeLog(path, "Date", logger)
	require.NoError(t, err)

	assert.True(t, handler.HasMessage("duration treated as absent"))
}

func TestLoadTimeLog_ColumnMismatchFatal(t *testing.T) {
	path := writeFile(t, "importtimes.log",
		"Datum KUPICA AKKUAK\n"+
			"2021-01-04 00:45 01:10\n"+
			"2021-01-05 00:30\n")

	_, err := LoadTimeLog(path, "Date", nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeLoad, appErr.Type)
	assert.Equal(t, 3, appErr.Context["row"])
	assert.Equal(t, path, appErr.Context["file"])
}

func TestLoadTimeLog_BadDateFatal(t *testing.T) {
	path := writeFile(t, "importtimes.log",
		"Datum KUPICA AKKUAK\n"+
			"04.01.2021 00:45 01:10\n")

	_, err := LoadTimeLog(path, "Date", nil)
	assert.Error(t, err)
}

func TestLoadTimeLog_MissingFile(t *testing.T) {
	_, err := LoadTimeLog(filepath.Join(t.TempDir(), "absent.log"), "Date", nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeLoad, appErr.Type)
}

func TestLoadImportLog(t *testing.T) {
	path := writeFile(t, "importstats.log",
		"# nightly import statistics\n"+
			"Datum gesamt SWB ZDB EZB Online >4000 Subfields >40kB\n"+
			"2021-01-04 500 200 150 100 50 3 1\n"+
			"2021-01-04 480 190 150 90 50 2 1\n")

	records, err := LoadImportLog(path, "Date", nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(500), records[0].Total)
	assert.Equal(t, int64(200), records[0].SWB)
	assert.Equal(t, int64(150), records[0].ZDB)
	assert.Equal(t, int64(100), records[0].EZB)
	assert.Equal(t, int64(50), records[0].Online)
	assert.Equal(t, int64(3), records[0].LargeSubfields)
	assert.Equal(t, int64(1), records[0].LargeSize)

	// Both duplicate rows survive the load; resolution is the
	// deduplicator's job, not the loader's.
	assert.Equal(t, records[0].Date, records[1].Date)
}

func TestLoadImportLog_BadCountFatal(t *testing.T) {
	path := writeFile(t, "importstats.log",
		"# nightly import statistics\n"+
			"Datum gesamt SWB ZDB EZB Online >4000 Subfields >40kB\n"+
			"2021-01-04 many 200 150 100 50 3 1\n")

	_, err := LoadImportLog(path, "Date", nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeLoad, appErr.Type)
	assert.Equal(t, 3, appErr.Context["row"])
}

func TestLoadImportLog_PreservesRowOrder(t *testing.T) {
	path := writeFile(t, "importstats.log",
		"# meta\n"+
			"Datum gesamt SWB ZDB EZB Online >4000 Subfields >40kB\n"+
			"2021-01-06 300 100 100 50 50 0 0\n"+
			"2021-01-04 500 200 150 100 50 3 1\n"+
			"2021-01-05 400 150 150 50 50 1 0\n")

	records, err := LoadImportLog(path, "Date", nil)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, date(2021, time.January, 6), records[0].Date)
	assert.Equal(t, date(2021, time.January, 4), records[1].Date)
	assert.Equal(t, date(2021, time.January, 5), records[2].Date)
}

func TestLoadRows_EmptyFileMissingHeader(t *testing.T) {
	path := writeFile(t, "empty.log", "")

	_, err := loadRows(path, 0, 3)
	assert.Error(t, err)
}
