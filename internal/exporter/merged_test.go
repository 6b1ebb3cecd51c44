package exporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"importcli/pkg/contracts/domain"
)

func int64Ptr(v int64) *int64                    { return &v }
func durationPtr(d time.Duration) *time.Duration { return &d }

func TestMergedHeaders(t *testing.T) {
	headers := MergedHeaders("Date")
	assert.Equal(t, []string{
		"Date", "Total", "SWB", "ZDB", "EZB", "Online", "LargeSubfields", "LargeSize",
		"ProcessA", "ProcessB", "Weekday", "Month", "Year",
	}, headers)

	// Configured date column name flows into the header.
	assert.Equal(t, "Datum", MergedHeaders("Datum")[0])
	assert.Equal(t, "Date", MergedHeaders("")[0])
}

func TestMergedRows(t *testing.T) {
	records := []domain.MergedRecord{
		{
			Date:           time.Date(2021, time.January, 4, 0, 0, 0, 0, time.UTC),
			Total:          int64Ptr(500),
			SWB:            int64Ptr(200),
			ZDB:            int64Ptr(150),
			EZB:            int64Ptr(100),
			Online:         int64Ptr(50),
			LargeSubfields: int64Ptr(3),
			LargeSize:      int64Ptr(1),
			ProcessA:       durationPtr(45 * time.Minute),
			ProcessB:       durationPtr(70 * time.Minute),
			Weekday:        1,
			WeekdayLabel:   "Monday",
			Month:          1,
			MonthLabel:     "January",
			Year:           2021,
		},
		{
			// Absent side renders as empty fields, not sentinels.
			Date:         time.Date(2021, time.January, 5, 0, 0, 0, 0, time.UTC),
			Weekday:      2,
			WeekdayLabel: "Tuesday",
			Month:        1,
			MonthLabel:   "January",
			Year:         2021,
		},
	}

	rows := MergedRows(records)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"2021-01-04", "500", "200", "150", "100", "50", "3", "1",
		"2700", "4200", "Monday", "January", "2021",
	}, rows[0])
	assert.Equal(t, []string{
		"2021-01-05", "", "", "", "", "", "", "",
		"", "", "Tuesday", "January", "2021",
	}, rows[1])

	for _, row := range rows {
		assert.Len(t, row, len(MergedHeaders("Date")))
	}
}
