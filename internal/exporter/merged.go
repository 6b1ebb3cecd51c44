package exporter

import (
	"strconv"
	"time"

	"importcli/pkg/contracts/domain"
)

// dateFormat matches the date notation of the input logs so the export
// round-trips through the loader.
const dateFormat = "2006-01-02"

// MergedHeaders returns the canonical export column order: the date
// key, the import statistics, the process durations, then the derived
// calendar features.
func MergedHeaders(dateColumn string) []string {
	if dateColumn == "" {
		dateColumn = "Date"
	}
	return []string{
		dateColumn, "Total", "SWB", "ZDB", "EZB", "Online", "LargeSubfields", "LargeSize",
		"ProcessA", "ProcessB", "Weekday", "Month", "Year",
	}
}

// MergedRows converts merged records into export rows. Durations are
// rendered as whole seconds; absent values render as empty fields, not
// as sentinel strings.
func MergedRows(records []domain.MergedRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Date.Format(dateFormat),
			formatCount(rec.Total),
			formatCount(rec.SWB),
			formatCount(rec.ZDB),
			formatCount(rec.EZB),
			formatCount(rec.Online),
			formatCount(rec.LargeSubfields),
			formatCount(rec.LargeSize),
			formatSeconds(rec.ProcessA),
			formatSeconds(rec.ProcessB),
			rec.WeekdayLabel,
			rec.MonthLabel,
			strconv.Itoa(rec.Year),
		})
	}
	return rows
}

func formatCount(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatSeconds(d *time.Duration) string {
	if d == nil {
		return ""
	}
	return strconv.FormatInt(int64(d.Seconds()), 10)
}
