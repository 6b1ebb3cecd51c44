package dataprocessing

import (
	"time"

	"importcli/pkg/contracts/domain"
)

// CalendarFeatures computes the calendar attributes for a date: the ISO
// weekday (Monday = 1 .. Sunday = 7) with its English label, the month
// ordinal with its label, and the year. It is a pure function of the
// date and never consults any other field.
func CalendarFeatures(date time.Time) (weekday int, weekdayLabel string, month int, monthLabel string, year int) {
	weekday = int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return weekday, date.Weekday().String(), int(date.Month()), date.Month().String(), date.Year()
}

// DeriveCalendar fills the calendar feature fields of every merged
// record from its date key. Records are copied; the input is unchanged.
func DeriveCalendar(records []domain.MergedRecord) []domain.MergedRecord {
	out := make([]domain.MergedRecord, len(records))
	for i, rec := range records {
		rec.Weekday, rec.WeekdayLabel, rec.Month, rec.MonthLabel, rec.Year = CalendarFeatures(rec.Date)
		out[i] = rec
	}
	return out
}
