package domain

import (
	"time"
)

// MergedRecord is the full outer join of TimeRecord and ImportRecord on
// the date key, plus the calendar features derived from that date.
// Fields sourced from a side that had no row for the date are nil, never
// zeroed. The calendar fields are always set once the record exists,
// since the date key itself is never absent.
type MergedRecord struct {
	Date time.Time `json:"date" validate:"required"`

	// Import statistics side.
	Total          *int64 `json:"total,omitempty"`
	SWB            *int64 `json:"swb,omitempty"`
	ZDB            *int64 `json:"zdb,omitempty"`
	EZB            *int64 `json:"ezb,omitempty"`
	Online         *int64 `json:"online,omitempty"`
	LargeSubfields *int64 `json:"large_subfields,omitempty"`
	LargeSize      *int64 `json:"large_size,omitempty"`

	// Time log side.
	ProcessA *time.Duration `json:"process_a,omitempty"`
	ProcessB *time.Duration `json:"process_b,omitempty"`

	// Calendar features derived from Date. Weekday is ISO style with
	// Monday = 1; Year is treated as a categorical label downstream.
	Weekday      int    `json:"weekday" validate:"min=0,max=7"`
	WeekdayLabel string `json:"weekday_label"`
	Month        int    `json:"month" validate:"min=0,max=12"`
	MonthLabel   string `json:"month_label"`
	Year         int    `json:"year"`
}

// HasImportStats reports whether the import statistics side was present
// for this date.
func (r MergedRecord) HasImportStats() bool {
	return r.Total != nil
}

// HasDurations reports whether at least one process duration was present
// for this date.
func (r MergedRecord) HasDurations() bool {
	return r.ProcessA != nil || r.ProcessB != nil
}
