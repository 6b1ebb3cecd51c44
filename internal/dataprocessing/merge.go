package dataprocessing

import (
	"fmt"
	"sort"
	"time"

	apperrors "importcli/internal/errors"
	"importcli/pkg/contracts/domain"
)

// MergeRecords performs a full outer join of the time log and the
// deduplicated import statistics log on the date key. The output holds
// exactly one record per distinct date seen in either input, sorted
// chronologically; fields from a side that has no row for the date stay
// nil. Both inputs must be unique on date - a repeated date here means
// deduplication was skipped or broken and is reported as fatal.
func MergeRecords(times []domain.TimeRecord, imports []domain.ImportRecord) ([]domain.MergedRecord, error) {
	timesByDate := make(map[time.Time]domain.TimeRecord, len(times))
	for _, rec := range times {
		if _, dup := timesByDate[rec.Date]; dup {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("duplicate date %s in time log", rec.Date.Format(DateFormat)), nil)
		}
		timesByDate[rec.Date] = rec
	}

	importsByDate := make(map[time.Time]domain.ImportRecord, len(imports))
	for _, rec := range imports {
		if _, dup := importsByDate[rec.Date]; dup {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("duplicate date %s in import log after deduplication", rec.Date.Format(DateFormat)), nil)
		}
		importsByDate[rec.Date] = rec
	}

	dates := make([]time.Time, 0, len(timesByDate)+len(importsByDate))
	for d := range timesByDate {
		dates = append(dates, d)
	}
	for d := range importsByDate {
		if _, both := timesByDate[d]; !both {
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	merged := make([]domain.MergedRecord, 0, len(dates))
	for _, d := range dates {
		rec := domain.MergedRecord{Date: d}

		if t, ok := timesByDate[d]; ok {
			rec.ProcessA = t.ProcessA
			rec.ProcessB = t.ProcessB
		}
		if imp, ok := importsByDate[d]; ok {
			total, swb, zdb, ezb, online := imp.Total, imp.SWB, imp.ZDB, imp.EZB, imp.Online
			largeSubfields, largeSize := imp.LargeSubfields, imp.LargeSize
			rec.Total = &total
			rec.SWB = &swb
			rec.ZDB = &zdb
			rec.EZB = &ezb
			rec.Online = &online
			rec.LargeSubfields = &largeSubfields
			rec.LargeSize = &largeSize
		}

		merged = append(merged, rec)
	}

	return merged, nil
}
