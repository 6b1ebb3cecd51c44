package dataprocessing

import (
	"importcli/pkg/contracts/domain"
)

// DedupStats represents deduplication statistics for one run.
type DedupStats struct {
	InputRows   int
	OutputRows  int
	DroppedRows int
}

// DeduplicateImports resolves repeated dates in the import statistics
// log. For each date the row with the maximum Total survives; an exact
// tie on Total keeps the row seen first, so reruns over the same input
// are deterministic. Survivors keep the relative order in which their
// date first appeared. Applying the function to already-unique input
// returns it unchanged, which makes the operation idempotent.
func DeduplicateImports(records []domain.ImportRecord) ([]domain.ImportRecord, DedupStats) {
	result := make([]domain.ImportRecord, 0, len(records))
	indexByDate := make(map[int64]int, len(records))

	for _, rec := range records {
		key := rec.Date.Unix()
		if i, seen := indexByDate[key]; seen {
			if rec.Total > result[i].Total {
				result[i] = rec
			}
			continue
		}
		indexByDate[key] = len(result)
		result = append(result, rec)
	}

	return result, DedupStats{
		InputRows:   len(records),
		OutputRows:  len(result),
		DroppedRows: len(records) - len(result),
	}
}
