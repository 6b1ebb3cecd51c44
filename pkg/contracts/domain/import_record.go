package domain

import (
	"time"
)

// SourceCategory classifies where an imported title record originated.
type SourceCategory string

const (
	SourceSWB    SourceCategory = "SWB"
	SourceZDB    SourceCategory = "ZDB"
	SourceEZB    SourceCategory = "EZB"
	SourceOnline SourceCategory = "Online"
)

// SourceCategories lists the four fixed source categories in the column
// order used by the import statistics log and all exports.
var SourceCategories = []SourceCategory{SourceSWB, SourceZDB, SourceEZB, SourceOnline}

// ImportRecord represents one row of the nightly import statistics log.
// The raw log may carry several rows for the same date when an import
// was rerun; deduplication keeps the row with the highest Total.
type ImportRecord struct {
	Date           time.Time `json:"date" validate:"required"`
	Total          int64     `json:"total" validate:"min=0"`
	SWB            int64     `json:"swb" validate:"min=0"`
	ZDB            int64     `json:"zdb" validate:"min=0"`
	EZB            int64     `json:"ezb" validate:"min=0"`
	Online         int64     `json:"online" validate:"min=0"`
	LargeSubfields int64     `json:"large_subfields" validate:"min=0"` // titles with >4000 subfields
	LargeSize      int64     `json:"large_size" validate:"min=0"`      // titles larger than 40kB
}

// SourceCount returns the count for a single source category.
func (r ImportRecord) SourceCount(c SourceCategory) int64 {
	switch c {
	case SourceSWB:
		return r.SWB
	case SourceZDB:
		return r.ZDB
	case SourceEZB:
		return r.EZB
	case SourceOnline:
		return r.Online
	default:
		return 0
	}
}
