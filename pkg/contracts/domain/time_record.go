package domain

import (
	"time"
)

// TimeRecord represents one night's entry in the import time log.
// The two duration fields hold the elapsed run time of the KUPICA and
// AKKUAK import processes, referred to generically as process A and
// process B. A nil duration means the log line carried no parseable
// value for that process; it is never collapsed to zero.
type TimeRecord struct {
	Date     time.Time      `json:"date" validate:"required"`
	ProcessA *time.Duration `json:"process_a,omitempty"`
	ProcessB *time.Duration `json:"process_b,omitempty"`
}

// TimeLog represents the full parsed contents of the import time log.
// Dates are expected to be unique; the merger treats a repeated date
// as an invariant violation.
type TimeLog struct {
	Records []TimeRecord `json:"records" validate:"dive"`
}
