// Package dataprocessing implements the cleaning and merge pipeline for
// the nightly library-catalog import logs.
//
// The pipeline is strictly linear and runs in one pass:
//
//	load time log (parse durations) ─┐
//	                                 ├─ merge on date ─ derive calendar ─ export
//	load import log ─ deduplicate ───┘
//
// Duration fields fail soft: a malformed HH:MM value becomes an absent
// (nil) duration that propagates through all downstream arithmetic.
// Structural problems such as a column count mismatch, an unparseable
// date, or a duplicate date surviving deduplication abort the run.
package dataprocessing
