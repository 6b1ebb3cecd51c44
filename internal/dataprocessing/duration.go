package dataprocessing

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// clockRe matches the HH:MM notation used by the import time log.
// Durations are always sub-24-hour, so the hour field stays below 24.
var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock converts an "HH:MM" string into the elapsed duration it
// denotes (hours*3600 + minutes*60 seconds). A missing or malformed
// value yields nil, never zero: an import that logged no duration must
// stay distinguishable from one that finished instantly.
func ParseClock(s string) *time.Duration {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])

	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	return &d
}

// FormatClock renders a duration back into the "HH:MM" log notation.
// It is the inverse of ParseClock for all valid inputs; a nil duration
// renders as the empty string.
func FormatClock(d *time.Duration) string {
	if d == nil {
		return ""
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/3600, (total%3600)/60)
}

// SumDurations adds elapsed times under absent-value semantics: if any
// operand is absent the result is absent.
func SumDurations(ds ...*time.Duration) *time.Duration {
	var sum time.Duration
	for _, d := range ds {
		if d == nil {
			return nil
		}
		sum += *d
	}
	return &sum
}

// DurationSeconds returns the duration as whole seconds, the numeric
// coercion used by the export and the feature projection.
func DurationSeconds(d *time.Duration) (int64, bool) {
	if d == nil {
		return 0, false
	}
	return int64(d.Seconds()), true
}
