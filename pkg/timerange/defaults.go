/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package timerange

import (
	"time"
)

// DefaultDays is the length of the synthesized default range, today included
const DefaultDays = 30

// DefaultTimeRange returns configured unless it is empty or the no-filter
// sentinel, in which case it returns the last DefaultDays days ending on
// today. Call it each time a default is needed; today moves.
func DefaultTimeRange(configured string, today time.Time) string {
	if configured != "" && configured != NoTimeRange {
		return configured
	}

	start, end := LastDays(DefaultDays, today)
	return EncodeDates(start, end, FormatDate)
}

// LastDays returns the calendar dates spanning n days through today
// inclusive, at midnight in today's location.
func LastDays(n int, today time.Time) (start, end time.Time) {
	end = Midnight(today)
	start = end.AddDate(0, 0, -(n - 1))
	return start, end
}

func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Days counts the calendar days covered by an inclusive range. It is zero
// or negative for inverted ranges.
func Days(start, end time.Time) int {
	s := Midnight(start)
	e := Midnight(end)
	// Round to absorb DST shifts between the two midnights
	return int(e.Sub(s).Round(24*time.Hour)/(24*time.Hour)) + 1
}
