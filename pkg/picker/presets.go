/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package picker

import (
	"time"

	"github.com/dburkart/timerange/pkg/timerange"
)

// Preset is a one-click range offered next to the calendars
type Preset struct {
	Label string
	Start time.Time
	End   time.Time
}

func (p Preset) Value() string {
	return Apply(p.Start, p.End)
}

// AllTimeStart is where the "All Time" preset begins
var AllTimeStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Presets returns the picker's preset ranges relative to today, in display
// order. Ends are the last day of the period, not the instant it ends.
func Presets(today time.Time) []Preset {
	day := timerange.Midnight(today)
	y, m, _ := day.Date()
	loc := day.Location()

	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	quarterStart := time.Date(y, m-(m-1)%3, 1, 0, 0, 0, 0, loc)
	yearStart := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)

	last30Start, _ := timerange.LastDays(30, day)
	last7Start, _ := timerange.LastDays(7, day)

	return []Preset{
		{Label: "Last 30 Days", Start: last30Start, End: day},
		{Label: "Last 7 Days", Start: last7Start, End: day},
		{Label: "This Month", Start: monthStart, End: lastDay(monthStart.AddDate(0, 1, 0))},
		{Label: "Last Month", Start: monthStart.AddDate(0, -1, 0), End: lastDay(monthStart)},
		{Label: "This Quarter", Start: quarterStart, End: lastDay(quarterStart.AddDate(0, 3, 0))},
		{Label: "This Year", Start: yearStart, End: lastDay(yearStart.AddDate(1, 0, 0))},
		{Label: "Last Year", Start: yearStart.AddDate(-1, 0, 0), End: lastDay(yearStart)},
		{Label: "All Time", Start: time.Date(AllTimeStart.Year(), AllTimeStart.Month(), AllTimeStart.Day(), 0, 0, 0, 0, loc), End: day},
	}
}

// lastDay is the day before the start of the next period
func lastDay(nextStart time.Time) time.Time {
	return nextStart.AddDate(0, 0, -1)
}

// FindPreset looks a preset up by its English label
func FindPreset(label string, today time.Time) (Preset, bool) {
	for _, p := range Presets(today) {
		if p.Label == label {
			return p, true
		}
	}
	return Preset{}, false
}
