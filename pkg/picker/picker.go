/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package picker models the date range picker that edits DateRange frames.
// It holds no UI; front ends render State and feed edits back through Apply.
package picker

import (
	"fmt"
	"time"

	"github.com/dburkart/timerange/pkg/timerange"
	"github.com/rs/zerolog"
)

// DisplayLayout is how the picker shows a date to the user
const DisplayLayout = "02.01.2006"

// CustomRangeLabel is shown when the selection matches no preset
const CustomRangeLabel = "Custom Range"

// Translator maps an English label to the user's language
type Translator func(string) string

// Identity leaves labels untranslated
func Identity(s string) string { return s }

type State struct {
	Start time.Time
	End   time.Time

	// Defaulted is set when Start and End were synthesized rather than
	// decoded from the value
	Defaulted bool
}

// Seed builds the picker state for value. Values that are not date ranges,
// or whose dates cannot be read, fall back to the last 30 days ending on
// today. Unreadable dates are logged; a foreign value is not worth a warning.
func Seed(value string, today time.Time, log zerolog.Logger) State {
	rng, ok := timerange.DecodeDateRange(value)
	if !ok {
		log.Debug().Str("time_range", value).Msg("not a date range, seeding picker with default")
		return defaultState(today)
	}

	start, end, err := rng.Times(today.Location())
	if err != nil {
		log.Warn().Err(err).Str("time_range", value).Msg("unable to interpret date range, seeding picker with default")
		return defaultState(today)
	}

	return State{Start: start, End: end}
}

func defaultState(today time.Time) State {
	start, end := timerange.LastDays(timerange.DefaultDays, today)
	return State{Start: start, End: end, Defaulted: true}
}

// Apply encodes a confirmed selection as a DateRange expression
func Apply(start, end time.Time) string {
	return timerange.EncodeDates(start, end, timerange.FormatDate)
}

// Value is the expression for the current selection
func (s State) Value() string {
	return Apply(s.Start, s.End)
}

// Label renders the selection the way the picker input shows it
func (s State) Label() string {
	return fmt.Sprintf("%s - %s", s.Start.Format(DisplayLayout), s.End.Format(DisplayLayout))
}

// ChosenLabel names the preset matching the selection, or CustomRangeLabel
func (s State) ChosenLabel(today time.Time, tr Translator) string {
	if tr == nil {
		tr = Identity
	}

	for _, p := range Presets(today) {
		if sameDay(p.Start, s.Start) && sameDay(p.End, s.End) {
			return tr(p.Label)
		}
	}

	return tr(CustomRangeLabel)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
