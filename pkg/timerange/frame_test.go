/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package timerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessFrame(t *testing.T) {
	tests := []struct {
		name      string
		timeRange string
		want      FrameType
	}{
		{"common", "Last week", FrameCommon},
		{"common is case sensitive", "last week", FrameAdvanced},
		{"calendar", "previous calendar month", FrameCalendar},
		{"current", "Current quarter", FrameCurrent},
		{"no filter", NoTimeRange, FrameNoFilter},
		{"custom specific", "2020-01-01T00:00:00 : now", FrameCustom},
		{"custom specific relative", `2020-01-01T00:00:00 : DATEADD(DATETIME("2020-01-01T00:00:00"), 7, day)`, FrameCustom},
		{"relative start needs a relative start", `DATEADD(DATETIME("today"), -7, day) : today`, FrameDateRange},
		{"date range", "DATEADD(DATETIME('2025-09-28'), 0, DAY) : DATEADD(DATETIME('2025-10-27'), 0, DAY)", FrameDateRange},
		{"malformed date range still a date range", "DATEADD DATETIME garbage", FrameDateRange},
		{"plain datetime range", "2025-09-28 00:00:00 : 2025-10-27 23:59:59", FrameAdvanced},
		{"empty", "", FrameAdvanced},
		{"only DATEADD", "DATEADD(now, 1, DAY) : now", FrameAdvanced},
		{"only DATETIME", "DATETIME('2025-10-27') : now", FrameAdvanced},
		{"lowercase keywords", "dateadd(datetime('2025-10-27'), 0, day) : now", FrameAdvanced},
		{"free form", "Last 3 fortnights", FrameAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessFrame(tt.timeRange))
		})
	}
}

func TestGuessFrameNamedSets(t *testing.T) {
	for _, r := range CommonRanges {
		assert.Equal(t, FrameCommon, GuessFrame(r), r)
	}
	for _, r := range CalendarRanges {
		assert.Equal(t, FrameCalendar, GuessFrame(r), r)
	}
	for _, r := range CurrentRanges {
		assert.Equal(t, FrameCurrent, GuessFrame(r), r)
	}
}

func TestGuessFrameIsTotal(t *testing.T) {
	inputs := []string{
		"\x00", "\xff\xfe", ":", " : ", "DATEADD", "DATETIME", "DATEADDDATETIME",
		"'", "\"", "((((", "DATEADD(DATETIME('", "No filter ", " No filter",
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			frame := GuessFrame(in)
			_, ok := ParseFrame(string(frame))
			assert.True(t, ok, "frame %q for %q is not a known frame", frame, in)
		})
	}

	assert.Equal(t, FrameDateRange, GuessFrame("DATEADDDATETIME"))
}

func TestParseFrame(t *testing.T) {
	frame, ok := ParseFrame("no filter")
	assert.True(t, ok)
	assert.Equal(t, FrameNoFilter, frame)

	_, ok = ParseFrame("Sometimes")
	assert.False(t, ok)
}
