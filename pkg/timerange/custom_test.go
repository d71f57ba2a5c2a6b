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

func TestDecodeCustomRange(t *testing.T) {
	tests := []struct {
		name          string
		timeRange     string
		relativeStart string
		want          CustomRange
		match         bool
	}{
		{
			name:      "specific : specific",
			timeRange: "2020-01-01T00:00:00 : 2020-02-01T00:00:00",
			want: CustomRange{
				SinceDatetime: "2020-01-01T00:00:00", SinceMode: ModeSpecific,
				UntilDatetime: "2020-02-01T00:00:00", UntilMode: ModeSpecific,
			},
			match: true,
		},
		{
			name:      "constants",
			timeRange: "today : now",
			want: CustomRange{
				SinceDatetime: "today", SinceMode: ModeToday,
				UntilDatetime: "now", UntilMode: ModeNow,
			},
			match: true,
		},
		{
			name:      "uppercase constants match but stay specific",
			timeRange: "TODAY : NOW",
			want: CustomRange{
				SinceDatetime: "TODAY", SinceMode: ModeSpecific,
				UntilDatetime: "NOW", UntilMode: ModeSpecific,
			},
			match: true,
		},
		{
			name:          "relative : specific",
			timeRange:     `DATEADD(DATETIME("today"), -7, day) : today`,
			relativeStart: "today",
			want: CustomRange{
				SinceDatetime: "today", SinceMode: ModeRelative, SinceGrain: "day", SinceGrainValue: -7,
				UntilDatetime: "today", UntilMode: ModeToday,
			},
			match: true,
		},
		{
			name:          "relative start must appear in the start",
			timeRange:     `DATEADD(DATETIME("now"), -7, day) : today`,
			relativeStart: "today",
		},
		{
			name:      "specific : relative",
			timeRange: `2020-01-01T00:00:00 : DATEADD(DATETIME("2020-01-01T00:00:00"), 3, MONTH)`,
			want: CustomRange{
				SinceDatetime: "2020-01-01T00:00:00", SinceMode: ModeSpecific,
				UntilDatetime: "2020-01-01T00:00:00", UntilMode: ModeRelative, UntilGrain: "MONTH", UntilGrainValue: 3,
			},
			match: true,
		},
		{
			name:      "relative end must be anchored on the start",
			timeRange: `2020-01-01T00:00:00 : DATEADD(DATETIME("2021-01-01T00:00:00"), 3, MONTH)`,
		},
		{name: "date only is not custom", timeRange: "2020-01-01 : 2020-02-01"},
		{name: "separator must be spaced", timeRange: "2020-01-01T00:00:00:now"},
		{name: "three sides", timeRange: "now : now : now"},
		{name: "single quotes are date ranges", timeRange: "DATEADD(DATETIME('2025-09-28'), 0, DAY) : DATEADD(DATETIME('2025-10-27'), 0, DAY)"},
		{name: "zero grain value", timeRange: `2020-01-01T00:00:00 : DATEADD(DATETIME("2020-01-01T00:00:00"), 0, DAY)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeCustomRange(tt.timeRange, tt.relativeStart)
			assert.Equal(t, tt.match, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeCustomRange(t *testing.T) {
	tests := []struct {
		name  string
		input CustomRange
		want  string
	}{
		{
			name: "specific : specific",
			input: CustomRange{
				SinceMode: ModeSpecific, SinceDatetime: "2020-01-01",
				UntilMode: ModeNow,
			},
			want: "2020-01-01T00:00:00 : now",
		},
		{
			name: "relative : specific",
			input: CustomRange{
				SinceMode: ModeRelative, SinceGrain: "day", SinceGrainValue: 7,
				UntilMode: ModeToday,
			},
			want: `DATEADD(DATETIME("today"), -7, day) : today`,
		},
		{
			name: "specific : relative",
			input: CustomRange{
				SinceMode: ModeSpecific, SinceDatetime: "2020-01-01T00:00:00",
				UntilMode: ModeRelative, UntilGrain: "week", UntilGrainValue: 2,
			},
			want: `2020-01-01T00:00:00 : DATEADD(DATETIME("2020-01-01T00:00:00"), 2, week)`,
		},
		{
			name: "relative : relative",
			input: CustomRange{
				SinceMode: ModeRelative, SinceGrain: "day", SinceGrainValue: -3,
				UntilMode: ModeRelative, UntilGrain: "day", UntilGrainValue: 3,
				AnchorMode: ModeNow, AnchorValue: "now",
			},
			want: `DATEADD(DATETIME("now"), -3, day) : DATEADD(DATETIME("now"), 3, day)`,
		},
		{
			name: "unreadable datetimes pass through",
			input: CustomRange{
				SinceMode: ModeSpecific, SinceDatetime: "whenever",
				UntilMode: ModeNow,
			},
			want: "whenever : now",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeCustomRange(tt.input))
		})
	}
}

func TestCustomRangeRoundTrip(t *testing.T) {
	for _, c := range []CustomRange{
		{SinceMode: ModeSpecific, SinceDatetime: "2021-06-01T12:00:00", UntilMode: ModeNow, UntilDatetime: "now"},
		{SinceMode: ModeSpecific, SinceDatetime: "2021-06-01T12:00:00", UntilMode: ModeRelative, UntilDatetime: "2021-06-01T12:00:00", UntilGrain: "DAY", UntilGrainValue: 10},
		{SinceMode: ModeRelative, SinceDatetime: "today", SinceGrain: "WEEK", SinceGrainValue: -1, UntilMode: ModeToday, UntilDatetime: "today"},
	} {
		expr := EncodeCustomRange(c)

		got, ok := DecodeCustomRange(expr, "today")
		assert.True(t, ok, expr)
		assert.Equal(t, c, got, expr)
		assert.Equal(t, FrameCustom, GuessFrameWith(expr, "today"), expr)
	}
}
