/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package timerange converts between time range expressions and the
// structured values the date filter editors work with.
package timerange

import (
	"strings"
)

// FrameType names the editor used for a time range
type FrameType string

const (
	FrameCommon    FrameType = "Common"
	FrameCalendar  FrameType = "Calendar"
	FrameCurrent   FrameType = "Current"
	FrameCustom    FrameType = "Custom"
	FrameDateRange FrameType = "DateRange"
	FrameAdvanced  FrameType = "Advanced"
	FrameNoFilter  FrameType = "No filter"
)

// NoTimeRange is the sentinel for "don't filter on time at all"
const NoTimeRange = "No filter"

// Frames lists every FrameType in classification order
var Frames = [...]FrameType{
	FrameCommon,
	FrameCalendar,
	FrameCurrent,
	FrameNoFilter,
	FrameCustom,
	FrameDateRange,
	FrameAdvanced,
}

var (
	CommonRanges = []string{
		"Last day",
		"Last week",
		"Last month",
		"Last quarter",
		"Last year",
	}

	CalendarRanges = []string{
		"previous calendar week",
		"previous calendar month",
		"previous calendar quarter",
		"previous calendar year",
	}

	CurrentRanges = []string{
		"Current day",
		"Current week",
		"Current month",
		"Current quarter",
		"Current year",
	}

	commonRangeSet   = makeSet(CommonRanges)
	calendarRangeSet = makeSet(CalendarRanges)
	currentRangeSet  = makeSet(CurrentRanges)
)

func makeSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// GuessFrame picks the editor for timeRange. The first matching rule wins:
// named ranges, the no-filter sentinel, custom ranges, DATEADD/DATETIME
// date ranges, and finally Advanced for anything else.
func GuessFrame(timeRange string) FrameType {
	return GuessFrameWith(timeRange, "")
}

// GuessFrameWith is GuessFrame with a relative start for the custom range
// decoder, so relative-start custom ranges classify as Custom too.
func GuessFrameWith(timeRange, relativeStart string) FrameType {
	if _, ok := commonRangeSet[timeRange]; ok {
		return FrameCommon
	}
	if _, ok := calendarRangeSet[timeRange]; ok {
		return FrameCalendar
	}
	if _, ok := currentRangeSet[timeRange]; ok {
		return FrameCurrent
	}
	if timeRange == NoTimeRange {
		return FrameNoFilter
	}
	if _, ok := DecodeCustomRange(timeRange, relativeStart); ok {
		return FrameCustom
	}
	if strings.Contains(timeRange, "DATEADD") && strings.Contains(timeRange, "DATETIME") {
		return FrameDateRange
	}
	return FrameAdvanced
}

// ParseFrame maps a frame name back to its FrameType
func ParseFrame(name string) (FrameType, bool) {
	for _, f := range Frames {
		if strings.EqualFold(string(f), name) {
			return f, true
		}
	}
	return "", false
}
