/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package timerange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dburkart/timerange/pkg/expr/ast"
)

// Mode says how one side of a custom range is pinned
type Mode string

const (
	ModeSpecific Mode = "specific"
	ModeRelative Mode = "relative"
	ModeNow      Mode = "now"
	ModeToday    Mode = "today"
)

// IsSpecific is true for modes that name a point in time directly
func (m Mode) IsSpecific() bool {
	return m == ModeSpecific || m == ModeNow || m == ModeToday
}

// Grains accepted by the custom editor, largest first
var Grains = [...]string{"YEAR", "QUARTER", "MONTH", "WEEK", "DAY", "HOUR", "MINUTE", "SECOND"}

// CustomRange is the state of the custom editor. Since/Until fields describe
// each side; the Anchor fields are only used when both sides are relative.
type CustomRange struct {
	SinceDatetime   string `json:"since_datetime,omitempty"`
	SinceMode       Mode   `json:"since_mode"`
	SinceGrain      string `json:"since_grain,omitempty"`
	SinceGrainValue int    `json:"since_grain_value,omitempty"`
	UntilDatetime   string `json:"until_datetime,omitempty"`
	UntilMode       Mode   `json:"until_mode"`
	UntilGrain      string `json:"until_grain,omitempty"`
	UntilGrainValue int    `json:"until_grain_value,omitempty"`
	AnchorMode      Mode   `json:"anchor_mode,omitempty"`
	AnchorValue     string `json:"anchor_value,omitempty"`
}

// CustomSeparator splits the two sides of a custom range. Unlike the date
// range parser, custom decoding requires exactly this spelling.
const CustomSeparator = " : "

const (
	iso8601          = `\d{4}-\d\d-\d\dT\d\d:\d\d:\d\d(?:\.\d+)?(?:(?:[+-]\d\d:\d\d)|Z)?`
	datetimeConstant = `(?:TODAY|NOW)`
	grainValue       = `[+-]?[1-9][0-9]*`
	grain            = `YEAR|QUARTER|MONTH|WEEK|DAY|HOUR|MINUTE|SECOND`

	customDatetimeLayout = "2006-01-02T15:04:05"
)

var (
	customRangeExpression = regexp.MustCompile(
		`(?i)^DATEADD\(DATETIME\("(` + iso8601 + `|` + datetimeConstant + `)"\),\s(` + grainValue + `),\s(` + grain + `)\)$`,
	)
	iso8601AndConstant = regexp.MustCompile(`(?i)^` + iso8601 + `$|^` + datetimeConstant + `$`)
)

// specificMode is "now" or "today" when the side is exactly that constant,
// otherwise "specific".
func specificMode(side string) Mode {
	switch side {
	case string(ModeNow):
		return ModeNow
	case string(ModeToday):
		return ModeToday
	}
	return ModeSpecific
}

// DecodeCustomRange recognizes the shapes the custom editor can produce:
//
//	specific : specific
//	DATEADD(DATETIME("<x>"), -N, GRAIN) : specific    (start must contain relativeStart)
//	specific : DATEADD(DATETIME("<start>"), N, GRAIN)
//
// where specific is an ISO-8601 datetime, "now", or "today". An empty
// relativeStart never matches, which disables the second shape.
func DecodeCustomRange(timeRange, relativeStart string) (CustomRange, bool) {
	sides := strings.Split(timeRange, CustomSeparator)
	if len(sides) != 2 {
		return CustomRange{}, false
	}
	start, end := sides[0], sides[1]

	// specific : specific
	if iso8601AndConstant.MatchString(start) && iso8601AndConstant.MatchString(end) {
		return CustomRange{
			SinceDatetime: start,
			SinceMode:     specificMode(start),
			UntilDatetime: end,
			UntilMode:     specificMode(end),
		}, true
	}

	// relative : specific
	since := customRangeExpression.FindStringSubmatch(start)
	if since != nil && iso8601AndConstant.MatchString(end) &&
		relativeStart != "" && strings.Contains(start, relativeStart) {
		value, _ := strconv.Atoi(since[2])
		return CustomRange{
			SinceDatetime:   since[1],
			SinceMode:       ModeRelative,
			SinceGrain:      since[3],
			SinceGrainValue: value,
			UntilDatetime:   end,
			UntilMode:       specificMode(end),
		}, true
	}

	// specific : relative
	until := customRangeExpression.FindStringSubmatch(end)
	if iso8601AndConstant.MatchString(start) && until != nil && strings.Contains(end, start) {
		value, _ := strconv.Atoi(until[2])
		return CustomRange{
			SinceDatetime:   start,
			SinceMode:       specificMode(start),
			UntilDatetime:   until[1],
			UntilMode:       ModeRelative,
			UntilGrain:      until[3],
			UntilGrainValue: value,
		}, true
	}

	return CustomRange{}, false
}

// EncodeCustomRange is the inverse of DecodeCustomRange. Relative starts
// always move backwards, whatever the sign of SinceGrainValue.
func EncodeCustomRange(c CustomRange) string {
	// specific : specific
	if c.SinceMode.IsSpecific() && c.UntilMode.IsSpecific() {
		return c.specificSince() + CustomSeparator + c.specificUntil()
	}

	// relative : specific
	if c.SinceMode == ModeRelative && c.UntilMode.IsSpecific() {
		until := c.specificUntil()
		since := fmt.Sprintf(`DATEADD(DATETIME("%s"), %d, %s)`, until, -abs(c.SinceGrainValue), c.SinceGrain)
		return since + CustomSeparator + until
	}

	// specific : relative
	if c.SinceMode.IsSpecific() && c.UntilMode == ModeRelative {
		since := c.specificSince()
		until := fmt.Sprintf(`DATEADD(DATETIME("%s"), %d, %s)`, since, c.UntilGrainValue, c.UntilGrain)
		return since + CustomSeparator + until
	}

	// relative : relative
	since := fmt.Sprintf(`DATEADD(DATETIME("%s"), %d, %s)`, c.AnchorValue, -abs(c.SinceGrainValue), c.SinceGrain)
	until := fmt.Sprintf(`DATEADD(DATETIME("%s"), %d, %s)`, c.AnchorValue, c.UntilGrainValue, c.UntilGrain)
	return since + CustomSeparator + until
}

func (c CustomRange) specificSince() string {
	if c.SinceMode == ModeSpecific {
		return customDatetime(c.SinceDatetime)
	}
	return string(c.SinceMode)
}

func (c CustomRange) specificUntil() string {
	if c.UntilMode == ModeSpecific {
		return customDatetime(c.UntilDatetime)
	}
	return string(c.UntilMode)
}

// customDatetime normalizes a datetime to YYYY-MM-DDTHH:MM:SS, passing
// through anything it cannot read
func customDatetime(text string) string {
	tm, err := ast.ParseDateTime(text, time.UTC)
	if err != nil {
		return text
	}
	return tm.Format(customDatetimeLayout)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
