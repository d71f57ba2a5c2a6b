/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var dateTimeFormats = [...]string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006/01/02",
}

// ParseDateTime interprets text as one of the supported date layouts in loc.
// Layouts carrying their own zone keep it.
func ParseDateTime(text string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range dateTimeFormats {
		tm, err := time.ParseInLocation(layout, strings.TrimSpace(text), loc)
		if err == nil {
			return tm, nil
		}
	}

	return time.Time{}, errors.Errorf("specified time '%s' did not match a known date layout", text)
}

// Time resolves an operand to an instant. "now" and "today" are relative to
// now; everything else is parsed in now's location.
func Time(node ASTNode, now time.Time) (time.Time, error) {
	switch n := node.(type) {
	case *DateAddNode:
		base, err := Time(n.Base, now)
		if err != nil {
			return base, err
		}
		return shift(base, n.Amount(), n.Unit.Lexeme)
	case *DateTimeNode:
		if n.Literal == nil {
			return time.Time{}, errors.New("DATETIME is missing its argument")
		}
		return constantOrDate(n.Literal.Val, now)
	case *LiteralNode:
		return constantOrDate(n.Value(), now)
	case *StringNode:
		return constantOrDate(n.Val, now)
	}

	return time.Time{}, errors.Errorf("cannot resolve %T to a time", node)
}

func constantOrDate(text string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "now":
		return now, nil
	case "today":
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}

	tm, err := ParseDateTime(text, now.Location())
	if err != nil {
		return tm, errors.Wrap(err, "unable to resolve time")
	}
	return tm, nil
}

// maxShiftYears bounds calendar shifts so the date arithmetic cannot wrap
const maxShiftYears = 1_000_000

// shiftLimits is the largest offset accepted for each unit
var shiftLimits = map[string]int64{
	"YEAR":    maxShiftYears,
	"QUARTER": maxShiftYears * 4,
	"MONTH":   maxShiftYears * 12,
	"WEEK":    maxShiftYears * 53,
	"DAY":     maxShiftYears * 366,
	"HOUR":    math.MaxInt64 / int64(time.Hour),
	"MINUTE":  math.MaxInt64 / int64(time.Minute),
	"SECOND":  math.MaxInt64 / int64(time.Second),
}

func shift(tm time.Time, n int, unit string) (time.Time, error) {
	name := strings.ToUpper(unit)

	limit, ok := shiftLimits[name]
	if !ok {
		return tm, errors.Errorf("unknown time unit '%s'", unit)
	}
	if int64(n) > limit || int64(n) < -limit {
		return tm, errors.Errorf("offset %d %s is out of range", n, name)
	}

	switch name {
	case "YEAR":
		return tm.AddDate(n, 0, 0), nil
	case "QUARTER":
		return tm.AddDate(0, 3*n, 0), nil
	case "MONTH":
		return tm.AddDate(0, n, 0), nil
	case "WEEK":
		return tm.AddDate(0, 0, 7*n), nil
	case "DAY":
		return tm.AddDate(0, 0, n), nil
	case "HOUR":
		return tm.Add(time.Duration(n) * time.Hour), nil
	case "MINUTE":
		return tm.Add(time.Duration(n) * time.Minute), nil
	}
	return tm.Add(time.Duration(n) * time.Second), nil
}
