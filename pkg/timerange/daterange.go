/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package timerange

import (
	"fmt"
	"time"

	"github.com/dburkart/timerange/pkg/expr/ast"
	"github.com/dburkart/timerange/pkg/expr/parser"
	"github.com/pkg/errors"
)

// Format selects how EncodeDateRange writes a range.
//
// FormatDate is canonical. FormatDateTime is the older plain "start : end"
// form; downstream consumers accept both, so DecodeDateRange does too.
type Format int

const (
	FormatDate Format = iota
	FormatDateTime
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

func (f Format) Layout() string {
	if f == FormatDateTime {
		return DateTimeLayout
	}
	return DateLayout
}

func (f Format) String() string {
	if f == FormatDateTime {
		return "datetime"
	}
	return "date"
}

// ParseFormat accepts "date" or "datetime"; anything else is an error
func ParseFormat(name string) (Format, error) {
	switch name {
	case "", "date":
		return FormatDate, nil
	case "datetime":
		return FormatDateTime, nil
	}
	return FormatDate, errors.Errorf("unknown format '%s', expected date or datetime", name)
}

// DateRange holds the raw start and end text of a range, both inclusive.
// Nothing guarantees Start is before End, or that either is a real date.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DecodeDateRange extracts the start and end dates from a DATEADD/DATETIME
// range or a plain "start : end" range. Both operands must take the same
// form. ok is false when expr is not a date range; that is not an error.
func DecodeDateRange(expr string) (rng DateRange, ok bool) {
	node, err := parser.ParseRange(expr)
	if err != nil {
		return DateRange{}, false
	}

	if bare(node.Start) != bare(node.End) {
		return DateRange{}, false
	}

	if rng.Start, ok = ast.DateLiteral(node.Start); !ok {
		return DateRange{}, false
	}
	if rng.End, ok = ast.DateLiteral(node.End); !ok {
		return DateRange{}, false
	}

	return rng, true
}

// bare reports whether an operand is a plain date rather than DATETIME based
func bare(node ast.ASTNode) bool {
	_, ok := node.(*ast.LiteralNode)
	return ok
}

// EncodeDateRange writes start and end in the given format. The dates are
// not validated or reordered.
func EncodeDateRange(start, end string, f Format) string {
	if f == FormatDateTime {
		return fmt.Sprintf("%s : %s", start, end)
	}
	return fmt.Sprintf("DATEADD(DATETIME('%s'), 0, DAY) : DATEADD(DATETIME('%s'), 0, DAY)", start, end)
}

// EncodeDates formats start and end with the format's layout, then encodes
func EncodeDates(start, end time.Time, f Format) string {
	return EncodeDateRange(start.Format(f.Layout()), end.Format(f.Layout()), f)
}

func (r DateRange) Encode(f Format) string {
	return EncodeDateRange(r.Start, r.End, f)
}

// Times parses both ends of the range in loc
func (r DateRange) Times(loc *time.Location) (start, end time.Time, err error) {
	start, err = ast.ParseDateTime(r.Start, loc)
	if err != nil {
		return start, end, errors.Wrap(err, "invalid range start")
	}

	end, err = ast.ParseDateTime(r.End, loc)
	if err != nil {
		return start, end, errors.Wrap(err, "invalid range end")
	}

	return start, end, nil
}

// Inverted reports whether the range ends before it starts. Unparseable
// ranges are not inverted.
func (r DateRange) Inverted() bool {
	start, end, err := r.Times(time.UTC)
	if err != nil {
		return false
	}
	return end.Before(start)
}

// Resolve evaluates both operands of expr, applying any DATEADD offsets.
// Unlike DecodeDateRange, constants like "now" and "today" are allowed.
func Resolve(expr string, now time.Time) (start, end time.Time, err error) {
	node, err := parser.ParseRange(expr)
	if err != nil {
		return start, end, err
	}

	start, err = ast.Time(node.Start, now)
	if err != nil {
		return start, end, errors.Wrap(err, "unable to resolve range start")
	}

	end, err = ast.Time(node.End, now)
	if err != nil {
		return start, end, errors.Wrap(err, "unable to resolve range end")
	}

	return start, end, nil
}
