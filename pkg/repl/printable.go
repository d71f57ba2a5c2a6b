/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strconv"
	"time"

	"github.com/dburkart/timerange/pkg/picker"
	"github.com/dburkart/timerange/pkg/timerange"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

// Printable is anything an OutputWriter knows how to render
type Printable interface {
	Headers() []string
	Values() [][]string
}

type FrameResult struct {
	TimeRange string              `json:"time_range"`
	Frame     timerange.FrameType `json:"frame"`
}

func (r FrameResult) Headers() []string {
	return []string{"Time Range", "Frame"}
}

func (r FrameResult) Values() [][]string {
	return [][]string{{r.TimeRange, string(r.Frame)}}
}

// DecodeResult describes the outcome of decoding a date range. Relative
// descriptions are only filled in when both ends parse.
type DecodeResult struct {
	TimeRange     string `json:"time_range"`
	Match         bool   `json:"match"`
	Start         string `json:"start,omitempty"`
	End           string `json:"end,omitempty"`
	StartRelative string `json:"start_relative,omitempty"`
	EndRelative   string `json:"end_relative,omitempty"`
	Inverted      bool   `json:"inverted,omitempty"`
}

func NewDecodeResult(expr string, today time.Time) DecodeResult {
	rng, ok := timerange.DecodeDateRange(expr)
	return DescribeDateRange(expr, rng, ok, today)
}

// DescribeDateRange builds the result for an already decoded range
func DescribeDateRange(expr string, rng timerange.DateRange, ok bool, today time.Time) DecodeResult {
	res := DecodeResult{TimeRange: expr}
	if !ok {
		return res
	}

	res.Match = true
	res.Start = rng.Start
	res.End = rng.End
	res.Inverted = rng.Inverted()

	start, end, err := rng.Times(today.Location())
	if err == nil {
		res.StartRelative = Relative(start, today)
		res.EndRelative = Relative(end, today)
	}

	return res
}

func (r DecodeResult) Headers() []string {
	return []string{"Time Range", "Match", "Start", "End", "Start Relative", "End Relative"}
}

func (r DecodeResult) Values() [][]string {
	return [][]string{{
		r.TimeRange,
		strconv.FormatBool(r.Match),
		r.Start,
		r.End,
		r.StartRelative,
		r.EndRelative,
	}}
}

// ExpressionResult carries a single encoded range, as produced by ENCODE and
// DEFAULT
type ExpressionResult struct {
	TimeRange string `json:"time_range"`
}

func (r ExpressionResult) Headers() []string {
	return []string{"Time Range"}
}

func (r ExpressionResult) Values() [][]string {
	return [][]string{{r.TimeRange}}
}

type PresetRow struct {
	Label     string `json:"label"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Days      int    `json:"days"`
	TimeRange string `json:"time_range"`
}

type PresetsResult struct {
	Presets []PresetRow `json:"presets"`
}

func NewPresetsResult(today time.Time, tr picker.Translator) PresetsResult {
	if tr == nil {
		tr = picker.Identity
	}

	res := PresetsResult{}
	for _, p := range picker.Presets(today) {
		res.Presets = append(res.Presets, PresetRow{
			Label:     tr(p.Label),
			Start:     p.Start.Format(timerange.DateLayout),
			End:       p.End.Format(timerange.DateLayout),
			Days:      timerange.Days(p.Start, p.End),
			TimeRange: p.Value(),
		})
	}
	return res
}

func (r PresetsResult) Headers() []string {
	return []string{"Preset", "Start", "End", "Days", "Time Range"}
}

func (r PresetsResult) Values() [][]string {
	rows := make([][]string, 0, len(r.Presets))
	for _, p := range r.Presets {
		rows = append(rows, []string{p.Label, p.Start, p.End, humanize.Comma(int64(p.Days)), p.TimeRange})
	}
	return rows
}

// Relative describes t relative to today, e.g. "4 weeks ago"
func Relative(t, today time.Time) string {
	if timerange.Midnight(t).Equal(timerange.Midnight(today)) {
		return "today"
	}
	return humanize.RelTime(t, today, "ago", "from now")
}

// CustomResult is the custom editor state decoded from a range
type CustomResult struct {
	TimeRange string                 `json:"time_range"`
	Match     bool                   `json:"match"`
	Range     *timerange.CustomRange `json:"range,omitempty"`
}

func (r CustomResult) Headers() []string {
	return []string{"Time Range", "Match", "Since", "Until"}
}

func (r CustomResult) Values() [][]string {
	if r.Range == nil {
		return [][]string{{r.TimeRange, strconv.FormatBool(r.Match), "", ""}}
	}
	return [][]string{{
		r.TimeRange,
		strconv.FormatBool(r.Match),
		customSide(r.Range.SinceMode, r.Range.SinceDatetime, r.Range.SinceGrainValue, r.Range.SinceGrain),
		customSide(r.Range.UntilMode, r.Range.UntilDatetime, r.Range.UntilGrainValue, r.Range.UntilGrain),
	}}
}

func customSide(mode timerange.Mode, datetime string, value int, grain string) string {
	switch mode {
	case timerange.ModeSpecific:
		return datetime
	case timerange.ModeRelative:
		return strconv.Itoa(value) + " " + grain
	}
	return string(mode)
}

// ResolveResult holds both ends of a range evaluated against a clock
type ResolveResult struct {
	TimeRange string    `json:"time_range"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

func (r ResolveResult) Headers() []string {
	return []string{"Time Range", "Start", "End"}
}

func (r ResolveResult) Values() [][]string {
	return [][]string{{r.TimeRange, r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339)}}
}

// PickResult is the picker state seeded from a time range. A preset label
// selects that preset.
type PickResult struct {
	TimeRange   string `json:"time_range"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Label       string `json:"label"`
	ChosenLabel string `json:"chosen_label"`
	Defaulted   bool   `json:"defaulted"`
	Value       string `json:"value"`
}

func NewPickResult(expr string, today time.Time, log zerolog.Logger) PickResult {
	value := expr
	if p, ok := picker.FindPreset(expr, today); ok {
		value = p.Value()
	}

	state := picker.Seed(value, today, log)
	return PickResult{
		TimeRange:   expr,
		Start:       state.Start.Format(timerange.DateLayout),
		End:         state.End.Format(timerange.DateLayout),
		Label:       state.Label(),
		ChosenLabel: state.ChosenLabel(today, nil),
		Defaulted:   state.Defaulted,
		Value:       state.Value(),
	}
}

func (r PickResult) Headers() []string {
	return []string{"Time Range", "Start", "End", "Label", "Preset", "Defaulted", "Value"}
}

func (r PickResult) Values() [][]string {
	return [][]string{{
		r.TimeRange,
		r.Start,
		r.End,
		r.Label,
		r.ChosenLabel,
		strconv.FormatBool(r.Defaulted),
		r.Value,
	}}
}
