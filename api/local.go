/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package api

import (
	"context"
	"time"

	"github.com/dburkart/timerange/pkg/expr/ast"
	"github.com/dburkart/timerange/pkg/repl"
	"github.com/dburkart/timerange/pkg/timerange"
	"github.com/pkg/errors"
)

// LocalClient runs the codec in process
type LocalClient struct {
	session repl.Session
}

func (client *LocalClient) now() time.Time {
	if client.session.Now == nil {
		return time.Now()
	}
	return client.session.Now()
}

func (client *LocalClient) Eval(cmd repl.Command) (repl.Printable, error) {
	return client.session.Eval(cmd)
}

func (client *LocalClient) Frame(_ context.Context, timeRange string) (timerange.FrameType, error) {
	return timerange.GuessFrame(timeRange), nil
}

func (client *LocalClient) DateRange(_ context.Context, timeRange string) (timerange.DateRange, bool, error) {
	rng, ok := timerange.DecodeDateRange(timeRange)
	return rng, ok, nil
}

func (client *LocalClient) Custom(_ context.Context, timeRange string) (timerange.CustomRange, bool, error) {
	c, ok := timerange.DecodeCustomRange(timeRange, client.session.RelativeStart)
	return c, ok, nil
}

func (client *LocalClient) Resolve(_ context.Context, timeRange string) (time.Time, time.Time, error) {
	return timerange.Resolve(timeRange, client.now())
}

func (client *LocalClient) Encode(_ context.Context, start, end string, f timerange.Format) (string, error) {
	loc := client.now().Location()

	s, err := ast.ParseDateTime(start, loc)
	if err != nil {
		return "", errors.Wrap(err, "invalid start")
	}
	e, err := ast.ParseDateTime(end, loc)
	if err != nil {
		return "", errors.Wrap(err, "invalid end")
	}

	return timerange.EncodeDates(s, e, f), nil
}

func (client *LocalClient) Default(_ context.Context) (string, error) {
	return timerange.DefaultTimeRange(client.session.DefaultTimeFilter, client.now()), nil
}

func (client *LocalClient) Presets(_ context.Context) ([]repl.PresetRow, error) {
	return repl.NewPresetsResult(client.now(), nil).Presets, nil
}

func (client *LocalClient) Pick(_ context.Context, timeRange string) (repl.PickResult, error) {
	return repl.NewPickResult(timeRange, client.now(), client.session.Log), nil
}
