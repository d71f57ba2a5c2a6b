/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package api is a client for the time range codec, either in process or
// served by `timerange serve`.
package api

import (
	"context"
	"time"

	"github.com/dburkart/timerange/pkg/repl"
	"github.com/dburkart/timerange/pkg/timerange"
)

type Client interface {
	repl.Evaluator

	Frame(ctx context.Context, timeRange string) (timerange.FrameType, error)
	DateRange(ctx context.Context, timeRange string) (timerange.DateRange, bool, error)
	Custom(ctx context.Context, timeRange string) (timerange.CustomRange, bool, error)
	Resolve(ctx context.Context, timeRange string) (start, end time.Time, err error)
	Encode(ctx context.Context, start, end string, f timerange.Format) (string, error)
	Default(ctx context.Context) (string, error)
	Presets(ctx context.Context) ([]repl.PresetRow, error)
	Pick(ctx context.Context, timeRange string) (repl.PickResult, error)
}

// NewClient creates a Client for the given connection string. Local clients
// answer from session; remote clients ask the server, which applies its own
// configuration.
func NewClient(connstr string, session repl.Session) (Client, error) {
	target, err := ParseConnectionString(connstr)
	if err != nil {
		return nil, err
	}

	if target.Local {
		return &LocalClient{session: session}, nil
	}
	return NewRemoteClient(target), nil
}
