/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dburkart/timerange/pkg/repl"
	"github.com/dburkart/timerange/pkg/server"
	"github.com/dburkart/timerange/pkg/timerange"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lastThirty = "DATEADD(DATETIME('2025-09-28'), 0, DAY) : DATEADD(DATETIME('2025-10-27'), 0, DAY)"

func fixedNow() time.Time {
	return time.Date(2025, time.October, 27, 15, 30, 0, 0, time.UTC)
}

// clients returns a local client and a remote one talking to a server with
// the same configuration
func clients(t *testing.T) map[string]Client {
	t.Helper()

	srv := server.New(zerolog.Nop(), server.Config{
		RelativeStart: "today",
		Now:           fixedNow,
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	remote, err := NewClient(ts.URL, repl.Session{})
	require.NoError(t, err)

	local, err := NewClient("local", repl.Session{Now: fixedNow, RelativeStart: "today", Log: zerolog.Nop()})
	require.NoError(t, err)

	return map[string]Client{"local": local, "remote": remote}
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("", repl.Session{})
	require.NoError(t, err)
	assert.IsType(t, &LocalClient{}, c)

	c, err = NewClient("timerange://localhost:8001", repl.Session{})
	require.NoError(t, err)
	assert.IsType(t, &RemoteClient{}, c)

	_, err = NewClient("tcp://localhost:8001", repl.Session{})
	assert.Error(t, err)
}

func TestClients(t *testing.T) {
	ctx := context.Background()

	for name, c := range clients(t) {
		t.Run(name, func(t *testing.T) {
			frame, err := c.Frame(ctx, "Current year")
			require.NoError(t, err)
			assert.Equal(t, timerange.FrameCurrent, frame)

			rng, ok, err := c.DateRange(ctx, lastThirty)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, timerange.DateRange{Start: "2025-09-28", End: "2025-10-27"}, rng)

			_, ok, err = c.DateRange(ctx, "Last week")
			require.NoError(t, err)
			assert.False(t, ok)

			custom, ok, err := c.Custom(ctx, "2020-01-01T00:00:00 : now")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, timerange.ModeNow, custom.UntilMode)

			_, ok, err = c.Custom(ctx, lastThirty)
			require.NoError(t, err)
			assert.False(t, ok)

			start, end, err := c.Resolve(ctx, "DATEADD(today, -1, DAY) : now")
			require.NoError(t, err)
			assert.True(t, start.Equal(time.Date(2025, time.October, 26, 0, 0, 0, 0, time.UTC)))
			assert.True(t, end.Equal(fixedNow()))

			_, _, err = c.Resolve(ctx, "Last week")
			assert.Error(t, err)

			expr, err := c.Encode(ctx, "2025-09-28", "2025-10-27", timerange.FormatDate)
			require.NoError(t, err)
			assert.Equal(t, lastThirty, expr)

			_, err = c.Encode(ctx, "2025-09-28", "soon", timerange.FormatDate)
			assert.ErrorContains(t, err, "invalid end")

			expr, err = c.Default(ctx)
			require.NoError(t, err)
			assert.Equal(t, lastThirty, expr)

			presets, err := c.Presets(ctx)
			require.NoError(t, err)
			require.Len(t, presets, 8)
			assert.Equal(t, "Last 7 Days", presets[1].Label)

			pick, err := c.Pick(ctx, lastThirty)
			require.NoError(t, err)
			assert.False(t, pick.Defaulted)
			assert.Equal(t, "Last 30 Days", pick.ChosenLabel)
			assert.Equal(t, lastThirty, pick.Value)

			pick, err = c.Pick(ctx, "Last week")
			require.NoError(t, err)
			assert.True(t, pick.Defaulted)
			assert.Equal(t, "2025-09-28", pick.Start)
		})
	}
}

func TestEvalMatchesAcrossClients(t *testing.T) {
	commands := []string{
		"Last week",
		"encode datetime 2025-09-28 2025-10-27T12:00:00",
		"default",
		"presets",
		"pick Last Month",
		"pick Last week",
		"custom DATEADD(DATETIME(\"today\"), -7, DAY) : today",
		"resolve DATEADD(today, -1, WEEK) : today",
	}

	cs := clients(t)
	for _, line := range commands {
		cmd := repl.ParseREPLCommand(line)

		want, err := cs["local"].Eval(cmd)
		require.NoError(t, err, line)
		got, err := cs["remote"].Eval(cmd)
		require.NoError(t, err, line)

		assert.Equal(t, want.Values(), got.Values(), line)
	}
}

func TestLocalPickLogsUnreadableDates(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewClient("local", repl.Session{Now: fixedNow, Log: zerolog.New(&buf)})
	require.NoError(t, err)

	pick, err := c.Pick(context.Background(), "DATEADD(DATETIME('2024-02-31'), 0, DAY) : DATEADD(DATETIME('2024-03-05'), 0, DAY)")
	require.NoError(t, err)
	assert.True(t, pick.Defaulted)
	assert.Equal(t, lastThirty, pick.Value)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestRemoteDecodeEval(t *testing.T) {
	res, err := clients(t)["remote"].Eval(repl.ParseREPLCommand("decode " + lastThirty))
	require.NoError(t, err)

	decoded := res.(repl.DecodeResult)
	assert.True(t, decoded.Match)
	assert.Equal(t, "2025-09-28", decoded.Start)
	assert.NotEmpty(t, decoded.StartRelative)
}

func TestRemoteErrors(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	c, err := NewClient(ts.URL, repl.Session{})
	require.NoError(t, err)

	// a plain 404 is not a "no match"
	_, _, err = c.DateRange(context.Background(), lastThirty)
	assert.ErrorContains(t, err, "404")
}

func TestRemoteBackoff(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	addr := ts.URL
	ts.Close()

	c := NewRemoteClient(ConnectionString{Address: addr})
	c.backoff = time.Millisecond

	_, err := c.Default(context.Background())
	assert.ErrorContains(t, err, "unable to reach")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.backoff = time.Hour
	_, err = c.Default(ctx)
	assert.Error(t, err)
}
