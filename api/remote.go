/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package api

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dburkart/timerange/pkg/repl"
	"github.com/dburkart/timerange/pkg/timerange"
	"github.com/pkg/errors"
)

// errNotFound is how the decode endpoints report "no match"
var errNotFound = errors.New("not found")

type apiError struct {
	Error string `json:"error"`
}

// A RemoteClient holds the data needed to talk to a timerange server.
type RemoteClient struct {
	target  ConnectionString
	http    *http.Client
	backoff time.Duration
}

func NewRemoteClient(target ConnectionString) *RemoteClient {
	return &RemoteClient{
		target:  target,
		http:    &http.Client{Timeout: 10 * time.Second},
		backoff: time.Second,
	}
}

// doWithBackoff retries requests the server never answered. Responses,
// including errors, are returned as is.
func (client *RemoteClient) doWithBackoff(ctx context.Context, u string) (*http.Response, error) {
	var err error

	for i := 0; i < 3; i++ {
		if i > 0 {
			delay := time.Duration(math.Exp2(float64(i-1))) * client.backoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, rerr := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if rerr != nil {
			return nil, errors.Wrap(rerr, "unable to build request")
		}

		var resp *http.Response
		resp, err = client.http.Do(req)
		if err == nil {
			return resp, nil
		}
	}

	return nil, errors.Wrapf(err, "unable to reach %s", client.target.Address)
}

func (client *RemoteClient) get(ctx context.Context, path string, params url.Values, out any) error {
	u := client.target.Address + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	resp, err := client.doWithBackoff(ctx, u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	isJSON := strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json")
	if resp.StatusCode == http.StatusNotFound && isJSON {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body := apiError{}
		if !isJSON || json.NewDecoder(resp.Body).Decode(&body) != nil || body.Error == "" {
			return errors.Errorf("server responded %s", resp.Status)
		}
		return errors.New(body.Error)
	}

	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "unable to decode response")
}

func timeRangeParams(timeRange string) url.Values {
	return url.Values{"time_range": {timeRange}}
}

func (client *RemoteClient) Frame(ctx context.Context, timeRange string) (timerange.FrameType, error) {
	res := repl.FrameResult{}
	if err := client.get(ctx, "/api/v1/frame", timeRangeParams(timeRange), &res); err != nil {
		return "", err
	}
	return res.Frame, nil
}

func (client *RemoteClient) DateRange(ctx context.Context, timeRange string) (timerange.DateRange, bool, error) {
	rng := timerange.DateRange{}
	err := client.get(ctx, "/api/v1/daterange", timeRangeParams(timeRange), &rng)
	if errors.Is(err, errNotFound) {
		return timerange.DateRange{}, false, nil
	} else if err != nil {
		return timerange.DateRange{}, false, err
	}
	return rng, true, nil
}

func (client *RemoteClient) Custom(ctx context.Context, timeRange string) (timerange.CustomRange, bool, error) {
	c := timerange.CustomRange{}
	err := client.get(ctx, "/api/v1/custom", timeRangeParams(timeRange), &c)
	if errors.Is(err, errNotFound) {
		return timerange.CustomRange{}, false, nil
	} else if err != nil {
		return timerange.CustomRange{}, false, err
	}
	return c, true, nil
}

func (client *RemoteClient) Resolve(ctx context.Context, timeRange string) (time.Time, time.Time, error) {
	res := repl.ResolveResult{}
	if err := client.get(ctx, "/api/v1/resolve", timeRangeParams(timeRange), &res); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return res.Start, res.End, nil
}

func (client *RemoteClient) Encode(ctx context.Context, start, end string, f timerange.Format) (string, error) {
	res := repl.ExpressionResult{}
	params := url.Values{"start": {start}, "end": {end}, "format": {f.String()}}
	if err := client.get(ctx, "/api/v1/daterange/encode", params, &res); err != nil {
		return "", err
	}
	return res.TimeRange, nil
}

func (client *RemoteClient) Default(ctx context.Context) (string, error) {
	res := repl.ExpressionResult{}
	if err := client.get(ctx, "/api/v1/default", nil, &res); err != nil {
		return "", err
	}
	return res.TimeRange, nil
}

func (client *RemoteClient) Presets(ctx context.Context) ([]repl.PresetRow, error) {
	res := repl.PresetsResult{}
	if err := client.get(ctx, "/api/v1/presets", nil, &res); err != nil {
		return nil, err
	}
	return res.Presets, nil
}

func (client *RemoteClient) Pick(ctx context.Context, timeRange string) (repl.PickResult, error) {
	res := repl.PickResult{}
	if err := client.get(ctx, "/api/v1/picker", timeRangeParams(timeRange), &res); err != nil {
		return repl.PickResult{}, err
	}
	return res, nil
}

// Eval answers a REPL command from the server. Relative descriptions of
// decoded dates use the local clock.
func (client *RemoteClient) Eval(cmd repl.Command) (repl.Printable, error) {
	ctx := context.Background()

	switch cmd.Name {
	case repl.CommandFrame:
		frame, err := client.Frame(ctx, cmd.Args)
		if err != nil {
			return nil, err
		}
		return repl.FrameResult{TimeRange: cmd.Args, Frame: frame}, nil
	case repl.CommandDecode:
		rng, ok, err := client.DateRange(ctx, cmd.Args)
		if err != nil {
			return nil, err
		}
		return repl.DescribeDateRange(cmd.Args, rng, ok, time.Now()), nil
	case repl.CommandCustom:
		c, ok, err := client.Custom(ctx, cmd.Args)
		if err != nil {
			return nil, err
		}
		res := repl.CustomResult{TimeRange: cmd.Args, Match: ok}
		if ok {
			res.Range = &c
		}
		return res, nil
	case repl.CommandResolve:
		start, end, err := client.Resolve(ctx, cmd.Args)
		if err != nil {
			return nil, err
		}
		return repl.ResolveResult{TimeRange: cmd.Args, Start: start, End: end}, nil
	case repl.CommandEncode:
		f, start, end, err := repl.ParseEncodeArgs(cmd.Args)
		if err != nil {
			return nil, err
		}
		expr, err := client.Encode(ctx, start, end, f)
		if err != nil {
			return nil, err
		}
		return repl.ExpressionResult{TimeRange: expr}, nil
	case repl.CommandDefault:
		expr, err := client.Default(ctx)
		if err != nil {
			return nil, err
		}
		return repl.ExpressionResult{TimeRange: expr}, nil
	case repl.CommandPresets:
		rows, err := client.Presets(ctx)
		if err != nil {
			return nil, err
		}
		return repl.PresetsResult{Presets: rows}, nil
	case repl.CommandPick:
		res, err := client.Pick(ctx, cmd.Args)
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	return nil, errors.Errorf("unknown command '%s'", cmd.Name)
}
