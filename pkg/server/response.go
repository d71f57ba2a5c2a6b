/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"

	"github.com/dburkart/timerange/pkg/expr/ast"
	"github.com/dburkart/timerange/pkg/repl"
	"github.com/dburkart/timerange/pkg/timerange"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// TimeRangeParam is the query parameter holding the expression to work on
const TimeRangeParam = "time_range"

func badRequest(err error) (int, any) {
	return http.StatusBadRequest, errorBody{Error: err.Error()}
}

func (s *Server) FrameResponse(r *http.Request) (int, any) {
	expr := r.URL.Query().Get(TimeRangeParam)
	frame := timerange.GuessFrame(expr)
	s.metrics.IncFrames(string(frame))

	return http.StatusOK, repl.FrameResult{TimeRange: expr, Frame: frame}
}

func (s *Server) DateRangeResponse(r *http.Request) (int, any) {
	expr := r.URL.Query().Get(TimeRangeParam)

	rng, ok := timerange.DecodeDateRange(expr)
	if !ok {
		s.metrics.IncDecodes(OutcomeNoMatch)
		zerolog.Ctx(r.Context()).Debug().Str(TimeRangeParam, expr).Msg("no date range")
		return http.StatusNotFound, errorBody{Error: "time_range is not a date range"}
	}

	s.metrics.IncDecodes(OutcomeMatch)
	return http.StatusOK, rng
}

func (s *Server) EncodeResponse(r *http.Request) (int, any) {
	q := r.URL.Query()

	format := timerange.FormatDate
	if name := q.Get("format"); name != "" {
		f, err := timerange.ParseFormat(name)
		if err != nil {
			return badRequest(err)
		}
		format = f
	}

	loc := s.now().Location()
	start, err := ast.ParseDateTime(q.Get("start"), loc)
	if err != nil {
		return badRequest(errors.Wrap(err, "invalid start"))
	}
	end, err := ast.ParseDateTime(q.Get("end"), loc)
	if err != nil {
		return badRequest(errors.Wrap(err, "invalid end"))
	}

	return http.StatusOK, repl.ExpressionResult{TimeRange: timerange.EncodeDates(start, end, format)}
}

func (s *Server) CustomResponse(r *http.Request) (int, any) {
	expr := r.URL.Query().Get(TimeRangeParam)

	c, ok := timerange.DecodeCustomRange(expr, s.config.RelativeStart)
	if !ok {
		return http.StatusNotFound, errorBody{Error: "time_range is not a custom range"}
	}
	return http.StatusOK, c
}

func (s *Server) ResolveResponse(r *http.Request) (int, any) {
	expr := r.URL.Query().Get(TimeRangeParam)

	start, end, err := timerange.Resolve(expr, s.now())
	if err != nil {
		return badRequest(err)
	}
	return http.StatusOK, repl.ResolveResult{TimeRange: expr, Start: start, End: end}
}

func (s *Server) DefaultResponse(_ *http.Request) (int, any) {
	return http.StatusOK, repl.ExpressionResult{
		TimeRange: timerange.DefaultTimeRange(s.defaultTimeFilter(), s.now()),
	}
}

func (s *Server) PresetsResponse(_ *http.Request) (int, any) {
	return http.StatusOK, repl.NewPresetsResult(s.now(), nil)
}

// PickerResponse seeds the picker from time_range, falling back to the last
// 30 days when it holds no readable date range
func (s *Server) PickerResponse(r *http.Request) (int, any) {
	expr := r.URL.Query().Get(TimeRangeParam)
	return http.StatusOK, repl.NewPickResult(expr, s.now(), *zerolog.Ctx(r.Context()))
}
