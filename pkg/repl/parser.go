/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strings"
	"time"

	"github.com/dburkart/timerange/pkg/expr/ast"
	"github.com/dburkart/timerange/pkg/timerange"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	// CommandFrame classifies a time range
	CommandFrame = "FRAME"
	// CommandDecode extracts start and end dates from a time range
	CommandDecode = "DECODE"
	// CommandCustom decodes a time range into custom editor state
	CommandCustom = "CUSTOM"
	// CommandResolve evaluates a time range against the current time
	CommandResolve = "RESOLVE"
	// CommandEncode builds a time range from two dates
	CommandEncode = "ENCODE"
	// CommandDefault prints the configured or computed default time range
	CommandDefault = "DEFAULT"
	// CommandPresets lists the picker presets
	CommandPresets = "PRESETS"
	// CommandPick seeds the date range picker from a time range or preset
	CommandPick = "PICK"
)

// Commands lists every command Eval understands, for completion and help
var Commands = []string{
	CommandFrame,
	CommandDecode,
	CommandCustom,
	CommandResolve,
	CommandEncode,
	CommandDefault,
	CommandPresets,
	CommandPick,
}

// Command is one parsed REPL line
type Command struct {
	Name string
	Args string
}

// ParseREPLCommand splits a line of input into a command and its argument.
// Lines that do not start with a known command are treated as a bare time
// range and classified.
//
// This function assumes there is no '\n'
func ParseREPLCommand(line string) Command {
	line = strings.TrimSpace(line)

	// all commands have a space after them, if not then they are command only
	// like PRESETS
	cmd, args, _ := strings.Cut(line, " ")
	name := strings.ToUpper(cmd)

	for _, c := range Commands {
		if c == name {
			return Command{Name: name, Args: strings.TrimSpace(args)}
		}
	}

	return Command{Name: CommandFrame, Args: line}
}

// Session holds what commands need to know about the outside world
type Session struct {
	// Now returns the current time in the configured location
	Now               func() time.Time
	DefaultTimeFilter string
	RelativeStart     string
	Log               zerolog.Logger
}

func (s Session) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Evaluator runs REPL commands, in process or against a server
type Evaluator interface {
	Eval(cmd Command) (Printable, error)
}

// Eval runs a command, returning something printable
func (s Session) Eval(cmd Command) (Printable, error) {
	s.Log.Debug().Str("command", cmd.Name).Str("args", cmd.Args).Msg("evaluating")

	switch cmd.Name {
	case CommandFrame:
		return FrameResult{TimeRange: cmd.Args, Frame: timerange.GuessFrame(cmd.Args)}, nil
	case CommandDecode:
		return NewDecodeResult(cmd.Args, s.now()), nil
	case CommandCustom:
		res := CustomResult{TimeRange: cmd.Args}
		if c, ok := timerange.DecodeCustomRange(cmd.Args, s.RelativeStart); ok {
			res.Match = true
			res.Range = &c
		}
		return res, nil
	case CommandResolve:
		start, end, err := timerange.Resolve(cmd.Args, s.now())
		if err != nil {
			return nil, err
		}
		return ResolveResult{TimeRange: cmd.Args, Start: start, End: end}, nil
	case CommandEncode:
		return s.encode(cmd.Args)
	case CommandDefault:
		return ExpressionResult{TimeRange: timerange.DefaultTimeRange(s.DefaultTimeFilter, s.now())}, nil
	case CommandPresets:
		return NewPresetsResult(s.now(), nil), nil
	case CommandPick:
		return NewPickResult(cmd.Args, s.now(), s.Log), nil
	}

	return nil, errors.Errorf("unknown command '%s'", cmd.Name)
}

// ParseEncodeArgs splits "[date|datetime] <start> <end>". Datetimes must be
// written without spaces, e.g. 2025-10-27T12:00:00.
func ParseEncodeArgs(args string) (format timerange.Format, start, end string, err error) {
	fields := strings.Fields(args)
	format = timerange.FormatDate

	if len(fields) == 3 {
		format, err = timerange.ParseFormat(fields[0])
		if err != nil {
			return format, "", "", err
		}
		fields = fields[1:]
	}

	if len(fields) != 2 {
		return format, "", "", errors.New("usage: ENCODE [date|datetime] <start> <end>")
	}
	return format, fields[0], fields[1], nil
}

func (s Session) encode(args string) (Printable, error) {
	format, startText, endText, err := ParseEncodeArgs(args)
	if err != nil {
		return nil, err
	}

	loc := s.now().Location()
	start, err := ast.ParseDateTime(startText, loc)
	if err != nil {
		return nil, errors.Wrap(err, "invalid start")
	}
	end, err := ast.ParseDateTime(endText, loc)
	if err != nil {
		return nil, errors.Wrap(err, "invalid end")
	}

	return ExpressionResult{TimeRange: timerange.EncodeDates(start, end, format)}, nil
}
