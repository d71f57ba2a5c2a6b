/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

type SyntaxError struct {
	Location Location
	Message  string
}

func NewSyntaxError(t Token, m string) SyntaxError {
	return SyntaxError{Location: t.Location, Message: m}
}

func NewSyntaxErrorf(t Token, format string, args ...any) SyntaxError {
	return NewSyntaxError(t, fmt.Sprintf(format, args...))
}

func (s SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", s.Location.Start, s.Location.End, s.Message)
}

// FormatError renders the error underneath the offending input, with a caret
// pointing at the start of the bad token and tildes spanning the rest of it.
func (s SyntaxError) FormatError(input string) string {
	repeat := s.Location.Width() - 1
	if repeat < 0 {
		repeat = 0
	}

	start := s.Location.Start
	if start > len(input) {
		start = len(input)
	}

	errorString := "Syntax error found in time range:\n"
	errorString += input
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", start), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", s.Message)
	return errorString
}

// InputError pairs a SyntaxError with the input it was found in, so the
// rendered message can point into it.
type InputError struct {
	SyntaxError
	Input string
}

func (e InputError) Error() string {
	return e.FormatError(e.Input)
}
