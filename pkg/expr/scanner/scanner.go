/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dburkart/timerange/pkg/common/parse"
)

type Scanner struct {
	Input     string
	Start     int
	Pos       int
	LastWidth int
}

// MatchIdentifier returns the length of the next token, assuming it is an
// identifier.
//
// Grammar:
//
//	identifier      = ALPHA *(ALPHA / DIGIT / "_")
func (s *Scanner) MatchIdentifier() int {
	i := s.Pos
	r, width := utf8.DecodeRuneInString(s.Input[i:])
	size := 0

	for unicode.IsDigit(r) || unicode.IsLetter(r) || r == '_' {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// MatchInteger returns the length of the next token, assuming it is a
// number
//
// Grammar:
//
//	integer         = 1*DIGIT
func (s *Scanner) MatchInteger() int {
	size := 0

	for i := s.Pos; i < len(s.Input) && isDigit(rune(s.Input[i])); i++ {
		size++
	}

	return size
}

// MatchDate returns the length of the next token, assuming it is a bare
// calendar date with an optional time of day.
//
// Grammar:
//
//	date            = 4DIGIT "-" 2DIGIT "-" 2DIGIT [ ( "T" / SP ) time ]
//	time            = 2DIGIT ":" 2DIGIT ":" 2DIGIT [ "." 1*DIGIT ] [ zone ]
//	zone            = "Z" / ( "+" / "-" ) 2DIGIT ":" 2DIGIT
func (s *Scanner) MatchDate() int {
	in := s.Input[s.Pos:]

	if !matchShape(in, "dddd-dd-dd") {
		return 0
	}
	size := len("2006-01-02")

	if len(in) <= size || (in[size] != 'T' && in[size] != ' ') || !matchShape(in[size+1:], "dd:dd:dd") {
		return size
	}
	size += len("T15:04:05")

	if size < len(in) && in[size] == '.' {
		digits := 0
		for i := size + 1; i < len(in) && isDigit(rune(in[i])); i++ {
			digits++
		}
		if digits > 0 {
			size += 1 + digits
		}
	}

	if size < len(in) {
		switch {
		case in[size] == 'Z':
			size++
		case (in[size] == '+' || in[size] == '-') && matchShape(in[size+1:], "dd:dd"):
			size += len("-07:00")
		}
	}

	return size
}

// MatchString returns the length of the next token, assuming it is a
// string. Quotes are included in the length, and there are no escapes.
//
// Grammar:
//
//	string          = DQUOTE *( %x00-21 / %x23-10FFFF ) DQUOTE / SQUOTE *( %x00-26 / %x28-10FFFF ) SQUOTE
func (s *Scanner) MatchString() int {
	quote := s.Input[s.Pos]

	end := strings.IndexByte(s.Input[s.Pos+1:], quote)
	if end < 0 {
		return 0
	}

	return end + 2
}

// Emit the next Token found on Scanner.Input
func (s *Scanner) Emit() parse.Token {
	var t parse.Token

	oldStart := s.Start

	for {
		if s.Pos >= len(s.Input) {
			s.Start = len(s.Input)
			s.Pos = s.Start
			t.Type = TOK_EOF
			break
		}

		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		s.Start = s.Pos
		found := true
		skip := 0

		switch {
		case unicode.IsSpace(r):
			skip = width
			found = false
		case r == ':':
			t.Type = TOK_COLON
			skip = width
		case r == ',':
			t.Type = TOK_COMMA
			skip = width
		case r == '(':
			t.Type = TOK_PAREN_L
			skip = width
		case r == ')':
			t.Type = TOK_PAREN_R
			skip = width
		case r == '+':
			t.Type = TOK_PLUS
			skip = width
		case r == '-':
			t.Type = TOK_MINUS
			skip = width
		case r == '\'' || r == '"':
			skip = s.MatchString()
			if skip > 0 {
				t.Type = TOK_STRING
			} else {
				// An unterminated string swallows the rest of the input
				t.Type = TOK_INVALID
				skip = len(s.Input) - s.Pos
			}
		case isDigit(r):
			skip = s.MatchDate()
			if skip > 0 {
				t.Type = TOK_DATE
			} else {
				t.Type = TOK_INTEGER
				skip = s.MatchInteger()
			}
		case unicode.IsLetter(r):
			skip = s.MatchIdentifier()
			t.Type = TOK_IDENTIFIER
			if IsKeyword(s.Input[s.Pos : s.Pos+skip]) {
				t.Type = TOK_KEYWORD
			}
		default:
			t.Type = TOK_INVALID
			skip = s.SkipToBoundary(isDelimiter)
			if skip == 0 {
				skip = width
			}
		}

		s.Pos = s.Start + skip
		if found {
			break
		}
	}

	t.Lexeme = s.Input[s.Start:s.Pos]
	t.Location = parse.Location{Start: s.Start, End: s.Pos}
	s.Start = s.Pos

	s.LastWidth = s.Start - oldStart

	return t
}

// Rewind the last read token
func (s *Scanner) Rewind() {
	s.Start -= s.LastWidth
	s.Pos = s.Start
	s.LastWidth = 0
}

// IsKeyword reports whether lexeme is one of Keywords, ignoring case.
func IsKeyword(lexeme string) bool {
	for _, k := range Keywords {
		if strings.EqualFold(k, lexeme) {
			return true
		}
	}
	return false
}

type boundaryFunc func(rune) bool

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')' || r == ',' || r == ':' || r == '\'' || r == '"'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// matchShape reports whether in starts with shape, where 'd' in shape stands
// for any ASCII digit and every other byte must match exactly.
func matchShape(in, shape string) bool {
	if len(in) < len(shape) {
		return false
	}

	for i := 0; i < len(shape); i++ {
		if shape[i] == 'd' {
			if !isDigit(rune(in[i])) {
				return false
			}
			continue
		}
		if in[i] != shape[i] {
			return false
		}
	}

	return true
}

// SkipToBoundary returns the number of bytes until the next delimiter.
// This is useful for skipping over invalid tokens.
func (s *Scanner) SkipToBoundary(boundary boundaryFunc) int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	size := 0

	for !boundary(r) && s.Pos+size < len(s.Input) {
		size += width
		r, width = utf8.DecodeRuneInString(s.Input[s.Pos+size:])
	}

	return size
}
