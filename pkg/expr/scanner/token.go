/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	TOK_IDENTIFIER
	TOK_KEYWORD
	TOK_INTEGER
	TOK_STRING
	TOK_DATE
	TOK_COMMA
	TOK_COLON
	TOK_PLUS
	TOK_MINUS

	TOK_PAREN_L
	TOK_PAREN_R
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_KEYWORD:
		return "TOK_KEYWORD"
	case TOK_INTEGER:
		return "TOK_INTEGER"
	case TOK_STRING:
		return "TOK_STRING"
	case TOK_DATE:
		return "TOK_DATE"
	case TOK_COMMA:
		return "TOK_COMMA"
	case TOK_COLON:
		return "TOK_COLON"
	case TOK_PLUS:
		return "TOK_PLUS"
	case TOK_MINUS:
		return "TOK_MINUS"
	case TOK_PAREN_L:
		return "TOK_PAREN_L"
	case TOK_PAREN_R:
		return "TOK_PAREN_R"
	}
	return "TOK_UNKNOWN"
}

// Keywords are matched case-insensitively, so "dateadd" and "DATEADD" both
// scan as TOK_KEYWORD.
var Keywords = [...]string{
	"DATEADD",
	"DATETIME",
}
