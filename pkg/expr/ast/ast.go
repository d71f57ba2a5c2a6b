/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"strconv"

	"github.com/dburkart/timerange/pkg/common/parse"
	"github.com/dburkart/timerange/pkg/expr/scanner"
)

type ASTNode interface {
	Value() string
}

type Visitor interface {
	Visit(ASTNode) Visitor
}

type (
	BaseNode struct {
		Token parse.Token
	}

	// RangeNode is the root of every time range: "start : end"
	RangeNode struct {
		BaseNode
		Input string
		Start ASTNode
		End   ASTNode
	}

	// DateAddNode shifts Base by Offset units, e.g. DATEADD(DATETIME('x'), -7, DAY)
	DateAddNode struct {
		BaseNode
		LParen parse.Location
		Base   ASTNode
		Sign   parse.Token
		Offset parse.Token
		Unit   parse.Token
		RParen parse.Location
	}

	DateTimeNode struct {
		BaseNode
		LParen  parse.Location
		Literal *StringNode
		RParen  parse.Location
	}

	StringNode struct {
		BaseNode
		Val string
	}

	// LiteralNode is a bare date, datetime, or constant such as "now"
	LiteralNode struct {
		BaseNode
	}
)

// -- BaseNode

func (b *BaseNode) Value() string {
	return b.Token.Lexeme
}

//-- RangeNode

func (r RangeNode) Value() string {
	return r.Input
}

//-- DateAddNode

// Amount returns the signed offset. The parser rejects offsets too large for
// an int, so the zero fallback is only seen on hand built nodes.
func (d DateAddNode) Amount() int {
	n, err := strconv.Atoi(d.Offset.Lexeme)
	if err != nil {
		return 0
	}

	if d.Sign.Type == scanner.TOK_MINUS {
		return -n
	}
	return n
}

//-- StringNode

func MakeStringNode(tok parse.Token) *StringNode {
	val := tok.Lexeme
	if len(val) >= 2 {
		val = val[1 : len(val)-1]
	}
	return &StringNode{BaseNode: BaseNode{Token: tok}, Val: val}
}

func (s StringNode) Value() string {
	return s.Val
}

//-- LiteralNode

// IsDate reports whether the literal was scanned as a calendar date rather
// than a bare word like "now".
func (l LiteralNode) IsDate() bool {
	return l.Token.Type == scanner.TOK_DATE
}

// DateLiteral digs the date text out of an operand: the innermost DATETIME
// argument, or a bare date literal. Constants like "now" are not dates.
func DateLiteral(node ASTNode) (string, bool) {
	switch n := node.(type) {
	case *DateAddNode:
		return DateLiteral(n.Base)
	case *DateTimeNode:
		if n.Literal == nil {
			return "", false
		}
		return n.Literal.Val, true
	case *LiteralNode:
		if !n.IsDate() {
			return "", false
		}
		return n.Value(), true
	}
	return "", false
}
