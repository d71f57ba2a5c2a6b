/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"strconv"
	"strings"

	"github.com/dburkart/timerange/pkg/common/parse"
	"github.com/dburkart/timerange/pkg/expr/ast"
	"github.com/dburkart/timerange/pkg/expr/scanner"
)

type Parser struct {
	Scanner scanner.Scanner
}

// Parse consumes the whole input as a time range. Syntax errors are returned
// as parse.InputError.
func (p *Parser) Parse() (node *ast.RangeNode, err error) {
	defer func() {
		if e := recover(); e != nil {
			syntaxError, ok := e.(parse.SyntaxError)
			if !ok {
				panic(e)
			}
			node = nil
			err = parse.InputError{SyntaxError: syntaxError, Input: p.Scanner.Input}
		}
	}()

	p.Scanner.Input = strings.Trim(p.Scanner.Input, " \t\n")

	node = p.timeRange()

	// If we didn't parse all the input, return an error
	tok := p.Scanner.Emit()
	if tok.Type != scanner.TOK_EOF {
		panic(parse.NewSyntaxError(parse.Token{
			Type:     scanner.TOK_INVALID,
			Location: parse.Location{Start: tok.Location.Start, End: len(p.Scanner.Input)},
		}, "Error: time range is not valid, starting here"))
	}

	return
}

// ParseOperand parses a single side of a range, e.g. the
// DATEADD(DATETIME('...'), 0, DAY) half.
func (p *Parser) ParseOperand() (node ast.ASTNode, err error) {
	defer func() {
		if e := recover(); e != nil {
			syntaxError, ok := e.(parse.SyntaxError)
			if !ok {
				panic(e)
			}
			node = nil
			err = parse.InputError{SyntaxError: syntaxError, Input: p.Scanner.Input}
		}
	}()

	p.Scanner.Input = strings.Trim(p.Scanner.Input, " \t\n")

	node = p.operand()

	tok := p.Scanner.Emit()
	if tok.Type != scanner.TOK_EOF {
		panic(parse.NewSyntaxErrorf(tok, "Error: unexpected token '%s' after operand", tok.Lexeme))
	}

	return
}

// ParseRange is shorthand for parsing input with a fresh Parser
func ParseRange(input string) (*ast.RangeNode, error) {
	p := Parser{Scanner: scanner.Scanner{Input: input}}
	return p.Parse()
}

// timeRange returns a RangeNode
//
// Grammar:
//
//	range           = operand ":" operand
func (p *Parser) timeRange() *ast.RangeNode {
	r := ast.RangeNode{Input: p.Scanner.Input}

	r.Start = p.operand()

	tok := p.Scanner.Emit()
	if tok.Type != scanner.TOK_COLON {
		panic(parse.NewSyntaxErrorf(tok, "Error: unexpected token '%s', expected ':' between start and end", tok.Lexeme))
	}
	r.Token = tok

	r.End = p.operand()

	return &r
}

// operand returns a DateAddNode, DateTimeNode, or LiteralNode
//
// Grammar:
//
//	operand         = dateadd / datetime / literal
//	literal         = date / identifier
func (p *Parser) operand() ast.ASTNode {
	tok := p.Scanner.Emit()

	switch tok.Type {
	case scanner.TOK_KEYWORD:
		if strings.EqualFold(tok.Lexeme, "DATEADD") {
			return p.dateAdd(tok)
		}
		return p.dateTime(tok)
	case scanner.TOK_DATE, scanner.TOK_IDENTIFIER:
		return &ast.LiteralNode{BaseNode: ast.BaseNode{Token: tok}}
	}

	panic(parse.NewSyntaxErrorf(tok, "Error: unexpected token '%s', expected DATEADD, DATETIME, or a date", tok.Lexeme))
}

// dateAdd returns a DateAddNode
//
// Grammar:
//
//	dateadd         = "DATEADD" "(" operand "," [ "-" / "+" ] integer "," unit ")"
//	unit            = identifier
func (p *Parser) dateAdd(keyword parse.Token) ast.ASTNode {
	node := ast.DateAddNode{BaseNode: ast.BaseNode{Token: keyword}}

	node.LParen = p.expect(scanner.TOK_PAREN_L, "'('").Location
	node.Base = p.operand()
	p.expect(scanner.TOK_COMMA, "','")

	tok := p.Scanner.Emit()
	if tok.Type == scanner.TOK_MINUS || tok.Type == scanner.TOK_PLUS {
		node.Sign = tok
	} else {
		p.Scanner.Rewind()
	}

	node.Offset = p.expect(scanner.TOK_INTEGER, "an integer offset")
	if _, err := strconv.Atoi(node.Offset.Lexeme); err != nil {
		panic(parse.NewSyntaxErrorf(node.Offset, "Error: offset '%s' is out of range", node.Offset.Lexeme))
	}
	p.expect(scanner.TOK_COMMA, "','")
	node.Unit = p.expect(scanner.TOK_IDENTIFIER, "a unit (DAY, WEEK, etc.)")
	node.RParen = p.expect(scanner.TOK_PAREN_R, "')'").Location

	return &node
}

// dateTime returns a DateTimeNode
//
// Grammar:
//
//	datetime        = "DATETIME" "(" string ")"
func (p *Parser) dateTime(keyword parse.Token) ast.ASTNode {
	node := ast.DateTimeNode{BaseNode: ast.BaseNode{Token: keyword}}

	node.LParen = p.expect(scanner.TOK_PAREN_L, "'('").Location
	node.Literal = ast.MakeStringNode(p.expect(scanner.TOK_STRING, "a quoted date"))
	node.RParen = p.expect(scanner.TOK_PAREN_R, "')'").Location

	return &node
}

func (p *Parser) expect(tt scanner.TokenType, what string) parse.Token {
	tok := p.Scanner.Emit()
	if tok.Type != tt {
		panic(parse.NewSyntaxErrorf(tok, "Error: unexpected token '%s', expected %s", tok.Lexeme, what))
	}
	return tok
}
