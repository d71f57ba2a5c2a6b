/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"fmt"
	"reflect"
	"strings"
)

type Dumper struct {
	Output string
	indent int
}

func (d *Dumper) Visit(node ASTNode) Visitor {
	if node == nil {
		d.indent -= 1
		return nil
	}

	level := strings.Repeat("    ", d.indent)

	value := node.Value()
	switch t := node.(type) {
	case *DateAddNode:
		value = fmt.Sprintf("%d %s", t.Amount(), strings.ToUpper(t.Unit.Lexeme))
	case *StringNode:
		value = t.Token.Lexeme
	}

	t := reflect.TypeOf(node)
	output := level + t.Elem().Name() + "[" + value + "]" + "\n"

	d.Output += output
	d.indent += 1

	return d
}

// ASTToString dumps the tree rooted at node, one node per line
func ASTToString(node ASTNode) string {
	d := Dumper{}
	Walk(&d, node)
	return d.Output
}
