/*
 * Copyright (c) 2023-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

func Walk(v Visitor, node ASTNode) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *RangeNode:
		Walk(v, n.Start)
		Walk(v, n.End)

	case *DateAddNode:
		Walk(v, n.Base)

	case *DateTimeNode:
		if n.Literal != nil {
			Walk(v, n.Literal)
		}

	case *StringNode, *LiteralNode:
		// Skip, leaf nodes

	default:
		panic("Unexpected ASTNode passed to Walk")
	}

	v.Visit(nil)
}
