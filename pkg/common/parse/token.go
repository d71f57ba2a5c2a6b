/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

type TokenType interface {
	ToString() string
}

// Location is a half-open byte range [Start, End) into the scanned input
type Location struct {
	Start int
	End   int
}

func (l Location) Width() int {
	return l.End - l.Start
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Location Location
}
