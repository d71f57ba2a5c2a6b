/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/dburkart/timerange/pkg/common/parse"
	"github.com/dburkart/timerange/pkg/expr/ast"
	"github.com/dburkart/timerange/pkg/expr/scanner"
)

func TestDateAdd(t *testing.T) {
	p := Parser{
		Scanner: scanner.Scanner{
			Input: "DATEADD(DATETIME('2025-10-27'), -29, DAY)",
		},
	}

	node, err := p.ParseOperand()
	if err != nil {
		t.Fatal(err)
	}

	if fmt.Sprint(reflect.TypeOf(node)) != "*ast.DateAddNode" {
		t.Fatalf("wanted *ast.DateAddNode, found %s", reflect.TypeOf(node))
	}

	dateAdd := node.(*ast.DateAddNode)
	if dateAdd.Amount() != -29 {
		t.Errorf("wanted offset -29, got %d", dateAdd.Amount())
	}

	if dateAdd.Unit.Lexeme != "DAY" {
		t.Errorf("wanted unit DAY, got %s", dateAdd.Unit.Lexeme)
	}

	literal, ok := ast.DateLiteral(node)
	if !ok || literal != "2025-10-27" {
		t.Errorf("wanted date literal 2025-10-27, got '%s' (%v)", literal, ok)
	}
}

func TestSyntaxErrorLocation(t *testing.T) {
	_, err := ParseRange("DATEADD(DATETIME('2025-09-28'), zero, DAY) : now")
	if err == nil {
		t.Fatal("expected an error")
	}

	var inputError parse.InputError
	if !errors.As(err, &inputError) {
		t.Fatalf("wanted a parse.InputError, got %T", err)
	}

	if inputError.Location.Start != 32 || inputError.Location.End != 36 {
		t.Errorf("wanted error at 32-36, got %d-%d", inputError.Location.Start, inputError.Location.End)
	}

	if !strings.Contains(err.Error(), "expected an integer offset") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestOffsetOutOfRange(t *testing.T) {
	_, err := ParseRange("DATEADD(DATETIME('2025-09-28'), 99999999999999999999, DAY) : now")

	var inputError parse.InputError
	if !errors.As(err, &inputError) {
		t.Fatalf("wanted a parse.InputError, got %v", err)
	}

	if inputError.Location.Start != 32 {
		t.Errorf("wanted error to start at 32, got %d", inputError.Location.Start)
	}

	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestTrailingInput(t *testing.T) {
	_, err := ParseRange("2025-09-28 : 2025-10-27 extra")

	var inputError parse.InputError
	if !errors.As(err, &inputError) {
		t.Fatalf("wanted a parse.InputError, got %v", err)
	}

	if inputError.Location.Start != 24 {
		t.Errorf("wanted error to start at 24, got %d", inputError.Location.Start)
	}
}

func TestParse(t *testing.T) {
	testDirectory, err := filepath.Abs("../../../test/parsing/expr")
	if err != nil {
		panic(err)
	}

	inputDirectory := path.Join(testDirectory, "input")
	expectationDirectory := path.Join(testDirectory, "expectations")

	tests, err := filepath.Glob(fmt.Sprintf("%s/*.txt", inputDirectory))
	if err != nil || len(tests) == 0 {
		t.Fatalf("no parser tests found in %s", inputDirectory)
	}

	for _, test := range tests {
		t.Run(filepath.Base(test), func(t *testing.T) {
			var expected string
			expectation := path.Join(expectationDirectory, filepath.Base(test))
			expectedBytes, err := os.ReadFile(expectation)
			if err == nil {
				expected = string(expectedBytes)
			}

			file, err := os.Open(test)
			if err != nil {
				t.Fatalf("Error opening test: %s", test)
			}
			defer file.Close()

			lines := bufio.NewScanner(file)

			shouldPass := false
			lines.Scan()
			if strings.ToUpper(lines.Text()) == "PASS" {
				shouldPass = true
			}

			actual := ""
			for lines.Scan() {
				node, err := ParseRange(lines.Text())
				if shouldPass && err != nil {
					t.Error(err)
					continue
				}
				if !shouldPass && err == nil {
					t.Errorf("Expected time range to fail: %s", lines.Text())
					continue
				}

				if shouldPass {
					actual += ast.ASTToString(node)
				}
			}

			if os.Getenv("SHOULD_REBASE") != "" {
				err := os.WriteFile(expectation, []byte(actual), 0666)
				if err != nil {
					t.Error(err)
				}
				expected = actual
			}

			if a, e := strings.TrimSpace(actual), strings.TrimSpace(expected); a != e {
				t.Errorf("Expectation not met:\n%s", diff.LineDiff(e, a))
			}
		})
	}
}
