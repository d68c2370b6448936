// Copyright 2024 The JSLit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scanner

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"jslit.dev/go/jslit/token"
)

type elt struct {
	tok token.Token
	lit string
}

func scanAll(t *testing.T, src string) []elt {
	t.Helper()
	var s Scanner
	f := token.NewFile("test", len(src))
	s.Init(f, []byte(src), func(pos token.Position, msg string) {
		t.Fatalf("scan error at %v: %s", pos, msg)
	})
	var got []elt
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			return got
		}
		got = append(got, elt{tok, lit})
	}
}

func TestScan(t *testing.T) {
	testCases := []struct {
		src  string
		want []elt
	}{
		{"x", []elt{{token.IDENT, "x"}}},
		{"42", []elt{{token.NUMBER, "42"}}},
		{"3.25", []elt{{token.NUMBER, "3.25"}}},
		{"1e-3", []elt{{token.NUMBER, "1e-3"}}},
		{"42n", []elt{{token.BIGINT, "42n"}}},
		{`"hi"`, []elt{{token.STRING, `"hi"`}}},
		{`'hi'`, []elt{{token.STRING, `'hi'`}}},
		{"true false null", []elt{{token.TRUE, "true"}, {token.FALSE, "false"}, {token.NULL, "null"}}},
		{"const let var", []elt{{token.CONST, "const"}, {token.LET, "let"}, {token.VAR, "var"}}},
		{"function return new", []elt{{token.FUNCTION, "function"}, {token.RETURN, "return"}, {token.NEW, "new"}}},
		{"() => 1", []elt{
			{token.LPAREN, ""}, {token.RPAREN, ""}, {token.ARROW, ""}, {token.NUMBER, "1"},
		}},
		{"a === b !== c", []elt{
			{token.IDENT, "a"}, {token.SEQL, ""}, {token.IDENT, "b"},
			{token.SNEQ, ""}, {token.IDENT, "c"},
		}},
		{"a && b || !c", []elt{
			{token.IDENT, "a"}, {token.LAND, ""}, {token.IDENT, "b"},
			{token.LOR, ""}, {token.NOT, ""}, {token.IDENT, "c"},
		}},
		{"{a: [1, 2]}", []elt{
			{token.LBRACE, ""}, {token.IDENT, "a"}, {token.COLON, ""},
			{token.LBRACK, ""}, {token.NUMBER, "1"}, {token.COMMA, ""},
			{token.NUMBER, "2"}, {token.RBRACK, ""}, {token.RBRACE, ""},
		}},
		{"// comment\nx", []elt{{token.IDENT, "x"}}},
		{"/* block */ x", []elt{{token.IDENT, "x"}}},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			got := scanAll(t, tc.src)
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(elt{})); diff != "" {
				t.Errorf("token mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// A slash after an operand is division; anywhere else it opens a regular
// expression literal.
func TestScanRegexp(t *testing.T) {
	testCases := []struct {
		src  string
		want []elt
	}{
		{"/ab+c/gi", []elt{{token.REGEXP, "/ab+c/gi"}}},
		{`/a\/b/`, []elt{{token.REGEXP, `/a\/b/`}}},
		{"/[/]/", []elt{{token.REGEXP, "/[/]/"}}}, // slash inside a class does not end it
		{"a / b", []elt{
			{token.IDENT, "a"}, {token.QUO, ""}, {token.IDENT, "b"},
		}},
		{"1 / 2 / 3", []elt{
			{token.NUMBER, "1"}, {token.QUO, ""}, {token.NUMBER, "2"},
			{token.QUO, ""}, {token.NUMBER, "3"},
		}},
		{"(1) / 2", []elt{
			{token.LPAREN, ""}, {token.NUMBER, "1"}, {token.RPAREN, ""},
			{token.QUO, ""}, {token.NUMBER, "2"},
		}},
		{"[/x/]", []elt{
			{token.LBRACK, ""}, {token.REGEXP, "/x/"}, {token.RBRACK, ""},
		}},
		{"a, /x/", []elt{
			{token.IDENT, "a"}, {token.COMMA, ""}, {token.REGEXP, "/x/"},
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			got := scanAll(t, tc.src)
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(elt{})); diff != "" {
				t.Errorf("token mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanErrors(t *testing.T) {
	for _, src := range []string{`"unterminated`, "'unterminated", "/unterminated", "\"bad\nnewline\""} {
		t.Run(src, func(t *testing.T) {
			var s Scanner
			f := token.NewFile("test", len(src))
			var count int
			s.Init(f, []byte(src), func(pos token.Position, msg string) { count++ })
			for {
				_, tok, _ := s.Scan()
				if tok == token.EOF {
					break
				}
			}
			qt.Assert(t, qt.IsTrue(count > 0))
		})
	}
}
