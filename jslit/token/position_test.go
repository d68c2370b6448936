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

package token

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestFilePositions(t *testing.T) {
	src := "line one\nline two\nline three"
	f := NewFile("x.js", len(src))
	for offset, c := range []byte(src) {
		if c == '\n' {
			f.AddLine(offset + 1)
		}
	}

	testCases := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{5, 1, 6},
		{9, 2, 1},
		{13, 2, 5},
		{18, 3, 1},
	}
	for _, tc := range testCases {
		pos := f.Position(f.Pos(tc.offset))
		qt.Assert(t, qt.Equals(pos.Line, tc.line), qt.Commentf("offset %d", tc.offset))
		qt.Assert(t, qt.Equals(pos.Column, tc.column), qt.Commentf("offset %d", tc.offset))
		qt.Assert(t, qt.Equals(pos.Filename, "x.js"))
	}
}

func TestPosAdd(t *testing.T) {
	f := NewFile("x.js", 10)
	p := f.Pos(2).Add(3)
	qt.Assert(t, qt.Equals(p.Offset(), 5))
}

func TestNoPos(t *testing.T) {
	qt.Assert(t, qt.IsFalse(NoPos.IsValid()))
	qt.Assert(t, qt.IsTrue(NewFile("x.js", 1).Pos(0).IsValid()))
}

func TestLookup(t *testing.T) {
	testCases := []struct {
		ident string
		tok   Token
	}{
		{"const", CONST},
		{"let", LET},
		{"var", VAR},
		{"function", FUNCTION},
		{"return", RETURN},
		{"new", NEW},
		{"true", TRUE},
		{"false", FALSE},
		{"null", NULL},
		{"for", IDENT},
		{"anything", IDENT},
	}
	for _, tc := range testCases {
		qt.Assert(t, qt.Equals(Lookup(tc.ident), tc.tok), qt.Commentf("ident %q", tc.ident))
	}
}

func TestPrecedence(t *testing.T) {
	qt.Assert(t, qt.IsTrue(MUL.Precedence() > ADD.Precedence()))
	qt.Assert(t, qt.IsTrue(ADD.Precedence() > EQL.Precedence()))
	qt.Assert(t, qt.IsTrue(LSS.Precedence() > LAND.Precedence()))
	qt.Assert(t, qt.IsTrue(LAND.Precedence() > LOR.Precedence()))
	qt.Assert(t, qt.Equals(IDENT.Precedence(), 0))
}
