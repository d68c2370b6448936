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

package literal

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestQuote(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"hello", `"hello"`},
		{`say "hi"`, `"say \"hi\""`},
		{"back\\slash", `"back\\slash"`},
		{"line1\nline2", `"line1\nline2"`},
		{"col\tumn", `"col\tumn"`},
		{"cr\rlf", `"cr\rlf"`},
		{"\b\f", `"\b\f"`},
		{"\x00\x1f", `"\u0000\u001f"`},
		{"unicode: héllo ☃", `"unicode: héllo ☃"`},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			qt.Assert(t, qt.Equals(Quote(tc.in), tc.want))
		})
	}
}

func TestUnquote(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{`"hello"`, "hello", false},
		{`'hello'`, "hello", false},
		{`""`, "", false},
		{`"a\nb"`, "a\nb", false},
		{`"a\tb"`, "a\tb", false},
		{`"\"quoted\""`, `"quoted"`, false},
		{`'it\'s'`, "it's", false},
		{`"\\"`, `\`, false},
		{`"A"`, "A", false},
		{`"☃"`, "☃", false},
		{`"\x41"`, "A", false},
		{`"\q"`, "q", false}, // unknown escapes pass through
		{`"unterminated`, "", true},
		{`hello`, "", true},
		{`"mismatched'`, "", true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Unquote(tc.in)
			if tc.wantErr {
				qt.Assert(t, qt.IsNotNil(err))
				return
			}
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(got, tc.want))
		})
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, s := range []string{
		"", "plain", "with \"quotes\"", "tab\tand\nnewline",
		"\x00 control \x1f", "héllo ☃",
	} {
		got, err := Unquote(Quote(s))
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, s))
	}
}

func TestIsIdentifier(t *testing.T) {
	testCases := []struct {
		in   string
		want bool
	}{
		{"a", true},
		{"abc", true},
		{"_private", true},
		{"$dollar", true},
		{"camelCase9", true},
		{"héllo", true},
		{"", false},
		{"9lives", false},
		{"has space", false},
		{"dash-ed", false},
		{"dot.ted", false},
	}
	for _, tc := range testCases {
		qt.Assert(t, qt.Equals(IsIdentifier(tc.in), tc.want),
			qt.Commentf("input %q", tc.in))
	}
}
