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

package jslit_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/kr/pretty"
	"github.com/rogpeppe/go-internal/txtar"

	"jslit.dev/go/jslit"
	"jslit.dev/go/jslit/export"
	"jslit.dev/go/jslit/format"
	"jslit.dev/go/jslit/value"
)

// roundTrip renders v, loads the text back, and checks the result is equal
// to the original.
func roundTrip(t *testing.T, v value.Value) {
	t.Helper()
	text, err := jslit.Stringify(v)
	qt.Assert(t, qt.IsNil(err))
	got, err := jslit.Load("roundtrip", text)
	qt.Assert(t, qt.IsNil(err), qt.Commentf("text: %s", text))
	if !value.Equal(got, v) {
		t.Fatalf("round trip mismatch for %s:\ngot  %# v\nwant %# v",
			text, pretty.Formatter(got), pretty.Formatter(v))
	}
}

func TestRoundTrip(t *testing.T) {
	rec := value.NewRecord()
	rec.Set(value.String("name"), value.String("demo"))
	rec.Set(value.String("two words"), value.Number(2))
	rec.Set(value.For("app.id"), value.NewBigInt(7))
	rec.Set(value.String("when"), value.Date{Millis: 1591012800000})

	testCases := []struct {
		name string
		v    value.Value
	}{
		{"null", value.Null},
		{"undefined", value.Undefined},
		{"bool", value.Bool(true)},
		{"number", value.Number(3.25)},
		{"nan", value.Number(math.NaN())},
		{"infinity", value.Number(math.Inf(1))},
		{"string", value.String("line1\nline2 \"quoted\"")},
		{"bigint", value.NewBigInt(9007199254740993)},
		{"date", value.Date{Millis: 0}},
		{"regexp", value.Regexp{Pattern: "ab+c", Flags: "gi"}},
		{"registered symbol", value.For("round.trip")},
		{"described symbol", value.NewSymbol("local")},
		{"anonymous symbol", value.NewAnonymousSymbol()},
		{"function", &value.Func{Source: "x => x + 1"}},
		{"error", &value.Error{Name: "TypeError", Message: "bad", Stack: "trace"}},
		{"list", value.NewList(value.Number(1), value.String("two"), value.Null)},
		{"record", rec},
		{"map", value.NewMap(
			value.MapEntry{Key: value.String("k"), Value: value.Number(1)},
			value.MapEntry{Key: value.Number(2), Value: value.String("v")},
		)},
		{"set", value.NewSet(value.Number(1), value.String("a"), value.Bool(false))},
		{"nested", func() value.Value {
			inner := value.NewRecord()
			inner.Set(value.String("list"), value.NewList(
				value.NewMap(value.MapEntry{Key: value.String("k"), Value: value.Number(1)}),
				value.NewSet(value.NewBigInt(2)),
			))
			return inner
		}()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			roundTrip(t, tc.v)
		})
	}
}

// Rendering is deterministic: rendering a loaded value reproduces the text
// it was loaded from.
func TestStringifyIdempotent(t *testing.T) {
	texts := []string{
		`{name: "demo", "two words": 2, [Symbol.for("app.id")]: 7n}`,
		`new Map([["k", 1], [2, "v"]])`,
		`[1, NaN, Infinity, -Infinity, null, undefined]`,
		`new Set([1, "a", false])`,
		`new Date(1591012800000)`,
	}
	for _, text := range texts {
		v, err := jslit.Load("test", text)
		qt.Assert(t, qt.IsNil(err))
		got, err := jslit.Stringify(v)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, text))
	}
}

func TestLoadWrapped(t *testing.T) {
	want := value.NewMap(value.MapEntry{Key: value.String("k"), Value: value.Number(1)})

	for _, src := range []string{
		`new Map([["k", 1]])`,
		`export default new Map([["k", 1]])`,
		` export   default   new Map([["k", 1]])`,
		`module.exports = new Map([["k", 1]])`,
		`module . exports = new Map([["k", 1]])`,
	} {
		v, err := jslit.Load("test", src)
		qt.Assert(t, qt.IsNil(err), qt.Commentf("src: %s", src))
		qt.Assert(t, qt.IsTrue(value.Equal(v, want)), qt.Commentf("src: %s", src))
	}
}

func TestLoadHelpers(t *testing.T) {
	v, err := jslit.Load("test", `
const ids = [1, 2, 3];
const tag = (n) => "item-" + n;
export default {first: tag(1), all: ids}
`)
	qt.Assert(t, qt.IsNil(err))
	rec := v.(*value.Record)
	got, _ := rec.Get(value.String("first"))
	qt.Assert(t, qt.IsTrue(value.Equal(got, value.String("item-1"))))
}

func TestWrapLoad(t *testing.T) {
	text, err := jslit.Stringify(value.NewList(value.Number(1), value.Number(2)))
	qt.Assert(t, qt.IsNil(err))

	for _, kind := range []export.Kind{export.ESM, export.CommonJS} {
		wrapped, err := jslit.Wrap(text, kind)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.IsTrue(strings.HasSuffix(wrapped, "\n")))
		qt.Assert(t, qt.IsFalse(strings.HasSuffix(wrapped, "\n\n")))

		v, err := jslit.Load("test", wrapped)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.IsTrue(value.Equal(v, value.NewList(value.Number(1), value.Number(2)))))
	}
}

// The golden corpus holds one txtar archive per case with an "in" literal
// file and the expected indented rendering in "out".
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txtar")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(len(files) > 0))

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			data, err := os.ReadFile(file)
			qt.Assert(t, qt.IsNil(err))
			a := txtar.Parse(data)

			var in, out string
			for _, f := range a.Files {
				switch f.Name {
				case "in":
					in = string(f.Data)
				case "out":
					out = string(f.Data)
				}
			}
			qt.Assert(t, qt.IsTrue(in != "" && out != ""))

			v, err := jslit.Load(file, in)
			qt.Assert(t, qt.IsNil(err))
			got, err := jslit.Stringify(v, format.Indent(2))
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(got+"\n", out))
		})
	}
}
