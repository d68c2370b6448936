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

package format

import (
	"math"
	"testing"

	"github.com/go-quicktest/qt"

	"jslit.dev/go/jslit/errors"
	"jslit.dev/go/jslit/value"
)

func stringify(t *testing.T, v value.Value, opts ...Option) string {
	t.Helper()
	s, err := New(opts...).Stringify(v)
	qt.Assert(t, qt.IsNil(err))
	return s
}

func TestStringifyPrimitives(t *testing.T) {
	testCases := []struct {
		name string
		v    value.Value
		want string
	}{
		{"null", value.Null, "null"},
		{"undefined", value.Undefined, "undefined"},
		{"true", value.Bool(true), "true"},
		{"false", value.Bool(false), "false"},
		{"int", value.Number(42), "42"},
		{"float", value.Number(3.25), "3.25"},
		{"negative", value.Number(-1), "-1"},
		{"nan", value.Number(math.NaN()), "NaN"},
		{"infinity", value.Number(math.Inf(1)), "Infinity"},
		{"negative infinity", value.Number(math.Inf(-1)), "-Infinity"},
		{"string", value.String("hi"), `"hi"`},
		{"string escapes", value.String("a\nb"), `"a\nb"`},
		{"bigint", value.NewBigInt(42), "42n"},
		{"negative bigint", value.NewBigInt(-7), "-7n"},
		{"date", value.Date{Millis: 1591012800000}, "new Date(1591012800000)"},
		{"regexp", value.Regexp{Pattern: "ab+c", Flags: "gi"}, "/ab+c/gi"},
		{"function", &value.Func{Source: "x => x + 1"}, "x => x + 1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			qt.Assert(t, qt.Equals(stringify(t, tc.v), tc.want))
		})
	}
}

func TestStringifySymbols(t *testing.T) {
	testCases := []struct {
		name string
		v    *value.Symbol
		want string
	}{
		{"registered", value.For("app.key"), `Symbol.for("app.key")`},
		{"described", value.NewSymbol("local"), `Symbol("local")`},
		{"anonymous", value.NewAnonymousSymbol(), "Symbol()"},
		{"empty description", value.NewSymbol(""), `Symbol("")`},
		// A description that happens to look like a registry key still
		// renders through the constructor branch.
		{"misleading description", value.NewSymbol("app.key"), `Symbol("app.key")`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			qt.Assert(t, qt.Equals(stringify(t, tc.v), tc.want))
		})
	}
}

func TestStringifyError(t *testing.T) {
	e := &value.Error{Name: "TypeError", Message: "bad input", Stack: "at main"}
	want := `(() => { const e = new Error("bad input"); e.name = "TypeError"; e.stack = "at main"; return e; })()`
	qt.Assert(t, qt.Equals(stringify(t, e), want))
}

func TestStringifyContainersInline(t *testing.T) {
	rec := value.NewRecord()
	rec.Set(value.String("a"), value.Number(1))
	rec.Set(value.String("b"), value.Number(2))

	testCases := []struct {
		name string
		v    value.Value
		want string
	}{
		{"empty list", value.NewList(), "[]"},
		{"list", value.NewList(value.Number(1), value.Number(2)), "[1, 2]"},
		{"empty record", value.NewRecord(), "{}"},
		{"record", rec, "{a: 1, b: 2}"},
		{"empty map", value.NewMap(), "new Map([])"},
		{"map", value.NewMap(
			value.MapEntry{Key: value.String("k"), Value: value.Number(1)},
		), `new Map([["k", 1]])`},
		{"empty set", value.NewSet(), "new Set([])"},
		{"set", value.NewSet(value.Number(1), value.Number(2)), "new Set([1, 2])"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			qt.Assert(t, qt.Equals(stringify(t, tc.v), tc.want))
		})
	}
}

func TestStringifyRecordKeys(t *testing.T) {
	rec := value.NewRecord()
	rec.Set(value.String("plain"), value.Number(1))
	rec.Set(value.String("two words"), value.Number(2))
	rec.Set(value.String("dash-ed"), value.Number(3))
	rec.Set(value.For("reg.key"), value.Number(4))
	rec.Set(value.NewSymbol("uniq"), value.Number(5))

	want := `{plain: 1, "two words": 2, "dash-ed": 3, [Symbol.for("reg.key")]: 4, [Symbol("uniq")]: 5}`
	qt.Assert(t, qt.Equals(stringify(t, rec), want))
}

func TestStringifyIndent(t *testing.T) {
	rec := value.NewRecord()
	rec.Set(value.String("a"), value.Number(1))
	rec.Set(value.String("list"), value.NewList(value.Number(1), value.Number(2)))

	want := `{
  a: 1,
  list: [
    1,
    2
  ]
}`
	qt.Assert(t, qt.Equals(stringify(t, rec, Indent(2)), want))

	wantTab := "{\n\ta: 1,\n\tlist: [\n\t\t1,\n\t\t2\n\t]\n}"
	qt.Assert(t, qt.Equals(stringify(t, rec, IndentString("\t")), wantTab))
}

// Maps and sets keep their constructor wrapper on a single line even under
// indentation; only arrays and records spread.
func TestStringifyIndentMapSet(t *testing.T) {
	m := value.NewMap(value.MapEntry{Key: value.String("k"), Value: value.Number(1)})
	qt.Assert(t, qt.Equals(stringify(t, m, Indent(2)), `new Map([["k", 1]])`))

	s := value.NewSet(value.Number(1), value.Number(2))
	qt.Assert(t, qt.Equals(stringify(t, s, Indent(2)), "new Set([1, 2])"))

	// Empty containers stay inline at any depth.
	rec := value.NewRecord()
	rec.Set(value.String("empty"), value.NewList())
	rec.Set(value.String("none"), value.NewRecord())
	want := `{
  empty: [],
  none: {}
}`
	qt.Assert(t, qt.Equals(stringify(t, rec, Indent(2)), want))
}

func TestStringifyIndentPanics(t *testing.T) {
	qt.Assert(t, qt.PanicMatches(func() { Indent(-1) }, ".*negative.*"))
}

func TestStringifyCycle(t *testing.T) {
	t.Run("self record", func(t *testing.T) {
		rec := value.NewRecord()
		rec.Set(value.String("self"), rec)
		_, err := New().Stringify(rec)
		qt.Assert(t, qt.IsTrue(errors.Is(err, ErrCycle)))
	})

	t.Run("self list", func(t *testing.T) {
		list := value.NewList()
		list.Append(list)
		_, err := New().Stringify(list)
		qt.Assert(t, qt.IsTrue(errors.Is(err, ErrCycle)))
	})

	t.Run("indirect", func(t *testing.T) {
		a := value.NewRecord()
		b := value.NewRecord()
		a.Set(value.String("b"), b)
		b.Set(value.String("a"), a)
		_, err := New().Stringify(a)
		qt.Assert(t, qt.IsTrue(errors.Is(err, ErrCycle)))
	})

	t.Run("map value", func(t *testing.T) {
		m := value.NewMap()
		m.Set(value.String("self"), m)
		_, err := New().Stringify(m)
		qt.Assert(t, qt.IsTrue(errors.Is(err, ErrCycle)))
	})

	t.Run("shared sibling", func(t *testing.T) {
		// The same container reachable twice is reported as a cycle,
		// not deduplicated.
		shared := value.NewList(value.Number(1))
		rec := value.NewRecord()
		rec.Set(value.String("x"), shared)
		rec.Set(value.String("y"), shared)
		_, err := New().Stringify(rec)
		qt.Assert(t, qt.IsTrue(errors.Is(err, ErrCycle)))
	})
}

// A failed call must not poison the printer for later calls.
func TestStringifyAfterCycleError(t *testing.T) {
	p := New()
	rec := value.NewRecord()
	rec.Set(value.String("self"), rec)
	_, err := p.Stringify(rec)
	qt.Assert(t, qt.IsTrue(errors.Is(err, ErrCycle)))

	ok := value.NewRecord()
	ok.Set(value.String("a"), value.Number(1))
	s, err := p.Stringify(ok)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s, "{a: 1}"))

	// Stringifying the same acyclic value twice with one printer works:
	// the visited set does not leak across calls.
	s2, err := p.Stringify(ok)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s2, s))
}

func TestStringifyUnsupported(t *testing.T) {
	_, err := New().Stringify(&value.Func{Name: "native"})
	qt.Assert(t, qt.IsTrue(errors.Is(err, ErrUnsupportedCallable)))

	_, err = New().Stringify(nil)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestClassifySymbol(t *testing.T) {
	qt.Assert(t, qt.Equals(ClassifySymbol(value.For(`quo"ted`)), `Symbol.for("quo\"ted")`))
	qt.Assert(t, qt.Equals(ClassifySymbol(value.NewSymbol("a\nb")), `Symbol("a\nb")`))
}
