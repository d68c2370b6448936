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

// Package format renders values as literal source text that, when executed
// by the loader, reconstructs an equivalent value.
package format

import (
	"math"
	"strconv"
	"strings"

	"jslit.dev/go/jslit/errors"
	"jslit.dev/go/jslit/literal"
	"jslit.dev/go/jslit/value"
)

// ErrCycle is reported when a container is reached again while its own
// members are still being rendered, or when the same container is reachable
// twice within one Stringify call. Shared references are not deduplicated;
// they are treated as cycles.
var ErrCycle = errors.New("converting circular structure to literal text")

// ErrUnsupportedCallable is reported for a function value that carries no
// source text.
var ErrUnsupportedCallable = errors.New("function has no source text")

// An Option sets a rendering option.
type Option func(*config)

type config struct {
	indent string
}

// Indent configures one indentation unit as n space characters. Zero means
// fully inline output. Indent panics if n is negative.
func Indent(n int) Option {
	if n < 0 {
		panic("format.Indent: negative count")
	}
	return func(c *config) { c.indent = strings.Repeat(" ", n) }
}

// IndentString configures the literal string s as one indentation unit.
// The empty string means fully inline output.
func IndentString(s string) Option {
	return func(c *config) { c.indent = s }
}

// A Printer renders values as literal text. A Printer is constructed once
// with a fixed indentation configuration and may be reused across calls.
// It must not be used from multiple goroutines concurrently: overlapping
// calls would corrupt each other's cycle tracking.
type Printer struct {
	cfg     config
	visited map[value.Value]bool
}

// New returns a Printer with the given options applied.
func New(opts ...Option) *Printer {
	p := &Printer{visited: make(map[value.Value]bool)}
	for _, opt := range opts {
		opt(&p.cfg)
	}
	return p
}

// Stringify renders v as literal text.
//
// The visited set used for cycle tracking is reset on every exit path, so a
// failed call never corrupts a later one.
func (p *Printer) Stringify(v value.Value) (text string, err error) {
	defer func() {
		for k := range p.visited {
			delete(p.visited, k)
		}
	}()
	var b strings.Builder
	if err := p.render(&b, v, ""); err != nil {
		return "", err
	}
	return b.String(), nil
}

// render appends the literal form of v to b. prefix is the indentation of
// the current depth. Every recursive descent must go through render so that
// the visited set keeps accumulating; routing a member through a fresh
// entry point would silently disable cycle detection.
func (p *Printer) render(b *strings.Builder, v value.Value, prefix string) error {
	switch v := v.(type) {
	case nil:
		return errors.New("cannot render Go nil; use value.Null")

	case value.Bool:
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}

	case value.String:
		b.WriteString(literal.Quote(string(v)))

	case value.Number:
		b.WriteString(formatNumber(float64(v)))

	case value.BigInt:
		b.WriteString(v.Int.Text(10))
		b.WriteByte('n')

	case *value.Func:
		if v.Source == "" {
			return ErrUnsupportedCallable
		}
		b.WriteString(v.Source)

	case *value.Symbol:
		b.WriteString(ClassifySymbol(v))

	case value.Date:
		b.WriteString("new Date(")
		b.WriteString(strconv.FormatInt(v.Millis, 10))
		b.WriteString(")")

	case value.Regexp:
		b.WriteString(v.String())

	case *value.Error:
		p.renderError(b, v)

	case *value.Map:
		if err := p.enter(v); err != nil {
			return err
		}
		b.WriteString("new Map([")
		for i, e := range v.Entries() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('[')
			if err := p.render(b, e.Key, prefix); err != nil {
				return err
			}
			b.WriteString(", ")
			if err := p.render(b, e.Value, prefix); err != nil {
				return err
			}
			b.WriteByte(']')
		}
		b.WriteString("])")

	case *value.Set:
		if err := p.enter(v); err != nil {
			return err
		}
		b.WriteString("new Set([")
		for i, e := range v.Values() {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := p.render(b, e, prefix); err != nil {
				return err
			}
		}
		b.WriteString("])")

	case *value.List:
		if err := p.enter(v); err != nil {
			return err
		}
		if v.Len() == 0 {
			b.WriteString("[]")
			break
		}
		open, sep, closing := p.layout(prefix)
		b.WriteString("[" + open)
		for i, e := range v.Elems {
			if i > 0 {
				b.WriteString(sep)
			}
			if err := p.render(b, e, prefix+p.cfg.indent); err != nil {
				return err
			}
		}
		b.WriteString(closing + "]")

	case *value.Record:
		if err := p.enter(v); err != nil {
			return err
		}
		if v.Len() == 0 {
			b.WriteString("{}")
			break
		}
		open, sep, closing := p.layout(prefix)
		b.WriteString("{" + open)
		for i, f := range v.Fields() {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(keyText(f.Key))
			b.WriteString(": ")
			if err := p.render(b, f.Value, prefix+p.cfg.indent); err != nil {
				return err
			}
		}
		b.WriteString(closing + "}")

	default:
		if v == value.Null {
			b.WriteString("null")
			break
		}
		if v == value.Undefined {
			b.WriteString("undefined")
			break
		}
		return errors.Newf("unsupported value of kind %s", v.Kind())
	}
	return nil
}

// enter records container identity in the visited set, rejecting a
// container that was already reached in this call.
func (p *Printer) enter(container value.Value) error {
	if p.visited[container] {
		return ErrCycle
	}
	p.visited[container] = true
	return nil
}

// layout returns the opening, separator, and closing strings for a
// container rendered at the depth given by prefix.
func (p *Printer) layout(prefix string) (open, sep, closing string) {
	if p.cfg.indent == "" {
		return "", ", ", ""
	}
	inner := "\n" + prefix + p.cfg.indent
	return inner, "," + inner, "\n" + prefix
}

func (p *Printer) renderError(b *strings.Builder, e *value.Error) {
	b.WriteString("(() => { const e = new Error(")
	b.WriteString(literal.Quote(e.Message))
	b.WriteString("); e.name = ")
	b.WriteString(literal.Quote(e.Name))
	b.WriteString("; e.stack = ")
	b.WriteString(literal.Quote(e.Stack))
	b.WriteString("; return e; })()")
}

func keyText(key value.Value) string {
	switch k := key.(type) {
	case value.String:
		if literal.IsIdentifier(string(k)) {
			return string(k)
		}
		return literal.Quote(string(k))
	case *value.Symbol:
		return "[" + ClassifySymbol(k) + "]"
	}
	// Record.Set only accepts strings and symbols.
	return literal.Quote("?")
}

// ClassifySymbol returns the literal form of a symbol: the registry
// retrieval call for a globally registered symbol, or a constructor call
// for a locally unique one.
func ClassifySymbol(s *value.Symbol) string {
	if key, ok := s.Registered(); ok {
		return "Symbol.for(" + literal.Quote(key) + ")"
	}
	if desc, ok := s.Description(); ok {
		return "Symbol(" + literal.Quote(desc) + ")"
	}
	return "Symbol()"
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
