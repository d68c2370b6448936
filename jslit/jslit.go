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

// Package jslit converts in-memory values into source-code literal text
// that, when evaluated, reconstructs an equivalent value, and performs the
// inverse operation.
//
// It targets configuration and small data-description use cases where
// plain data-interchange formats are too restrictive: the value domain
// includes symbols, ordered maps, sets, dates, regular expressions, big
// integers, and the NaN and infinity sentinels.
//
// Stringify and Load are a near-inverse pair for every supported kind
// except functions, which render but do not regain their original identity
// or captured environment, and error values, which round-trip surface
// fields only.
//
// Load executes its input. It is not safe for untrusted text.
package jslit

import (
	"jslit.dev/go/internal/source"
	"jslit.dev/go/jslit/export"
	"jslit.dev/go/jslit/format"
	"jslit.dev/go/jslit/interp"
	"jslit.dev/go/jslit/parser"
	"jslit.dev/go/jslit/value"
)

// Stringify renders v as literal text using a fresh printer with the given
// options. Callers rendering many values with the same configuration should
// construct a format.Printer once and reuse it.
func Stringify(v value.Value, opts ...format.Option) (string, error) {
	return format.New(opts...).Stringify(v)
}

// Load reconstructs a value from literal text, which may be prefixed with
// an "export default" or "module.exports =" wrapper. The source may be
// provided via the filename, or via the src parameter as a string, []byte,
// or io.Reader.
//
// The remaining text is executed as a function body in a fresh scope; any
// syntax or execution failure propagates to the caller unmodified.
func Load(filename string, src any) (value.Value, error) {
	text, err := source.ReadAll(filename, src)
	if err != nil {
		return nil, err
	}
	body := export.Strip(string(text))
	prog, err := parser.ParseProgram(filename, body)
	if err != nil {
		return nil, err
	}
	return interp.Run(prog)
}

// Wrap marks rendered text with one of the recognized module-export
// conventions. It is a convenience alias for export.Wrap.
func Wrap(text string, kind export.Kind, opts ...export.Option) (string, error) {
	return export.Wrap(text, kind, opts...)
}
