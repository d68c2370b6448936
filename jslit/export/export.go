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

// Package export wraps rendered literal text in a module-export convention
// and strips such wrappers before loading.
package export

import (
	"regexp"
	"strings"

	"jslit.dev/go/jslit/errors"
)

// Kind selects a module-export textual convention.
type Kind int

const (
	// ESM marks the value with an "export default" prefix.
	ESM Kind = iota
	// CommonJS marks the value with a "module.exports =" assignment.
	CommonJS
)

func (k Kind) String() string {
	switch k {
	case ESM:
		return "esm"
	case CommonJS:
		return "commonjs"
	}
	return "kind(?)"
}

// ErrUnsupportedKind is reported for a module kind outside the supported
// set.
var ErrUnsupportedKind = errors.New("unsupported module kind")

// ErrPreambleType is reported when the preamble option receives a
// non-string value.
var ErrPreambleType = errors.New("preamble must be a string")

// An Option sets a wrapping option.
type Option func(*config)

type config struct {
	preamble any
}

// Preamble prepends raw text verbatim above the export line. The value must
// be a string; any other type is reported by Wrap as ErrPreambleType.
func Preamble(text any) Option {
	return func(c *config) { c.preamble = text }
}

// Wrap returns text marked with the module-export convention selected by
// kind. The result ends in exactly one trailing newline.
func Wrap(text string, kind Kind, opts ...Option) (string, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var marker string
	switch kind {
	case ESM:
		marker = "export default "
	case CommonJS:
		marker = "module.exports = "
	default:
		return "", errors.Newf("%w: %d", ErrUnsupportedKind, int(kind))
	}

	var b strings.Builder
	if cfg.preamble != nil {
		s, ok := cfg.preamble.(string)
		if !ok {
			return "", errors.Newf("%w, got %T", ErrPreambleType, cfg.preamble)
		}
		b.WriteString(s)
		if !strings.HasSuffix(s, "\n") {
			b.WriteByte('\n')
		}
	}
	b.WriteString(marker)
	b.WriteString(strings.TrimRight(text, "\n"))
	b.WriteByte('\n')
	return b.String(), nil
}

var (
	esmPattern = regexp.MustCompile(`^[ \t]*export\s+default\s+`)
	cjsPattern = regexp.MustCompile(`^[ \t]*module\s*\.\s*exports\s*(=\s*)?`)
)

// Detect reports the module-export convention used by src. When several
// lines carry a wrapper, the last one decides. The second result is false
// when src carries no wrapper at all.
func Detect(src string) (Kind, bool) {
	kind, found := ESM, false
	for _, line := range strings.Split(src, "\n") {
		if esmPattern.MatchString(line) {
			kind, found = ESM, true
		} else if cjsPattern.MatchString(line) {
			kind, found = CommonJS, true
		}
	}
	return kind, found
}

// Strip rewrites a recognized export wrapper into a return of the wrapped
// expression, so the text can be executed as a function body. The wrapper
// must appear at the start of its line; preceding helper statements are
// preserved intact. When several lines carry a wrapper, the last one is the
// export line. Text without a wrapper is returned unchanged.
func Strip(src string) string {
	lines := strings.Split(src, "\n")
	match := -1
	var loc []int
	for i, line := range lines {
		if m := esmPattern.FindStringIndex(line); m != nil {
			match, loc = i, m
		} else if m := cjsPattern.FindStringIndex(line); m != nil {
			match, loc = i, m
		}
	}
	if match < 0 {
		return src
	}
	lines[match] = "return " + lines[match][loc[1]:]
	return strings.Join(lines, "\n")
}
