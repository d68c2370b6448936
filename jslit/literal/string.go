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

// Package literal implements conversions to and from the literal forms of
// the transcoder's grammar: quoted strings, identifiers, and numbers.
package literal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote returns a double-quoted string literal for s. Control characters,
// the backslash, and the double quote are escaped; all other characters are
// emitted verbatim.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
				break
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote interprets s as a single- or double-quoted string literal,
// returning the string value that s represents.
func Unquote(s string) (string, error) {
	if len(s) < 2 {
		return "", fmt.Errorf("invalid string literal %q", s)
	}
	quote := s[0]
	if quote != '"' && quote != '\'' {
		return "", fmt.Errorf("invalid string literal %q", s)
	}
	if s[len(s)-1] != quote {
		return "", fmt.Errorf("unterminated string literal %q", s)
	}
	s = s[1 : len(s)-1]

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c == quote {
			return "", fmt.Errorf("unescaped quote in string literal")
		}
		if c != '\\' {
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("trailing backslash in string literal")
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'v':
			b.WriteByte('\v')
			i++
		case '0':
			b.WriteByte(0)
			i++
		case 'x':
			if i+2 >= len(s) {
				return "", fmt.Errorf("invalid \\x escape")
			}
			r, err := hexRune(s[i+1 : i+3])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += 3
		case 'u':
			if i+4 >= len(s) {
				return "", fmt.Errorf("invalid \\u escape")
			}
			r, err := hexRune(s[i+1 : i+5])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += 5
		default:
			// Any other escaped character stands for itself
			// (notably \" \' \/ and \\).
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
		}
	}
	return b.String(), nil
}

func hexRune(s string) (rune, error) {
	var r rune
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d byte
		switch {
		case '0' <= c && c <= '9':
			d = c - '0'
		case 'a' <= c && c <= 'f':
			d = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, fmt.Errorf("invalid hex digit %q in escape", c)
		}
		r = r<<4 | rune(d)
	}
	return r, nil
}

// IsIdentifier reports whether s is valid bare identifier text: a letter,
// underscore, or dollar sign followed by letters, digits, underscores, or
// dollar signs.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' || r == '$' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
