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

// Package scanner implements a scanner for the loader's literal source
// text. It takes a []byte as source which can then be tokenized through
// repeated calls to the Scan method.
package scanner

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"jslit.dev/go/jslit/errors"
	"jslit.dev/go/jslit/token"
)

// A Scanner holds the scanner's internal state while processing a given
// text. It can be allocated as part of another data structure but must be
// initialized via Init before use.
type Scanner struct {
	// immutable state
	file *token.File    // source file handle
	src  []byte         // source
	err  errors.Handler // error reporting; or nil

	// scanning state
	ch         rune // current character
	offset     int  // character offset
	rdOffset   int  // reading offset (position after current character)
	lineOffset int  // current line offset
	prevTok    token.Token

	// public state - ok to modify
	ErrorCount int // number of errors encountered
}

const bom = 0xFEFF // byte order mark, only permitted as very first character

// Read the next Unicode char into s.ch.
// s.ch < 0 means end-of-file.
func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		if s.ch == '\n' {
			s.lineOffset = s.offset
			s.file.AddLine(s.offset)
		}
		r, w := rune(s.src[s.rdOffset]), 1
		switch {
		case r == 0:
			s.error(s.offset, "illegal character NUL")
		case r >= utf8.RuneSelf:
			// not ASCII
			r, w = utf8.DecodeRune(s.src[s.rdOffset:])
			if r == utf8.RuneError && w == 1 {
				s.error(s.offset, "illegal UTF-8 encoding")
			} else if r == bom && s.offset > 0 {
				s.error(s.offset, "illegal byte order mark")
			}
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		if s.ch == '\n' {
			s.lineOffset = s.offset
			s.file.AddLine(s.offset)
		}
		s.ch = -1 // eof
	}
}

// Init prepares the scanner s to tokenize the text src by setting the
// scanner at the beginning of src. The scanner uses the file f for position
// information and it adds line information for each line. Init causes a
// panic if the file size does not match the src size.
//
// Calls to Scan will invoke the error handler err if they encounter a
// syntax error and err is not nil. Also, for each error encountered, the
// Scanner field ErrorCount is incremented by one.
func (s *Scanner) Init(file *token.File, src []byte, err errors.Handler) {
	// Explicitly initialize all fields since a scanner may be reused.
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}
	s.file = file
	s.src = src
	s.err = err

	s.ch = ' '
	s.offset = 0
	s.rdOffset = 0
	s.lineOffset = 0
	s.prevTok = token.ILLEGAL
	s.ErrorCount = 0

	s.next()
	if s.ch == bom {
		s.next() // ignore BOM at file beginning
	}
}

func (s *Scanner) error(offs int, msg string) {
	if s.err != nil {
		s.err(s.file.Pos(offs).Position(), msg)
	}
	s.ErrorCount++
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.next()
	}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' ||
		ch == '_' || ch == '$' ||
		ch >= utf8.RuneSelf && unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (s *Scanner) scanIdentifier() string {
	offs := s.offset
	for isLetter(s.ch) || isDigit(s.ch) {
		s.next()
	}
	return string(s.src[offs:s.offset])
}

func (s *Scanner) scanNumber() (token.Token, string) {
	// digits, optional fraction, optional exponent, optional bigint suffix
	offs := s.offset
	tok := token.NUMBER
	for isDigit(s.ch) {
		s.next()
	}
	if s.ch == '.' {
		s.next()
		for isDigit(s.ch) {
			s.next()
		}
	}
	if s.ch == 'e' || s.ch == 'E' {
		s.next()
		if s.ch == '+' || s.ch == '-' {
			s.next()
		}
		if !isDigit(s.ch) {
			s.error(s.offset, "exponent has no digits")
		}
		for isDigit(s.ch) {
			s.next()
		}
	}
	if s.ch == 'n' {
		s.next()
		tok = token.BIGINT
	}
	return tok, string(s.src[offs:s.offset])
}

func (s *Scanner) scanString(quote rune) string {
	// initial quote already consumed
	offs := s.offset - 1
	for {
		ch := s.ch
		if ch == '\n' || ch < 0 {
			s.error(offs, "string literal not terminated")
			break
		}
		s.next()
		if ch == quote {
			break
		}
		if ch == '\\' {
			// skip the escaped character; validation happens in
			// literal.Unquote
			s.next()
		}
	}
	return string(s.src[offs:s.offset])
}

// scanRegexp scans a regular-expression literal including its flags.
// The initial '/' has already been consumed.
func (s *Scanner) scanRegexp() string {
	offs := s.offset - 1
	inClass := false
	for {
		ch := s.ch
		if ch == '\n' || ch < 0 {
			s.error(offs, "regular expression literal not terminated")
			break
		}
		s.next()
		switch ch {
		case '\\':
			s.next()
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				goto flags
			}
		}
	}
flags:
	for isLetter(s.ch) {
		s.next()
	}
	return string(s.src[offs:s.offset])
}

func (s *Scanner) scanComment() {
	// initial '/' already consumed; s.ch == '/' || s.ch == '*'
	offs := s.offset - 1
	if s.ch == '/' {
		s.next()
		for s.ch != '\n' && s.ch >= 0 {
			s.next()
		}
		return
	}
	s.next()
	for s.ch >= 0 {
		ch := s.ch
		s.next()
		if ch == '*' && s.ch == '/' {
			s.next()
			return
		}
	}
	s.error(offs, "comment not terminated")
}

// regexpAllowed reports whether a '/' in the current context starts a
// regular-expression literal rather than a division operator, based on the
// previously scanned token.
func (s *Scanner) regexpAllowed() bool {
	switch s.prevTok {
	case token.IDENT, token.NUMBER, token.BIGINT, token.STRING, token.REGEXP,
		token.RPAREN, token.RBRACK, token.RBRACE,
		token.TRUE, token.FALSE, token.NULL:
		return false
	}
	return true
}

// Scan scans the next token and returns the token position, the token, and
// its literal string if applicable. The source end is indicated by
// token.EOF.
func (s *Scanner) Scan() (pos token.Pos, tok token.Token, lit string) {
scanAgain:
	s.skipWhitespace()

	pos = s.file.Pos(s.offset)

	switch ch := s.ch; {
	case isLetter(ch):
		lit = s.scanIdentifier()
		tok = token.Lookup(lit)
	case isDigit(ch):
		tok, lit = s.scanNumber()
	default:
		s.next() // always make progress
		switch ch {
		case -1:
			tok = token.EOF
		case '"', '\'':
			tok = token.STRING
			lit = s.scanString(ch)
		case '(':
			tok = token.LPAREN
		case ')':
			tok = token.RPAREN
		case '[':
			tok = token.LBRACK
		case ']':
			tok = token.RBRACK
		case '{':
			tok = token.LBRACE
		case '}':
			tok = token.RBRACE
		case ',':
			tok = token.COMMA
		case ':':
			tok = token.COLON
		case ';':
			tok = token.SEMICOLON
		case '.':
			if isDigit(s.ch) {
				s.error(s.offset-1, "number literals must start with a digit")
				tok = token.ILLEGAL
				break
			}
			tok = token.PERIOD
		case '+':
			tok = token.ADD
		case '-':
			tok = token.SUB
		case '*':
			tok = token.MUL
		case '%':
			tok = token.REM
		case '/':
			switch {
			case s.ch == '/' || s.ch == '*':
				s.scanComment()
				goto scanAgain
			case s.regexpAllowed():
				tok = token.REGEXP
				lit = s.scanRegexp()
			default:
				tok = token.QUO
			}
		case '&':
			if s.ch != '&' {
				s.error(s.offset-1, "expected '&&'")
				tok = token.ILLEGAL
				break
			}
			s.next()
			tok = token.LAND
		case '|':
			if s.ch != '|' {
				s.error(s.offset-1, "expected '||'")
				tok = token.ILLEGAL
				break
			}
			s.next()
			tok = token.LOR
		case '=':
			switch s.ch {
			case '=':
				s.next()
				tok = token.EQL
				if s.ch == '=' {
					s.next()
					tok = token.SEQL
				}
			case '>':
				s.next()
				tok = token.ARROW
			default:
				tok = token.ASSIGN
			}
		case '!':
			tok = token.NOT
			if s.ch == '=' {
				s.next()
				tok = token.NEQ
				if s.ch == '=' {
					s.next()
					tok = token.SNEQ
				}
			}
		case '<':
			tok = token.LSS
			if s.ch == '=' {
				s.next()
				tok = token.LEQ
			}
		case '>':
			tok = token.GTR
			if s.ch == '=' {
				s.next()
				tok = token.GEQ
			}
		default:
			// next reports unexpected BOMs - don't repeat
			if ch != bom {
				s.error(pos.Offset(), fmt.Sprintf("illegal character %#U", ch))
			}
			tok = token.ILLEGAL
			lit = string(ch)
		}
	}

	s.prevTok = tok
	return pos, tok, lit
}
