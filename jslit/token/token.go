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

// Package token defines constants representing the lexical tokens of the
// literal expression language understood by the jslit loader, together with
// the position types used throughout the pipeline.
package token

import "strconv"

// Token is the set of lexical tokens.
type Token int

const (
	// Special tokens
	ILLEGAL Token = iota
	EOF
	COMMENT

	literalBeg
	IDENT  // abc
	NUMBER // 12.34e-5
	BIGINT // 12345n
	STRING // "abc"
	REGEXP // /ab?c/gi
	literalEnd

	operatorBeg
	ADD // +
	SUB // -
	MUL // *
	QUO // /
	REM // %

	LAND // &&
	LOR  // ||
	NOT  // !

	ASSIGN // =
	ARROW  // =>

	EQL  // ==
	NEQ  // !=
	SEQL // ===
	SNEQ // !==
	LSS  // <
	GTR  // >
	LEQ  // <=
	GEQ  // >=

	LPAREN    // (
	LBRACK    // [
	LBRACE    // {
	RPAREN    // )
	RBRACK    // ]
	RBRACE    // }
	COMMA     // ,
	PERIOD    // .
	COLON     // :
	SEMICOLON // ;
	operatorEnd

	keywordBeg
	CONST    // const
	LET      // let
	VAR      // var
	FUNCTION // function
	RETURN   // return
	NEW      // new
	TRUE     // true
	FALSE    // false
	NULL     // null
	keywordEnd
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "COMMENT",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	BIGINT: "BIGINT",
	STRING: "STRING",
	REGEXP: "REGEXP",

	ADD: "+",
	SUB: "-",
	MUL: "*",
	QUO: "/",
	REM: "%",

	LAND: "&&",
	LOR:  "||",
	NOT:  "!",

	ASSIGN: "=",
	ARROW:  "=>",

	EQL:  "==",
	NEQ:  "!=",
	SEQL: "===",
	SNEQ: "!==",
	LSS:  "<",
	GTR:  ">",
	LEQ:  "<=",
	GEQ:  ">=",

	LPAREN:    "(",
	LBRACK:    "[",
	LBRACE:    "{",
	RPAREN:    ")",
	RBRACK:    "]",
	RBRACE:    "}",
	COMMA:     ",",
	PERIOD:    ".",
	COLON:     ":",
	SEMICOLON: ";",

	CONST:    "const",
	LET:      "let",
	VAR:      "var",
	FUNCTION: "function",
	RETURN:   "return",
	NEW:      "new",
	TRUE:     "true",
	FALSE:    "false",
	NULL:     "null",
}

// String returns the string corresponding to the token tok.
// For operators and keywords the string is the actual token character
// sequence (e.g., for the token ADD, the string is "+"). For all other
// tokens the string corresponds to the token constant name.
func (tok Token) String() string {
	s := ""
	if 0 <= tok && tok < Token(len(tokens)) {
		s = tokens[tok]
	}
	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}
	return s
}

// A set of constants for precedence-based expression parsing. Non-operators
// have the lowest precedence.
const (
	LowestPrec  = 0 // non-operators
	HighestPrec = 7
)

// Precedence returns the operator precedence of the binary operator op.
// If op is not a binary operator, the result is LowestPrec.
func (tok Token) Precedence() int {
	switch tok {
	case LOR:
		return 1
	case LAND:
		return 2
	case EQL, NEQ, SEQL, SNEQ:
		return 3
	case LSS, GTR, LEQ, GEQ:
		return 4
	case ADD, SUB:
		return 5
	case MUL, QUO, REM:
		return 6
	}
	return LowestPrec
}

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token)
	for i := keywordBeg + 1; i < keywordEnd; i++ {
		keywords[tokens[i]] = i
	}
}

// Lookup maps an identifier to its keyword token or IDENT (if not a keyword).
func Lookup(ident string) Token {
	if tok, isKeyword := keywords[ident]; isKeyword {
		return tok
	}
	return IDENT
}

// IsLiteral reports whether the token corresponds to an identifier or a
// basic literal.
func (tok Token) IsLiteral() bool { return literalBeg < tok && tok < literalEnd }

// IsOperator reports whether the token corresponds to an operator or a
// delimiter.
func (tok Token) IsOperator() bool { return operatorBeg < tok && tok < operatorEnd }

// IsKeyword reports whether the token corresponds to a keyword.
func (tok Token) IsKeyword() bool { return keywordBeg < tok && tok < keywordEnd }
