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

// This file contains the exported entry points for invoking the parser.

package parser

import (
	"jslit.dev/go/internal/source"
	"jslit.dev/go/jslit/ast"
	"jslit.dev/go/jslit/errors"
	"jslit.dev/go/jslit/token"
)

// ParseProgram parses the source text of a loader input and returns the
// corresponding Program node. The source may be provided via the filename,
// or via the src parameter as a string, []byte, or io.Reader; if src != nil
// the filename is only used when recording position information.
//
// If syntax errors were found, the result is a partial AST and the error is
// an errors.List sorted by source position.
func ParseProgram(filename string, src any) (*ast.Program, error) {
	text, err := source.ReadAll(filename, src)
	if err != nil {
		return nil, err
	}

	var p parser
	p.init(filename, text)
	prog := p.parseProgram()
	p.errors.Sort()
	return prog, errors.Sanitize(p.errors)
}

// ParseExpr is a convenience function for parsing a single expression.
// The source must contain exactly one expression.
func ParseExpr(filename string, src any) (ast.Expr, error) {
	text, err := source.ReadAll(filename, src)
	if err != nil {
		return nil, err
	}

	var p parser
	p.init(filename, text)
	x := p.parseExpr()
	p.expect(token.EOF)
	p.errors.Sort()
	return x, errors.Sanitize(p.errors)
}
