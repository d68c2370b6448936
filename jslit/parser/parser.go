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

// Package parser implements a parser for the loader's literal source text.
// Source is turned into an AST that the interp package can execute.
package parser

import (
	"fmt"

	"jslit.dev/go/jslit/ast"
	"jslit.dev/go/jslit/errors"
	"jslit.dev/go/jslit/scanner"
	"jslit.dev/go/jslit/token"
)

// The parser structure holds the parser's internal state.
type parser struct {
	file    *token.File
	errors  errors.List
	scanner scanner.Scanner
	src     []byte

	// Next token
	pos token.Pos   // token position
	tok token.Token // one token look-ahead
	lit string      // token literal
}

func (p *parser) init(filename string, src []byte) {
	p.file = token.NewFile(filename, len(src))
	p.src = src
	eh := func(pos token.Position, msg string) { p.errors.AddNew(pos, msg) }
	p.scanner.Init(p.file, src, eh)
	p.next()
}

func (p *parser) next() {
	p.pos, p.tok, p.lit = p.scanner.Scan()
}

func (p *parser) errf(pos token.Pos, format string, args ...interface{}) {
	p.errors.AddNew(pos.Position(), fmt.Sprintf(format, args...))
}

func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.pos
	if p.tok != tok {
		p.errf(pos, "expected %q, found %q", tok, p.tok)
	}
	p.next() // make progress
	return pos
}

// accept consumes the current token if it matches tok.
func (p *parser) accept(tok token.Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// ----------------------------------------------------------------------------
// Statements

func (p *parser) parseProgram() *ast.Program {
	prog := &ast.Program{Filename: p.file.Name()}
	for p.tok != token.EOF {
		if p.errors.Len() > 10 {
			break
		}
		prog.Stmts = append(prog.Stmts, p.parseStmt())
	}
	return prog
}

func (p *parser) parseStmt() ast.Stmt {
	switch p.tok {
	case token.CONST, token.LET, token.VAR:
		return p.parseDecl()
	case token.FUNCTION:
		return p.parseFuncDecl()
	case token.RETURN:
		return p.parseReturn()
	case token.SEMICOLON:
		p.next()
		return p.parseStmt()
	default:
		x := p.parseExpr()
		p.accept(token.SEMICOLON)
		return &ast.ExprStmt{X: x}
	}
}

func (p *parser) parseDecl() ast.Stmt {
	tok := p.tok
	pos := p.pos
	p.next()
	name := p.parseIdent()
	var value ast.Expr
	if p.accept(token.ASSIGN) {
		value = p.parseExpr()
	}
	p.accept(token.SEMICOLON)
	return &ast.DeclStmt{TokPos: pos, Tok: tok, Name: name, Value: value}
}

func (p *parser) parseFuncDecl() ast.Stmt {
	fn := p.parseFunction()
	if fn.Name == "" {
		p.errf(fn.Pos(), "function declaration requires a name")
	}
	name := &ast.Ident{NamePos: fn.FuncPos, Name: fn.Name}
	return &ast.FuncDecl{Name: name, Fn: fn}
}

func (p *parser) parseReturn() ast.Stmt {
	pos := p.expect(token.RETURN)
	var result ast.Expr
	switch p.tok {
	case token.SEMICOLON, token.RBRACE, token.EOF:
	default:
		result = p.parseExpr()
	}
	p.accept(token.SEMICOLON)
	return &ast.ReturnStmt{Return: pos, Result: result}
}

func (p *parser) parseBlock() *ast.BlockStmt {
	lbrace := p.expect(token.LBRACE)
	var list []ast.Stmt
	for p.tok != token.RBRACE && p.tok != token.EOF {
		if p.errors.Len() > 10 {
			break
		}
		list = append(list, p.parseStmt())
	}
	rbrace := p.expect(token.RBRACE)
	return &ast.BlockStmt{Lbrace: lbrace, List: list, Rbrace: rbrace}
}

// ----------------------------------------------------------------------------
// Expressions

func (p *parser) parseIdent() *ast.Ident {
	pos := p.pos
	name := "_"
	if p.tok == token.IDENT {
		name = p.lit
		p.next()
	} else {
		p.expect(token.IDENT) // use expect() error handling
	}
	return &ast.Ident{NamePos: pos, Name: name}
}

func (p *parser) parseExpr() ast.Expr {
	x := p.parseBinaryExpr(token.LowestPrec + 1)
	if p.tok == token.ASSIGN {
		opPos := p.pos
		p.next()
		switch x.(type) {
		case *ast.Ident, *ast.SelectorExpr, *ast.IndexExpr:
		default:
			p.errf(x.Pos(), "invalid assignment target")
		}
		rhs := p.parseExpr()
		return &ast.AssignExpr{LHS: x, OpPos: opPos, RHS: rhs}
	}
	return x
}

func (p *parser) parseBinaryExpr(prec1 int) ast.Expr {
	x := p.parseUnaryExpr()
	for {
		prec := p.tok.Precedence()
		if prec < prec1 {
			return x
		}
		op := p.tok
		opPos := p.pos
		p.next()
		y := p.parseBinaryExpr(prec + 1)
		x = &ast.BinaryExpr{X: x, OpPos: opPos, Op: op, Y: y}
	}
}

func (p *parser) parseUnaryExpr() ast.Expr {
	switch p.tok {
	case token.SUB, token.ADD, token.NOT:
		pos, op := p.pos, p.tok
		p.next()
		x := p.parseUnaryExpr()
		if op == token.ADD {
			return x
		}
		return &ast.UnaryExpr{OpPos: pos, Op: op, X: x}
	case token.NEW:
		pos := p.pos
		p.next()
		fun := p.parsePostfixExpr(p.parseOperand(), false)
		lparen := p.expect(token.LPAREN)
		args, rparen := p.parseArgs()
		x := &ast.NewExpr{New: pos, Fun: fun, Lparen: lparen, Args: args, Rparen: rparen}
		return p.parsePostfixExpr(x, true)
	}
	return p.parsePostfixExpr(p.parseOperand(), true)
}

// parsePostfixExpr parses selector, index, and (if calls is set) call
// suffixes of x.
func (p *parser) parsePostfixExpr(x ast.Expr, calls bool) ast.Expr {
	for {
		switch p.tok {
		case token.PERIOD:
			p.next()
			sel := p.parseIdentOrKeyword()
			x = &ast.SelectorExpr{X: x, Sel: sel}
		case token.LBRACK:
			lbrack := p.pos
			p.next()
			index := p.parseExpr()
			rbrack := p.expect(token.RBRACK)
			x = &ast.IndexExpr{X: x, Lbrack: lbrack, Index: index, Rbrack: rbrack}
		case token.LPAREN:
			if !calls {
				return x
			}
			lparen := p.pos
			p.next()
			args, rparen := p.parseArgs()
			x = &ast.CallExpr{Fun: x, Lparen: lparen, Args: args, Rparen: rparen}
		default:
			return x
		}
	}
}

// parseIdentOrKeyword parses a selector name. Keywords are permitted as
// property names, so that forms like Symbol.for parse.
func (p *parser) parseIdentOrKeyword() *ast.Ident {
	pos := p.pos
	if p.tok == token.IDENT || p.tok.IsKeyword() {
		name := p.lit
		if name == "" {
			name = p.tok.String()
		}
		p.next()
		return &ast.Ident{NamePos: pos, Name: name}
	}
	p.expect(token.IDENT)
	return &ast.Ident{NamePos: pos, Name: "_"}
}

func (p *parser) parseArgs() (args []ast.Expr, rparen token.Pos) {
	for p.tok != token.RPAREN && p.tok != token.EOF {
		args = append(args, p.parseExpr())
		if !p.accept(token.COMMA) {
			break
		}
	}
	return args, p.expect(token.RPAREN)
}

func (p *parser) parseOperand() ast.Expr {
	switch p.tok {
	case token.IDENT:
		x := p.parseIdent()
		if p.tok == token.ARROW {
			return p.parseArrowBody(x.NamePos, []*ast.Ident{x})
		}
		return x

	case token.NUMBER, token.BIGINT, token.STRING, token.REGEXP,
		token.TRUE, token.FALSE, token.NULL:
		lit := p.lit
		if lit == "" {
			lit = p.tok.String() // true, false, null carry no literal
		}
		x := &ast.BasicLit{ValuePos: p.pos, Kind: p.tok, Value: lit}
		p.next()
		return x

	case token.LBRACK:
		return p.parseArrayLit()

	case token.LBRACE:
		return p.parseObjectLit()

	case token.FUNCTION:
		return p.parseFunction()

	case token.LPAREN:
		return p.parseParenOrArrow()
	}

	pos := p.pos
	p.errf(pos, "expected operand, found %q", p.tok)
	p.next() // make progress
	return &ast.BadExpr{From: pos, To: p.pos}
}

func (p *parser) parseArrayLit() ast.Expr {
	lbrack := p.expect(token.LBRACK)
	var elts []ast.Expr
	for p.tok != token.RBRACK && p.tok != token.EOF {
		elts = append(elts, p.parseExpr())
		if !p.accept(token.COMMA) {
			break
		}
	}
	rbrack := p.expect(token.RBRACK)
	return &ast.ArrayLit{Lbrack: lbrack, Elts: elts, Rbrack: rbrack}
}

func (p *parser) parseObjectLit() ast.Expr {
	lbrace := p.expect(token.LBRACE)
	var props []*ast.Property
	for p.tok != token.RBRACE && p.tok != token.EOF {
		prop := &ast.Property{}
		switch p.tok {
		case token.LBRACK:
			p.next()
			prop.Key = p.parseExpr()
			prop.Computed = true
			p.expect(token.RBRACK)
		case token.STRING, token.NUMBER:
			prop.Key = &ast.BasicLit{ValuePos: p.pos, Kind: p.tok, Value: p.lit}
			p.next()
		default:
			prop.Key = p.parseIdentOrKeyword()
		}
		p.expect(token.COLON)
		prop.Value = p.parseExpr()
		props = append(props, prop)
		if !p.accept(token.COMMA) {
			break
		}
	}
	rbrace := p.expect(token.RBRACE)
	return &ast.ObjectLit{Lbrace: lbrace, Props: props, Rbrace: rbrace}
}

// parseFunction parses a function expression or declaration body starting
// at the "function" keyword.
func (p *parser) parseFunction() *ast.FuncLit {
	pos := p.expect(token.FUNCTION)
	name := ""
	if p.tok == token.IDENT {
		name = p.lit
		p.next()
	}
	p.expect(token.LPAREN)
	var params []*ast.Ident
	for p.tok != token.RPAREN && p.tok != token.EOF {
		params = append(params, p.parseIdent())
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	body := p.parseBlock()
	fn := &ast.FuncLit{
		FuncPos: pos,
		Name:    name,
		Params:  params,
		Body:    body,
		EndPos:  body.End(),
	}
	fn.Src = p.sourceRange(pos, fn.EndPos)
	return fn
}

// parseParenOrArrow disambiguates a parenthesized expression from an
// arrow-function parameter list by inspecting the token after the closing
// parenthesis.
func (p *parser) parseParenOrArrow() ast.Expr {
	lparen := p.expect(token.LPAREN)

	if p.tok == token.RPAREN {
		// "()" must begin an arrow function.
		p.next()
		if p.tok != token.ARROW {
			p.errf(lparen, "expected '=>' after empty parameter list")
			return &ast.BadExpr{From: lparen, To: p.pos}
		}
		return p.parseArrowBody(lparen, nil)
	}

	var exprs []ast.Expr
	for {
		exprs = append(exprs, p.parseExpr())
		if !p.accept(token.COMMA) {
			break
		}
	}
	rparen := p.expect(token.RPAREN)

	if p.tok == token.ARROW {
		params := make([]*ast.Ident, len(exprs))
		for i, x := range exprs {
			id, ok := x.(*ast.Ident)
			if !ok {
				p.errf(x.Pos(), "invalid arrow function parameter")
				id = &ast.Ident{NamePos: x.Pos(), Name: "_"}
			}
			params[i] = id
		}
		return p.parseArrowBody(lparen, params)
	}

	if len(exprs) != 1 {
		p.errf(lparen, "expected single parenthesized expression")
		return &ast.BadExpr{From: lparen, To: rparen}
	}
	return &ast.ParenExpr{Lparen: lparen, X: exprs[0], Rparen: rparen}
}

func (p *parser) parseArrowBody(start token.Pos, params []*ast.Ident) ast.Expr {
	p.expect(token.ARROW)
	fn := &ast.FuncLit{FuncPos: start, Arrow: true, Params: params}
	if p.tok == token.LBRACE {
		fn.Body = p.parseBlock()
		fn.EndPos = fn.Body.End()
	} else {
		fn.ExprBody = p.parseBinaryExpr(token.LowestPrec + 1)
		fn.EndPos = fn.ExprBody.End()
	}
	fn.Src = p.sourceRange(start, fn.EndPos)
	return fn
}

// sourceRange returns the verbatim source text in [start, end).
func (p *parser) sourceRange(start, end token.Pos) string {
	lo, hi := start.Offset(), end.Offset()
	if hi > len(p.src) {
		hi = len(p.src)
	}
	if lo < 0 || lo > hi {
		return ""
	}
	return string(p.src[lo:hi])
}
