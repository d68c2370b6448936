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

// Package ast declares the types used to represent syntax trees for the
// literal expression language executed by the jslit loader.
package ast

import "jslit.dev/go/jslit/token"

// Node is implemented by all node types.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// ----------------------------------------------------------------------------
// Expressions

// An Ident node represents an identifier.
type Ident struct {
	NamePos token.Pos
	Name    string
}

// A BasicLit node represents a literal of basic type: a number, a big
// integer, a string, or a regular expression. Value holds the literal source
// text, including quotes and delimiters.
type BasicLit struct {
	ValuePos token.Pos
	Kind     token.Token // token.NUMBER, token.BIGINT, token.STRING, token.REGEXP, token.TRUE, token.FALSE, token.NULL
	Value    string
}

// A UnaryExpr node represents a unary expression.
type UnaryExpr struct {
	OpPos token.Pos
	Op    token.Token // token.SUB or token.NOT
	X     Expr
}

// A BinaryExpr node represents a binary expression.
type BinaryExpr struct {
	X     Expr
	OpPos token.Pos
	Op    token.Token
	Y     Expr
}

// A ParenExpr node represents a parenthesized expression.
type ParenExpr struct {
	Lparen token.Pos
	X      Expr
	Rparen token.Pos
}

// An ArrayLit node represents an array literal.
type ArrayLit struct {
	Lbrack token.Pos
	Elts   []Expr
	Rbrack token.Pos
}

// A Property is a single key/value entry of an object literal.
// The key is an identifier, a string or number literal, or, when Computed
// is set, an arbitrary bracketed expression.
type Property struct {
	Key      Expr
	Computed bool
	Value    Expr
}

// An ObjectLit node represents an object literal.
type ObjectLit struct {
	Lbrace token.Pos
	Props  []*Property
	Rbrace token.Pos
}

// A CallExpr node represents an expression followed by an argument list.
type CallExpr struct {
	Fun    Expr
	Lparen token.Pos
	Args   []Expr
	Rparen token.Pos
}

// A NewExpr node represents a constructor call.
type NewExpr struct {
	New    token.Pos
	Fun    Expr
	Lparen token.Pos
	Args   []Expr
	Rparen token.Pos
}

// A SelectorExpr node represents an expression followed by a selector.
type SelectorExpr struct {
	X   Expr
	Sel *Ident
}

// An IndexExpr node represents an expression followed by an index.
type IndexExpr struct {
	X      Expr
	Lbrack token.Pos
	Index  Expr
	Rbrack token.Pos
}

// A FuncLit node represents a function or arrow-function literal.
// Exactly one of Body and ExprBody is set. Src holds the verbatim source
// text of the literal so that loaded functions can be re-rendered.
type FuncLit struct {
	FuncPos  token.Pos // position of "function" keyword or of the parameter list
	Name     string    // function expression name, if any
	Arrow    bool
	Params   []*Ident
	Body     *BlockStmt // function body, or arrow body in braces
	ExprBody Expr       // arrow concise body
	EndPos   token.Pos
	Src      string
}

// An AssignExpr node represents an assignment.
// LHS must be an *Ident, *SelectorExpr, or *IndexExpr.
type AssignExpr struct {
	LHS   Expr
	OpPos token.Pos
	RHS   Expr
}

// A BadExpr node is a placeholder for an expression containing syntax
// errors for which a correct expression node cannot be created.
type BadExpr struct {
	From, To token.Pos
}

func (x *Ident) Pos() token.Pos        { return x.NamePos }
func (x *Ident) End() token.Pos        { return x.NamePos.Add(len(x.Name)) }
func (x *BasicLit) Pos() token.Pos     { return x.ValuePos }
func (x *BasicLit) End() token.Pos     { return x.ValuePos.Add(len(x.Value)) }
func (x *UnaryExpr) Pos() token.Pos    { return x.OpPos }
func (x *UnaryExpr) End() token.Pos    { return x.X.End() }
func (x *BinaryExpr) Pos() token.Pos   { return x.X.Pos() }
func (x *BinaryExpr) End() token.Pos   { return x.Y.End() }
func (x *ParenExpr) Pos() token.Pos    { return x.Lparen }
func (x *ParenExpr) End() token.Pos    { return x.Rparen.Add(1) }
func (x *ArrayLit) Pos() token.Pos     { return x.Lbrack }
func (x *ArrayLit) End() token.Pos     { return x.Rbrack.Add(1) }
func (x *ObjectLit) Pos() token.Pos    { return x.Lbrace }
func (x *ObjectLit) End() token.Pos    { return x.Rbrace.Add(1) }
func (x *CallExpr) Pos() token.Pos     { return x.Fun.Pos() }
func (x *CallExpr) End() token.Pos     { return x.Rparen.Add(1) }
func (x *NewExpr) Pos() token.Pos      { return x.New }
func (x *NewExpr) End() token.Pos      { return x.Rparen.Add(1) }
func (x *SelectorExpr) Pos() token.Pos { return x.X.Pos() }
func (x *SelectorExpr) End() token.Pos { return x.Sel.End() }
func (x *IndexExpr) Pos() token.Pos    { return x.X.Pos() }
func (x *IndexExpr) End() token.Pos    { return x.Rbrack.Add(1) }
func (x *FuncLit) Pos() token.Pos      { return x.FuncPos }
func (x *FuncLit) End() token.Pos      { return x.EndPos }
func (x *AssignExpr) Pos() token.Pos   { return x.LHS.Pos() }
func (x *AssignExpr) End() token.Pos   { return x.RHS.End() }
func (x *BadExpr) Pos() token.Pos      { return x.From }
func (x *BadExpr) End() token.Pos      { return x.To }

func (*Ident) exprNode()        {}
func (*BasicLit) exprNode()     {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*ParenExpr) exprNode()    {}
func (*ArrayLit) exprNode()     {}
func (*ObjectLit) exprNode()    {}
func (*CallExpr) exprNode()     {}
func (*NewExpr) exprNode()      {}
func (*SelectorExpr) exprNode() {}
func (*IndexExpr) exprNode()    {}
func (*FuncLit) exprNode()      {}
func (*AssignExpr) exprNode()   {}
func (*BadExpr) exprNode()      {}

// ----------------------------------------------------------------------------
// Statements

// An ExprStmt node represents a (stand-alone) expression in a statement
// list.
type ExprStmt struct {
	X Expr
}

// A DeclStmt node represents a const, let, or var declaration with a single
// binding.
type DeclStmt struct {
	TokPos token.Pos
	Tok    token.Token // token.CONST, token.LET, or token.VAR
	Name   *Ident
	Value  Expr // or nil
}

// A FuncDecl node represents a named function declaration.
type FuncDecl struct {
	Name *Ident
	Fn   *FuncLit
}

// A ReturnStmt node represents a return statement.
type ReturnStmt struct {
	Return token.Pos
	Result Expr // or nil
}

// A BlockStmt node represents a braced statement list.
type BlockStmt struct {
	Lbrace token.Pos
	List   []Stmt
	Rbrace token.Pos
}

func (s *ExprStmt) Pos() token.Pos   { return s.X.Pos() }
func (s *ExprStmt) End() token.Pos   { return s.X.End() }
func (s *DeclStmt) Pos() token.Pos   { return s.TokPos }
func (s *DeclStmt) End() token.Pos {
	if s.Value != nil {
		return s.Value.End()
	}
	return s.Name.End()
}
func (s *FuncDecl) Pos() token.Pos   { return s.Fn.Pos() }
func (s *FuncDecl) End() token.Pos   { return s.Fn.End() }
func (s *ReturnStmt) Pos() token.Pos { return s.Return }
func (s *ReturnStmt) End() token.Pos {
	if s.Result != nil {
		return s.Result.End()
	}
	return s.Return.Add(len("return"))
}
func (s *BlockStmt) Pos() token.Pos { return s.Lbrace }
func (s *BlockStmt) End() token.Pos { return s.Rbrace.Add(1) }

func (*ExprStmt) stmtNode()   {}
func (*DeclStmt) stmtNode()   {}
func (*FuncDecl) stmtNode()   {}
func (*ReturnStmt) stmtNode() {}
func (*BlockStmt) stmtNode()  {}

// A Program node represents a parsed statement sequence.
type Program struct {
	Filename string
	Stmts    []Stmt
}

func (p *Program) Pos() token.Pos {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].Pos()
	}
	return token.NoPos
}

func (p *Program) End() token.Pos {
	if n := len(p.Stmts); n > 0 {
		return p.Stmts[n-1].End()
	}
	return token.NoPos
}
