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

// Package interp executes parsed literal source as a function body in a
// fresh scope and returns the resulting value.
//
// The evaluator is deliberately small: it covers every form the renderer
// emits, plus the declarations, helper functions, and assignments that
// hand-written preambles use. It performs no I/O and holds no state across
// calls.
package interp

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"jslit.dev/go/jslit/ast"
	"jslit.dev/go/jslit/errors"
	"jslit.dev/go/jslit/literal"
	"jslit.dev/go/jslit/token"
	"jslit.dev/go/jslit/value"
)

// Run executes prog as a function body in a fresh scope. The result is the
// operand of the first executed return statement; if no return runs, the
// value of the final expression statement; otherwise undefined.
func Run(prog *ast.Program) (value.Value, error) {
	sc := newScope(nil)
	sc.define("undefined", value.Undefined)
	sc.define("NaN", value.Number(math.NaN()))
	sc.define("Infinity", value.Number(math.Inf(1)))

	var last value.Value = value.Undefined
	for _, s := range prog.Stmts {
		ret, returned, err := execStmt(s, sc)
		if err != nil {
			return nil, err
		}
		if returned {
			return ret, nil
		}
		if ret != nil {
			last = ret
		}
	}
	return last, nil
}

// ----------------------------------------------------------------------------
// Scopes

type scope struct {
	parent *scope
	vars   map[string]value.Value
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, vars: make(map[string]value.Value)}
}

func (s *scope) lookup(name string) (value.Value, bool) {
	for ; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (s *scope) define(name string, v value.Value) {
	s.vars[name] = v
}

func (s *scope) assign(name string, v value.Value) bool {
	for ; s != nil; s = s.parent {
		if _, ok := s.vars[name]; ok {
			s.vars[name] = v
			return true
		}
	}
	return false
}

// ----------------------------------------------------------------------------
// Statements

// execStmt executes a single statement. The first result is the statement's
// value for expression statements, or the returned value when the second
// result is true.
func execStmt(s ast.Stmt, sc *scope) (value.Value, bool, error) {
	switch s := s.(type) {
	case *ast.ExprStmt:
		v, err := eval(s.X, sc)
		return v, false, err

	case *ast.DeclStmt:
		var v value.Value = value.Undefined
		if s.Value != nil {
			var err error
			if v, err = eval(s.Value, sc); err != nil {
				return nil, false, err
			}
		}
		sc.define(s.Name.Name, v)
		return nil, false, nil

	case *ast.FuncDecl:
		sc.define(s.Name.Name, makeFunction(s.Fn, sc))
		return nil, false, nil

	case *ast.ReturnStmt:
		var v value.Value = value.Undefined
		if s.Result != nil {
			var err error
			if v, err = eval(s.Result, sc); err != nil {
				return nil, false, err
			}
		}
		return v, true, nil

	case *ast.BlockStmt:
		return execBlock(s.List, newScope(sc))
	}
	return nil, false, errors.E(s.Pos(), "unsupported statement")
}

func execBlock(list []ast.Stmt, sc *scope) (value.Value, bool, error) {
	for _, s := range list {
		ret, returned, err := execStmt(s, sc)
		if err != nil || returned {
			return ret, returned, err
		}
	}
	return nil, false, nil
}

// ----------------------------------------------------------------------------
// Expressions

func eval(x ast.Expr, sc *scope) (value.Value, error) {
	switch x := x.(type) {
	case *ast.Ident:
		if v, ok := sc.lookup(x.Name); ok {
			return v, nil
		}
		return nil, errors.E(x.Pos(), x.Name+" is not defined")

	case *ast.BasicLit:
		return evalBasicLit(x)

	case *ast.ParenExpr:
		return eval(x.X, sc)

	case *ast.UnaryExpr:
		return evalUnary(x, sc)

	case *ast.BinaryExpr:
		return evalBinary(x, sc)

	case *ast.ArrayLit:
		l := value.NewList()
		for _, e := range x.Elts {
			v, err := eval(e, sc)
			if err != nil {
				return nil, err
			}
			l.Append(v)
		}
		return l, nil

	case *ast.ObjectLit:
		return evalObjectLit(x, sc)

	case *ast.FuncLit:
		return makeFunction(x, sc), nil

	case *ast.CallExpr:
		return evalCall(x, sc)

	case *ast.NewExpr:
		return evalNew(x, sc)

	case *ast.SelectorExpr:
		return evalSelector(x, sc)

	case *ast.IndexExpr:
		return evalIndex(x, sc)

	case *ast.AssignExpr:
		return evalAssign(x, sc)
	}
	return nil, errors.E(x.Pos(), "unsupported expression")
}

func evalBasicLit(x *ast.BasicLit) (value.Value, error) {
	switch x.Kind {
	case token.NUMBER:
		info, err := literal.ParseNum(x.Value)
		if err != nil {
			return nil, errors.E(x.Pos(), err)
		}
		f, err := info.Float64()
		if err != nil {
			return nil, errors.E(x.Pos(), err)
		}
		return value.Number(f), nil
	case token.BIGINT:
		info, err := literal.ParseNum(x.Value)
		if err != nil {
			return nil, errors.E(x.Pos(), err)
		}
		i, err := info.BigInt()
		if err != nil {
			return nil, errors.E(x.Pos(), err)
		}
		return value.BigInt{Int: i}, nil
	case token.STRING:
		s, err := literal.Unquote(x.Value)
		if err != nil {
			return nil, errors.E(x.Pos(), err)
		}
		return value.String(s), nil
	case token.REGEXP:
		i := strings.LastIndexByte(x.Value, '/')
		if i < 1 {
			return nil, errors.E(x.Pos(), "invalid regular expression literal")
		}
		return value.Regexp{Pattern: x.Value[1:i], Flags: x.Value[i+1:]}, nil
	case token.TRUE:
		return value.Bool(true), nil
	case token.FALSE:
		return value.Bool(false), nil
	case token.NULL:
		return value.Null, nil
	}
	return nil, errors.E(x.Pos(), "unsupported literal")
}

func evalObjectLit(x *ast.ObjectLit, sc *scope) (value.Value, error) {
	r := value.NewRecord()
	for _, prop := range x.Props {
		var key value.Value
		if prop.Computed {
			k, err := eval(prop.Key, sc)
			if err != nil {
				return nil, err
			}
			switch k := k.(type) {
			case value.String, *value.Symbol:
				key = k
			case value.Number:
				key = value.String(formatNumber(k))
			default:
				return nil, errors.E(prop.Key.Pos(), "invalid property key of kind "+k.Kind().String())
			}
		} else {
			switch k := prop.Key.(type) {
			case *ast.Ident:
				key = value.String(k.Name)
			case *ast.BasicLit:
				switch k.Kind {
				case token.STRING:
					s, err := literal.Unquote(k.Value)
					if err != nil {
						return nil, errors.E(k.Pos(), err)
					}
					key = value.String(s)
				default:
					// number keys become strings
					key = value.String(k.Value)
				}
			default:
				return nil, errors.E(prop.Key.Pos(), "invalid property key")
			}
		}
		v, err := eval(prop.Value, sc)
		if err != nil {
			return nil, err
		}
		r.Set(key, v)
	}
	return r, nil
}

func evalCall(x *ast.CallExpr, sc *scope) (value.Value, error) {
	// Symbol(...) and Symbol.for(...) are the only ambient callables.
	switch fun := x.Fun.(type) {
	case *ast.Ident:
		if fun.Name == "Symbol" {
			if _, shadowed := sc.lookup("Symbol"); !shadowed {
				return evalSymbolCall(x, sc)
			}
		}
	case *ast.SelectorExpr:
		if id, ok := fun.X.(*ast.Ident); ok && id.Name == "Symbol" && fun.Sel.Name == "for" {
			if _, shadowed := sc.lookup("Symbol"); !shadowed {
				return evalSymbolFor(x, sc)
			}
		}
	}

	fv, err := eval(x.Fun, sc)
	if err != nil {
		return nil, err
	}
	f, ok := fv.(*value.Func)
	if !ok {
		return nil, errors.E(x.Pos(), "value of kind "+fv.Kind().String()+" is not a function")
	}
	if f.Impl == nil {
		return nil, errors.E(x.Pos(), "function has no callable implementation")
	}
	args, err := evalArgs(x.Args, sc)
	if err != nil {
		return nil, err
	}
	return f.Impl(args)
}

func evalSymbolCall(x *ast.CallExpr, sc *scope) (value.Value, error) {
	args, err := evalArgs(x.Args, sc)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 || args[0] == value.Undefined {
		return value.NewAnonymousSymbol(), nil
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, errors.E(x.Pos(), "Symbol description must be a string")
	}
	return value.NewSymbol(string(s)), nil
}

func evalSymbolFor(x *ast.CallExpr, sc *scope) (value.Value, error) {
	args, err := evalArgs(x.Args, sc)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, errors.E(x.Pos(), "Symbol.for requires a key")
	}
	s, ok := args[0].(value.String)
	if !ok {
		return nil, errors.E(x.Pos(), "Symbol.for key must be a string")
	}
	return value.For(string(s)), nil
}

var errorNames = map[string]bool{
	"Error":          true,
	"EvalError":      true,
	"RangeError":     true,
	"ReferenceError": true,
	"SyntaxError":    true,
	"TypeError":      true,
	"URIError":       true,
}

func evalNew(x *ast.NewExpr, sc *scope) (value.Value, error) {
	id, ok := x.Fun.(*ast.Ident)
	if !ok {
		return nil, errors.E(x.Fun.Pos(), "not a constructor")
	}
	args, err := evalArgs(x.Args, sc)
	if err != nil {
		return nil, err
	}
	switch {
	case id.Name == "Map":
		return newMap(x, args)
	case id.Name == "Set":
		return newSet(x, args)
	case id.Name == "Date":
		if len(args) == 0 {
			return value.NewDate(time.Now()), nil
		}
		n, ok := args[0].(value.Number)
		if !ok {
			return nil, errors.E(x.Pos(), "Date constructor requires a millisecond count")
		}
		return value.Date{Millis: int64(n)}, nil
	case id.Name == "RegExp":
		pattern, flags := "", ""
		if len(args) > 0 {
			s, ok := args[0].(value.String)
			if !ok {
				return nil, errors.E(x.Pos(), "RegExp pattern must be a string")
			}
			pattern = string(s)
		}
		if len(args) > 1 {
			s, ok := args[1].(value.String)
			if !ok {
				return nil, errors.E(x.Pos(), "RegExp flags must be a string")
			}
			flags = string(s)
		}
		return value.Regexp{Pattern: pattern, Flags: flags}, nil
	case errorNames[id.Name]:
		msg := ""
		if len(args) > 0 {
			s, ok := args[0].(value.String)
			if !ok {
				return nil, errors.E(x.Pos(), "error message must be a string")
			}
			msg = string(s)
		}
		return &value.Error{Name: id.Name, Message: msg}, nil
	}
	return nil, errors.E(x.Pos(), id.Name+" is not a constructor")
}

func newMap(x *ast.NewExpr, args []value.Value) (value.Value, error) {
	m := value.NewMap()
	if len(args) == 0 || args[0] == value.Undefined || args[0] == value.Null {
		return m, nil
	}
	l, ok := args[0].(*value.List)
	if !ok {
		return nil, errors.E(x.Pos(), "Map constructor requires an array of entries")
	}
	for _, e := range l.Elems {
		pair, ok := e.(*value.List)
		if !ok || pair.Len() != 2 {
			return nil, errors.E(x.Pos(), "Map entry is not a [key, value] pair")
		}
		m.Set(pair.At(0), pair.At(1))
	}
	return m, nil
}

func newSet(x *ast.NewExpr, args []value.Value) (value.Value, error) {
	s := value.NewSet()
	if len(args) == 0 || args[0] == value.Undefined || args[0] == value.Null {
		return s, nil
	}
	l, ok := args[0].(*value.List)
	if !ok {
		return nil, errors.E(x.Pos(), "Set constructor requires an array of members")
	}
	for _, e := range l.Elems {
		s.Add(e)
	}
	return s, nil
}

func evalArgs(exprs []ast.Expr, sc *scope) ([]value.Value, error) {
	args := make([]value.Value, len(exprs))
	for i, e := range exprs {
		v, err := eval(e, sc)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func evalSelector(x *ast.SelectorExpr, sc *scope) (value.Value, error) {
	recv, err := eval(x.X, sc)
	if err != nil {
		return nil, err
	}
	name := x.Sel.Name
	switch recv := recv.(type) {
	case *value.Record:
		if v, ok := recv.Get(value.String(name)); ok {
			return v, nil
		}
		return value.Undefined, nil
	case *value.Error:
		switch name {
		case "name":
			return value.String(recv.Name), nil
		case "message":
			return value.String(recv.Message), nil
		case "stack":
			return value.String(recv.Stack), nil
		}
	case *value.List:
		if name == "length" {
			return value.Number(recv.Len()), nil
		}
	case value.String:
		if name == "length" {
			return value.Number(len(recv)), nil
		}
	case *value.Map:
		if name == "size" {
			return value.Number(recv.Len()), nil
		}
	case *value.Set:
		if name == "size" {
			return value.Number(recv.Len()), nil
		}
	}
	return nil, errors.E(x.Sel.Pos(), "cannot read property "+name+" of "+recv.Kind().String())
}

func evalIndex(x *ast.IndexExpr, sc *scope) (value.Value, error) {
	recv, err := eval(x.X, sc)
	if err != nil {
		return nil, err
	}
	idx, err := eval(x.Index, sc)
	if err != nil {
		return nil, err
	}
	switch recv := recv.(type) {
	case *value.List:
		n, ok := idx.(value.Number)
		if !ok {
			return nil, errors.E(x.Index.Pos(), "array index must be a number")
		}
		i := int(n)
		if i < 0 || i >= recv.Len() {
			return value.Undefined, nil
		}
		return recv.At(i), nil
	case *value.Record:
		switch k := idx.(type) {
		case value.String, *value.Symbol:
			if v, ok := recv.Get(k); ok {
				return v, nil
			}
			return value.Undefined, nil
		}
		return nil, errors.E(x.Index.Pos(), "invalid record key")
	}
	return nil, errors.E(x.Pos(), "cannot index value of kind "+recv.Kind().String())
}

func evalAssign(x *ast.AssignExpr, sc *scope) (value.Value, error) {
	v, err := eval(x.RHS, sc)
	if err != nil {
		return nil, err
	}
	switch lhs := x.LHS.(type) {
	case *ast.Ident:
		if !sc.assign(lhs.Name, v) {
			return nil, errors.E(lhs.Pos(), lhs.Name+" is not defined")
		}
		return v, nil

	case *ast.SelectorExpr:
		recv, err := eval(lhs.X, sc)
		if err != nil {
			return nil, err
		}
		switch recv := recv.(type) {
		case *value.Record:
			recv.Set(value.String(lhs.Sel.Name), v)
			return v, nil
		case *value.Error:
			s, ok := v.(value.String)
			if !ok {
				return nil, errors.E(x.RHS.Pos(), "error field must be a string")
			}
			switch lhs.Sel.Name {
			case "name":
				recv.Name = string(s)
			case "message":
				recv.Message = string(s)
			case "stack":
				recv.Stack = string(s)
			default:
				return nil, errors.E(lhs.Sel.Pos(), "cannot set property "+lhs.Sel.Name+" of error")
			}
			return v, nil
		}
		return nil, errors.E(lhs.Pos(), "cannot set property of "+recv.Kind().String())

	case *ast.IndexExpr:
		recv, err := eval(lhs.X, sc)
		if err != nil {
			return nil, err
		}
		idx, err := eval(lhs.Index, sc)
		if err != nil {
			return nil, err
		}
		switch recv := recv.(type) {
		case *value.List:
			n, ok := idx.(value.Number)
			if !ok {
				return nil, errors.E(lhs.Index.Pos(), "array index must be a number")
			}
			i := int(n)
			switch {
			case i >= 0 && i < recv.Len():
				recv.Elems[i] = v
			case i == recv.Len():
				recv.Append(v)
			default:
				return nil, errors.E(lhs.Index.Pos(), "array index out of range")
			}
			return v, nil
		case *value.Record:
			switch k := idx.(type) {
			case value.String, *value.Symbol:
				recv.Set(k, v)
				return v, nil
			}
			return nil, errors.E(lhs.Index.Pos(), "invalid record key")
		}
		return nil, errors.E(lhs.Pos(), "cannot index value of kind "+recv.Kind().String())
	}
	return nil, errors.E(x.Pos(), "invalid assignment target")
}

// ----------------------------------------------------------------------------
// Functions

func makeFunction(fn *ast.FuncLit, sc *scope) *value.Func {
	f := &value.Func{Name: fn.Name, Source: fn.Src}
	f.Impl = func(args []value.Value) (value.Value, error) {
		child := newScope(sc)
		if fn.Name != "" {
			child.define(fn.Name, f)
		}
		for i, p := range fn.Params {
			var v value.Value = value.Undefined
			if i < len(args) {
				v = args[i]
			}
			child.define(p.Name, v)
		}
		if fn.ExprBody != nil {
			return eval(fn.ExprBody, child)
		}
		ret, returned, err := execBlock(fn.Body.List, child)
		if err != nil {
			return nil, err
		}
		if returned {
			return ret, nil
		}
		return value.Undefined, nil
	}
	return f
}

// ----------------------------------------------------------------------------
// Operators

func evalUnary(x *ast.UnaryExpr, sc *scope) (value.Value, error) {
	v, err := eval(x.X, sc)
	if err != nil {
		return nil, err
	}
	switch x.Op {
	case token.SUB:
		switch v := v.(type) {
		case value.Number:
			return -v, nil
		case value.BigInt:
			return value.BigInt{Int: new(big.Int).Neg(v.Int)}, nil
		}
		return nil, errors.E(x.Pos(), "cannot negate value of kind "+v.Kind().String())
	case token.NOT:
		return value.Bool(!truthy(v)), nil
	}
	return nil, errors.E(x.Pos(), "unsupported unary operator")
}

func evalBinary(x *ast.BinaryExpr, sc *scope) (value.Value, error) {
	if x.Op == token.LAND || x.Op == token.LOR {
		l, err := eval(x.X, sc)
		if err != nil {
			return nil, err
		}
		if truthy(l) == (x.Op == token.LAND) {
			return eval(x.Y, sc)
		}
		return l, nil
	}

	l, err := eval(x.X, sc)
	if err != nil {
		return nil, err
	}
	r, err := eval(x.Y, sc)
	if err != nil {
		return nil, err
	}

	switch x.Op {
	case token.EQL, token.SEQL:
		return value.Bool(strictEqual(l, r)), nil
	case token.NEQ, token.SNEQ:
		return value.Bool(!strictEqual(l, r)), nil
	}

	if ls, ok := l.(value.String); ok && x.Op == token.ADD {
		rs, err := stringOf(r, x.Y.Pos())
		if err != nil {
			return nil, err
		}
		return ls + rs, nil
	}
	if rs, ok := r.(value.String); ok && x.Op == token.ADD {
		ls, err := stringOf(l, x.X.Pos())
		if err != nil {
			return nil, err
		}
		return ls + rs, nil
	}

	if li, ok := l.(value.BigInt); ok {
		ri, ok := r.(value.BigInt)
		if !ok {
			return nil, errors.E(x.Pos(), "cannot mix bigint and other types")
		}
		return bigIntOp(x, li.Int, ri.Int)
	}
	if _, ok := r.(value.BigInt); ok {
		return nil, errors.E(x.Pos(), "cannot mix bigint and other types")
	}

	ln, lok := l.(value.Number)
	rn, rok := r.(value.Number)
	if lok && rok {
		return numberOp(x, float64(ln), float64(rn))
	}

	if ls, lok := l.(value.String); lok {
		if rs, rok := r.(value.String); rok {
			switch x.Op {
			case token.LSS:
				return value.Bool(ls < rs), nil
			case token.GTR:
				return value.Bool(ls > rs), nil
			case token.LEQ:
				return value.Bool(ls <= rs), nil
			case token.GEQ:
				return value.Bool(ls >= rs), nil
			}
		}
	}
	return nil, errors.E(x.Pos(), "invalid operands for "+x.Op.String())
}

func numberOp(x *ast.BinaryExpr, l, r float64) (value.Value, error) {
	switch x.Op {
	case token.ADD:
		return value.Number(l + r), nil
	case token.SUB:
		return value.Number(l - r), nil
	case token.MUL:
		return value.Number(l * r), nil
	case token.QUO:
		return value.Number(l / r), nil
	case token.REM:
		return value.Number(math.Mod(l, r)), nil
	case token.LSS:
		return value.Bool(l < r), nil
	case token.GTR:
		return value.Bool(l > r), nil
	case token.LEQ:
		return value.Bool(l <= r), nil
	case token.GEQ:
		return value.Bool(l >= r), nil
	}
	return nil, errors.E(x.Pos(), "unsupported operator "+x.Op.String())
}

func bigIntOp(x *ast.BinaryExpr, l, r *big.Int) (value.Value, error) {
	z := new(big.Int)
	switch x.Op {
	case token.ADD:
		return value.BigInt{Int: z.Add(l, r)}, nil
	case token.SUB:
		return value.BigInt{Int: z.Sub(l, r)}, nil
	case token.MUL:
		return value.BigInt{Int: z.Mul(l, r)}, nil
	case token.QUO:
		if r.Sign() == 0 {
			return nil, errors.E(x.Pos(), "division by zero")
		}
		return value.BigInt{Int: z.Quo(l, r)}, nil
	case token.REM:
		if r.Sign() == 0 {
			return nil, errors.E(x.Pos(), "division by zero")
		}
		return value.BigInt{Int: z.Rem(l, r)}, nil
	case token.LSS:
		return value.Bool(l.Cmp(r) < 0), nil
	case token.GTR:
		return value.Bool(l.Cmp(r) > 0), nil
	case token.LEQ:
		return value.Bool(l.Cmp(r) <= 0), nil
	case token.GEQ:
		return value.Bool(l.Cmp(r) >= 0), nil
	}
	return nil, errors.E(x.Pos(), "unsupported operator "+x.Op.String())
}

func truthy(v value.Value) bool {
	switch v := v.(type) {
	case value.Bool:
		return bool(v)
	case value.Number:
		f := float64(v)
		return f != 0 && !math.IsNaN(f)
	case value.String:
		return v != ""
	case value.BigInt:
		return v.Int.Sign() != 0
	}
	return v != value.Null && v != value.Undefined
}

func strictEqual(a, b value.Value) bool {
	if an, ok := a.(value.Number); ok {
		if math.IsNaN(float64(an)) {
			return false
		}
		bn, ok := b.(value.Number)
		return ok && an == bn
	}
	return value.SameValueZero(a, b)
}

func stringOf(v value.Value, pos token.Pos) (value.String, error) {
	switch v := v.(type) {
	case value.String:
		return v, nil
	case value.Number:
		return value.String(formatNumber(v)), nil
	case value.Bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case value.BigInt:
		return value.String(v.Int.Text(10)), nil
	}
	if v == value.Null {
		return "null", nil
	}
	if v == value.Undefined {
		return "undefined", nil
	}
	return "", errors.E(pos, "cannot convert "+v.Kind().String()+" to string")
}

func formatNumber(n value.Number) string {
	f := float64(n)
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
