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

// Package value defines the runtime value domain of the transcoder: the set
// of values the renderer can turn into literal text and the loader can
// reconstruct from it.
//
// Containers (List, Record, Map, Set) have reference identity; the renderer
// keys its cycle detection on their pointers.
package value

import (
	"math"
	"math/big"
	"time"
)

// Kind reports the kind of value a Value represents.
type Kind uint8

const (
	NullKind Kind = iota
	UndefinedKind
	BoolKind
	NumberKind
	BigIntKind
	StringKind
	SymbolKind
	FuncKind
	DateKind
	RegexpKind
	ListKind
	RecordKind
	MapKind
	SetKind
	ErrorKind
)

var kindStrings = [...]string{
	NullKind:      "null",
	UndefinedKind: "undefined",
	BoolKind:      "bool",
	NumberKind:    "number",
	BigIntKind:    "bigint",
	StringKind:    "string",
	SymbolKind:    "symbol",
	FuncKind:      "function",
	DateKind:      "date",
	RegexpKind:    "regexp",
	ListKind:      "list",
	RecordKind:    "record",
	MapKind:       "map",
	SetKind:       "set",
	ErrorKind:     "error",
}

func (k Kind) String() string {
	if int(k) < len(kindStrings) {
		return kindStrings[k]
	}
	return "kind(?)"
}

// Value is implemented by every value in the domain.
type Value interface {
	Kind() Kind
}

// ----------------------------------------------------------------------------
// Primitives

type nullValue struct{}
type undefinedValue struct{}

func (nullValue) Kind() Kind      { return NullKind }
func (undefinedValue) Kind() Kind { return UndefinedKind }

// Null is the null value.
var Null Value = nullValue{}

// Undefined is the undefined value.
var Undefined Value = undefinedValue{}

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }

// Number is a double-precision floating point number. NaN and the two
// infinities are legal values.
type Number float64

func (Number) Kind() Kind { return NumberKind }

// String is a string value.
type String string

func (String) Kind() Kind { return StringKind }

// BigInt is an arbitrary-precision integer.
type BigInt struct {
	Int *big.Int
}

func (BigInt) Kind() Kind { return BigIntKind }

// NewBigInt returns a BigInt holding i.
func NewBigInt(i int64) BigInt { return BigInt{Int: big.NewInt(i)} }

// Date is an instant in time, carried as milliseconds since the Unix epoch.
type Date struct {
	Millis int64
}

func (Date) Kind() Kind { return DateKind }

// NewDate returns the Date for the instant t.
func NewDate(t time.Time) Date { return Date{Millis: t.UnixMilli()} }

// Time returns the instant as a time.Time in UTC.
func (d Date) Time() time.Time { return time.UnixMilli(d.Millis).UTC() }

// Regexp is a regular expression held in its textual literal form.
type Regexp struct {
	Pattern string
	Flags   string
}

func (Regexp) Kind() Kind { return RegexpKind }

func (r Regexp) String() string { return "/" + r.Pattern + "/" + r.Flags }

// ----------------------------------------------------------------------------
// Functions

// CallFunc is the callable implementation attached to a Func by the loader.
type CallFunc func(args []Value) (Value, error)

// Func is a function value. Source holds the verbatim literal source text
// the runtime associates with the function; a Func with empty Source cannot
// be rendered. Impl, if non-nil, makes the function callable.
type Func struct {
	Name   string
	Source string
	Impl   CallFunc
}

func (*Func) Kind() Kind { return FuncKind }

// ----------------------------------------------------------------------------
// Errors

// Error reproduces the surface fields of a host error value: its name, its
// message, and its stack-trace text.
type Error struct {
	Name    string
	Message string
	Stack   string
}

func (*Error) Kind() Kind { return ErrorKind }

// Error implements the Go error interface.
func (e *Error) Error() string {
	if e.Name == "" {
		return e.Message
	}
	return e.Name + ": " + e.Message
}

// NewError returns an error value with the default name.
func NewError(message string) *Error {
	return &Error{Name: "Error", Message: message}
}

// ----------------------------------------------------------------------------
// Containers

// List is an ordered sequence of values.
type List struct {
	Elems []Value
}

func (*List) Kind() Kind { return ListKind }

// NewList returns a list of the given elements.
func NewList(elems ...Value) *List { return &List{Elems: elems} }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.Elems) }

// At returns the i'th element.
func (l *List) At(i int) Value { return l.Elems[i] }

// Append appends values to the list.
func (l *List) Append(vs ...Value) { l.Elems = append(l.Elems, vs...) }

// A Field is a single key/value pair of a Record. The key is either a
// String or a *Symbol.
type Field struct {
	Key   Value
	Value Value
}

// Record is a plain key/value record with insertion-ordered string and
// symbol keys.
type Record struct {
	fields []Field
}

func (*Record) Kind() Kind { return RecordKind }

// NewRecord returns an empty record.
func NewRecord() *Record { return &Record{} }

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.fields) }

// Fields returns the fields in insertion order. The returned slice must not
// be modified.
func (r *Record) Fields() []Field { return r.fields }

// Set sets the value for key, which must be a String or a *Symbol.
// An existing field keeps its position.
func (r *Record) Set(key, v Value) {
	for i, f := range r.fields {
		if sameKey(f.Key, key) {
			r.fields[i].Value = v
			return
		}
	}
	r.fields = append(r.fields, Field{Key: key, Value: v})
}

// Get returns the value for key and whether it was present.
func (r *Record) Get(key Value) (Value, bool) {
	for _, f := range r.fields {
		if sameKey(f.Key, key) {
			return f.Value, true
		}
	}
	return nil, false
}

func sameKey(a, b Value) bool {
	switch x := a.(type) {
	case String:
		y, ok := b.(String)
		return ok && x == y
	case *Symbol:
		return a == b
	}
	return false
}

// A MapEntry is a single key/value pair of a Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is an ordered-key map. Keys are compared with same-value-zero
// semantics: primitives by content (NaN equals NaN), containers and symbols
// by identity.
type Map struct {
	entries []MapEntry
}

func (*Map) Kind() Kind { return MapKind }

// NewMap returns a map of the given entries, in order. Later duplicate keys
// overwrite earlier ones in place.
func NewMap(entries ...MapEntry) *Map {
	m := &Map{}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Entries returns the entries in insertion order. The returned slice must
// not be modified.
func (m *Map) Entries() []MapEntry { return m.entries }

// Set sets the value for key. An existing entry keeps its position.
func (m *Map) Set(key, v Value) {
	for i, e := range m.entries {
		if SameValueZero(e.Key, key) {
			m.entries[i].Value = v
			return
		}
	}
	m.entries = append(m.entries, MapEntry{Key: key, Value: v})
}

// Get returns the value for key and whether it was present.
func (m *Map) Get(key Value) (Value, bool) {
	for _, e := range m.entries {
		if SameValueZero(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// Set is an insertion-ordered collection of unique values, with uniqueness
// decided by same-value-zero semantics.
type Set struct {
	elems []Value
}

func (*Set) Kind() Kind { return SetKind }

// NewSet returns a set of the given members, dropping duplicates.
func NewSet(elems ...Value) *Set {
	s := &Set{}
	for _, v := range elems {
		s.Add(v)
	}
	return s
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.elems) }

// Values returns the members in insertion order. The returned slice must
// not be modified.
func (s *Set) Values() []Value { return s.elems }

// Has reports whether v is a member.
func (s *Set) Has(v Value) bool {
	for _, e := range s.elems {
		if SameValueZero(e, v) {
			return true
		}
	}
	return false
}

// Add adds v if it is not already a member.
func (s *Set) Add(v Value) {
	if !s.Has(v) {
		s.elems = append(s.elems, v)
	}
}

// SameValueZero reports whether a and b are the same value for the purposes
// of Map keys and Set membership: primitives compare by content with NaN
// equal to itself, dates by instant, and symbols, functions, and containers
// by identity.
func SameValueZero(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case nullValue, undefinedValue:
		return true
	case Bool:
		return x == b.(Bool)
	case String:
		return x == b.(String)
	case Number:
		y := b.(Number)
		if math.IsNaN(float64(x)) && math.IsNaN(float64(y)) {
			return true
		}
		return x == y
	case BigInt:
		return x.Int.Cmp(b.(BigInt).Int) == 0
	case Date:
		return x.Millis == b.(Date).Millis
	case Regexp:
		return x == b.(Regexp)
	}
	// symbols, functions, containers, errors: reference identity
	return a == b
}
