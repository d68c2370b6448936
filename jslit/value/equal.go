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

package value

// Equal reports deep structural equality of a and b. Unlike SameValueZero
// it descends into containers, and symbols compare by classification
// (registry key, or description) rather than identity, so that a loaded
// value can be compared against the value it was rendered from.
//
// Equal does not guard against cyclic values.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Symbol:
		return symbolEqual(x, b.(*Symbol))
	case *Func:
		return x.Source == b.(*Func).Source
	case *Error:
		y := b.(*Error)
		return x.Name == y.Name && x.Message == y.Message && x.Stack == y.Stack
	case *List:
		y := b.(*List)
		if len(x.Elems) != len(y.Elems) {
			return false
		}
		for i, e := range x.Elems {
			if !Equal(e, y.Elems[i]) {
				return false
			}
		}
		return true
	case *Record:
		y := b.(*Record)
		if len(x.fields) != len(y.fields) {
			return false
		}
		for i, f := range x.fields {
			g := y.fields[i]
			if !keyEqual(f.Key, g.Key) || !Equal(f.Value, g.Value) {
				return false
			}
		}
		return true
	case *Map:
		y := b.(*Map)
		if len(x.entries) != len(y.entries) {
			return false
		}
		for i, e := range x.entries {
			f := y.entries[i]
			if !Equal(e.Key, f.Key) || !Equal(e.Value, f.Value) {
				return false
			}
		}
		return true
	case *Set:
		y := b.(*Set)
		if len(x.elems) != len(y.elems) {
			return false
		}
		for i, e := range x.elems {
			if !Equal(e, y.elems[i]) {
				return false
			}
		}
		return true
	}
	return SameValueZero(a, b)
}

func symbolEqual(a, b *Symbol) bool {
	if a.registered != b.registered {
		return false
	}
	if a.registered {
		return a.key == b.key
	}
	return a.hasDesc == b.hasDesc && a.desc == b.desc
}

func keyEqual(a, b Value) bool {
	if x, ok := a.(*Symbol); ok {
		y, ok := b.(*Symbol)
		return ok && symbolEqual(x, y)
	}
	return sameKey(a, b)
}
