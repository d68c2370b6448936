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

import (
	"fmt"
	"math/big"
	"time"
)

// ToInterface converts v to plain Go values for interchange export
// (encoding/json, yaml). The conversion is lossy: symbols, functions, and
// regular expressions degrade to strings, dates to RFC 3339 timestamps, and
// maps to string-keyed Go maps. Ordering of record fields and map entries
// is not preserved by Go maps.
func ToInterface(v Value) any {
	switch x := v.(type) {
	case nullValue, undefinedValue:
		return nil
	case Bool:
		return bool(x)
	case Number:
		return float64(x)
	case String:
		return string(x)
	case BigInt:
		return new(big.Int).Set(x.Int)
	case *Symbol:
		if key, ok := x.Registered(); ok {
			return "Symbol.for(" + key + ")"
		}
		desc, _ := x.Description()
		return "Symbol(" + desc + ")"
	case *Func:
		return x.Source
	case Date:
		return x.Time().Format(time.RFC3339Nano)
	case Regexp:
		return x.String()
	case *Error:
		return map[string]any{
			"name":    x.Name,
			"message": x.Message,
			"stack":   x.Stack,
		}
	case *List:
		elems := make([]any, len(x.Elems))
		for i, e := range x.Elems {
			elems[i] = ToInterface(e)
		}
		return elems
	case *Record:
		m := make(map[string]any, len(x.fields))
		for _, f := range x.fields {
			m[keyString(f.Key)] = ToInterface(f.Value)
		}
		return m
	case *Map:
		m := make(map[string]any, len(x.entries))
		for _, e := range x.entries {
			m[keyString(e.Key)] = ToInterface(e.Value)
		}
		return m
	case *Set:
		elems := make([]any, len(x.elems))
		for i, e := range x.elems {
			elems[i] = ToInterface(e)
		}
		return elems
	}
	return fmt.Sprintf("<%s>", v.Kind())
}

func keyString(k Value) string {
	if s, ok := k.(String); ok {
		return string(s)
	}
	return fmt.Sprint(ToInterface(k))
}
