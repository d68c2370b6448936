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

import "sync"

// Symbol is a unique-identity token. It is either registered in the
// process-wide registry under a shared string key, or locally unique with
// an optional description. The two classifications are mutually exclusive.
type Symbol struct {
	desc       string
	hasDesc    bool
	key        string
	registered bool
}

func (*Symbol) Kind() Kind { return SymbolKind }

// NewSymbol returns a fresh, unregistered symbol with the given
// description.
func NewSymbol(desc string) *Symbol {
	return &Symbol{desc: desc, hasDesc: true}
}

// NewAnonymousSymbol returns a fresh, unregistered symbol carrying no
// description.
func NewAnonymousSymbol() *Symbol {
	return &Symbol{}
}

// Description returns the symbol's description and whether it carries one.
func (s *Symbol) Description() (string, bool) {
	if s.registered {
		return s.key, true
	}
	return s.desc, s.hasDesc
}

// Registered returns the registry key of a globally registered symbol.
func (s *Symbol) Registered() (key string, ok bool) {
	return s.key, s.registered
}

var registry = struct {
	mu sync.Mutex
	m  map[string]*Symbol
}{m: make(map[string]*Symbol)}

// For returns the symbol registered in the process-wide registry under key,
// creating it on first use. Repeated calls with the same key return the
// identical symbol.
func For(key string) *Symbol {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if s, ok := registry.m[key]; ok {
		return s
	}
	s := &Symbol{key: key, registered: true}
	registry.m[key] = s
	return s
}
