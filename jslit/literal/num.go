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

package literal

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// NumInfo contains the exact decimal value of a scanned number literal.
// The decimal is held losslessly so that callers can decide between the
// float and big-integer interpretations without re-parsing the source.
type NumInfo struct {
	src   string
	isBig bool
	dec   apd.Decimal
}

// ParseNum parses a decimal number literal, including an optional exponent
// and an optional big-integer "n" suffix.
func ParseNum(s string) (*NumInfo, error) {
	info := &NumInfo{src: s}
	if n := len(s); n > 0 && s[n-1] == 'n' {
		info.isBig = true
		s = s[:n-1]
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid number literal %q: %v", info.src, err)
	}
	if info.isBig && d.Exponent < 0 {
		return nil, fmt.Errorf("invalid big integer literal %q", info.src)
	}
	info.dec = *d
	return info, nil
}

// String returns the literal source text.
func (n *NumInfo) String() string { return n.src }

// IsBig reports whether the literal carried the big-integer suffix.
func (n *NumInfo) IsBig() bool { return n.isBig }

// Float64 returns the nearest float64 to the literal's exact value.
func (n *NumInfo) Float64() (float64, error) {
	f, err := n.dec.Float64()
	if err != nil {
		return 0, fmt.Errorf("number literal %q: %v", n.src, err)
	}
	return f, nil
}

// BigInt returns the exact integer value of an integral literal.
func (n *NumInfo) BigInt() (*big.Int, error) {
	if n.dec.Exponent < 0 {
		return nil, fmt.Errorf("number literal %q is not an integer", n.src)
	}
	var i big.Int
	if _, ok := i.SetString(n.dec.Text('f'), 10); !ok {
		return nil, fmt.Errorf("invalid integer literal %q", n.src)
	}
	return &i, nil
}
