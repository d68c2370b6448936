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
	"testing"

	"github.com/go-quicktest/qt"
)

func TestParseNumFloat(t *testing.T) {
	testCases := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.25", 3.25},
		{".5", 0.5},
		{"1e3", 1000},
		{"1.5e-2", 0.015},
		{"1E6", 1e6},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			info, err := ParseNum(tc.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.IsFalse(info.IsBig()))
			f, err := info.Float64()
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(f, tc.want))
		})
	}
}

func TestParseNumBig(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"0n", "0"},
		{"42n", "42"},
		{"9007199254740993n", "9007199254740993"},
		{"123456789012345678901234567890n", "123456789012345678901234567890"},
		{"1e3n", "1000"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			info, err := ParseNum(tc.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.IsTrue(info.IsBig()))
			i, err := info.BigInt()
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(i.Text(10), tc.want))
		})
	}
}

func TestParseNumErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "1.5n", "1e-2n"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseNum(in)
			qt.Assert(t, qt.IsNotNil(err))
		})
	}
}
