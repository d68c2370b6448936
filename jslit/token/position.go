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

package token

import (
	"fmt"
	"sort"
)

// -----------------------------------------------------------------------------
// Positions

// Position describes an arbitrary and printable source position within a
// source text, including offset, line, and column location.
//
// A Position is valid if the line number is > 0.
type Position struct {
	Filename string // filename, if any
	Offset   int    // offset, starting at 0
	Line     int    // line number, starting at 1
	Column   int    // column number, starting at 1 (byte count)
}

// IsValid reports whether the position is valid.
func (pos *Position) IsValid() bool { return pos.Line > 0 }

// String returns a human-readable form of a position in one of several forms:
//
//	file:line:column    valid position with file name
//	line:column         valid position without file name
//	file                invalid position with file name
//	-                   invalid position without file name
func (pos Position) String() string {
	s := pos.Filename
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// Pos is a compact encoding of a source position within a File.
// It can be converted into a Position for a more convenient, but much
// larger, representation.
type Pos struct {
	file   *File
	offset int
}

// NoPos is the zero value for Pos; there is no file associated with it.
var NoPos = Pos{}

// IsValid reports whether the position is valid.
func (p Pos) IsValid() bool { return p.file != nil }

// File returns the file that contains the position p, or nil if there is no
// such file (for instance for p == NoPos).
func (p Pos) File() *File { return p.file }

// Offset returns the byte offset of p within its file, starting at 0.
func (p Pos) Offset() int { return p.offset }

// Add returns the position n bytes after p. It is used to compute end
// positions from a token's start and length.
func (p Pos) Add(n int) Pos { return Pos{file: p.file, offset: p.offset + n} }

// Line returns the position's line number, starting at 1.
func (p Pos) Line() int { return p.Position().Line }

// Column returns the position's column number counting in bytes, starting
// at 1.
func (p Pos) Column() int { return p.Position().Column }

// Position returns the printable form of p.
func (p Pos) Position() Position {
	if p.file == nil {
		return Position{}
	}
	return p.file.Position(p)
}

func (p Pos) String() string { return p.Position().String() }

// -----------------------------------------------------------------------------
// File

// A File is a handle for a single source text. It records the line offsets
// needed to convert compact Pos values into printable Positions.
type File struct {
	name string // file name as provided to NewFile
	size int    // source size

	// lines contains the offset of the first character for each line
	// (the first entry is always 0).
	lines []int
}

// NewFile returns a new File with the given name and source size.
func NewFile(name string, size int) *File {
	return &File{name: name, size: size, lines: []int{0}}
}

// Name returns the file name as provided to NewFile.
func (f *File) Name() string { return f.name }

// Size returns the size of the file as provided to NewFile.
func (f *File) Size() int { return f.size }

// AddLine adds the line offset for a new line.
// The line offset must be larger than the offset for the previous line,
// and smaller than the file size; otherwise the line offset is ignored.
func (f *File) AddLine(offset int) {
	if i := len(f.lines); (i == 0 || f.lines[i-1] < offset) && offset < f.size {
		f.lines = append(f.lines, offset)
	}
}

// Pos returns the Pos value for the given file offset;
// the offset must be <= f.Size().
func (f *File) Pos(offset int) Pos {
	if offset > f.size {
		panic("token.File.Pos: illegal file offset")
	}
	return Pos{file: f, offset: offset}
}

// Position returns the Position value for the given position p,
// which must belong to f.
func (f *File) Position(p Pos) Position {
	if p.file != f {
		panic("token.File.Position: illegal Pos value")
	}
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > p.offset }) - 1
	return Position{
		Filename: f.name,
		Offset:   p.offset,
		Line:     i + 1,
		Column:   p.offset - f.lines[i] + 1,
	}
}
