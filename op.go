// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package align

// Op describes what a column of an alignment does.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match      Op = iota // Both elements are equal
	Substitute           // The element of x is replaced by the element of y
	Delete               // The element of x is aligned with a gap
	Insert               // The element of y is aligned with a gap
)

// Ops returns the operation of every column of a.
//
// Ops panics if a column pairs two gaps or if X and Y have different lengths.
func (a Alignment[E]) Ops(gap E) []Op {
	if len(a.X) != len(a.Y) {
		panic("alignment rows of different length")
	}
	ops := make([]Op, len(a.X))
	for i := range ops {
		ops[i] = op(gap, a.X[i], a.Y[i])
	}
	return ops
}

func op[E comparable](gap, a, b E) Op {
	switch {
	case a == gap && b == gap:
		panic("gap aligned with gap")
	case a == gap:
		return Insert
	case b == gap:
		return Delete
	case a == b:
		return Match
	default:
		return Substitute
	}
}
