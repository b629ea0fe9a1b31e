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

// Package aligned contains functions to work with alignments in their internal representation:
// two column slices of equal length where gaps are marked with the gap element of the cost model.
package aligned

import (
	"fmt"

	"znkr.io/align/internal/metric"
)

// Builder accumulates alignment columns. Algorithms that produce the alignment piece by piece
// append to a single Builder to avoid allocating intermediate results.
type Builder[E comparable] struct {
	gap    E
	xs, ys []E
}

// NewBuilder creates a builder with room for an alignment of inputs of length n and m.
func NewBuilder[E comparable](gap E, n, m int) *Builder[E] {
	return &Builder[E]{
		gap: gap,
		xs:  make([]E, 0, n+m),
		ys:  make([]E, 0, n+m),
	}
}

// Pair appends a column that aligns a with b.
func (b *Builder[E]) Pair(a, c E) {
	b.xs = append(b.xs, a)
	b.ys = append(b.ys, c)
}

// Delete appends a column for a element of x that is aligned with a gap.
func (b *Builder[E]) Delete(a E) { b.Pair(a, b.gap) }

// Insert appends a column for a element of y that is aligned with a gap.
func (b *Builder[E]) Insert(c E) { b.Pair(b.gap, c) }

// Append appends an alignment produced elsewhere.
func (b *Builder[E]) Append(xs, ys []E) {
	if len(xs) != len(ys) {
		panic("alignment rows of different length")
	}
	b.xs = append(b.xs, xs...)
	b.ys = append(b.ys, ys...)
}

// Len returns the number of columns collected so far.
func (b *Builder[E]) Len() int { return len(b.xs) }

// Build returns the collected columns. The builder must not be used afterwards.
func (b *Builder[E]) Build() (xs, ys []E) {
	xs, ys = b.xs, b.ys
	b.xs, b.ys = nil, nil
	return xs, ys
}

// Cost returns the cost of an alignment under m. Columns with a gap in x are charged an
// insertion, columns with a gap in y a deletion, and gap-gap columns are charged both.
//
// Cost panics if xs and ys differ in length.
func Cost[E comparable, C metric.Cost](m metric.Space[E, C], xs, ys []E) C {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("alignment rows of different length: %d != %d", len(xs), len(ys)))
	}
	inf, ins, del, gap := m.Inf(), m.Ins(), m.Del(), m.Gap()
	sum := m.Zero()
	for i := range xs {
		var c C
		switch a, b := xs[i], ys[i]; {
		case a == gap && b == gap:
			c = metric.Add(inf, ins, del)
		case a == gap:
			c = ins
		case b == gap:
			c = del
		default:
			c = m.Sub(a, b)
		}
		sum = metric.Add(inf, sum, c)
	}
	return sum
}

// Strip returns the elements of s that aren't gaps.
func Strip[E comparable](gap E, s []E) []E {
	out := make([]E, 0, len(s))
	for _, e := range s {
		if e != gap {
			out = append(out, e)
		}
	}
	return out
}

// Check reports whether xs and ys form a valid alignment of x and y: equal length, no gap-gap
// columns, and the original inputs are recovered by dropping the gaps.
func Check[E comparable](gap E, x, y, xs, ys []E) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("alignment rows of different length: %d != %d", len(xs), len(ys))
	}
	for i := range xs {
		if xs[i] == gap && ys[i] == gap {
			return fmt.Errorf("column %d aligns a gap with a gap", i)
		}
	}
	if err := sameElems(x, Strip(gap, xs)); err != nil {
		return fmt.Errorf("x row: %w", err)
	}
	if err := sameElems(y, Strip(gap, ys)); err != nil {
		return fmt.Errorf("y row: %w", err)
	}
	return nil
}

func sameElems[E comparable](want, got []E) error {
	if len(want) != len(got) {
		return fmt.Errorf("%d elements after removing gaps, want %d", len(got), len(want))
	}
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("element %d differs after removing gaps", i)
		}
	}
	return nil
}
