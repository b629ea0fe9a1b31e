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

// Package dp implements the quadratic dynamic program for edit distance and alignment.
//
// The table T has len(x)+1 rows and len(y)+1 columns. T[i][j] is the minimum cost to transform
// x[:i] into y[:j]:
//
//	T[0][0] = 0
//	T[i][0] = T[i-1][0] + del
//	T[0][j] = T[0][j-1] + ins
//	T[i][j] = min(T[i-1][j-1] + sub(x[i-1], y[j-1]), T[i][j-1] + ins, T[i-1][j] + del)
//
// Moving left in the table consumes an element of y (insertion), moving up consumes an element of
// x (deletion).
package dp

import (
	"slices"

	"znkr.io/align/internal/metric"
)

// Table is a filled dynamic programming table.
type Table[C metric.Cost] struct {
	n, m  int
	cells []C // row major, (n+1)*(m+1) cells
}

// Rows returns the number of rows of the table, len(x)+1.
func (t *Table[C]) Rows() int { return t.n + 1 }

// Cols returns the number of columns of the table, len(y)+1.
func (t *Table[C]) Cols() int { return t.m + 1 }

// At returns T[i][j].
func (t *Table[C]) At(i, j int) C {
	if i < 0 || i > t.n || j < 0 || j > t.m {
		panic("table index out of range")
	}
	return t.cells[i*(t.m+1)+j]
}

// Distance returns the bottom right cell, the edit distance of the inputs the table was filled
// for.
func (t *Table[C]) Distance() C { return t.cells[len(t.cells)-1] }

// Fill computes the complete table for x and y.
func Fill[E comparable, C metric.Cost](m metric.Space[E, C], x, y []E) *Table[C] {
	inf, ins, del := m.Inf(), m.Ins(), m.Del()
	w := len(y) + 1
	t := &Table[C]{
		n:     len(x),
		m:     len(y),
		cells: make([]C, (len(x)+1)*w),
	}
	cells := t.cells

	cells[0] = m.Zero()
	for j := 1; j < w; j++ {
		cells[j] = metric.Add(inf, cells[j-1], ins)
	}
	for i := 1; i <= len(x); i++ {
		row, prev := cells[i*w:(i+1)*w], cells[(i-1)*w:i*w]
		row[0] = metric.Add(inf, prev[0], del)
		xi := x[i-1]
		for j := 1; j < w; j++ {
			c := metric.Add(inf, prev[j-1], m.Sub(xi, y[j-1]))
			if l := metric.Add(inf, row[j-1], ins); l < c {
				c = l
			}
			if u := metric.Add(inf, prev[j], del); u < c {
				c = u
			}
			row[j] = c
		}
	}
	return t
}

// Backtrace walks t from the bottom right to the top left and returns the aligned columns. On
// ties, a diagonal step is preferred over an insertion, and an insertion over a deletion.
//
// The table must have been filled for x and y with the same cost model, otherwise Backtrace
// panics.
func Backtrace[E comparable, C metric.Cost](m metric.Space[E, C], x, y []E, t *Table[C]) (xs, ys []E) {
	if t.n != len(x) || t.m != len(y) {
		panic("table doesn't match inputs")
	}
	inf, ins, gap := m.Inf(), m.Ins(), m.Gap()
	xs = make([]E, 0, len(x)+len(y))
	ys = make([]E, 0, len(x)+len(y))

	i, j := len(x), len(y)
	for i > 0 && j > 0 {
		c := t.At(i, j)
		switch {
		case c == metric.Add(inf, t.At(i-1, j-1), m.Sub(x[i-1], y[j-1])):
			i--
			j--
			xs = append(xs, x[i])
			ys = append(ys, y[j])
		case c == metric.Add(inf, t.At(i, j-1), ins):
			j--
			xs = append(xs, gap)
			ys = append(ys, y[j])
		default:
			i--
			xs = append(xs, x[i])
			ys = append(ys, gap)
		}
	}
	for ; i > 0; i-- {
		xs = append(xs, x[i-1])
		ys = append(ys, gap)
	}
	for ; j > 0; j-- {
		xs = append(xs, gap)
		ys = append(ys, y[j-1])
	}
	slices.Reverse(xs)
	slices.Reverse(ys)
	return xs, ys
}

// Align computes an optimal alignment of x and y using a full table.
func Align[E comparable, C metric.Cost](m metric.Space[E, C], x, y []E) (xs, ys []E) {
	return Backtrace(m, x, y, Fill(m, x, y))
}

// Distance computes the edit distance of x and y keeping only two rows of the table. buf is used
// as scratch space if it has room for both rows.
func Distance[E comparable, C metric.Cost](m metric.Space[E, C], x, y []E, buf []C) C {
	inf, ins, del := m.Inf(), m.Ins(), m.Del()
	w := len(y) + 1
	if cap(buf) < 2*w {
		buf = make([]C, 2*w)
	}
	rows := [2][]C{buf[:w], buf[w : 2*w]}

	prev := rows[0]
	prev[0] = m.Zero()
	for j := 1; j < w; j++ {
		prev[j] = metric.Add(inf, prev[j-1], ins)
	}
	for i := 1; i <= len(x); i++ {
		prev, row := rows[(i-1)%2], rows[i%2]
		row[0] = metric.Add(inf, prev[0], del)
		xi := x[i-1]
		for j := 1; j < w; j++ {
			c := metric.Add(inf, prev[j-1], m.Sub(xi, y[j-1]))
			if l := metric.Add(inf, row[j-1], ins); l < c {
				c = l
			}
			if u := metric.Add(inf, prev[j], del); u < c {
				c = u
			}
			row[j] = c
		}
	}
	return rows[len(x)%2][len(y)]
}
