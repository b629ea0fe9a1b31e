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

// Package hirschberg implements linear space alignment by divide and conquer.
//
// The alignment of x and y is split at row i = len(x)/2. A single forward sweep over the cost
// table, the same sweep used for the linear space distance, finds the column j where an optimal
// path crosses row i: once the sweep passes row i, every cell carries the column at which the
// path leading to it crossed row i, copied from the predecessor that realized the minimum. The
// value carried into the bottom right cell is j. The problem then splits into the independent
// subproblems (x[:i], y[:j]) and (x[i:], y[j:]) whose alignments are concatenated.
package hirschberg

import (
	"znkr.io/align/internal/aligned"
	"znkr.io/align/internal/metric"
)

// Aligner holds the rows reused by all splits of one alignment. An Aligner must not be used
// concurrently.
type Aligner[E comparable, C metric.Cost] struct {
	m    metric.Space[E, C]
	cost [2][]C
	orig [2][]int
}

// New creates an aligner for m.
func New[E comparable, C metric.Cost](m metric.Space[E, C]) *Aligner[E, C] {
	return &Aligner[E, C]{m: m}
}

func (a *Aligner[E, C]) grow(w int) {
	if cap(a.cost[0]) >= w {
		return
	}
	buf := make([]C, 2*w)
	a.cost = [2][]C{buf[:w:w], buf[w:]}
	obuf := make([]int, 2*w)
	a.orig = [2][]int{obuf[:w:w], obuf[w:]}
}

// Split returns the column j in [0, len(y)] through which an optimal alignment of x and y crosses
// row len(x)/2. Ties are broken as in the full table backtrace: diagonal first, then insertion,
// then deletion.
func (a *Aligner[E, C]) Split(x, y []E) int {
	m := a.m
	inf, ins, del := m.Inf(), m.Ins(), m.Del()
	w := len(y) + 1
	a.grow(w)
	mid := len(x) / 2

	prev, prevOrig := a.cost[0][:w], a.orig[0][:w]
	prev[0], prevOrig[0] = m.Zero(), 0
	for j := 1; j < w; j++ {
		prev[j] = metric.Add(inf, prev[j-1], ins)
		prevOrig[j] = j
	}

	for i := 1; i <= len(x); i++ {
		prev, row := a.cost[(i-1)%2][:w], a.cost[i%2][:w]
		prevOrig, orig := a.orig[(i-1)%2][:w], a.orig[i%2][:w]
		track := i > mid

		row[0] = metric.Add(inf, prev[0], del)
		orig[0] = 0
		if track {
			orig[0] = prevOrig[0]
		}
		xi := x[i-1]
		for j := 1; j < w; j++ {
			c, o := metric.Add(inf, prev[j-1], m.Sub(xi, y[j-1])), prevOrig[j-1]
			if l := metric.Add(inf, row[j-1], ins); l < c {
				c, o = l, orig[j-1]
			}
			if u := metric.Add(inf, prev[j], del); u < c {
				c, o = u, prevOrig[j]
			}
			row[j] = c
			if track {
				orig[j] = o
			} else {
				orig[j] = j
			}
		}
	}
	return a.orig[len(x)%2][len(y)]
}

// frame is a pending subproblem x[x0:x1], y[y0:y1].
type frame struct {
	x0, x1 int
	y0, y1 int
}

// Align computes an optimal alignment of x and y in linear space.
func (a *Aligner[E, C]) Align(x, y []E) (xs, ys []E) {
	b := aligned.NewBuilder(a.m.Gap(), len(x), len(y))
	a.alignInto(b, x, y)
	return b.Build()
}

// alignInto appends the alignment of x and y to b. Subproblems are kept on an explicit stack,
// the right half is pushed before the left half so that columns are produced in order.
func (a *Aligner[E, C]) alignInto(b *aligned.Builder[E], x, y []E) {
	a.grow(len(y) + 1)
	stack := []frame{{0, len(x), 0, len(y)}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sx, sy := x[f.x0:f.x1], y[f.y0:f.y1]
		switch {
		case len(sx) == 0:
			for _, e := range sy {
				b.Insert(e)
			}
		case len(sy) == 0:
			for _, e := range sx {
				b.Delete(e)
			}
		case len(sx) == 1:
			a.single(b, sx[0], sy)
		default:
			i, j := len(sx)/2, a.Split(sx, sy)
			stack = append(stack,
				frame{f.x0 + i, f.x1, f.y0 + j, f.y1},
				frame{f.x0, f.x0 + i, f.y0, f.y0 + j},
			)
		}
	}
}

// single aligns the element e with the non-empty sequence y. e is paired with the first element
// of y with the lowest substitution cost, unless substituting is more expensive than deleting e
// and inserting all of y.
func (a *Aligner[E, C]) single(b *aligned.Builder[E], e E, y []E) {
	if len(y) == 0 {
		panic("aligning a single element requires a non-empty sequence")
	}
	m := a.m
	k, best := 0, m.Sub(e, y[0])
	for i := 1; i < len(y); i++ {
		if c := m.Sub(e, y[i]); c < best {
			k, best = i, c
		}
	}
	if best > metric.Add(m.Inf(), m.Del(), m.Ins()) {
		b.Delete(e)
		for _, c := range y {
			b.Insert(c)
		}
		return
	}
	for _, c := range y[:k] {
		b.Insert(c)
	}
	b.Pair(e, y[k])
	for _, c := range y[k+1:] {
		b.Insert(c)
	}
}
