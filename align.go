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

import (
	"znkr.io/align/internal/aligned"
	"znkr.io/align/internal/config"
	"znkr.io/align/internal/dp"
	"znkr.io/align/internal/hirschberg"
	"znkr.io/align/internal/naive"
)

// Alignment is a column by column pairing of two sequences. X and Y always have the same length.
// Column i pairs X[i] with Y[i], where either of them may be the gap element of the metric that
// produced the alignment, but never both.
type Alignment[E comparable] struct {
	X, Y []E
}

// Len returns the number of columns.
func (a Alignment[E]) Len() int { return len(a.X) }

// Table is a complete dynamic programming table. At(i, j) is the edit distance of x[:i] and
// y[:j] for the inputs the table was filled for.
type Table[C Cost] = dp.Table[C]

// DistanceNaive computes the edit distance of x and y by trying all edit sequences.
//
// The runtime is exponential in len(x) + len(y). Only use this for tiny inputs or as a reference.
func DistanceNaive[E comparable, C Cost](m Metric[E, C], x, y []E) C {
	return naive.Distance[E, C](m, x, y)
}

// Fill computes the complete (len(x)+1) x (len(y)+1) dynamic programming table for x and y.
func Fill[E comparable, C Cost](m Metric[E, C], x, y []E) *Table[C] {
	return dp.Fill[E, C](m, x, y)
}

// DistanceFull computes the edit distance of x and y using a complete table.
//
// The runtime is O(NM) time and O(NM) space, where N = len(x) and M = len(y).
func DistanceFull[E comparable, C Cost](m Metric[E, C], x, y []E) C {
	return dp.Fill[E, C](m, x, y).Distance()
}

// DistanceLinear computes the edit distance of x and y keeping only two rows of the table.
//
// The runtime is O(NM) time and O(M) space, where N = len(x) and M = len(y).
func DistanceLinear[E comparable, C Cost](m Metric[E, C], x, y []E) C {
	return dp.Distance[E, C](m, x, y, nil)
}

// Distance computes the edit distance of x and y. It is the same as [DistanceLinear].
func Distance[E comparable, C Cost](m Metric[E, C], x, y []E) C {
	return DistanceLinear(m, x, y)
}

// AlignTable reconstructs an optimal alignment of x and y from a table computed by [Fill] with the
// same metric and inputs. When several optimal alignments exist, the walk back from the last cell
// prefers a substitution over an insertion, and an insertion over a deletion.
//
// AlignTable panics if t doesn't have the dimensions of x and y.
func AlignTable[E comparable, C Cost](m Metric[E, C], x, y []E, t *Table[C]) Alignment[E] {
	xs, ys := dp.Backtrace[E, C](m, x, y, t)
	return Alignment[E]{xs, ys}
}

// AlignFull computes an optimal alignment of x and y using a complete table.
//
// The runtime is O(NM) time and O(NM) space, where N = len(x) and M = len(y).
func AlignFull[E comparable, C Cost](m Metric[E, C], x, y []E) Alignment[E] {
	xs, ys := dp.Align[E, C](m, x, y)
	return Alignment[E]{xs, ys}
}

// Solve computes the edit distance and an optimal alignment of x and y from a single table.
func Solve[E comparable, C Cost](m Metric[E, C], x, y []E) (C, Alignment[E]) {
	t := Fill(m, x, y)
	return t.Distance(), AlignTable(m, x, y, t)
}

// Split returns the column j in [0, len(y)] such that an optimal alignment of x and y is the
// concatenation of optimal alignments of (x[:len(x)/2], y[:j]) and (x[len(x)/2:], y[j:]).
//
// The runtime is O(NM) time and O(M) space, where N = len(x) and M = len(y).
func Split[E comparable, C Cost](m Metric[E, C], x, y []E) int {
	return hirschberg.New[E, C](m).Split(x, y)
}

// AlignLinear computes an optimal alignment of x and y with Hirschberg's divide and conquer
// algorithm.
//
// The runtime is O(NM) time and O(N+M) space, where N = len(x) and M = len(y).
//
// The following options are supported: [align.Parallel]
func AlignLinear[E comparable, C Cost](m Metric[E, C], x, y []E, opts ...Option) Alignment[E] {
	cfg := config.FromOptions(opts, config.Parallel)
	var xs, ys []E
	if cfg.ParallelDepth > 0 {
		xs, ys = hirschberg.AlignParallel[E, C](m, x, y, cfg.ParallelDepth, cfg.ParallelMinSize)
	} else {
		xs, ys = hirschberg.New[E, C](m).Align(x, y)
	}
	return Alignment[E]{xs, ys}
}

// Align computes an optimal alignment of x and y. It is the same as [AlignLinear].
//
// The following options are supported: [align.Parallel]
func Align[E comparable, C Cost](m Metric[E, C], x, y []E, opts ...Option) Alignment[E] {
	return AlignLinear(m, x, y, opts...)
}

// AlignmentCost returns the cost of a under m. A column with a gap in X is charged an insertion, a
// column with a gap in Y a deletion, and a column with gaps on both sides is charged both.
//
// AlignmentCost panics if X and Y have different lengths.
func AlignmentCost[E comparable, C Cost](m Metric[E, C], a Alignment[E]) C {
	return aligned.Cost[E, C](m, a.X, a.Y)
}

// Gaps returns a sequence of n gap elements.
func Gaps[E comparable](gap E, n int) []E {
	out := make([]E, n)
	for i := range out {
		out[i] = gap
	}
	return out
}

// StripGaps returns the elements of s that aren't gap.
func StripGaps[E comparable](gap E, s []E) []E {
	return aligned.Strip(gap, s)
}

// Sequences returns the two sequences that were aligned, by removing all gaps.
func (a Alignment[E]) Sequences(gap E) (x, y []E) {
	return aligned.Strip(gap, a.X), aligned.Strip(gap, a.Y)
}

// Check reports an error if a isn't a valid alignment of x and y: if the rows differ in length,
// a column pairs two gaps, or removing the gaps doesn't reproduce x and y.
func (a Alignment[E]) Check(gap E, x, y []E) error {
	return aligned.Check(gap, x, y, a.X, a.Y)
}
