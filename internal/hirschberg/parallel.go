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

package hirschberg

import (
	"golang.org/x/sync/errgroup"
	"znkr.io/align/internal/aligned"
	"znkr.io/align/internal/metric"
)

// AlignParallel is like Align, but for the first depth levels of splits the two halves are solved
// concurrently. Halves smaller than minSize cells (len(x)*len(y)) are solved sequentially. The
// result is identical to Align.
func AlignParallel[E comparable, C metric.Cost](m metric.Space[E, C], x, y []E, depth, minSize int) (xs, ys []E) {
	b := aligned.NewBuilder(m.Gap(), len(x), len(y))
	alignParallel(m, b, x, y, depth, minSize)
	return b.Build()
}

func alignParallel[E comparable, C metric.Cost](m metric.Space[E, C], b *aligned.Builder[E], x, y []E, depth, minSize int) {
	a := New(m)
	if depth <= 0 || len(x) < 2 || len(y) == 0 || len(x)*len(y) < minSize {
		a.alignInto(b, x, y)
		return
	}

	i, j := len(x)/2, a.Split(x, y)
	left := aligned.NewBuilder(m.Gap(), i, j)
	var g errgroup.Group
	g.Go(func() error {
		alignParallel(m, left, x[:i], y[:j], depth-1, minSize)
		return nil
	})
	right := aligned.NewBuilder(m.Gap(), len(x)-i, len(y)-j)
	alignParallel(m, right, x[i:], y[j:], depth-1, minSize)
	if err := g.Wait(); err != nil {
		panic("never reached")
	}
	b.Append(left.Build())
	b.Append(right.Build())
}
