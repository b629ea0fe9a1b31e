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

// Package naive computes edit distances by exhaustive recursion. It is exponential in the input
// size and only exists as a reference for the other algorithms and for very small inputs.
package naive

import "znkr.io/align/internal/metric"

// Distance returns the minimum cost to transform x into y by trying every sequence of
// substitutions, deletions and insertions.
func Distance[E comparable, C metric.Cost](m metric.Space[E, C], x, y []E) C {
	inf := m.Inf()
	switch {
	case len(x) == 0 && len(y) == 0:
		return m.Zero()
	case len(x) == 0:
		return metric.Add(inf, m.Ins(), Distance(m, x, y[1:]))
	case len(y) == 0:
		return metric.Add(inf, m.Del(), Distance(m, x[1:], y))
	}

	best := metric.Add(inf, m.Sub(x[0], y[0]), Distance(m, x[1:], y[1:]))
	if c := metric.Add(inf, m.Del(), Distance(m, x[1:], y)); c < best {
		best = c
	}
	if c := metric.Add(inf, m.Ins(), Distance(m, x, y[1:])); c < best {
		best = c
	}
	return best
}
