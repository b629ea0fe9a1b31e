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
	"math"

	"znkr.io/align/internal/metric"
)

// Cost is the set of types that can be used for costs: all integer and floating point types.
type Cost = metric.Cost

// Metric is a cost model for aligning sequences of E.
//
// Implementations must be stateless and deterministic. Sub(a, a) must be Zero() for all a, and no
// cost may be negative. Inf() must be larger than any cost that can be reached by adding costs of
// real inputs; additions saturate at Inf() instead of overflowing.
//
// Gap() returns an element that never occurs in input sequences. It's used to mark gaps in
// alignments. Sub is never called with the gap element.
type Metric[E comparable, C Cost] interface {
	Sub(a, b E) C // Sub returns the cost of replacing a with b.
	Ins() C       // Ins returns the cost of inserting an element.
	Del() C       // Del returns the cost of deleting an element.
	Zero() C      // Zero returns the neutral cost.
	Inf() C       // Inf returns the largest cost.
	Gap() E       // Gap returns the gap element.
}

// UnitCost is a [Metric] that charges 1 for every substitution, insertion and deletion. The
// resulting distance is the Levenshtein distance.
type UnitCost[E comparable] struct {
	gap E
}

// NewUnitCost creates a unit cost metric that marks gaps with gap.
func NewUnitCost[E comparable](gap E) UnitCost[E] {
	return UnitCost[E]{gap: gap}
}

// Sub returns 0 for equal elements and 1 otherwise.
func (m UnitCost[E]) Sub(a, b E) int {
	if a == b {
		return 0
	}
	return 1
}

// Ins returns 1.
func (UnitCost[E]) Ins() int { return 1 }

// Del returns 1.
func (UnitCost[E]) Del() int { return 1 }

// Zero returns 0.
func (UnitCost[E]) Zero() int { return 0 }

// Inf returns [math.MaxInt].
func (UnitCost[E]) Inf() int { return math.MaxInt }

// Gap returns the gap element passed to [NewUnitCost].
func (m UnitCost[E]) Gap() E { return m.gap }
