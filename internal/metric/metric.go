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

// Package metric contains the cost model contract shared by the alignment algorithms in this
// module.
//
// This package is an implementation detail, users see the same contract as align.Metric.
package metric

// Cost is the set of types that can be used as alignment costs. Costs must be totally ordered
// and support addition.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Space describes a cost model over elements of type E with costs of type C.
//
// Sub must never be called with Gap(). Insertion and deletion costs are fixed and non-negative.
type Space[E comparable, C Cost] interface {
	Sub(a, b E) C // Cost to align a with b, Zero() if a == b.
	Ins() C       // Cost to insert an element of y.
	Del() C       // Cost to delete an element of x.
	Zero() C      // Neutral cost.
	Inf() C       // Absorbing maximum cost.
	Gap() E       // Sentinel element that never appears in inputs.
}

// Add adds a and b, saturating at inf.
//
// Costs are non-negative, so a sum that wrapped around is smaller than a.
func Add[C Cost](inf, a, b C) C {
	if a >= inf || b >= inf {
		return inf
	}
	s := a + b
	if s < a || s > inf {
		return inf
	}
	return s
}
