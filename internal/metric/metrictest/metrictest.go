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

// Package metrictest provides small cost models and input generators for testing the alignment
// algorithms.
package metrictest

import (
	"crypto/sha256"
	"math"
	"math/rand/v2"
)

// Gap is the gap symbol used by all models in this package.
const Gap = '-'

// Unit charges 1 for every insertion, deletion and mismatch.
type Unit struct{}

func (Unit) Sub(a, b byte) int {
	if a == b {
		return 0
	}
	return 1
}
func (Unit) Ins() int  { return 1 }
func (Unit) Del() int  { return 1 }
func (Unit) Zero() int { return 0 }
func (Unit) Inf() int  { return math.MaxInt }
func (Unit) Gap() byte { return Gap }

// DNA charges 3 for transitions (A<->G, C<->T), 4 for all other mismatches and 2 for gaps.
type DNA struct{}

func (DNA) Sub(a, b byte) int {
	switch {
	case a == b:
		return 0
	case a == 'A' && b == 'G', a == 'G' && b == 'A', a == 'C' && b == 'T', a == 'T' && b == 'C':
		return 3
	default:
		return 4
	}
}
func (DNA) Ins() int  { return 2 }
func (DNA) Del() int  { return 2 }
func (DNA) Zero() int { return 0 }
func (DNA) Inf() int  { return math.MaxInt }
func (DNA) Gap() byte { return Gap }

// Asym has cheap insertions, expensive deletions and substitutions that are never worth it.
type Asym struct{}

func (Asym) Sub(a, b byte) int {
	if a == b {
		return 0
	}
	return 5
}
func (Asym) Ins() int  { return 1 }
func (Asym) Del() int  { return 3 }
func (Asym) Zero() int { return 0 }
func (Asym) Inf() int  { return math.MaxInt }
func (Asym) Gap() byte { return Gap }

// Float is the unit model over float64 costs.
type Float struct{}

func (Float) Sub(a, b byte) float64 {
	if a == b {
		return 0
	}
	return 1.5
}
func (Float) Ins() float64  { return 1 }
func (Float) Del() float64  { return 1 }
func (Float) Zero() float64 { return 0 }
func (Float) Inf() float64  { return math.Inf(1) }
func (Float) Gap() byte     { return Gap }

// Rand returns a deterministic random source seeded from name.
func Rand(name string) *rand.Rand {
	return rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
}

// Bases returns a random sequence of n nucleotides.
func Bases(rng *rand.Rand, n int) []byte {
	const alphabet = "ACGT"
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return out
}

// Mutate returns a copy of x with roughly rate*len(x) random substitutions, insertions and
// deletions applied. Related inputs exercise different paths than independent ones.
func Mutate(rng *rand.Rand, x []byte, rate float64) []byte {
	const alphabet = "ACGT"
	out := make([]byte, 0, len(x)+len(x)/4)
	for _, c := range x {
		if rng.Float64() >= rate {
			out = append(out, c)
			continue
		}
		switch rng.IntN(3) {
		case 0:
			out = append(out, alphabet[rng.IntN(len(alphabet))])
		case 1:
			out = append(out, c, alphabet[rng.IntN(len(alphabet))])
		case 2:
			// drop
		}
	}
	return out
}
