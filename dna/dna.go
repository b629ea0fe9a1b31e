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

// Package dna provides nucleotide sequences, the reference DNA cost model and readers for the
// instance file format.
package dna

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Base is a nucleotide or the gap marker.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Base -linecomment
type Base uint8

const (
	A   Base = iota // A
	C               // C
	G               // G
	T               // T
	Gap             // -
)

// purine reports whether b is A or G.
func (b Base) purine() bool { return b == A || b == G }

// ParseBase parses a single base. Lowercase letters are accepted.
func ParseBase(r rune) (Base, error) {
	switch unicode.ToUpper(r) {
	case 'A':
		return A, nil
	case 'C':
		return C, nil
	case 'G':
		return G, nil
	case 'T':
		return T, nil
	case '-':
		return Gap, nil
	default:
		return 0, fmt.Errorf("%w: invalid base %q", ErrFormat, r)
	}
}

// ParseSequence parses a sequence of bases. Whitespace between bases is ignored, so both "TATA"
// and "T A T A" are accepted. Gaps aren't allowed.
func ParseSequence(s string) ([]Base, error) {
	seq := make([]Base, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b, err := ParseBase(r)
		if err != nil {
			return nil, err
		}
		if b == Gap {
			return nil, fmt.Errorf("%w: gap in sequence", ErrFormat)
		}
		seq = append(seq, b)
	}
	return seq, nil
}

// Format returns the bases of s as a string without separators.
func Format(s []Base) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, b := range s {
		sb.WriteString(b.String())
	}
	return sb.String()
}

// Metric is the reference cost model for DNA: matches are free, transitions (A<->G, C<->T) cost
// 3, transversions cost 4, and insertions and deletions cost 2.
type Metric struct{}

const (
	transition   = 3
	transversion = 4
	indel        = 2
)

// Sub returns 0 for equal bases, the transition cost for two purines or two pyrimidines, and the
// transversion cost otherwise.
func (Metric) Sub(a, b Base) int {
	switch {
	case a == b:
		return 0
	case a.purine() == b.purine():
		return transition
	default:
		return transversion
	}
}

// Ins returns the cost of inserting a base.
func (Metric) Ins() int { return indel }

// Del returns the cost of deleting a base.
func (Metric) Del() int { return indel }

// Zero returns 0.
func (Metric) Zero() int { return 0 }

// Inf returns [math.MaxInt].
func (Metric) Inf() int { return math.MaxInt }

// Gap returns [Gap].
func (Metric) Gap() Base { return Gap }
