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

package aligned

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/align/internal/metric/metrictest"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder[byte](metrictest.Gap, 3, 2)
	b.Pair('A', 'A')
	b.Delete('C')
	b.Append([]byte("G-"), []byte("GT"))
	if got, want := b.Len(), 4; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	xs, ys := b.Build()
	if diff := cmp.Diff("ACG-", string(xs)); diff != "" {
		t.Errorf("Build() x row differs [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff("A-GT", string(ys)); diff != "" {
		t.Errorf("Build() y row differs [-want,+got]:\n%s", diff)
	}
}

func TestCost(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys string
		dna    int
		asym   int
	}{
		{name: "empty", xs: "", ys: "", dna: 0, asym: 0},
		{name: "matches", xs: "ACGT", ys: "ACGT", dna: 0, asym: 0},
		{name: "instance", xs: "TATATGAGTC", ys: "TAT-T---T-", dna: 10, asym: 15},
		{name: "insert", xs: "-", ys: "A", dna: 2, asym: 1},
		{name: "delete", xs: "A", ys: "-", dna: 2, asym: 3},
		{name: "gap-gap", xs: "-", ys: "-", dna: 4, asym: 4},
		{name: "mixed", xs: "A-G", ys: "GCT", dna: 3 + 2 + 4, asym: 5 + 1 + 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cost(metrictest.DNA{}, []byte(tt.xs), []byte(tt.ys)); got != tt.dna {
				t.Errorf("Cost(DNA, %q, %q) = %d, want %d", tt.xs, tt.ys, got, tt.dna)
			}
			if got := Cost(metrictest.Asym{}, []byte(tt.xs), []byte(tt.ys)); got != tt.asym {
				t.Errorf("Cost(Asym, %q, %q) = %d, want %d", tt.xs, tt.ys, got, tt.asym)
			}
		})
	}
}

func TestCostPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Cost(...) did not panic")
		}
	}()
	Cost(metrictest.DNA{}, []byte("AC"), []byte("A"))
}

func TestStrip(t *testing.T) {
	got := string(Strip(metrictest.Gap, []byte("-TA--T-")))
	if diff := cmp.Diff("TAT", got); diff != "" {
		t.Errorf("Strip(...) differs [-want,+got]:\n%s", diff)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		x, y       string
		xs, ys     string
		wantErrMsg string
	}{
		{
			name: "valid",
			x:    "TATATGAGTC",
			y:    "TATTT",
			xs:   "TATATGAGTC",
			ys:   "TAT-T---T-",
		},
		{
			name:       "length",
			x:          "A",
			y:          "A",
			xs:         "A",
			ys:         "A-",
			wantErrMsg: "alignment rows of different length: 1 != 2",
		},
		{
			name:       "gap-gap",
			x:          "A",
			y:          "C",
			xs:         "A-C",
			ys:         "--C",
			wantErrMsg: "column 1 aligns a gap with a gap",
		},
		{
			name:       "lost-element",
			x:          "AC",
			y:          "A",
			xs:         "A",
			ys:         "A",
			wantErrMsg: "x row: 1 elements after removing gaps, want 2",
		},
		{
			name:       "changed-element",
			x:          "A",
			y:          "C",
			xs:         "A",
			ys:         "G",
			wantErrMsg: "y row: element 0 differs after removing gaps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(metrictest.Gap, []byte(tt.x), []byte(tt.y), []byte(tt.xs), []byte(tt.ys))
			var got string
			if err != nil {
				got = err.Error()
			}
			if diff := cmp.Diff(tt.wantErrMsg, got); diff != "" {
				t.Errorf("Check(...) error differs [-want,+got]:\n%s", diff)
			}
		})
	}
}
