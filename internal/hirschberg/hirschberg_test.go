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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/align/internal/aligned"
	"znkr.io/align/internal/dp"
	"znkr.io/align/internal/metric"
	"znkr.io/align/internal/metric/metrictest"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		x, y string
		dna  int
		unit int
		asym int
	}{
		{x: "A", y: "A", dna: 0, unit: 0, asym: 0},
		{x: "ACG", y: "", dna: 0, unit: 0, asym: 0},
		{x: "ACGT", y: "ACGT", dna: 2, unit: 2, asym: 2},
		{x: "AGT", y: "GAT", dna: 0, unit: 1, asym: 0},
		{x: "TATATGAGTC", y: "TATTT", dna: 4, unit: 4, asym: 4},
		{x: "ACGTACGT", y: "TGCATGCA", dna: 3, unit: 3, asym: 1},
		{x: "GATTACA", y: "GCATGCT", dna: 3, unit: 3, asym: 3},
		{x: "A", y: "TTTT", dna: 3, unit: 3, asym: 0},
	}

	for _, tt := range tests {
		t.Run(tt.x+"-"+tt.y, func(t *testing.T) {
			x, y := []byte(tt.x), []byte(tt.y)
			if got := New(metrictest.DNA{}).Split(x, y); got != tt.dna {
				t.Errorf("Split(DNA, %q, %q) = %d, want %d", tt.x, tt.y, got, tt.dna)
			}
			if got := New(metrictest.Unit{}).Split(x, y); got != tt.unit {
				t.Errorf("Split(Unit, %q, %q) = %d, want %d", tt.x, tt.y, got, tt.unit)
			}
			if got := New(metrictest.Asym{}).Split(x, y); got != tt.asym {
				t.Errorf("Split(Asym, %q, %q) = %d, want %d", tt.x, tt.y, got, tt.asym)
			}
		})
	}
}

func TestSplitIsOptimal(t *testing.T) {
	rng := metrictest.Rand(t.Name())
	for range 200 {
		x := metrictest.Bases(rng, 1+rng.IntN(30))
		y := metrictest.Bases(rng, rng.IntN(30))
		for _, m := range []metric.Space[byte, int]{metrictest.DNA{}, metrictest.Unit{}, metrictest.Asym{}} {
			i, j := len(x)/2, New(m).Split(x, y)
			if j < 0 || j > len(y) {
				t.Fatalf("%T: Split(%q, %q) = %d, out of range [0, %d]", m, x, y, j, len(y))
			}
			want := dp.Distance(m, x, y, nil)
			got := dp.Distance(m, x[:i], y[:j], nil) + dp.Distance(m, x[i:], y[j:], nil)
			if got != want {
				t.Errorf("%T: splitting %q, %q at (%d, %d) costs %d, want %d", m, x, y, i, j, got, want)
			}
		}
	}
}

func TestAlign(t *testing.T) {
	tests := []struct {
		name   string
		x, y   string
		xs, ys string
	}{
		{name: "empty", x: "", y: "", xs: "", ys: ""},
		{name: "x-empty", x: "", y: "ACG", xs: "---", ys: "ACG"},
		{name: "y-empty", x: "ACG", y: "", xs: "ACG", ys: "---"},
		{name: "identical", x: "ACGT", y: "ACGT", xs: "ACGT", ys: "ACGT"},
		{name: "swap", x: "AGT", y: "GAT", xs: "AG-T", ys: "-GAT"},
		{name: "instance", x: "TATATGAGTC", y: "TATTT", xs: "TATATGAGTC", ys: "TAT-T---T-"},
		{name: "reversed", x: "ACGTACGT", y: "TGCATGCA", xs: "ACGTACGT-", ys: "-TGCATGCA"},
		{name: "gattaca", x: "GATTACA", y: "GCATGCT", xs: "G-ATTACA", ys: "GCA-TGCT"},
		{name: "many-vs-one", x: "AAAA", y: "A", xs: "AAAA", ys: "---A"},
		{name: "one-vs-many", x: "A", y: "TTTT", xs: "A---", ys: "TTTT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.xs + "\n" + tt.ys
			xs, ys := New(metrictest.DNA{}).Align([]byte(tt.x), []byte(tt.y))
			if diff := cmp.Diff(want, string(xs)+"\n"+string(ys)); diff != "" {
				t.Errorf("Align(...) differs [-want,+got]:\n%s", diff)
			}
			xs, ys = AlignParallel(metrictest.DNA{}, []byte(tt.x), []byte(tt.y), 4, 0)
			if diff := cmp.Diff(want, string(xs)+"\n"+string(ys)); diff != "" {
				t.Errorf("AlignParallel(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestSingle(t *testing.T) {
	tests := []struct {
		name   string
		m      metric.Space[byte, int]
		e      byte
		y      string
		xs, ys string
	}{
		{name: "match", m: metrictest.DNA{}, e: 'G', y: "TTGTG", xs: "--G--", ys: "TTGTG"},
		{name: "transition", m: metrictest.DNA{}, e: 'A', y: "CGT", xs: "-A-", ys: "CGT"},
		{name: "first-minimum", m: metrictest.DNA{}, e: 'A', y: "CC", xs: "A-", ys: "CC"},
		{name: "gaps-cheaper", m: metrictest.Asym{}, e: 'A', y: "CC", xs: "A--", ys: "-CC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := aligned.NewBuilder[byte](metrictest.Gap, 1, len(tt.y))
			New(tt.m).single(b, tt.e, []byte(tt.y))
			xs, ys := b.Build()
			if diff := cmp.Diff(tt.xs+"\n"+tt.ys, string(xs)+"\n"+string(ys)); diff != "" {
				t.Errorf("single(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestAgainstFullTable(t *testing.T) {
	rng := metrictest.Rand(t.Name())
	for i := range 200 {
		x := metrictest.Bases(rng, rng.IntN(40))
		var y []byte
		if i%2 == 0 {
			y = metrictest.Mutate(rng, x, 0.3)
		} else {
			y = metrictest.Bases(rng, rng.IntN(40))
		}
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			check(t, metrictest.DNA{}, x, y)
			check(t, metrictest.Unit{}, x, y)
			check(t, metrictest.Asym{}, x, y)
			check(t, metrictest.Float{}, x, y)
		})
	}
}

func check[C metric.Cost](t *testing.T, m metric.Space[byte, C], x, y []byte) {
	t.Helper()
	want := dp.Distance(m, x, y, nil)
	xs, ys := New(m).Align(x, y)
	if err := aligned.Check(m.Gap(), x, y, xs, ys); err != nil {
		t.Errorf("%T: Align(%q, %q) is invalid: %v", m, x, y, err)
	}
	if got := aligned.Cost(m, xs, ys); got != want {
		t.Errorf("%T: Cost(Align(%q, %q)) = %v, want %v", m, x, y, got, want)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	rng := metrictest.Rand(t.Name())
	x := metrictest.Bases(rng, 1500)
	y := metrictest.Mutate(rng, x, 0.2)
	m := metrictest.DNA{}
	wantX, wantY := New(m).Align(x, y)
	for _, depth := range []int{0, 1, 3, 8} {
		for _, minSize := range []int{0, 1 << 10, 1 << 30} {
			gotX, gotY := AlignParallel(m, x, y, depth, minSize)
			if diff := cmp.Diff(string(wantX)+"\n"+string(wantY), string(gotX)+"\n"+string(gotY)); diff != "" {
				t.Errorf("AlignParallel(depth=%d, minSize=%d) differs from Align [-want,+got]:\n%s", depth, minSize, diff)
			}
		}
	}
}

func TestAlignReusesRows(t *testing.T) {
	rng := metrictest.Rand(t.Name())
	x := metrictest.Bases(rng, 300)
	y := metrictest.Mutate(rng, x, 0.2)
	a := New[byte, int](metrictest.DNA{})
	a.Align(x, y) // grow rows
	allocs := testing.AllocsPerRun(5, func() {
		a.Split(x, y)
	})
	if allocs != 0 {
		t.Errorf("Split(...) allocated %v times, want 0", allocs)
	}
}

func FuzzAlign(f *testing.F) {
	f.Add([]byte("TATATGAGTC"), []byte("TATTT"))
	f.Add([]byte("A"), []byte("TTTT"))
	f.Fuzz(func(t *testing.T, x, y []byte) {
		if len(x) > 300 || len(y) > 300 {
			t.Skip()
		}
		m := metrictest.Unit{}
		for _, s := range [][]byte{x, y} {
			for _, c := range s {
				if c == m.Gap() {
					t.Skip() // gap symbols in the input can't be told apart from gaps
				}
			}
		}
		xs, ys := New(m).Align(x, y)
		if err := aligned.Check(m.Gap(), x, y, xs, ys); err != nil {
			t.Errorf("Align(...) is invalid: %v", err)
		}
		if got, want := aligned.Cost(m, xs, ys), dp.Distance(m, x, y, nil); got != want {
			t.Errorf("Cost(Align(...)) = %d, want %d", got, want)
		}
	})
}

func BenchmarkAlign(b *testing.B) {
	for _, n := range []int{1000, 10000} {
		rng := metrictest.Rand(fmt.Sprint(n))
		x := metrictest.Bases(rng, n)
		y := metrictest.Mutate(rng, x, 0.1)
		b.Run(fmt.Sprintf("sequential/%d", n), func(b *testing.B) {
			for b.Loop() {
				New(metrictest.DNA{}).Align(x, y)
			}
		})
		b.Run(fmt.Sprintf("parallel/%d", n), func(b *testing.B) {
			for b.Loop() {
				AlignParallel(metrictest.DNA{}, x, y, 4, 1<<16)
			}
		})
	}
}
