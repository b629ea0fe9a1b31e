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

package align_test

import (
	"fmt"

	"znkr.io/align"
	"znkr.io/align/dna"
)

func ExampleDistance() {
	m := align.NewUnitCost('-')
	fmt.Println(align.Distance(m, []rune("kitten"), []rune("sitting")))
	// Output:
	// 3
}

// Align two DNA sequences using the reference cost model.
func ExampleAlign() {
	x, _ := dna.ParseSequence("TATATGAGTC")
	y, _ := dna.ParseSequence("TATTT")
	m := dna.Metric{}
	a := align.Align(m, x, y)
	fmt.Println(align.AlignmentCost(m, a))
	fmt.Print(align.Render(m, a))
	// Output:
	// 10
	// TATATGAGTC
	// ||| |   |
	// TAT-T---T-
}

func ExampleAlignment_Ops() {
	m := align.NewUnitCost('-')
	a := align.AlignFull(m, []rune("kitten"), []rune("sitting"))
	for i, op := range a.Ops(m.Gap()) {
		fmt.Printf("%c %c %v\n", a.X[i], a.Y[i], op)
	}
	// Output:
	// k s Substitute
	// i i Match
	// t t Match
	// t t Match
	// e i Substitute
	// n n Match
	// - g Insert
}

func ExampleRender() {
	m := align.NewUnitCost('-')
	a := align.AlignLinear(m, []rune("intention"), []rune("execution"))
	fmt.Print(align.Render(m, a, align.Width(5)))
	// Output:
	// inten
	// .....
	// execu
	//
	// tion
	// ||||
	// tion
}

// Compute the distance and the alignment from the same table.
func ExampleSolve() {
	x, _ := dna.ParseSequence("GATTACA")
	y, _ := dna.ParseSequence("GCATGCT")
	d, a := align.Solve(dna.Metric{}, x, y)
	fmt.Println(d)
	fmt.Println(dna.Format(a.X))
	fmt.Println(dna.Format(a.Y))
	// Output:
	// 11
	// G-ATTACA
	// GCA-TGCT
}
