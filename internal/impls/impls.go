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

// Package impls is the registry of named alignment functions over DNA instances shared by the
// command line tools.
package impls

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"znkr.io/align"
	"znkr.io/align/dna"
)

// Result is the outcome of running a function on an instance. Distance functions only set
// Distance, alignment functions set both.
type Result struct {
	Distance  int
	Alignment *align.Alignment[dna.Base]
}

// Format writes the result in the format of the exec tool.
func (r Result) Format(opts ...align.Option) string {
	var sb strings.Builder
	if r.Alignment != nil {
		sb.WriteString("alignment:\n")
		sb.WriteString(align.Render(dna.Metric{}, *r.Alignment, opts...))
		fmt.Fprintf(&sb, "cost: %d\n", r.Distance)
	} else {
		fmt.Fprintf(&sb, "distance: %d\n", r.Distance)
	}
	return sb.String()
}

// Func is a named function.
type Func struct {
	Name string
	Doc  string
	Run  func(b dna.Block) Result
}

var funcs = []Func{
	{
		Name: "dist_naive",
		Doc:  "exhaustive recursion, exponential time",
		Run: func(b dna.Block) Result {
			return Result{Distance: align.DistanceNaive(dna.Metric{}, b.X, b.Y)}
		},
	},
	{
		Name: "dist_full",
		Doc:  "complete table, quadratic memory",
		Run: func(b dna.Block) Result {
			return Result{Distance: align.DistanceFull(dna.Metric{}, b.X, b.Y)}
		},
	},
	{
		Name: "dist_linear",
		Doc:  "two rolling rows, linear memory",
		Run: func(b dna.Block) Result {
			return Result{Distance: align.DistanceLinear(dna.Metric{}, b.X, b.Y)}
		},
	},
	{
		Name: "align_full",
		Doc:  "backtrace through a complete table",
		Run: func(b dna.Block) Result {
			return alignment(align.AlignFull(dna.Metric{}, b.X, b.Y))
		},
	},
	{
		Name: "align_linear",
		Doc:  "divide and conquer, linear memory",
		Run: func(b dna.Block) Result {
			return alignment(align.AlignLinear(dna.Metric{}, b.X, b.Y))
		},
	},
	{
		Name: "align_parallel",
		Doc:  "divide and conquer on several goroutines",
		Run: func(b dna.Block) Result {
			return alignment(align.AlignLinear(dna.Metric{}, b.X, b.Y, align.Parallel(4)))
		},
	},
	{
		Name: "solve",
		Doc:  "distance and alignment from one complete table",
		Run: func(b dna.Block) Result {
			d, a := align.Solve(dna.Metric{}, b.X, b.Y)
			return Result{Distance: d, Alignment: &a}
		},
	},
}

func alignment(a align.Alignment[dna.Base]) Result {
	return Result{Distance: align.AlignmentCost(dna.Metric{}, a), Alignment: &a}
}

// All returns all functions.
func All() []Func { return slices.Clone(funcs) }

// Lookup returns the function with the given name.
func Lookup(name string) (Func, error) {
	for _, f := range funcs {
		if f.Name == name {
			return f, nil
		}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "function %q is not supported, select one of:", name)
	for _, f := range funcs {
		fmt.Fprintf(&sb, "\n  - %s: %s", f.Name, f.Doc)
	}
	return Func{}, errors.New(sb.String())
}
