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

// Package align computes edit distances and optimal alignments of two sequences under a pluggable
// cost model.
//
// A cost model is any type implementing [Metric]: it defines the cost of substituting one element
// with another, the fixed costs of insertions and deletions, and a gap element that marks missing
// elements in an alignment. [UnitCost] is a ready to use model that charges 1 for every edit.
//
// There are three families of functions:
//
//   - [DistanceNaive], [DistanceFull] and [DistanceLinear] compute the edit distance. They always
//     agree. [Distance] is the recommended default.
//   - [AlignFull] and [AlignLinear] compute an optimal [Alignment]. Both are optimal, but when
//     several optimal alignments exist, they may return different ones. [Align] is the recommended
//     default.
//   - [AlignmentCost] computes the cost of any alignment and is used to validate results.
//
// Performance: DistanceNaive takes exponential time and is only useful for tiny inputs. The full
// table functions take O(NM) time and O(NM) space where N = len(x) and M = len(y). The linear
// functions take O(NM) time and O(N+M) space. AlignLinear does about twice the work of AlignFull,
// but it's the only option for long sequences. Use [Parallel] to spread it across goroutines.
//
// For DNA sequences and the instance file format, see [znkr.io/align/dna].
//
// [znkr.io/align/dna]: https://pkg.go.dev/znkr.io/align/dna
package align
