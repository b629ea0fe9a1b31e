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

import "znkr.io/align/internal/config"

// Option configures the behavior of alignment functions.
type Option = config.Option

// Parallel solves the two halves of a split concurrently for the first depth levels of the divide
// and conquer alignment in [AlignLinear]. Small subproblems are always solved sequentially. The
// result doesn't depend on this option. The default is 0, which aligns sequentially.
func Parallel(depth int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ParallelDepth = max(0, depth)
		return config.Parallel
	}
}

// Width sets the number of columns per block in [Render]. A width of 0 or less renders the
// alignment as a single block. The default is 60.
func Width(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Width = max(0, n)
		return config.Width
	}
}
