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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// align.Option.
package config

// Config collects all configurable parameters for alignment functions in this module.
type Config struct {
	// ParallelDepth is the number of divide levels that solve both halves concurrently. Zero
	// means sequential.
	ParallelDepth int

	// ParallelMinSize is the smallest subproblem, as len(x)*len(y), that is still worth handing
	// to another goroutine.
	ParallelMinSize int

	// Width is the number of columns per block when rendering alignments. Zero means a single
	// block.
	Width int
}

// Default is the default configuration.
var Default = Config{
	ParallelDepth:   0,
	ParallelMinSize: 1 << 16,
	Width:           60,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Parallel Flag = 1 << iota
	Width
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Parallel:
		return "align.Parallel"
	case Width:
		return "align.Width"
	default:
		panic("never reached")
	}
}
