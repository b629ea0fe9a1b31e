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

// exec runs one of the alignment functions on an instance file and prints the result.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"znkr.io/align"
	"znkr.io/align/dna"
	"znkr.io/align/internal/impls"
)

type config struct {
	fn       string
	width    int
	data     string
	instance string
	list     bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.fn, "func", "align_linear", "function to run")
	flag.IntVar(&cfg.width, "width", 60, "number of columns per block of a printed alignment")
	flag.StringVar(&cfg.data, "data", os.Getenv("GENOME_DATA"), "directory to look up instance names that aren't paths")
	flag.BoolVar(&cfg.list, "list", false, "list the available functions and exit")
	flag.Parse()

	switch {
	case cfg.list && flag.CommandLine.NArg() == 0:
	case !cfg.list && flag.CommandLine.NArg() == 1:
		cfg.instance = flag.CommandLine.Arg(0)
	default:
		fmt.Fprintf(os.Stderr, "error: usage: exec [-func NAME] <instance> | exec -list\n")
		os.Exit(1)
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, w io.Writer) error {
	if cfg.list {
		for _, f := range impls.All() {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", f.Name, f.Doc); err != nil {
				return err
			}
		}
		return nil
	}

	f, err := impls.Lookup(cfg.fn)
	if err != nil {
		return err
	}

	path := cfg.instance
	if _, err := os.Stat(path); err != nil && cfg.data != "" && !filepath.IsAbs(path) {
		path = filepath.Join(cfg.data, path)
	}
	b, err := dna.ReadInstance(path)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, f.Run(b).Format(align.Width(cfg.width)))
	return err
}
