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

// eval validates the alignment functions on random pairs of related DNA sequences: every
// alignment must reproduce both inputs after removing gaps and its cost must equal the distance.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"znkr.io/align"
	"znkr.io/align/dna"
)

type config struct {
	samples  int
	maxLen   int
	rate     float64
	seed     uint64
	parallel int
	stats    string
	progress bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.samples, "samples", 1000, "number of sequence pairs to evaluate")
	flag.IntVar(&cfg.maxLen, "maxlen", 2000, "maximum length of a sequence")
	flag.Float64Var(&cfg.rate, "rate", 0.1, "mutation rate between the two sequences of a pair")
	flag.Uint64Var(&cfg.seed, "seed", 1, "seed for the random sequences")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.Parse()
	cfg.progress = true

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	if err := run(&cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

type note struct {
	prefix string
	msg    string
}

type result struct {
	sample   int
	variant  string
	N, M     int
	D        int
	duration time.Duration
}

var variants = []struct {
	name  string
	align func(x, y []dna.Base) align.Alignment[dna.Base]
}{
	{"full", func(x, y []dna.Base) align.Alignment[dna.Base] { return align.AlignFull(dna.Metric{}, x, y) }},
	{"linear", func(x, y []dna.Base) align.Alignment[dna.Base] { return align.AlignLinear(dna.Metric{}, x, y) }},
	{"parallel", func(x, y []dna.Base) align.Alignment[dna.Base] {
		return align.AlignLinear(dna.Metric{}, x, y, align.Parallel(3))
	}},
}

// pair returns the sequences of a sample. Every sample has its own random source, so the pairs
// don't depend on the order of evaluation.
func pair(cfg *config, sample int) (x, y []dna.Base) {
	rng := rand.New(rand.NewPCG(cfg.seed, uint64(sample)))
	bases := []dna.Base{dna.A, dna.C, dna.G, dna.T}
	x = make([]dna.Base, rng.IntN(cfg.maxLen+1))
	for i := range x {
		x[i] = bases[rng.IntN(len(bases))]
	}
	y = make([]dna.Base, 0, len(x))
	for _, b := range x {
		if rng.Float64() >= cfg.rate {
			y = append(y, b)
			continue
		}
		switch rng.IntN(3) {
		case 0:
			y = append(y, bases[rng.IntN(len(bases))])
		case 1:
			y = append(y, b, bases[rng.IntN(len(bases))])
		}
	}
	return x, y
}

func run(cfg *config, out io.Writer) error {
	start := time.Now()
	notes := make(chan note)
	done := make(chan struct{})
	var processed, failures atomic.Int64

	var stats *os.File
	if cfg.stats != "" {
		var err error
		stats, err = os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
		defer stats.Close()
	}

	// Evaluate samples.
	var results chan result
	if cfg.stats != "" {
		results = make(chan result)
	}
	samples := make(chan int)
	var g errgroup.Group
	for range max(1, cfg.parallel) {
		g.Go(func() error {
			for sample := range samples {
				x, y := pair(cfg, sample)
				want := align.DistanceLinear(dna.Metric{}, x, y)
				for _, v := range variants {
					t0 := time.Now()
					a := v.align(x, y)
					duration := time.Since(t0)
					prefix := fmt.Sprintf("sample %d (%s)", sample, v.name)
					if err := a.Check(dna.Gap, x, y); err != nil {
						failures.Add(1)
						notes <- note{prefix: prefix, msg: fmt.Sprintf("invalid alignment: %v", err)}
					}
					if got := align.AlignmentCost(dna.Metric{}, a); got != want {
						failures.Add(1)
						notes <- note{prefix: prefix, msg: fmt.Sprintf("alignment costs %d, want %d", got, want)}
					}
					if results != nil {
						results <- result{
							sample:   sample,
							variant:  v.name,
							N:        len(x),
							M:        len(y),
							D:        want,
							duration: duration,
						}
					}
				}
				processed.Add(1)
			}
			return nil
		})
	}

	// Render progress
	var ioWG sync.WaitGroup
	render := func() {
		if !cfg.progress {
			return
		}
		const width = 60
		processed := processed.Load()
		progress := float64(processed) / float64(max(1, cfg.samples))
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		var perSec int
		if processed > 0 {
			perSec = int((time.Duration(processed) * time.Second) / time.Since(start))
		}
		fmt.Fprintf(out, "\r[%-*s] % 3.1f%% (%d evals/s) ", width, bar, 100*progress, perSec)
	}
	ioWG.Add(1)
	go func() {
		defer ioWG.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case note := <-notes:
				fmt.Fprintf(out, "\r%s: %s\n", note.prefix, note.msg)
				render()

			case <-ticker.C:
				render()

			case <-done:
				render()
				if cfg.progress {
					fmt.Fprintf(out, "\n")
				}
				return
			}
		}
	}()
	var statsErr error
	if cfg.stats != "" {
		ioWG.Add(1)
		go func() {
			defer ioWG.Done()
			w := bufio.NewWriter(stats)
			w.WriteString("sample,variant,N,M,D,duration_ns\n")
			for result := range results {
				_, err := fmt.Fprintf(w, "%d,%s,%d,%d,%d,%d\n", result.sample, result.variant, result.N, result.M, result.D, result.duration.Nanoseconds())
				if err != nil && statsErr == nil {
					statsErr = fmt.Errorf("failed to write stats: %v", err)
				}
			}
			if err := w.Flush(); err != nil && statsErr == nil {
				statsErr = fmt.Errorf("failed to flush stats: %v", err)
			}
		}()
	}

	for i := range cfg.samples {
		samples <- i
	}

	// Shutdown
	close(samples)
	g.Wait()
	close(done)
	if results != nil {
		close(results)
	}
	ioWG.Wait()

	if statsErr != nil {
		return statsErr
	}
	if n := failures.Load(); n > 0 {
		return fmt.Errorf("%d failed evaluations", n)
	}
	return nil
}
