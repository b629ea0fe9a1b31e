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

// bench measures how large an instance each alignment function can handle within a time limit.
//
// Instances are read from the data directory in increasing size. Every function runs on one
// instance after the other until a single run takes longer than the limit. The largest size that
// completed in time is reported as the limit of the function. With -plot, the measurements of a
// single function are printed as (size,seconds) points instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	"znkr.io/align/dna"
	"znkr.io/align/internal/impls"
)

type config struct {
	data  string
	limit time.Duration
	funcs string
	plot  string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.data, "data", os.Getenv("GENOME_DATA"), "directory containing the instance files")
	flag.DurationVar(&cfg.limit, "limit", 60*time.Second, "stop once a single run takes longer than this")
	flag.StringVar(&cfg.funcs, "funcs", "dist_linear,dist_full,dist_naive", "comma separated list of functions to measure")
	flag.StringVar(&cfg.plot, "plot", "", "print the measurements of this function as plot points")
	flag.Parse()

	if cfg.data == "" {
		fmt.Fprintf(os.Stderr, "error: no data directory, use -data or set GENOME_DATA\n")
		os.Exit(1)
	}

	ctx := ctxlog.NewJSONLogger(context.Background(), os.Stderr, nil)
	if err := run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, w io.Writer) error {
	insts, err := dna.LoadInstances(cfg.data, dna.Sizes)
	if err != nil {
		ctxlog.Logger(ctx).Warn("some instances are unavailable", "error", err)
	}
	if len(insts) == 0 {
		return fmt.Errorf("no instances in %s", cfg.data)
	}
	// Sizes are increasing, a gap in the sequence ends it.
	for i, inst := range insts {
		if inst.Size != dna.Sizes[i] {
			insts = insts[:i]
			break
		}
	}

	if cfg.plot != "" {
		f, err := impls.Lookup(cfg.plot)
		if err != nil {
			return err
		}
		var points []string
		for _, m := range measure(ctx, f, insts, cfg.limit) {
			points = append(points, fmt.Sprintf("(%d,%.6f)", m.size, m.elapsed.Seconds()))
		}
		_, err = fmt.Fprintln(w, strings.Join(points, ""))
		return err
	}

	for name := range strings.SplitSeq(cfg.funcs, ",") {
		f, err := impls.Lookup(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		limit := 0
		for _, m := range measure(ctx, f, insts, cfg.limit) {
			if m.elapsed < cfg.limit {
				limit = m.size
			}
		}
		if _, err := fmt.Fprintf(w, "the limit of %s is %d\n", f.Name, limit); err != nil {
			return err
		}
	}
	return nil
}

type measurement struct {
	size    int
	elapsed time.Duration
}

// measure runs f on the instances in order until a run exceeds limit or the context is done. The
// run that exceeded the limit is included.
func measure(ctx context.Context, f impls.Func, insts []dna.Instance, limit time.Duration) []measurement {
	var out []measurement
	for _, inst := range insts {
		if ctx.Err() != nil {
			break
		}
		start := time.Now()
		f.Run(inst.Block)
		elapsed := time.Since(start)
		ctxlog.Logger(ctx).Info("completed", "func", f.Name, "size", inst.Size, "seconds", elapsed.Seconds())
		out = append(out, measurement{inst.Size, elapsed})
		if elapsed >= limit {
			break
		}
	}
	return out
}
