// distance prints the edit distance every benchmarked implementation computes for sequence pairs,
// side by side, together with how far each one is from the shortest edit script.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/tools/txtar"
	"znkr.io/align/internal/benchmarks"
)

type config struct {
	libs  string
	x, y  string
	files []string
	time  bool
}

type pair struct {
	name string
	x, y []byte
}

func main() {
	var cfg config
	flag.StringVar(&cfg.libs, "libs", "", "comma separated implementations to compare (default all)")
	flag.StringVar(&cfg.x, "x", "", "first sequence, used instead of txtar files")
	flag.StringVar(&cfg.y, "y", "", "second sequence, used instead of txtar files")
	flag.BoolVar(&cfg.time, "time", false, "also print the time each implementation takes")
	flag.Parse()
	cfg.files = flag.CommandLine.Args()

	if (cfg.x != "" || cfg.y != "") == (len(cfg.files) > 0) {
		fmt.Fprintf(os.Stderr, "error: usage: distance [-x <seq> -y <seq> | <file.test>...]\n")
		os.Exit(1)
	}

	if err := run(&cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func selectImpls(libs string) ([]benchmarks.Impl, error) {
	if libs == "" {
		return benchmarks.Impls, nil
	}
	var impls []benchmarks.Impl
	for name := range strings.SplitSeq(libs, ",") {
		i := slices.IndexFunc(benchmarks.Impls, func(impl benchmarks.Impl) bool { return impl.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("lib not found %q", name)
		}
		impls = append(impls, benchmarks.Impls[i])
	}
	return impls, nil
}

func readPairs(cfg *config) ([]pair, error) {
	if len(cfg.files) == 0 {
		return []pair{{name: "args", x: []byte(cfg.x), y: []byte(cfg.y)}}, nil
	}
	var pairs []pair
	for _, filename := range cfg.files {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			return nil, err
		}
		p := pair{name: filename}
		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				p.x = bytes.TrimSpace(f.Data)
			case "y":
				p.y = bytes.TrimSpace(f.Data)
			}
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func run(cfg *config, out io.Writer) error {
	impls, err := selectImpls(cfg.libs)
	if err != nil {
		return err
	}
	pairs, err := readPairs(cfg)
	if err != nil {
		return err
	}

	for i, p := range pairs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (%d x %d)\n", p.name, len(p.x), len(p.y))
		opt := benchmarks.Impls[0].Distance(p.x, p.y)
		tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
		header := "lib\tedits\texcess"
		if cfg.time {
			header += "\ttime"
		}
		fmt.Fprintln(tw, header)
		for _, impl := range impls {
			t0 := time.Now()
			d := impl.Distance(p.x, p.y)
			elapsed := time.Since(t0)
			fmt.Fprintf(tw, "%s\t%d\t%d", impl.Name, d, d-opt)
			if cfg.time {
				fmt.Fprintf(tw, "\t%v", elapsed)
			}
			fmt.Fprintln(tw)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
