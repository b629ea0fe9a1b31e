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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/align/dna"
)

func TestRun(t *testing.T) {
	stats := filepath.Join(t.TempDir(), "stats.csv")
	cfg := &config{
		samples:  20,
		maxLen:   80,
		rate:     0.2,
		seed:     7,
		parallel: 4,
		stats:    stats,
	}
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run(...) failed: %v\n%s", err, out.String())
	}
	if out.Len() != 0 {
		t.Errorf("run(...) reported problems:\n%s", out.String())
	}

	data, err := os.ReadFile(stats)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if diff := cmp.Diff("sample,variant,N,M,D,duration_ns", lines[0]); diff != "" {
		t.Errorf("stats header differs [-want,+got]:\n%s", diff)
	}
	if got, want := len(lines)-1, cfg.samples*len(variants); got != want {
		t.Errorf("stats has %d rows, want %d", got, want)
	}
}

func TestPairIsDeterministic(t *testing.T) {
	cfg := &config{maxLen: 100, rate: 0.3, seed: 3}
	x1, y1 := pair(cfg, 5)
	x2, y2 := pair(cfg, 5)
	if diff := cmp.Diff(dna.Format(x1)+"/"+dna.Format(y1), dna.Format(x2)+"/"+dna.Format(y2)); diff != "" {
		t.Errorf("pair(5) differs between calls [-want,+got]:\n%s", diff)
	}
}
