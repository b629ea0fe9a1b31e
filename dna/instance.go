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

package dna

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"cloudeng.io/errors"
)

// ErrFormat is returned for malformed sequences and instance files.
var ErrFormat = errors.New("invalid format")

// Block is a pair of sequences to be aligned.
type Block struct {
	X, Y []Base
}

// ParseBlock parses an instance. An instance consists of the lengths n and m of both sequences,
// followed by the n bases of the first sequence and then the m bases of the second sequence. All
// items are separated by whitespace. Bases may also be written without separators.
func ParseBlock(data []byte) (Block, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(nil, len(data)+1)
	sc.Split(bufio.ScanWords)

	var lens [2]int
	for i := range lens {
		if !sc.Scan() {
			return Block{}, fmt.Errorf("%w: missing sequence length", ErrFormat)
		}
		n, err := strconv.Atoi(sc.Text())
		if err != nil || n < 0 {
			return Block{}, fmt.Errorf("%w: invalid sequence length %q", ErrFormat, sc.Text())
		}
		if n > len(data) {
			return Block{}, fmt.Errorf("%w: sequence length %d exceeds input size %d", ErrFormat, n, len(data))
		}
		lens[i] = n
	}

	bases := make([]Base, 0, min(lens[0]+lens[1], len(data)))
	for sc.Scan() {
		seq, err := ParseSequence(sc.Text())
		if err != nil {
			return Block{}, err
		}
		bases = append(bases, seq...)
	}
	if err := sc.Err(); err != nil {
		return Block{}, err
	}
	if len(bases) != lens[0]+lens[1] {
		return Block{}, fmt.Errorf("%w: got %d bases, want %d+%d", ErrFormat, len(bases), lens[0], lens[1])
	}
	return Block{X: bases[:lens[0]:lens[0]], Y: bases[lens[0]:]}, nil
}

// Suffixes are the instance name suffixes tried by [FindInstance], in order.
var Suffixes = []int{7, 8, 13, 45, 32, 56, 89, 76, 77, 3, 20, 6}

// Sizes are the instance sizes of the benchmark data set, in increasing order.
var Sizes = []int{10, 12, 13, 14, 20, 50, 100, 500, 1000, 2000, 3000, 5000, 8000, 10000, 15000, 20000, 50000, 100000}

// InstanceName returns the file name of an instance.
func InstanceName(size, suffix int) string {
	return fmt.Sprintf("Inst_%07d_%d.adn", size, suffix)
}

// ReadInstance reads and parses an instance file.
func ReadInstance(path string) (Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Block{}, err
	}
	b, err := ParseBlock(data)
	if err != nil {
		return Block{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// FindInstance returns the path of the first instance of the given size in dir, trying the names
// with [Suffixes] in order.
func FindInstance(dir string, size int) (string, error) {
	for _, suffix := range Suffixes {
		path := filepath.Join(dir, InstanceName(size, suffix))
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("no instance of size %d in %s: %w", size, dir, fs.ErrNotExist)
}

// Instance is a loaded instance file.
type Instance struct {
	Size  int
	Path  string
	Block Block
}

// LoadInstances finds and reads one instance for each size. Instances that can't be found or read
// are skipped, the returned error collects all failures. The instances that were loaded are
// returned in the order of sizes in any case.
func LoadInstances(dir string, sizes []int) ([]Instance, error) {
	var errs errors.M
	insts := make([]Instance, 0, len(sizes))
	for _, size := range sizes {
		path, err := FindInstance(dir, size)
		if err != nil {
			errs.Append(err)
			continue
		}
		b, err := ReadInstance(path)
		if err != nil {
			errs.Append(err)
			continue
		}
		insts = append(insts, Instance{Size: size, Path: path, Block: b})
	}
	return insts, errs.Err()
}
