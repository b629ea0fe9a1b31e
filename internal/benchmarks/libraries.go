// Package benchmarks compares the alignment algorithms with third party diff libraries.
//
// Diff libraries compute a shortest edit script of insertions and deletions. Its length is the
// edit distance under a cost model without substitutions, which is what all implementations here
// compute.
package benchmarks

import (
	"bytes"
	"math"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/align"
)

type Impl struct {
	Name string
	// Exact is set if the implementation always finds a shortest edit script.
	Exact    bool
	Distance func(x, y []byte) int
}

// Indel is a cost model where a substitution is never cheaper than a deletion followed by an
// insertion.
type Indel struct{}

func (Indel) Sub(a, b byte) int {
	if a == b {
		return 0
	}
	return 2
}
func (Indel) Ins() int  { return 1 }
func (Indel) Del() int  { return 1 }
func (Indel) Zero() int { return 0 }
func (Indel) Inf() int  { return math.MaxInt }
func (Indel) Gap() byte { return 0 }

var Impls = []Impl{
	{
		Name:  "align-linear",
		Exact: true,
		Distance: func(x, y []byte) int {
			return align.DistanceLinear(Indel{}, x, y)
		},
	},
	{
		Name:  "align-hirschberg",
		Exact: true,
		Distance: func(x, y []byte) int {
			return align.AlignmentCost(Indel{}, align.AlignLinear(Indel{}, x, y))
		},
	},
	{
		Name:  "align-full",
		Exact: true,
		Distance: func(x, y []byte) int {
			return align.DistanceFull(Indel{}, x, y)
		},
	},
	{
		Name:  "mb0",
		Exact: true,
		Distance: func(x, y []byte) int {
			d := 0
			for _, ch := range mb0.Diff(len(x), len(y), mb0bytes{x, y}) {
				d += ch.Del + ch.Ins
			}
			return d
		},
	},
	{
		Name:  "diffmatchpatch",
		Exact: true,
		Distance: func(x, y []byte) int {
			dmp := diffmatchpatch.New()
			dmp.DiffTimeout = 0
			d := 0
			for _, diff := range dmp.DiffMain(string(x), string(y), false) {
				if diff.Type != diffmatchpatch.DiffEqual {
					d += len(diff.Text)
				}
			}
			return d
		},
	},
	{
		Name:  "godebug",
		Exact: true,
		Distance: func(x, y []byte) int {
			return countEdits([]byte(godebug.Diff(lines(x), lines(y))))
		},
	},
	{
		Name: "go-internal",
		Distance: func(x, y []byte) int {
			return countEdits(gointernal.Diff("x", []byte(lines(x)), "y", []byte(lines(y))))
		},
	},
	{
		Name: "udiff",
		Distance: func(x, y []byte) int {
			return countEdits([]byte(udiff.Unified("x", "y", lines(x), lines(y))))
		},
	},
}

type mb0bytes struct {
	x, y []byte
}

func (d mb0bytes) Equal(i, j int) bool { return d.x[i] == d.y[j] }

// lines puts every byte of s on its own line, line based diff tools then compare bytes.
func lines(s []byte) string {
	var sb strings.Builder
	sb.Grow(2 * len(s))
	for _, c := range s {
		sb.WriteByte(c)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// countEdits counts the inserted and deleted lines in a line based diff.
func countEdits(out []byte) int {
	edits := 0
	for _, line := range bytes.Split(out, []byte("\n")) {
		if bytes.HasPrefix(line, []byte("--- ")) || bytes.HasPrefix(line, []byte("+++ ")) {
			continue
		}
		if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) {
			edits++
		}
	}
	return edits
}
