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

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"znkr.io/align/internal/config"
)

// Render formats a as blocks of three lines: the X row, a marker line and the Y row. The marker
// is '|' for matches, '.' for substitutions and blank for gaps. Blocks have at most [Width]
// columns and are separated by an empty line.
//
// Elements are formatted with fmt.Sprint, except for bytes and runes which are written as
// characters. If any element is wider than one character, columns are separated by a space.
//
// The following options are supported: [align.Width]
func Render[E comparable, C Cost](m Metric[E, C], a Alignment[E], opts ...Option) string {
	cfg := config.FromOptions(opts, config.Width)
	ops := a.Ops(m.Gap())

	xcells := make([]string, len(ops))
	ycells := make([]string, len(ops))
	sep := ""
	for i := range ops {
		xcells[i], ycells[i] = format(a.X[i]), format(a.Y[i])
		if utf8.RuneCountInString(xcells[i]) > 1 || utf8.RuneCountInString(ycells[i]) > 1 {
			sep = " "
		}
	}

	width := cfg.Width
	if width <= 0 {
		width = max(1, len(ops))
	}

	var sb strings.Builder
	for start := 0; start < len(ops); start += width {
		if start > 0 {
			sb.WriteByte('\n')
		}
		end := min(start+width, len(ops))
		var xl, ml, yl strings.Builder
		for i := start; i < end; i++ {
			if i > start {
				xl.WriteString(sep)
				ml.WriteString(sep)
				yl.WriteString(sep)
			}
			w := max(utf8.RuneCountInString(xcells[i]), utf8.RuneCountInString(ycells[i]))
			xl.WriteString(pad(xcells[i], w))
			yl.WriteString(pad(ycells[i], w))
			ml.WriteString(pad(marker(ops[i]), w))
		}
		for _, l := range []*strings.Builder{&xl, &ml, &yl} {
			sb.WriteString(strings.TrimRight(l.String(), " "))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func marker(op Op) string {
	switch op {
	case Match:
		return "|"
	case Substitute:
		return "."
	case Delete, Insert:
		return " "
	default:
		panic("never reached")
	}
}

func pad(s string, w int) string {
	if n := utf8.RuneCountInString(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func format[E any](e E) string {
	switch v := any(e).(type) {
	case byte:
		return string(rune(v))
	case rune:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
