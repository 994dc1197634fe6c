package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Op classifies a line of a comparison.
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	}
	return " "
}

// Line is one line of a comparison with its operation.
type Line struct {
	Op   Op
	Text string
}

// Compare diffs before and after line by line. A trailing newline does not
// produce an extra empty line.
func Compare(before, after string) []Line {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var out []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = Delete
		case diffmatchpatch.DiffInsert:
			op = Insert
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			out = append(out, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return out
}

// Changed reports how many lines were removed and inserted.
func Changed(lines []Line) (removed, inserted int) {
	for _, l := range lines {
		switch l.Op {
		case Delete:
			removed++
		case Insert:
			inserted++
		}
	}
	return removed, inserted
}

// Unified renders a unified-style listing of before and after. Returns an
// empty string when the inputs are identical. Listings exceeding 10,000 lines
// are truncated with a marker.
func Unified(before, after, beforeLabel, afterLabel string) string {
	if before == after {
		return ""
	}
	lines := Compare(before, after)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)

	written := 2
	for _, l := range lines {
		if written >= maxDiffLines {
			buf.WriteString(truncateMessage + "\n")
			break
		}
		buf.WriteString(l.Op.prefix())
		buf.WriteString(l.Text)
		buf.WriteString("\n")
		written++
	}
	return buf.String()
}
