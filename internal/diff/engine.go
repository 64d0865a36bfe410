package diff

import (
	"dirdiff/internal/data"
	"strings"
)

// LineDiffEngine computes a minimal line-level edit script between two file
// contents and groups it into context-padded hunks.
type LineDiffEngine struct {
	contextLines int
	maxLines     int
}

// LineDiff is the outcome of diffing one file pair. LinesAdded and
// LinesRemoved are edit script totals and independent of hunk grouping.
// Truncated is set when one side exceeded the engine's line ceiling, in which
// case no hunks are produced.
type LineDiff struct {
	Hunks        []data.DiffHunk
	LinesAdded   int
	LinesRemoved int
	Truncated    bool
}

// NewLineDiffEngine creates an engine that pads every hunk with up to
// contextLines unchanged lines on each side. Files with more than maxLines
// lines on either side are not diffed (maxLines <= 0 disables the ceiling).
func NewLineDiffEngine(contextLines int, maxLines int) *LineDiffEngine {
	if contextLines < 0 {
		contextLines = 0
	}
	return &LineDiffEngine{
		contextLines: contextLines,
		maxLines:     maxLines,
	}
}

// Compare diffs two file contents line by line.
func (engine *LineDiffEngine) Compare(original []byte, modified []byte) LineDiff {
	originalLines := SplitLines(original)
	modifiedLines := SplitLines(modified)

	if engine.maxLines > 0 &&
		(len(originalLines) > engine.maxLines || len(modifiedLines) > engine.maxLines) {
		return LineDiff{Truncated: true}
	}

	ops := myersOps(originalLines, modifiedLines)

	result := LineDiff{
		Hunks: engine.buildHunks(ops),
	}
	for _, op := range ops {
		switch op.kind {
		case opInsert:
			result.LinesAdded++
		case opDelete:
			result.LinesRemoved++
		}
	}

	return result
}

// SplitLines splits file content into lines. A single trailing newline is not
// a line of its own, so a trailing-newline-only difference between two files
// yields an empty edit script. Carriage returns are stripped to align files
// with differing line endings.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	text := strings.TrimSuffix(string(content), "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

type opKind int

const (
	opKeep opKind = iota
	opDelete
	opInsert
)

// editOp is one step of the edit script. Line numbers are 1-based and zero
// for the side an operation does not touch.
type editOp struct {
	kind         opKind
	text         string
	originalLine int
	modifiedLine int
}

// myersOps computes a minimal edit script between a and b using the greedy
// O((N+M)·D) algorithm from Myers' "An O(ND) Difference Algorithm and Its
// Variations": walk the edit graph breadth-first over edit distance d,
// keeping for every diagonal k the furthest reachable x, then backtrack
// through the recorded per-d states to recover the script.
func myersOps(a []string, b []string) []editOp {
	n, m := len(a), len(b)
	if n == 0 && m == 0 {
		return nil
	}

	max := n + m
	offset := max
	v := make([]int, 2*max+2)

	var trace [][]int
	found := -1

forward:
	for d := 0; d <= max; d++ {
		snapshot := make([]int, len(v))
		copy(snapshot, v)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1] // step down: insert from b
			} else {
				x = v[offset+k-1] + 1 // step right: delete from a
			}
			y := x - k

			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[offset+k] = x

			if x >= n && y >= m {
				found = d
				break forward
			}
		}
	}

	// backtrack from (n, m) through the recorded states, emitting ops in
	// reverse order
	reversed := make([]editOp, 0, max)
	x, y := n, m
	for d := found; d > 0; d-- {
		state := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && state[offset+k-1] < state[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := state[offset+prevK]
		prevY := prevX - prevK

		// the snake following the edit
		for x > prevX && y > prevY {
			reversed = append(reversed, editOp{kind: opKeep, text: a[x-1], originalLine: x, modifiedLine: y})
			x--
			y--
		}

		if x == prevX {
			reversed = append(reversed, editOp{kind: opInsert, text: b[y-1], modifiedLine: y})
			y--
		} else {
			reversed = append(reversed, editOp{kind: opDelete, text: a[x-1], originalLine: x})
			x--
		}
	}
	// the initial snake at d == 0
	for x > 0 && y > 0 {
		reversed = append(reversed, editOp{kind: opKeep, text: a[x-1], originalLine: x, modifiedLine: y})
		x--
		y--
	}

	ops := make([]editOp, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		ops = append(ops, reversed[i])
	}
	return ops
}

// buildHunks partitions the edit script at change boundaries. Each maximal
// run of inserts/deletes is padded with up to contextLines keeps; runs whose
// context windows would touch or overlap (separated by at most 2*contextLines
// keeps) are merged into a single hunk.
func (engine *LineDiffEngine) buildHunks(ops []editOp) []data.DiffHunk {
	var changed []int
	for i, op := range ops {
		if op.kind != opKeep {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return nil
	}

	var hunks []data.DiffHunk
	groupStart := changed[0]
	groupEnd := changed[0]

	flush := func() {
		start := groupStart - engine.contextLines
		if start < 0 {
			start = 0
		}
		end := groupEnd + engine.contextLines
		if end > len(ops)-1 {
			end = len(ops) - 1
		}
		hunks = append(hunks, engine.buildHunk(ops, start, end))
	}

	for _, index := range changed[1:] {
		if index-groupEnd-1 <= 2*engine.contextLines {
			groupEnd = index
			continue
		}
		flush()
		groupStart = index
		groupEnd = index
	}
	flush()

	return hunks
}

// buildHunk converts ops[start..end] (inclusive) into a DiffHunk.
func (engine *LineDiffEngine) buildHunk(ops []editOp, start int, end int) data.DiffHunk {
	hunk := data.DiffHunk{
		Lines: make([]data.DiffLine, 0, end-start+1),
	}

	for i := start; i <= end; i++ {
		op := ops[i]

		line := data.DiffLine{
			Content:      op.text,
			OriginalLine: op.originalLine,
			ModifiedLine: op.modifiedLine,
		}
		switch op.kind {
		case opKeep:
			line.Type = data.DiffLineContext
		case opDelete:
			line.Type = data.DiffLineRemoved
		case opInsert:
			line.Type = data.DiffLineAdded
		}
		hunk.Lines = append(hunk.Lines, line)

		if op.originalLine > 0 {
			if hunk.OriginalCount == 0 {
				hunk.OriginalStart = op.originalLine
			}
			hunk.OriginalCount++
		}
		if op.modifiedLine > 0 {
			if hunk.ModifiedCount == 0 {
				hunk.ModifiedStart = op.modifiedLine
			}
			hunk.ModifiedCount++
		}
	}

	// a pure insertion (or deletion) hunk has no lines on one side; anchor it
	// at the position the change applies to
	if hunk.OriginalCount == 0 {
		hunk.OriginalStart = lastLineBefore(ops, start, func(op editOp) int { return op.originalLine })
	}
	if hunk.ModifiedCount == 0 {
		hunk.ModifiedStart = lastLineBefore(ops, start, func(op editOp) int { return op.modifiedLine })
	}

	return hunk
}

func lastLineBefore(ops []editOp, start int, lineOf func(editOp) int) int {
	for i := start - 1; i >= 0; i-- {
		if line := lineOf(ops[i]); line > 0 {
			return line
		}
	}
	return 0
}
