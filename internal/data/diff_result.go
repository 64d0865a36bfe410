package data

import (
	"dirdiff/internal/data/diff_state"
)

type DiffLineType int

const (
	DiffLineContext DiffLineType = iota
	DiffLineAdded
	DiffLineRemoved
)

// DiffLine is a single line of a hunk. OriginalLine and ModifiedLine are
// 1-based and zero when the line does not exist on that side.
type DiffLine struct {
	Type         DiffLineType
	Content      string
	OriginalLine int
	ModifiedLine int
}

// DiffHunk is a contiguous run of changed lines together with up to
// context_lines of unchanged lines before and after it.
type DiffHunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

type FileDiff struct {
	RelativePath string
	Status       diff_state.DiffState
	Type         string
	OriginalSize int64
	ModifiedSize int64
	// Hunks is empty unless Status is Modified and the file is textual.
	Hunks        []DiffHunk
	LinesAdded   int
	LinesRemoved int
}

type TypeStats struct {
	Added    int
	Deleted  int
	Modified int
}

// DiffResult is the complete outcome of one comparison run. Files is ordered
// lexicographically by relative path and contains exactly one entry per path
// in the union of both trees.
type DiffResult struct {
	OriginalRoot string
	ModifiedRoot string

	OriginalFiles  int
	ModifiedFiles  int
	Unchanged      int
	Added          int
	Deleted        int
	Modified       int
	BinaryModified int
	LinesAdded     int
	LinesRemoved   int

	Files         []FileDiff
	TypeBreakdown map[string]TypeStats

	// Warnings lists files that had to be skipped because of I/O errors.
	Warnings []string
}
