package diff

import (
	"dirdiff/internal/data"
	"dirdiff/internal/data/diff_state"
	"dirdiff/internal/util"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
)

// Aggregator merges the file populations of both trees into one DiffResult.
// Common paths are compared on a bounded worker pool; per-path outcomes are
// collected into a map and reduced in lexicographic path order, so the final
// result does not depend on scheduling.
type Aggregator struct {
	hasher   *ContentHasher
	detector *BinaryDetector
	engine   *LineDiffEngine
	workers  int
}

func NewAggregator(engine *LineDiffEngine) *Aggregator {
	return &Aggregator{
		hasher:   NewContentHasher(),
		detector: NewBinaryDetector(),
		engine:   engine,
		workers:  runtime.NumCPU(),
	}
}

type pathOutcome struct {
	relPath  string
	diff     data.FileDiff
	skipped  bool
	warnings []string
}

// Aggregate classifies every path in the union of both trees: present only in
// the original tree means Deleted, only in the modified tree means Added, and
// common paths are compared by fingerprint, binary detection and line diff.
func (aggregator *Aggregator) Aggregate(
	originalRoot string,
	modifiedRoot string,
	original map[string]*data.FileEntry,
	modified map[string]*data.FileEntry,
	walkWarnings []string,
) *data.DiffResult {
	allPaths := util.UniqueSlice(util.SortedKeys(original), util.SortedKeys(modified))
	sort.Strings(allPaths)

	var commonPaths []string
	outcomes := map[string]pathOutcome{}

	for _, relPath := range allPaths {
		originalEntry, inOriginal := original[relPath]
		modifiedEntry, inModified := modified[relPath]

		switch {
		case inOriginal && !inModified:
			outcomes[relPath] = pathOutcome{
				relPath: relPath,
				diff: data.FileDiff{
					RelativePath: relPath,
					Status:       diff_state.Deleted,
					Type:         originalEntry.Type,
					OriginalSize: originalEntry.Size,
				},
			}
		case !inOriginal && inModified:
			outcomes[relPath] = pathOutcome{
				relPath: relPath,
				diff: data.FileDiff{
					RelativePath: relPath,
					Status:       diff_state.Added,
					Type:         modifiedEntry.Type,
					ModifiedSize: modifiedEntry.Size,
				},
			}
		default:
			commonPaths = append(commonPaths, relPath)
		}
	}

	for outcome := range aggregator.compareAll(commonPaths, original, modified) {
		outcomes[outcome.relPath] = outcome
	}

	return aggregator.reduce(originalRoot, modifiedRoot, allPaths, outcomes,
		len(original), len(modified), walkWarnings)
}

// compareAll fans the common paths out over the worker pool.
func (aggregator *Aggregator) compareAll(
	commonPaths []string,
	original map[string]*data.FileEntry,
	modified map[string]*data.FileEntry,
) <-chan pathOutcome {
	jobs := make(chan string, len(commonPaths))
	results := make(chan pathOutcome, len(commonPaths))

	var wg sync.WaitGroup
	for i := 0; i < aggregator.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for relPath := range jobs {
				results <- aggregator.compareCommon(relPath, original[relPath], modified[relPath])
			}
		}()
	}

	for _, relPath := range commonPaths {
		jobs <- relPath
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// compareCommon decides between Unchanged, Modified and BinaryModified for a
// path that exists in both trees. I/O errors exclude the file from the report
// and surface as warnings.
func (aggregator *Aggregator) compareCommon(
	relPath string,
	originalEntry *data.FileEntry,
	modifiedEntry *data.FileEntry,
) pathOutcome {
	outcome := pathOutcome{
		relPath: relPath,
		diff: data.FileDiff{
			RelativePath: relPath,
			Status:       diff_state.Unchanged,
			Type:         originalEntry.Type,
			OriginalSize: originalEntry.Size,
			ModifiedSize: modifiedEntry.Size,
		},
	}

	originalHash, err := aggregator.hasher.HashFile(originalEntry.AbsolutePath)
	if err != nil {
		return skipOutcome(relPath, originalEntry.AbsolutePath, err)
	}
	modifiedHash, err := aggregator.hasher.HashFile(modifiedEntry.AbsolutePath)
	if err != nil {
		return skipOutcome(relPath, modifiedEntry.AbsolutePath, err)
	}

	if originalHash == modifiedHash {
		return outcome
	}

	if aggregator.detector.IsBinary(originalEntry.AbsolutePath) ||
		aggregator.detector.IsBinary(modifiedEntry.AbsolutePath) {
		outcome.diff.Status = diff_state.BinaryModified
		return outcome
	}

	originalContent, err := os.ReadFile(originalEntry.AbsolutePath)
	if err != nil {
		return skipOutcome(relPath, originalEntry.AbsolutePath, err)
	}
	modifiedContent, err := os.ReadFile(modifiedEntry.AbsolutePath)
	if err != nil {
		return skipOutcome(relPath, modifiedEntry.AbsolutePath, err)
	}

	lineDiff := aggregator.engine.Compare(originalContent, modifiedContent)
	outcome.diff.Status = diff_state.Modified
	outcome.diff.Hunks = lineDiff.Hunks
	outcome.diff.LinesAdded = lineDiff.LinesAdded
	outcome.diff.LinesRemoved = lineDiff.LinesRemoved
	if lineDiff.Truncated {
		outcome.warnings = append(outcome.warnings,
			fmt.Sprintf("diff for %s skipped, file exceeds the line ceiling", relPath))
	}

	return outcome
}

func skipOutcome(relPath string, absPath string, err error) pathOutcome {
	return pathOutcome{
		relPath: relPath,
		skipped: true,
		warnings: []string{
			fmt.Sprintf("cannot read %s: %v", absPath, err),
		},
	}
}

// reduce folds the per-path outcomes into summary counters and the ordered
// FileDiff list. The fold runs over the sorted path universe, making the
// result independent of worker completion order.
func (aggregator *Aggregator) reduce(
	originalRoot string,
	modifiedRoot string,
	allPaths []string,
	outcomes map[string]pathOutcome,
	originalFiles int,
	modifiedFiles int,
	walkWarnings []string,
) *data.DiffResult {
	result := &data.DiffResult{
		OriginalRoot:  originalRoot,
		ModifiedRoot:  modifiedRoot,
		OriginalFiles: originalFiles,
		ModifiedFiles: modifiedFiles,
		Files:         make([]data.FileDiff, 0, len(allPaths)),
		TypeBreakdown: map[string]data.TypeStats{},
		Warnings:      append([]string{}, walkWarnings...),
	}

	for _, relPath := range allPaths {
		outcome := outcomes[relPath]
		result.Warnings = append(result.Warnings, outcome.warnings...)
		if outcome.skipped {
			continue
		}

		fileDiff := outcome.diff
		result.Files = append(result.Files, fileDiff)

		stats := result.TypeBreakdown[fileDiff.Type]
		switch fileDiff.Status {
		case diff_state.Added:
			result.Added++
			stats.Added++
		case diff_state.Deleted:
			result.Deleted++
			stats.Deleted++
		case diff_state.Unchanged:
			result.Unchanged++
		case diff_state.Modified:
			result.Modified++
			stats.Modified++
		case diff_state.BinaryModified:
			result.BinaryModified++
			stats.Modified++
		}
		if fileDiff.Status != diff_state.Unchanged {
			result.TypeBreakdown[fileDiff.Type] = stats
		}

		result.LinesAdded += fileDiff.LinesAdded
		result.LinesRemoved += fileDiff.LinesRemoved
	}

	return result
}
