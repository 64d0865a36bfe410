package diff

import (
	"dirdiff/internal/data"
	"fmt"
	"os"
	"path/filepath"
)

// TreeWalker enumerates all non-excluded regular files below a root directory.
// Symbolic links are skipped entirely: symlinked directories are not descended
// to avoid cycles and symlinked files are never hashed or diffed.
type TreeWalker struct {
	root   string
	filter *PathFilter
}

func NewTreeWalker(root string, filter *PathFilter) *TreeWalker {
	return &TreeWalker{
		root:   root,
		filter: filter,
	}
}

// Walk returns a map from slash-separated relative path to FileEntry.
// I/O errors on individual entries are collected as warnings and skip the
// entry; only a missing or non-directory root is a fatal error.
func (walker *TreeWalker) Walk() (map[string]*data.FileEntry, []string, error) {
	stat, err := os.Stat(walker.root)
	if err != nil {
		return nil, nil, fmt.Errorf("folder does not exist: %s", walker.root)
	}
	if !stat.IsDir() {
		return nil, nil, fmt.Errorf("not a folder: %s", walker.root)
	}

	result := map[string]*data.FileEntry{}
	var warnings []string

	// explicit work list instead of recursion, deep trees must not exhaust the stack
	workList := []string{walker.root}
	for len(workList) > 0 {
		dir := workList[len(workList)-1]
		workList = workList[:len(workList)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot read directory %s: %v", dir, err))
			continue
		}

		for _, entry := range entries {
			fullPath := filepath.Join(dir, entry.Name())

			if entry.IsDir() {
				if !walker.filter.ExcludesDir(entry.Name()) {
					workList = append(workList, fullPath)
				}
				continue
			}

			if !entry.Type().IsRegular() {
				continue
			}
			if walker.filter.ExcludesFile(entry.Name()) {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("cannot stat %s: %v", fullPath, err))
				continue
			}

			relPath, err := filepath.Rel(walker.root, fullPath)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("cannot relativize %s: %v", fullPath, err))
				continue
			}
			relPath = filepath.ToSlash(relPath)

			result[relPath] = &data.FileEntry{
				RelativePath: relPath,
				AbsolutePath: fullPath,
				Size:         info.Size(),
				Type:         ClassifyFileType(relPath),
			}
		}
	}

	return result, warnings, nil
}
