package diff

import (
	"dirdiff/internal/util"
	"fmt"
	"path/filepath"
	"strings"
)

// PathFilter decides which directories and files are excluded from a walk.
// All patterns are validated and normalized once at construction so that the
// walk stays linear in the number of paths.
type PathFilter struct {
	ignoreDirs  []string
	ignoreFiles []string
	extensions  map[string]bool
	filterByExt bool
}

// NewPathFilter builds a filter from config values. ignoreDirs are exact
// directory names, ignoreFiles are glob patterns matched against a file's
// basename, extensions is an optional whitelist of file suffixes (with or
// without leading dot, case-insensitive). An invalid glob pattern is an error.
func NewPathFilter(ignoreDirs []string, ignoreFiles []string, extensions []string) (*PathFilter, error) {
	for _, pattern := range ignoreFiles {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
	}

	filter := &PathFilter{
		ignoreDirs:  ignoreDirs,
		ignoreFiles: ignoreFiles,
	}

	if len(extensions) > 0 {
		filter.filterByExt = true
		filter.extensions = map[string]bool{}
		for _, ext := range extensions {
			ext = strings.ToLower(ext)
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			filter.extensions[ext] = true
		}
	}

	return filter, nil
}

// ExcludesDir reports whether a directory with the given name should be
// pruned. Files below an excluded directory never show up in any result.
func (filter *PathFilter) ExcludesDir(name string) bool {
	return util.ContainsString(filter.ignoreDirs, name)
}

// ExcludesFile reports whether a file with the given basename is excluded.
func (filter *PathFilter) ExcludesFile(name string) bool {
	for _, pattern := range filter.ignoreFiles {
		// patterns are validated in NewPathFilter, Match cannot fail here
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}

	if filter.filterByExt {
		ext := strings.ToLower(filepath.Ext(name))
		if !filter.extensions[ext] {
			return true
		}
	}

	return false
}
