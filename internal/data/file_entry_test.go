package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileEntryEqual(t *testing.T) {
	// GIVEN
	entry := FileEntry{
		RelativePath: "src/main.py",
		AbsolutePath: "/tmp/original/src/main.py",
		Size:         120,
		Type:         "Python",
	}
	same := FileEntry{
		RelativePath: "src/main.py",
		AbsolutePath: "/tmp/original/src/main.py",
		Size:         240,
		Type:         "Python",
	}
	other := FileEntry{
		RelativePath: "src/other.py",
		AbsolutePath: "/tmp/original/src/other.py",
	}

	// WHEN
	equal := entry.Equal(same)
	notEqual := entry.Equal(other)

	// THEN
	assert.True(t, equal)
	assert.False(t, notEqual)
}
