package diff_state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffStateString(t *testing.T) {
	// GIVEN
	states := map[DiffState]string{
		Added:          "added",
		Deleted:        "deleted",
		Unchanged:      "unchanged",
		Modified:       "modified",
		BinaryModified: "binary_modified",
		DiffState(99):  "unknown",
	}

	for state, expected := range states {
		// WHEN
		result := state.String()

		// THEN
		assert.Equal(t, expected, result)
	}
}
