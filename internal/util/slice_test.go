package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsString_Valid(t *testing.T) {
	// GIVEN
	list := []string{
		"one",
		"two",
		"three",
	}

	// WHEN
	result := ContainsString(list, "two")

	// THEN
	assert.True(t, result)
}

func TestContainsString_Invalid(t *testing.T) {
	// GIVEN
	list := []string{
		"one",
		"two",
		"three",
	}

	// WHEN
	result := ContainsString(list, "zero")

	// THEN
	assert.False(t, result)
}

func TestSortedKeys(t *testing.T) {
	// GIVEN
	input := map[string]int{
		"b/file.txt": 1,
		"a/file.txt": 2,
		"c/file.txt": 3,
	}

	// WHEN
	result := SortedKeys(input)

	// THEN
	assert.Equal(t, []string{"a/file.txt", "b/file.txt", "c/file.txt"}, result)
}

func TestUniqueSlice(t *testing.T) {
	// GIVEN
	a := []string{"one", "two"}
	b := []string{"two", "three"}

	// WHEN
	result := UniqueSlice(a, b)

	// THEN
	assert.ElementsMatch(t, []string{"one", "two", "three"}, result)
}
