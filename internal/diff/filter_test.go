package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFilter_IgnoredDirs(t *testing.T) {
	// GIVEN
	filter, err := NewPathFilter([]string{"node_modules", ".git"}, nil, nil)
	require.NoError(t, err)

	// WHEN / THEN
	assert.True(t, filter.ExcludesDir("node_modules"))
	assert.True(t, filter.ExcludesDir(".git"))
	assert.False(t, filter.ExcludesDir("src"))
}

func TestPathFilter_IgnoredFilePatterns(t *testing.T) {
	// GIVEN
	filter, err := NewPathFilter(nil, []string{"*.pyc", ".DS_Store"}, nil)
	require.NoError(t, err)

	// WHEN / THEN
	assert.True(t, filter.ExcludesFile("module.pyc"))
	assert.True(t, filter.ExcludesFile(".DS_Store"))
	assert.False(t, filter.ExcludesFile("module.py"))
}

func TestPathFilter_ExtensionWhitelist(t *testing.T) {
	// GIVEN extensions with and without leading dot, mixed case
	filter, err := NewPathFilter(nil, nil, []string{".ts", "Js"})
	require.NoError(t, err)

	// WHEN / THEN
	assert.False(t, filter.ExcludesFile("app.ts"))
	assert.False(t, filter.ExcludesFile("app.TS"))
	assert.False(t, filter.ExcludesFile("app.js"))
	assert.True(t, filter.ExcludesFile("style.css"))
	assert.True(t, filter.ExcludesFile("README"))
}

func TestPathFilter_EmptyWhitelistAllowsEverything(t *testing.T) {
	// GIVEN
	filter, err := NewPathFilter(nil, nil, nil)
	require.NoError(t, err)

	// WHEN / THEN
	assert.False(t, filter.ExcludesFile("anything.xyz"))
	assert.False(t, filter.ExcludesFile("no-extension"))
}

func TestPathFilter_InvalidPattern(t *testing.T) {
	// GIVEN
	_, err := NewPathFilter(nil, []string{"[unclosed"}, nil)

	// THEN
	assert.Error(t, err)
}
