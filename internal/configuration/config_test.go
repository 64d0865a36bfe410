package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ResolvesPathsRelativeToConfigFile(t *testing.T) {
	// GIVEN a config file in its own directory with relative roots
	configDir := t.TempDir()
	configPath := filepath.Join(configDir, DefaultConfigFileName)
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "orig"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "mod"), 0755))

	CurrentConfig = Configuration{
		Original: "./orig",
		Modified: "./mod",
		Output: OutputConfig{
			HtmlPath:     "./report.html",
			ContextLines: 3,
			MaxDiffLines: 10000,
		},
	}

	// WHEN
	err := Validate(configPath)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, "orig"), CurrentConfig.Original)
	assert.Equal(t, filepath.Join(configDir, "mod"), CurrentConfig.Modified)
	assert.Equal(t, filepath.Join(configDir, "report.html"), CurrentConfig.Output.HtmlPath)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	// GIVEN
	CurrentConfig = Configuration{}

	// WHEN
	err := Validate(filepath.Join(t.TempDir(), DefaultConfigFileName))

	// THEN
	assert.Error(t, err)
}

func TestValidate_NonexistentRoot(t *testing.T) {
	// GIVEN
	configDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "orig"), 0755))

	CurrentConfig = Configuration{
		Original: "./orig",
		Modified: "./does-not-exist",
	}

	// WHEN
	err := Validate(filepath.Join(configDir, DefaultConfigFileName))

	// THEN
	assert.Error(t, err)
}

func TestValidate_FileAsRoot(t *testing.T) {
	// GIVEN
	configDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "orig"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "not-a-dir"), []byte("x"), 0644))

	CurrentConfig = Configuration{
		Original: "./orig",
		Modified: "./not-a-dir",
	}

	// WHEN
	err := Validate(filepath.Join(configDir, DefaultConfigFileName))

	// THEN
	assert.Error(t, err)
}

func TestValidate_NormalizesLimits(t *testing.T) {
	// GIVEN out-of-range knobs
	configDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "orig"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "mod"), 0755))

	CurrentConfig = Configuration{
		Original: "./orig",
		Modified: "./mod",
		Output: OutputConfig{
			ContextLines: -5,
			MaxDiffLines: 0,
		},
	}

	// WHEN
	err := Validate(filepath.Join(configDir, DefaultConfigFileName))

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 0, CurrentConfig.Output.ContextLines)
	assert.Equal(t, 10000, CurrentConfig.Output.MaxDiffLines)
}

func TestValidate_AbsolutePathsStayUntouched(t *testing.T) {
	// GIVEN
	originalRoot := t.TempDir()
	modifiedRoot := t.TempDir()

	CurrentConfig = Configuration{
		Original: originalRoot,
		Modified: modifiedRoot,
	}

	// WHEN
	err := Validate(filepath.Join(t.TempDir(), DefaultConfigFileName))

	// THEN
	require.NoError(t, err)
	assert.Equal(t, originalRoot, CurrentConfig.Original)
	assert.Equal(t, modifiedRoot, CurrentConfig.Modified)
}
