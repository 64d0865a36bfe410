package configuration

import (
	"dirdiff/internal/util"
	"fmt"
	"os"
	"path/filepath"
)

// Validate resolves relative paths against the directory of the given config
// file and verifies that both comparison roots exist and are directories.
// A returned error is fatal for the whole run.
func Validate(configPath string) error {
	if util.IsBlank(CurrentConfig.Original) || util.IsBlank(CurrentConfig.Modified) {
		return fmt.Errorf("'original' and 'modified' must be set in the config")
	}

	configDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return err
	}

	CurrentConfig.Original = resolvePath(configDir, CurrentConfig.Original)
	CurrentConfig.Modified = resolvePath(configDir, CurrentConfig.Modified)
	CurrentConfig.Output.HtmlPath = resolvePath(configDir, CurrentConfig.Output.HtmlPath)

	CurrentConfig.Output.ContextLines = util.Coerce(CurrentConfig.Output.ContextLines, 0, 100)
	if CurrentConfig.Output.MaxDiffLines <= 0 {
		CurrentConfig.Output.MaxDiffLines = 10000
	}

	for _, path := range []string{CurrentConfig.Original, CurrentConfig.Modified} {
		stat, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("folder does not exist: %s", path)
		}
		if !stat.IsDir() {
			return fmt.Errorf("not a folder: %s", path)
		}
	}

	return nil
}

// resolvePath interprets relative paths as relative to the config file location.
func resolvePath(configDir string, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(configDir, path))
}
