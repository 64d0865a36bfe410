package diff

import (
	"path/filepath"
	"strings"
)

var typeByExtension = map[string]string{
	".ts": "TypeScript", ".tsx": "React TSX", ".js": "JavaScript", ".jsx": "React JSX",
	".java": "Java", ".py": "Python", ".go": "Go", ".css": "CSS", ".scss": "SCSS",
	".html": "HTML", ".json": "JSON", ".yaml": "YAML", ".yml": "YAML",
	".xml": "XML", ".md": "Markdown", ".sql": "SQL", ".sh": "Shell",
	".env": "Environment", ".properties": "Properties", ".gradle": "Gradle",
	".toml": "TOML", ".cfg": "Config", ".log": "Log", ".txt": "Text",
	".ini": "INI", ".conf": "Config", ".bat": "Batch", ".ps1": "PowerShell",
}

var typeByBasename = map[string]string{
	"dockerfile":  "Docker",
	"makefile":    "Make",
	".gitignore":  "Git",
	".gitmodules": "Git",
	".env":        "Environment",
}

// ClassifyFileType maps a file path to a display category. Unknown extensions
// fall back to the upper-cased raw extension, extensionless files to "Unknown".
func ClassifyFileType(path string) string {
	base := strings.ToLower(filepath.Base(path))
	if tag, ok := typeByBasename[base]; ok {
		return tag
	}

	ext := strings.ToLower(filepath.Ext(path))
	if tag, ok := typeByExtension[ext]; ok {
		return tag
	}
	if ext != "" {
		return strings.ToUpper(strings.TrimPrefix(ext, "."))
	}
	return "Unknown"
}
