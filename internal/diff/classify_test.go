package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFileType(t *testing.T) {
	cases := []struct {
		path     string
		expected string
	}{
		{"src/app.ts", "TypeScript"},
		{"src/Component.TSX", "React TSX"},
		{"main.go", "Go"},
		{"styles/theme.css", "CSS"},
		{"config.yaml", "YAML"},
		{"config.yml", "YAML"},
		{"notes.md", "Markdown"},
		{"Dockerfile", "Docker"},
		{"sub/Makefile", "Make"},
		{".gitignore", "Git"},
		{".env", "Environment"},
		{"archive.xyz", "XYZ"},
		{"LICENSE", "Unknown"},
	}

	for _, tc := range cases {
		// WHEN
		result := ClassifyFileType(tc.path)

		// THEN
		assert.Equal(t, tc.expected, result, "path: %s", tc.path)
	}
}
