package diff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryDetector_TextFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("just\nsome\ntext\n"), 0644))

	// WHEN
	result := NewBinaryDetector().IsBinary(path)

	// THEN
	assert.False(t, result)
}

func TestBinaryDetector_NullByte(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "data.dat")
	require.NoError(t, os.WriteFile(path, []byte("text\x00more"), 0644))

	// WHEN
	result := NewBinaryDetector().IsBinary(path)

	// THEN
	assert.True(t, result)
}

func TestBinaryDetector_KnownExtensionShortCircuits(t *testing.T) {
	// GIVEN a png that is never even opened
	path := filepath.Join(t.TempDir(), "image.png")

	// WHEN
	result := NewBinaryDetector().IsBinary(path)

	// THEN
	assert.True(t, result)
}

func TestBinaryDetector_EmptyFileIsText(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte{}, 0644))

	// WHEN
	result := NewBinaryDetector().IsBinary(path)

	// THEN
	assert.False(t, result)
}

func TestBinaryDetector_UnreadableFileIsBinary(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "missing.txt")

	// WHEN
	result := NewBinaryDetector().IsBinary(path)

	// THEN ambiguous content never reaches the line diff
	assert.True(t, result)
}

func TestBinaryDetector_NonPrintableRatio(t *testing.T) {
	// GIVEN a sample that is half control characters
	detector := NewBinaryDetector()
	noisy := make([]byte, 100)
	for i := range noisy {
		if i%2 == 0 {
			noisy[i] = 0x01
		} else {
			noisy[i] = 'a'
		}
	}

	// WHEN / THEN
	assert.True(t, detector.IsBinaryContent(noisy))
	assert.False(t, detector.IsBinaryContent([]byte("tabs\tand\nnewlines\r\n")))
}
