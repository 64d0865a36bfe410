package diff

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// binarySniffLen is the number of bytes inspected at the start of a file.
	binarySniffLen = 8192
	// maxNonPrintableRatio is the fraction of non-printable bytes above which
	// content is treated as binary.
	maxNonPrintableRatio = 0.3
)

// binaryExtensions short-circuit content sniffing for well known formats.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".webp": true, ".svg": true, ".tiff": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true, ".otf": true,
	".pdf": true, ".zip": true, ".tar": true, ".gz": true, ".7z": true,
	".rar": true, ".jar": true, ".war": true, ".class": true,
	".mp3": true, ".mp4": true, ".avi": true, ".mov": true, ".wav": true,
	".flac": true, ".ogg": true, ".webm": true,
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".bin": true, ".msi": true,
	".sqlite": true, ".db": true, ".db-journal": true, ".db-shm": true, ".db-wal": true,
	".pyc": true, ".pyo": true, ".o": true, ".obj": true, ".a": true, ".lib": true,
	".icns": true, ".cur": true,
}

// BinaryDetector classifies file content as text or binary from a bounded
// prefix. Content that cannot be read or classified with confidence is
// treated as binary so that a line diff is never attempted on it.
type BinaryDetector struct{}

func NewBinaryDetector() *BinaryDetector {
	return &BinaryDetector{}
}

func (detector *BinaryDetector) IsBinary(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if binaryExtensions[ext] {
		return true
	}

	file, err := os.Open(path)
	if err != nil {
		return true
	}
	defer func() {
		_ = file.Close()
	}()

	chunk := make([]byte, binarySniffLen)
	n, err := file.Read(chunk)
	if n <= 0 {
		// an empty file is valid text
		return err != nil && !errors.Is(err, io.EOF)
	}

	return detector.IsBinaryContent(chunk[:n])
}

// IsBinaryContent applies the classification rules to a content sample:
// a null byte or an excessive share of non-printable bytes means binary.
func (detector *BinaryDetector) IsBinaryContent(sample []byte) bool {
	nonPrintable := 0
	for _, b := range sample {
		if b == 0x00 {
			return true
		}
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != '\f' {
			nonPrintable++
		}
	}

	return float64(nonPrintable)/float64(len(sample)) > maxNonPrintableRatio
}
