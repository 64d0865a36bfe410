package diff

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// ContentHasher computes a 256-bit content fingerprint for a file. Two files
// are considered byte-identical iff their fingerprints match; the content is
// streamed so that large files never have to fit into memory.
type ContentHasher struct{}

func NewContentHasher() *ContentHasher {
	return &ContentHasher{}
}

func (hasher *ContentHasher) HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	h := blake3.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
