package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContentHasher = (*Hasher)(nil)

// Hasher computes SHA-256 content digests. It is stateless and safe for concurrent use.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Digest returns the lower-case hex SHA-256 digest of text.
func (h *Hasher) Digest(text string) domain.ContentDigest {
	sum := sha256.Sum256([]byte(text))
	return domain.ContentDigest(hex.EncodeToString(sum[:]))
}

// DigestFile reads the document at path and returns its content digest.
func (h *Hasher) DigestFile(path string) (domain.ContentDigest, error) {
	content, err := ReadDocument(path)
	if err != nil {
		return "", err
	}
	return h.Digest(content), nil
}

// ReadDocument returns the full text of the document at path.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrReadDocumentFailed.Error()), "path", path)
	}
	return string(data), nil
}
