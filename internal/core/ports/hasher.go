package ports

import "go.trai.ch/vigil/internal/core/domain"

// ContentHasher computes stable digests of text blobs.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type ContentHasher interface {
	// Digest returns the digest of text. The empty string has a valid digest too.
	Digest(text string) domain.ContentDigest
}
