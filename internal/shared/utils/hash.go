package utils

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// HashAlgorithm represents the hashing algorithm to use
type HashAlgorithm string

const (
	SHA256  HashAlgorithm = "sha256"
	SHA512  HashAlgorithm = "sha512"
	BLAKE2b HashAlgorithm = "blake2b"
	SHA3    HashAlgorithm = "sha3-256"
)

// ErrUnknownAlgorithm is returned for unsupported algorithm names.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Algorithms lists the supported algorithms.
func Algorithms() []HashAlgorithm {
	return []HashAlgorithm{SHA256, SHA512, BLAKE2b, SHA3}
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (HashAlgorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, alg := range Algorithms() {
		if string(alg) == name {
			return alg, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Hasher computes digests with a fixed algorithm.
type Hasher struct {
	algorithm HashAlgorithm
}

// NewHasher creates a new hasher with the specified algorithm
func NewHasher(algorithm HashAlgorithm) (*Hasher, error) {
	if _, err := ParseAlgorithm(string(algorithm)); err != nil {
		return nil, err
	}
	return &Hasher{algorithm: algorithm}, nil
}

// DefaultHasher returns a SHA-256 hasher.
func DefaultHasher() *Hasher {
	return &Hasher{algorithm: SHA256}
}

// Algorithm returns the configured algorithm.
func (h *Hasher) Algorithm() HashAlgorithm {
	return h.algorithm
}

// New returns a fresh hash.Hash for the configured algorithm.
func (h *Hasher) New() hash.Hash {
	switch h.algorithm {
	case SHA512:
		return sha512.New()
	case BLAKE2b:
		// blake2b.New256 only fails for keys longer than 64 bytes.
		d, _ := blake2b.New256(nil)
		return d
	case SHA3:
		return sha3.New256()
	default:
		return sha256.New()
	}
}

// HashReader streams r through the digest and returns lowercase hex. Read
// errors are returned instead of a partial digest.
func (h *Hasher) HashReader(r io.Reader) (string, int64, error) {
	d := h.New()
	n, err := io.Copy(d, r)
	if err != nil {
		return "", n, fmt.Errorf("hash stream: %w", err)
	}
	return hex.EncodeToString(d.Sum(nil)), n, nil
}

// HashReaderContext is HashReader with cancellation checked between reads.
func (h *Hasher) HashReaderContext(ctx context.Context, r io.Reader) (string, int64, error) {
	return h.HashReader(ContextReader(ctx, r))
}
