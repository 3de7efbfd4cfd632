package integrity

// Package integrity computes the content digest recorded with every document.
// The digest is used for corruption/tamper detection, not as a storage key.

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
)

// NewHasher returns the hash used for document content digests (SHA-256).
// Callers that stream bytes to storage tee them through this hash so the
// recorded digest covers exactly what was written.
func NewHasher() hash.Hash {
	return sha256.New()
}

// HexDigest finalizes h into the lowercase hex form stored in document rows.
func HexDigest(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}

// DigestReader consumes r to EOF and returns the hex digest of its content.
// Any read error aborts with no digest; a partial hash is never returned.
func DigestReader(r io.Reader) (string, error) {
	h := NewHasher()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return HexDigest(h), nil
}

// DigestBytes returns the hex digest of b.
func DigestBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
