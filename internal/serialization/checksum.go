package serialization

import (
	"crypto/sha256"
	"io"
)

// ComputeChecksum computes the SHA-256 checksum of data.
func ComputeChecksum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// ComputeChecksumReader computes the SHA-256 checksum of everything r yields.
// Large stores are hashed without loading them into memory.
func ComputeChecksumReader(r io.Reader) ([32]byte, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return [32]byte{}, err
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// ValidateChecksum compares a computed checksum against an expected one.
// Returns ErrChecksumMismatch if they differ.
func ValidateChecksum(computed, expected [32]byte) error {
	if computed != expected {
		return ErrChecksumMismatch
	}
	return nil
}
