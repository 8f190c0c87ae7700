package project

import "crypto/sha256"

// Digest is a fixed 256-bit hash, the same shape as source.File.Hash so a
// file's digest can be reused directly as a cache key.
type Digest [32]byte

// Combine builds an aggregate digest H(content || dep1 || dep2 || ...). The
// order of deps must be deterministic for the result to be stable.
func Combine(content Digest, deps ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range deps {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
