package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request body.
const HashHeader = "HashSHA256"

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers keyed with
// hashKey. The server calls it once at start so the integrity middleware
// does not allocate a hasher per request.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 signature over data using a hasher pulled
// from the global pool.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString computes an HMAC-SHA256 signature over data with hashKey and
// returns it hex-encoded. It does not touch the pool; the client uses it to
// sign outgoing bodies.
func HashString(data string, hashKey string) string {
	return HashBytes([]byte(data), hashKey)
}

// HashBytes is HashString for a byte slice.
func HashBytes(data []byte, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}
