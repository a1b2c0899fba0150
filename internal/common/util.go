package common

import "crypto/rand"

// GenerateRandByteArray returns size cryptographically random bytes.
// Panics only if the system RNG is unreadable, which is not recoverable.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}
