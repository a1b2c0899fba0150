package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/common"
	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// Argon2Params is the tunable work factor for password hashing. The cost
// is encoded into every produced hash, so parameters can be raised without
// invalidating stored credentials.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params is a moderate interactive-login cost.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32}
}

// Hasher derives one-way salted password hashes with argon2id.
type Hasher struct {
	params Argon2Params
}

func NewHasher(params Argon2Params) *Hasher {
	return &Hasher{params: params}
}

// Hash derives a digest from password with a fresh random salt and encodes
// it in the standard "$argon2id$v=..$m=..,t=..,p=..$salt$digest" form.
func (h *Hasher) Hash(password string) string {
	salt := common.GenerateRandByteArray(saltSize)
	digest := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)
	return encodeHash(h.params, salt, digest)
}

// Verify re-derives the digest for candidate using the salt and parameters
// stored in encoded, and compares in constant time. Returns true only on
// an exact match; malformed stored hashes verify as false.
func (h *Hasher) Verify(encoded string, candidate string) bool {
	params, salt, digest, err := decodeHash(encoded)
	if err != nil {
		return false
	}
	candidateDigest := argon2.IDKey([]byte(candidate), salt, params.Time, params.Memory, params.Threads, uint32(len(digest)))
	return subtle.ConstantTimeCompare(digest, candidateDigest) == 1
}

func encodeHash(p Argon2Params, salt, digest []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest))
}

func decodeHash(encoded string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("malformed hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("malformed hash version: %w", err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, fmt.Errorf("malformed hash params: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("malformed salt: %w", err)
	}
	digest, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("malformed digest: %w", err)
	}

	return p, salt, digest, nil
}
