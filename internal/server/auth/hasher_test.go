package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHasher() *Hasher {
	// cheap parameters, the tests exercise correctness not cost
	return NewHasher(Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32})
}

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := testHasher()
	encoded := h.Hash("pw1")

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))
	assert.True(t, h.Verify(encoded, "pw1"))
	assert.False(t, h.Verify(encoded, "pw2"))
	assert.False(t, h.Verify(encoded, ""))
}

func TestHasher_SaltIsPerRecord(t *testing.T) {
	t.Parallel()

	h := testHasher()
	a := h.Hash("same-password")
	b := h.Hash("same-password")

	require.NotEqual(t, a, b, "two hashes of one password must differ by salt")
	assert.True(t, h.Verify(a, "same-password"))
	assert.True(t, h.Verify(b, "same-password"))
}

func TestHasher_VerifyUsesStoredParams(t *testing.T) {
	t.Parallel()

	weak := NewHasher(Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32})
	strong := NewHasher(Argon2Params{Time: 2, Memory: 16 * 1024, Threads: 2, KeyLen: 32})

	encoded := weak.Hash("pw")

	// a hasher configured with different parameters still verifies hashes
	// produced under the old cost, because cost is read from the hash itself
	assert.True(t, strong.Verify(encoded, "pw"))
}

func TestHasher_MalformedStored(t *testing.T) {
	t.Parallel()

	h := testHasher()

	for _, bad := range []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=8192,t=1,p=1$notbase64!$x",
		"$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$ZGlnZXN0",
	} {
		assert.False(t, h.Verify(bad, "pw"), "stored=%q", bad)
	}
}
