package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esavelyev/accountd/internal/server/config"
)

func TestNewHasher(t *testing.T) {
	h, err := NewHasher(config.SchemeSHA256)
	require.NoError(t, err)
	assert.IsType(t, &SHA256Hasher{}, h)

	h, err = NewHasher(config.SchemeArgon2id)
	require.NoError(t, err)
	assert.IsType(t, &Argon2idHasher{}, h)

	_, err = NewHasher("md5")
	assert.Error(t, err)
}

func TestSHA256Hasher_KnownDigest(t *testing.T) {
	h := &SHA256Hasher{}

	digest, err := h.Hash("Str0ng!Pw")
	require.NoError(t, err)

	// fixed-length hex, no salt: hashing twice yields the same digest
	assert.Len(t, digest, 64)
	again, err := h.Hash("Str0ng!Pw")
	require.NoError(t, err)
	assert.Equal(t, digest, again)
}

func TestSHA256Hasher_Verify(t *testing.T) {
	h := &SHA256Hasher{}

	digest, err := h.Hash("Str0ng!Pw")
	require.NoError(t, err)

	ok, err := h.Verify("Str0ng!Pw", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2idHasher_RoundTrip(t *testing.T) {
	h := &Argon2idHasher{}

	digest, err := h.Hash("Str0ng!Pw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))

	ok, err := h.Verify("Str0ng!Pw", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2idHasher_SaltedDigestsDiffer(t *testing.T) {
	h := &Argon2idHasher{}

	a, err := h.Hash("Str0ng!Pw")
	require.NoError(t, err)
	b, err := h.Hash("Str0ng!Pw")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestArgon2idHasher_MalformedDigest(t *testing.T) {
	h := &Argon2idHasher{}

	for _, digest := range []string{
		"",
		"plainhex",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$not!base64$aGFzaA",
	} {
		_, err := h.Verify("pw", digest)
		assert.Error(t, err, "digest %q", digest)
	}
}
