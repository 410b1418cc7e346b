package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/esavelyev/accountd/internal/server/config"
)

// PasswordHasher turns a plaintext password into a stored digest and checks
// candidates against it.
type PasswordHasher interface {
	// Hash produces the digest stored in place of the password.
	Hash(password string) (string, error)

	// Verify reports whether the password matches the digest.
	// An error means the digest itself is unusable, not a mismatch.
	Verify(password, digest string) (bool, error)
}

// NewHasher returns the hasher for a configured password scheme.
func NewHasher(scheme string) (PasswordHasher, error) {
	switch scheme {
	case config.SchemeSHA256:
		return &SHA256Hasher{}, nil
	case config.SchemeArgon2id:
		return &Argon2idHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme: %q", scheme)
	}
}

// SHA256Hasher is the legacy scheme: a single unsalted SHA-256 pass encoded
// as 64 hex characters. It matches digests already at rest but is weak
// against offline attacks; new deployments should configure argon2id.
type SHA256Hasher struct{}

func (h *SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h *SHA256Hasher) Verify(password, digest string) (bool, error) {
	candidate, err := h.Hash(password)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) == 1, nil
}

// argon2id parameters (OWASP-recommended).
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // KiB
	argon2Threads = 4
	argon2SaltLen = 16
	argon2KeyLen  = 32
)

// Argon2idHasher produces salted argon2id digests in PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
type Argon2idHasher struct{}

func (h *Argon2idHasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt generation error: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	digest := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return digest, nil
}

func (h *Argon2idHasher) Verify(password, digest string) (bool, error) {
	salt, key, memory, time, threads, err := decodeArgon2id(digest)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(candidate, key) == 1, nil
}

func decodeArgon2id(digest string) (salt, key []byte, memory, time uint32, threads uint8, err error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed argon2id digest")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed argon2id version: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, fmt.Errorf("unsupported argon2 version %d", version)
	}

	var t, p uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &t, &p); err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed argon2id parameters: %w", err)
	}
	if p == 0 || p > 255 {
		return nil, nil, 0, 0, 0, fmt.Errorf("argon2id parallelism out of range: %d", p)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed argon2id salt: %w", err)
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("malformed argon2id key: %w", err)
	}

	return salt, key, memory, t, uint8(p), nil
}
