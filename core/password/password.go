package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2Version pins the only supported encoding version (0x13).
const argon2Version = 19

// Params controls Argon2id hashing cost. Memory is in KiB as required by
// argon2.IDKey.
type Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams is a baseline suitable for interactive logins.
var DefaultParams = Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// Hash hashes the plaintext with DefaultParams and a fresh random salt,
// returning the encoded hash string.
func Hash(plaintext string) (string, error) {
	return HashWithParams(plaintext, DefaultParams)
}

// HashWithParams hashes the plaintext with explicit cost parameters.
func HashWithParams(plaintext string, p Params) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Join(ErrSaltGeneration, err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)

	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Version,
		p.Memory, p.Iterations, p.Parallelism,
		b64.EncodeToString(salt),
		b64.EncodeToString(key),
	), nil
}

// Verify reports whether plaintext matches the encoded hash.
// Returns (true, nil) on a match, (false, nil) on a mismatch, and
// (false, ErrInvalidHash) for malformed or unsupported hash strings.
// The comparison is constant time.
func Verify(encodedHash, plaintext string) (bool, error) {
	p, salt, expected, err := decode(encodedHash)
	if err != nil {
		return false, err
	}

	key := argon2.IDKey([]byte(plaintext), salt, p.Iterations, p.Memory, p.Parallelism, uint32(len(expected)))

	if subtle.ConstantTimeCompare(key, expected) == 1 {
		return true, nil
	}
	return false, nil
}

// decode parses the encoded hash into its parameters, salt and key.
// Bounds on the decoded parameters keep attacker-supplied hash strings from
// demanding pathological amounts of memory during verification.
func decode(encoded string) (Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Params{}, nil, nil, ErrInvalidHash
	}

	if parts[2] != fmt.Sprintf("v=%d", argon2Version) {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var memory, iterations, parallelism uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	if memory == 0 || iterations == 0 || parallelism == 0 || parallelism > 255 {
		return Params{}, nil, nil, ErrInvalidHash
	}
	if memory > 2*DefaultParams.Memory || iterations > 2*DefaultParams.Iterations*4 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	if len(salt) < 8 || len(salt) > 64 || len(key) < 16 || len(key) > 128 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	p := Params{
		Memory:      memory,
		Iterations:  iterations,
		Parallelism: uint8(parallelism),
		SaltLength:  uint32(len(salt)),
		KeyLength:   uint32(len(key)),
	}
	return p, salt, key, nil
}
