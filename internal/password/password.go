// Package password hashes credentials with argon2id. The encoded form is
// "salt:hash" with both parts raw-base64.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLen = 16
	keyLen  = 32
	argTime = 1
	argMem  = 64 * 1024
	argPar  = 4
)

func Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(plaintext), salt, argTime, argMem, argPar, keyLen)

	return fmt.Sprintf("%s:%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Verify reports whether plaintext matches the encoded hash. Any mismatch,
// including a malformed stored value, is false rather than an error.
func Verify(plaintext, encoded string) bool {
	saltB64, hashB64, ok := strings.Cut(encoded, ":")
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}

	expected, err := base64.RawStdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}

	hash := argon2.IDKey([]byte(plaintext), salt, argTime, argMem, argPar, keyLen)
	return subtle.ConstantTimeCompare(hash, expected) == 1
}
