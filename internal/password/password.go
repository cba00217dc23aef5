// Package password hashes guestbook passwords with salted PBKDF2.
//
// Stored values have the form "<salt hex>:<key hex>". Values without the
// separator are legacy plaintext passwords written before hashing existed.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	keySize    = 64
	iterations = 10000
	separator  = ":"
)

// Hash derives a new salted hash for plain.
func Hash(plain string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	return encode(salt, derive(plain, salt)), nil
}

// IsHashed reports whether stored is in the salted hash form.
func IsHashed(stored string) bool {
	return strings.Contains(stored, separator)
}

// Verify checks plain against stored. legacy is true when stored was a plaintext
// password and it matched, meaning the caller should replace it with Hash(plain).
func Verify(plain, stored string) (ok bool, legacy bool) {
	if !IsHashed(stored) {
		match := subtle.ConstantTimeCompare([]byte(plain), []byte(stored)) == 1
		return match, match
	}

	saltHex, keyHex, _ := strings.Cut(stored, separator)
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, false
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil || len(want) != keySize {
		return false, false
	}

	got := derive(plain, salt)
	return subtle.ConstantTimeCompare(got, want) == 1, false
}

func derive(plain string, salt []byte) []byte {
	return pbkdf2.Key([]byte(plain), salt, iterations, keySize, sha512.New)
}

func encode(salt, key []byte) string {
	return hex.EncodeToString(salt) + separator + hex.EncodeToString(key)
}
