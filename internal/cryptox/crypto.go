// Package cryptox implements password credential hashing: salted slow key
// derivation for storage and constant-time verification of candidates.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/shopcore/authsvc/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltSize is the number of random bytes in a fresh salt.
	saltSize = 16
	// iterations is the PBKDF2 iteration count.
	iterations = 10000
	// keySize is the derived key length in bytes.
	keySize = 64
)

// HashPassword salts and hashes a password for storage.
//
// A fresh 16-byte random salt is hex-encoded and fed to PBKDF2-SHA256
// (10000 iterations, 64-byte key). The stored form is "saltHex:derivedHex",
// so the salt travels with the hash and no extra column is needed.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrHashing, err)
	}

	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(password), []byte(saltHex), iterations, keySize, sha256.New)

	return saltHex + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword re-derives the candidate with the salt extracted from the
// stored form and compares the result in constant time. A stored form
// without the ':' separator or with an undecodable hash yields
// common.ErrMalformedStoredForm.
func VerifyPassword(candidate, stored string) (bool, error) {
	saltHex, storedHex, found := strings.Cut(stored, ":")
	if !found {
		return false, common.ErrMalformedStoredForm
	}

	storedKey, err := hex.DecodeString(storedHex)
	if err != nil {
		return false, common.ErrMalformedStoredForm
	}

	key := pbkdf2.Key([]byte(candidate), []byte(saltHex), iterations, keySize, sha256.New)

	return subtle.ConstantTimeCompare(key, storedKey) == 1, nil
}
