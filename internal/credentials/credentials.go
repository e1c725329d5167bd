// Package credentials implements the stored-credential scheme for samba
// users: a 16-character random salt followed by the lowercase hex SHA-256
// digest of salt||password, 80 characters in total.
//
// The layout is fixed by the users table (hashed_password VARCHAR(80)), so
// the functions here must stay byte-compatible with existing rows.
package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const (
	// SaltLength is the number of salt characters prefixed to every stored hash.
	SaltLength = 16

	saltAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// digestLength is the hex-encoded size of a SHA-256 digest.
	digestLength = sha256.Size * 2

	// StoredLength is the total length of a well-formed stored credential.
	StoredLength = SaltLength + digestLength
)

// GenerateSalt returns a random 16-character salt drawn from [A-Za-z0-9].
func GenerateSalt() string {
	raw := make([]byte, SaltLength)
	if _, err := rand.Read(raw); err != nil {
		// crypto/rand is documented never to fail on supported platforms
		panic(err)
	}

	salt := make([]byte, SaltLength)
	for i, b := range raw {
		salt[i] = saltAlphabet[int(b)%len(saltAlphabet)]
	}
	return string(salt)
}

// normalizeSalt forces the salt to exactly SaltLength characters:
// shorter salts are right-padded with 'a', longer ones truncated.
func normalizeSalt(salt string) string {
	if len(salt) < SaltLength {
		salt += strings.Repeat("a", SaltLength-len(salt))
	}
	if len(salt) > SaltLength {
		salt = salt[:SaltLength]
	}
	return salt
}

// HashPassword hashes the password with a freshly generated salt.
func HashPassword(password string) string {
	return HashPasswordWithSalt(password, GenerateSalt())
}

// HashPasswordWithSalt hashes the password with the given salt and returns
// the normalized salt concatenated with the hex digest of salt||password.
func HashPasswordWithSalt(password, salt string) string {
	salt = normalizeSalt(salt)
	sum := sha256.Sum256([]byte(salt + password))
	return salt + hex.EncodeToString(sum[:])
}

// CheckPassword reports whether the candidate password matches the stored
// credential. Malformed stored values are rejected rather than sliced.
func CheckPassword(candidate, stored string) bool {
	if len(stored) != StoredLength {
		return false
	}

	salt := stored[:SaltLength]
	rehashed := HashPasswordWithSalt(candidate, salt)

	return subtle.ConstantTimeCompare([]byte(rehashed[SaltLength:]), []byte(stored[SaltLength:])) == 1
}
