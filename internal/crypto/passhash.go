// Package crypto implements server-side password hashing and verification.
package crypto

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor for new hashes. 12 keeps a single hash in the
// low hundreds of milliseconds on current server hardware.
const bcryptCost = 12

// HashPassword returns a bcrypt hash of password. The salt is generated fresh
// per call and embedded in the output, so hashing the same password twice
// yields different strings.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// Malformed hashes verify as false rather than erroring out.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
