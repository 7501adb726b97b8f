package cryptography

import (
	"os"

	"verilearn.io/infrastructure/env"
)

var CryptoHasher Hasher = argonHasher{}

var pepper string

// InitialiseHasher loads the process-wide pepper. The pepper is appended to
// every password before hashing, so running without it is startup-fatal:
// hashes minted without the pepper could never be verified once it is set.
func InitialiseHasher() {
	env.RequireEnv("PASSWORD_PEPPER")
	pepper = os.Getenv("PASSWORD_PEPPER")
}

// HashPassword hashes candidate+pepper with a random per-hash salt.
func HashPassword(password string) ([]byte, error) {
	return CryptoHasher.HashString(password+pepper, nil)
}

// VerifyPassword checks a plaintext candidate against a stored encoded hash.
// Verification is constant-time inside argon2.
func VerifyPassword(hash string, candidate string) bool {
	return CryptoHasher.VerifyHashData(hash, candidate+pepper)
}
