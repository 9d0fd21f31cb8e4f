// Package service declares the outbound ports of the domain: hashing, tokens, storage,
// messaging and QR rendering. Implementations live under internal/infra.
package service

// PasswordHasher hashes account passwords at sign-up and verifies them at login.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
