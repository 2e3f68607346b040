package auth

import "crypto/subtle"

// Verifier decides whether a username/password pair is allowed through the
// Basic-auth gate. Implementations must be safe for concurrent use.
type Verifier interface {
	Verify(username, password string) bool
}

// StaticVerifier compares against a single plaintext credential pair.
// Comparison is constant-time on both fields.
type StaticVerifier struct {
	username string
	password string
}

// NewStaticVerifier creates a verifier for a fixed plaintext credential.
func NewStaticVerifier(username, password string) *StaticVerifier {
	return &StaticVerifier{username: username, password: password}
}

// Verify reports whether the pair matches the configured credential.
func (v *StaticVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return userOK && passOK
}

// HashedVerifier compares the username in constant time and checks the
// password against an Argon2id PHC hash, so the plaintext credential never
// has to appear in configuration.
type HashedVerifier struct {
	username     string
	passwordHash string
}

// NewHashedVerifier creates a verifier for a username and Argon2id PHC hash.
func NewHashedVerifier(username, passwordHash string) *HashedVerifier {
	return &HashedVerifier{username: username, passwordHash: passwordHash}
}

// Verify reports whether the pair matches the configured credential.
// A malformed stored hash denies all requests rather than failing open.
func (v *HashedVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1

	passOK, err := VerifyPassword(password, v.passwordHash)
	if err != nil {
		return false
	}
	return userOK && passOK
}
