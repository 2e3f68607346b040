// Package auth provides credential verification for the API's Basic-auth gate.
//
// The gate itself lives in the api package; this package supplies the
// verification strategy behind it as a small capability interface:
//
//	verifier := auth.NewStaticVerifier("admin", "default")
//	if verifier.Verify(username, password) { ... }
//
// Two strategies are provided:
//   - StaticVerifier compares a plaintext credential in constant time
//     (development setups)
//   - HashedVerifier checks the password against an Argon2id PHC hash
//     (production — the plaintext never appears in config)
//
// All comparisons are constant-time to avoid leaking credential prefixes
// through response timing.
package auth
