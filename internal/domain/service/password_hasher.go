// Package service defines the ports use cases rely on for work that lives outside
// the domain: hashing, tokens, messaging, geocoding and chain access.
package service

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
