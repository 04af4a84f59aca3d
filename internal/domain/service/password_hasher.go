// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted one-way hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Implementations must compare
	// in constant time with respect to the position of the first mismatch.
	Check(password, hash string) bool
}
