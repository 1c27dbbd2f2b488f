package service

// PasswordHasher defines the interface for hashing and verifying passwords.
// This abstracts the hashing primitive from the use cases.
type PasswordHasher interface {
	// Hash generates a salted one-way hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash in constant
	// time and reports whether they match.
	Check(password, hash string) bool
}
