// Package crypto hashes and verifies account passwords on the server.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable hashes and checks
// sign-in attempts against them.
//
// The plaintext never reaches the store; only the value returned by Hash is
// persisted in the accounts table.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Passwords longer than the
	// algorithm accepts yield ErrPasswordTooLong.
	Hash(password string) (string, error)

	// Compare reports ErrMismatchedPassword when password does not produce
	// hash. Any other error means the stored hash is malformed.
	Compare(hash, password string) error
}
