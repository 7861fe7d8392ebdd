package card

import "golang.org/x/crypto/bcrypt"

// Authenticator verifies a password attempt against the card's stored
// credential. Implementations decide how the credential is kept.
type Authenticator interface {
	Verify(input string) bool
}

// PlainAuthenticator compares attempts against a stored plaintext password.
// Constant-time comparison is deliberately not used; this instrument is a
// teaching simulation, not a security boundary.
type PlainAuthenticator struct {
	password string
}

// NewPlainAuthenticator stores the password as given.
func NewPlainAuthenticator(password string) PlainAuthenticator {
	return PlainAuthenticator{password: password}
}

// Verify reports whether the attempt matches exactly.
func (a PlainAuthenticator) Verify(input string) bool {
	return input == a.password
}

// BcryptAuthenticator keeps only a bcrypt hash of the password.
type BcryptAuthenticator struct {
	hash []byte
}

// NewBcryptAuthenticator hashes the password at construction.
func NewBcryptAuthenticator(password string) (BcryptAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return BcryptAuthenticator{}, err
	}
	return BcryptAuthenticator{hash: hash}, nil
}

// Verify compares the attempt against the stored hash.
func (a BcryptAuthenticator) Verify(input string) bool {
	return bcrypt.CompareHashAndPassword(a.hash, []byte(input)) == nil
}
