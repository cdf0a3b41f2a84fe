package auth

import (
	"crypto/subtle"
)

// CredentialVerifier checks a username and password pair.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticCredentials verifies against a single configured admin account.
type StaticCredentials struct {
	username []byte
	password []byte
}

func NewStaticCredentials(username, password string) *StaticCredentials {
	return &StaticCredentials{
		username: []byte(username),
		password: []byte(password),
	}
}

// Verify compares both fields in constant time and combines the results so
// the comparison cost does not reveal which field was wrong.
func (c *StaticCredentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), c.username)
	passOK := subtle.ConstantTimeCompare([]byte(password), c.password)
	return userOK&passOK == 1
}
