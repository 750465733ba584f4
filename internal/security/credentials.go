package security

import "crypto/subtle"

// Credentials is the single admin credential pair, supplied by
// configuration. There are no user accounts behind it.
type Credentials struct {
	username []byte
	password []byte
}

func NewCredentials(username, password string) Credentials {
	return Credentials{username: []byte(username), password: []byte(password)}
}

// Match compares both fields in constant time. The username is
// case-sensitive; any variation fails.
func (c Credentials) Match(username, password string) bool {
	userOK := subtle.ConstantTimeCompare(c.username, []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare(c.password, []byte(password)) == 1
	return userOK && passOK
}
