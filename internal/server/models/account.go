// Package models holds the records exchanged between repositories, services
// and the command surface.
package models

// Account is a login identity. PasswordHash is always a bcrypt hash, never
// the plaintext secret.
type Account struct {
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
}
