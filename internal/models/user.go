// Package models defines the persisted record types of the samba messaging
// database. Identity is assigned by the store; UnsavedID marks records that
// have not been inserted yet.
package models

import "github.com/dmitrijs2005/samba/internal/credentials"

// UnsavedID is the in-memory identity of a record before its first save.
const UnsavedID int64 = -1

// User is a row of the users table.
type User struct {
	ID             int64  `db:"id"`
	Username       string `db:"username"`
	HashedPassword string `db:"hashed_password"`
}

// NewUser constructs an unsaved user without a credential.
func NewUser(username string) *User {
	return &User{ID: UnsavedID, Username: username}
}

// SetPassword replaces the stored credential with a freshly salted hash.
// The plaintext is not retained.
func (u *User) SetPassword(password string) {
	u.HashedPassword = credentials.HashPassword(password)
}

// Saved reports whether the user has a store-assigned identity.
func (u *User) Saved() bool {
	return u.ID != UnsavedID
}
