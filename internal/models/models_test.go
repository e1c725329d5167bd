package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/samba/internal/credentials"
)

func TestNewUser(t *testing.T) {
	u := NewUser("alice")
	assert.Equal(t, UnsavedID, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Empty(t, u.HashedPassword)
	assert.False(t, u.Saved())
}

func TestUserSetPassword(t *testing.T) {
	u := NewUser("alice")
	u.SetPassword("longenough1")

	require.Len(t, u.HashedPassword, credentials.StoredLength)
	assert.True(t, credentials.CheckPassword("longenough1", u.HashedPassword))
	assert.False(t, credentials.CheckPassword("wrong", u.HashedPassword))
}

func TestNewMessage(t *testing.T) {
	m := NewMessage(1, 2, "hi")
	assert.Equal(t, UnsavedID, m.ID)
	assert.Equal(t, int64(1), m.FromID)
	assert.Equal(t, int64(2), m.ToID)
	assert.Equal(t, "hi", m.Text)
	assert.True(t, m.CreationDate.IsZero())
	assert.False(t, m.Saved())
}
