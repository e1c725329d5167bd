package models

import "time"

// Message is a row of the messages table. FromID and ToID are weak
// references to user identities; the authoritative records live in the
// store and are resolved through the users repository.
type Message struct {
	ID           int64     `db:"id"`
	FromID       int64     `db:"from_id"`
	ToID         int64     `db:"to_id"`
	CreationDate time.Time `db:"creation_date"`
	Text         string    `db:"text"`
}

// NewMessage constructs an unsaved message. CreationDate stays zero until
// the store assigns it at insert time.
func NewMessage(fromID, toID int64, text string) *Message {
	return &Message{ID: UnsavedID, FromID: fromID, ToID: toID, Text: text}
}

// Saved reports whether the message has a store-assigned identity.
func (m *Message) Saved() bool {
	return m.ID != UnsavedID
}
