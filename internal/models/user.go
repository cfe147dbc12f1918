package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder.
//
// Web users register with an email and password. Chat users are created
// lazily from their WhatsApp phone identifier with a placeholder
// credential; they can later claim the account by setting an email and
// password through the web UI.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Phone is the messaging-system identifier (e.g. "5511999990000").
	// Unique when set; empty for web-only users.
	Phone string

	// Email is the user's email address (unique when set; empty for
	// chat-only users).
	Email string

	// Name is the display name.
	Name string

	// PasswordHash is the bcrypt hash of the user's password, or a
	// placeholder hash for lazily created chat users.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a web user with a fresh ID.
func NewUser(email, name, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

// NewChatUser creates a user from a messaging identifier.
func NewChatUser(phone, name, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Phone:        phone,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
