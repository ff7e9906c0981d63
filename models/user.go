package models

import "time"

// User represents an account entity used for authentication and authorization.
// Every word and note record in the system is owned by exactly one User, and
// ownership is checked on every mutating operation.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique handle used during registration and login.
	Username string `json:"username"`

	// Password carries the plaintext credential on inbound register/login
	// requests only. It is never persisted and never serialized back out.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
