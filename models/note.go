package models

import "time"

// Note is a free-text record owned by one user.
//
// Position follows the same dense per-user ordinal contract as Word entries
// and is resequenced after deletion. CreatedAt drives the default
// newest-first display order.
type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Position  int       `json:"position"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
