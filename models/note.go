package models

import "time"

// Note represents a single text note owned by exactly one user.
//
// A note is only ever visible or mutable through requests authenticated as
// its owner; every store operation on notes filters by UserID in addition to
// the note's own identifier.
type Note struct {
	// ID is the unique identifier of the note, assigned by the database.
	ID int64 `json:"id"`

	// UserID references the owning user. It is a weak reference used only
	// for ownership filtering; notes are never shared between users.
	UserID int64 `json:"user_id"`

	// Title is a short, non-empty caption for the note.
	Title string `json:"title"`

	// Content is the note body. Non-empty, plain text only.
	Content string `json:"content"`

	// CreatedAt is set once when the note is first persisted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every successful update and drives the
	// most-recently-updated-first ordering of note listings.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
