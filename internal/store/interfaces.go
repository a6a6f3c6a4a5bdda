package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// UserRepository is the persistence contract for user accounts.
// There are no update or delete operations: once created, an account's
// identifier and email are immutable for the record's lifetime.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Fails with ErrEmailAlreadyExists if the email is
	// already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up an account by its lower-cased email.
	// Fails with ErrNoUserWasFound if no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns identity fields only; the password hash is never
	// loaded by this method.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// NoteRepository is the persistence contract for notes. Every operation is
// owner-scoped: update and delete match on id AND user_id so that a miss is
// indistinguishable between "does not exist" and "not yours".
type NoteRepository interface {
	// CreateNote inserts a new note and returns it with server-assigned
	// fields populated (ID, CreatedAt, UpdatedAt).
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// ListNotesByUser returns all notes owned by userID ordered by
	// UpdatedAt descending. An empty slice is not an error.
	ListNotesByUser(ctx context.Context, userID int64) ([]models.Note, error)

	// UpdateNote replaces title and content and refreshes UpdatedAt for the
	// note matching both noteID and userID. The returned bool reports
	// whether any row matched.
	UpdateNote(ctx context.Context, noteID, userID int64, title, content string) (bool, error)

	// DeleteNote removes the note matching both noteID and userID. The
	// returned bool reports whether any row matched.
	DeleteNote(ctx context.Context, noteID, userID int64) (bool, error)
}

// ErrorClassificator classifies low-level database errors as retryable or
// non-retryable.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
