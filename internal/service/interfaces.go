package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account from the given credentials. The
	// email is normalised (trimmed, lower-cased) and the password is hashed
	// before anything reaches the store.
	RegisterUser(ctx context.Context, creds models.CredentialsRequest) (models.User, error)

	// Login authenticates an existing account. Unknown email and wrong
	// password are both reported as ErrInvalidCredentials so that callers
	// cannot distinguish the two cases.
	Login(ctx context.Context, creds models.CredentialsRequest) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	// Expired tokens fail with ErrTokenIsExpired, everything else with
	// ErrTokenIsInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService handles the owner-scoped note CRUD surface.
type NoteService interface {
	// CreateNote persists a new note owned by userID.
	CreateNote(ctx context.Context, userID int64, req models.NoteRequest) (models.Note, error)

	// ListNotes returns every note owned by userID, most recently updated
	// first.
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// UpdateNote replaces title and content of the note matching both
	// noteID and userID; the bool reports whether a match was found.
	UpdateNote(ctx context.Context, noteID, userID int64, req models.NoteRequest) (bool, error)

	// DeleteNote removes the note matching both noteID and userID; the bool
	// reports whether a match was found.
	DeleteNote(ctx context.Context, noteID, userID int64) (bool, error)
}

// PasswordHasher is the one-way password hashing contract used by the auth
// service. Implementations must produce salted hashes, so hashing the same
// input twice yields different outputs.
type PasswordHasher interface {
	// Hash derives a salted one-way hash from the plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether plaintext matches hash. A mismatch is not an
	// error; only a malformed hash value produces one.
	Verify(password, hash string) (bool, error)
}
