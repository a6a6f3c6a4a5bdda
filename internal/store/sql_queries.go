package store

import (
	"github.com/MKhiriev/go-note-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, created_at
    FROM users
    WHERE user_id = $1;`
)

// psql is the statement builder configured for PostgreSQL-style
// ($1, $2, ...) placeholders, shared by all note query builders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildCreateNoteQuery builds the INSERT for a new note. The RETURNING clause
// hands back the canonical database representation, including the
// server-assigned identifier and timestamps.
func buildCreateNoteQuery(note models.Note) (string, []any, error) {
	return psql.
		Insert(note.TableName()).
		Columns("user_id", "title", "content").
		Values(note.UserID, note.Title, note.Content).
		Suffix("RETURNING id, user_id, title, content, created_at, updated_at").
		ToSql()
}

// buildListNotesQuery builds the owner-scoped listing query. Notes are ordered
// by most-recently-updated first; id breaks ties between equal timestamps so
// the ordering stays deterministic.
func buildListNotesQuery(userID int64) (string, []any, error) {
	return psql.
		Select("id", "user_id", "title", "content", "created_at", "updated_at").
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "id DESC").
		ToSql()
}

// buildUpdateNoteQuery builds the owner-scoped UPDATE. Matching on both id and
// user_id keeps "does not exist" and "not yours" indistinguishable to callers.
func buildUpdateNoteQuery(noteID, userID int64, title, content string) (string, []any, error) {
	return psql.
		Update(models.Note{}.TableName()).
		Set("title", title).
		Set("content", content).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

// buildDeleteNoteQuery builds the owner-scoped DELETE.
func buildDeleteNoteQuery(noteID, userID int64) (string, []any, error) {
	return psql.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}
