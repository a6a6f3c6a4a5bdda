package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// All queries are built with squirrel (see sql_queries.go) and every mutating
// operation is scoped by both note id and owner id.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note and returns the fully populated
// [models.Note] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// createdAt and updatedAt are set by the database defaults to the same
// NOW() value, so a freshly created note sorts by its creation time.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building insert query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var saved models.Note
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.Title, &saved.Content, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error scanning inserted note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrNoteNotSaved, err)
	}

	return saved, nil
}

// ListNotesByUser returns every note owned by userID ordered by UpdatedAt
// descending. A user with no notes gets an empty slice, not an error.
func (r *noteRepository) ListNotesByUser(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotesByUser").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.Retryable(err)).Str("func", "*noteRepository.ListNotesByUser").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotesByUser").Msg("error scanning note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotesByUser").Msg("error iterating note rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote replaces the title and content of the note matching both noteID
// and userID and refreshes its updated_at timestamp. The returned bool
// reports whether a row matched; a non-matching id+owner pair is not an
// error so that callers can translate it to a not-found response without
// revealing whether the note exists.
func (r *noteRepository) UpdateNote(ctx context.Context, noteID, userID int64, title, content string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(noteID, userID, title, content)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building update query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.Retryable(err)).Str("func", "*noteRepository.UpdateNote").Msg("error executing update")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error reading affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// DeleteNote removes the note matching both noteID and userID. Match
// semantics are identical to [noteRepository.UpdateNote].
func (r *noteRepository) DeleteNote(ctx context.Context, noteID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error building delete query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.Retryable(err)).Str("func", "*noteRepository.DeleteNote").Msg("error executing delete")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error reading affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
