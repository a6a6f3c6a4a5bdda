package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService is the concrete implementation of NoteService. It applies
// last-line input defense (the HTTP boundary validates first) and delegates
// persistence to a NoteRepository, which enforces ownership scoping.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given NoteRepository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// CreateNote persists a new note owned by userID. Title and content are
// trimmed; empty values are rejected even though the handler validates
// earlier, so the store never sees a blank note.
func (s *noteService) CreateNote(ctx context.Context, userID int64, req models.NoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	title, content := strings.TrimSpace(req.Title), strings.TrimSpace(req.Content)
	if userID == 0 || title == "" || content == "" {
		log.Error().Int64("user_id", userID).Msg("invalid note data provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	createdNote, err := s.noteRepository.CreateNote(ctx, models.Note{
		UserID:  userID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

// ListNotes returns every note owned by userID, most recently updated first.
func (s *noteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		log.Error().Msg("no user ID provided for note listing")
		return nil, ErrInvalidDataProvided
	}

	notes, err := s.noteRepository.ListNotesByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note listing ended with error")
		return nil, fmt.Errorf("note listing ended with error: %w", err)
	}

	return notes, nil
}

// UpdateNote replaces the title and content of the note matching both noteID
// and userID. The returned bool reports whether a match was found; callers
// translate false into a not-found response.
func (s *noteService) UpdateNote(ctx context.Context, noteID, userID int64, req models.NoteRequest) (bool, error) {
	log := logger.FromContext(ctx)

	title, content := strings.TrimSpace(req.Title), strings.TrimSpace(req.Content)
	if noteID == 0 || userID == 0 || title == "" || content == "" {
		log.Error().Int64("note_id", noteID).Int64("user_id", userID).Msg("invalid note data provided")
		return false, ErrInvalidDataProvided
	}

	matched, err := s.noteRepository.UpdateNote(ctx, noteID, userID, title, content)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Int64("user_id", userID).Msg("note update ended with error")
		return false, fmt.Errorf("note update ended with error: %w", err)
	}

	return matched, nil
}

// DeleteNote removes the note matching both noteID and userID. Match
// semantics mirror UpdateNote.
func (s *noteService) DeleteNote(ctx context.Context, noteID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	if noteID == 0 || userID == 0 {
		log.Error().Int64("note_id", noteID).Int64("user_id", userID).Msg("invalid note identifiers provided")
		return false, ErrInvalidDataProvided
	}

	matched, err := s.noteRepository.DeleteNote(ctx, noteID, userID)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Int64("user_id", userID).Msg("note deletion ended with error")
		return false, fmt.Errorf("note deletion ended with error: %w", err)
	}

	return matched, nil
}
