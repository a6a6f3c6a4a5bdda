package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockNoteService implements service.NoteService for unit tests.
type mockNoteService struct {
	createNoteFn func(ctx context.Context, userID int64, req models.NoteRequest) (models.Note, error)
	listNotesFn  func(ctx context.Context, userID int64) ([]models.Note, error)
	updateNoteFn func(ctx context.Context, noteID, userID int64, req models.NoteRequest) (bool, error)
	deleteNoteFn func(ctx context.Context, noteID, userID int64) (bool, error)
}

func (m *mockNoteService) CreateNote(ctx context.Context, userID int64, req models.NoteRequest) (models.Note, error) {
	return m.createNoteFn(ctx, userID, req)
}

func (m *mockNoteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	return m.listNotesFn(ctx, userID)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, noteID, userID int64, req models.NoteRequest) (bool, error) {
	return m.updateNoteFn(ctx, noteID, userID, req)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, noteID, userID int64) (bool, error) {
	return m.deleteNoteFn(ctx, noteID, userID)
}

// newHandlerWithNotes builds a Handler with the given NoteService mock.
func newHandlerWithNotes(t *testing.T, notes service.NoteService) *Handler {
	t.Helper()
	svcs := &service.Services{
		NoteService: notes,
	}
	return NewHandler(svcs, nil, logger.Nop())
}

// noteBody serialises a models.NoteRequest to a JSON request body string.
func noteBody(t *testing.T, n models.NoteRequest) string {
	t.Helper()
	b, err := json.Marshal(n)
	require.NoError(t, err)
	return string(b)
}

// authedRequest builds a request carrying userID in its context, the way the
// auth middleware leaves it for downstream handlers.
func authedRequest(method, target string, body string, userID int64) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// withNoteID injects a chi route context carrying the {id} URL parameter.
func withNoteID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

var validNote = models.NoteRequest{Title: "groceries", Content: "milk, bread"}

func TestCreateNote_Handler_Success(t *testing.T) {
	notes := &mockNoteService{
		createNoteFn: func(_ context.Context, userID int64, req models.NoteRequest) (models.Note, error) {
			assert.Equal(t, int64(42), userID)
			return models.Note{ID: 1, UserID: userID, Title: req.Title, Content: req.Content}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := authedRequest(http.MethodPost, "/api/notes", noteBody(t, validNote), 42)
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.NoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Note created successfully", resp.Message)
	assert.Equal(t, int64(1), resp.Note.ID)
}

func TestCreateNote_Handler_NoUserInContext(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{})
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(noteBody(t, validNote)))
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateNote_Handler_InvalidJSON(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{})
	req := authedRequest(http.MethodPost, "/api/notes", "{bad json", 42)
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestCreateNote_Handler_ValidationFailures(t *testing.T) {
	notes := &mockNoteService{
		createNoteFn: func(_ context.Context, _ int64, _ models.NoteRequest) (models.Note, error) {
			t.Fatal("CreateNote should not be called")
			return models.Note{}, nil
		},
	}
	h := newHandlerWithNotes(t, notes)

	tests := []struct {
		name        string
		note        models.NoteRequest
		wantMessage string
	}{
		{"empty title", models.NoteRequest{Content: "milk"}, "title is required"},
		{"empty content", models.NoteRequest{Title: "groceries"}, "content is required"},
		{"title too long", models.NoteRequest{Title: strings.Repeat("a", 256), Content: "milk"}, "title is too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest(http.MethodPost, "/api/notes", noteBody(t, tt.note), 42)
			rec := httptest.NewRecorder()

			h.createNote(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

func TestCreateNote_Handler_ServiceError(t *testing.T) {
	notes := &mockNoteService{
		createNoteFn: func(_ context.Context, _ int64, _ models.NoteRequest) (models.Note, error) {
			return models.Note{}, errors.New("db connection lost")
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := authedRequest(http.MethodPost, "/api/notes", noteBody(t, validNote), 42)
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server error")
	assert.NotContains(t, rec.Body.String(), "db connection lost", "internal detail must not leak")
}

func TestListNotes_Handler_Success(t *testing.T) {
	notes := &mockNoteService{
		listNotesFn: func(_ context.Context, userID int64) ([]models.Note, error) {
			assert.Equal(t, int64(42), userID)
			return []models.Note{
				{ID: 2, UserID: 42, Title: "newer"},
				{ID: 1, UserID: 42, Title: "older"},
			}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := authedRequest(http.MethodGet, "/api/notes", "", 42)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NotesListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Notes, 2)
	assert.Equal(t, int64(2), resp.Notes[0].ID)
}

func TestListNotes_Handler_Empty(t *testing.T) {
	notes := &mockNoteService{
		listNotesFn: func(_ context.Context, _ int64) ([]models.Note, error) {
			return []models.Note{}, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := authedRequest(http.MethodGet, "/api/notes", "", 42)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NotesListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Notes, "an empty list must serialise as [], not null")
}

func TestListNotes_Handler_NoUserInContext(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{})
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListNotes_Handler_ServiceError(t *testing.T) {
	notes := &mockNoteService{
		listNotesFn: func(_ context.Context, _ int64) ([]models.Note, error) {
			return nil, errors.New("db connection lost")
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := authedRequest(http.MethodGet, "/api/notes", "", 42)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdateNote_Handler_Success(t *testing.T) {
	notes := &mockNoteService{
		updateNoteFn: func(_ context.Context, noteID, userID int64, req models.NoteRequest) (bool, error) {
			assert.Equal(t, int64(5), noteID)
			assert.Equal(t, int64(42), userID)
			return true, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := withNoteID(authedRequest(http.MethodPut, "/api/notes/5", noteBody(t, validNote), 42), "5")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Note updated successfully")
}

func TestUpdateNote_Handler_NotFound(t *testing.T) {
	notes := &mockNoteService{
		updateNoteFn: func(_ context.Context, _, _ int64, _ models.NoteRequest) (bool, error) {
			return false, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := withNoteID(authedRequest(http.MethodPut, "/api/notes/5", noteBody(t, validNote), 999), "5")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Note not found")
}

func TestUpdateNote_Handler_InvalidID(t *testing.T) {
	notes := &mockNoteService{
		updateNoteFn: func(_ context.Context, _, _ int64, _ models.NoteRequest) (bool, error) {
			t.Fatal("UpdateNote should not be called")
			return false, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := withNoteID(authedRequest(http.MethodPut, "/api/notes/abc", noteBody(t, validNote), 42), "abc")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	// a non-numeric id cannot match any note
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Note not found")
}

func TestUpdateNote_Handler_InvalidJSON(t *testing.T) {
	h := newHandlerWithNotes(t, &mockNoteService{})
	req := withNoteID(authedRequest(http.MethodPut, "/api/notes/5", "{bad json", 42), "5")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateNote_Handler_ValidationFailure(t *testing.T) {
	notes := &mockNoteService{
		updateNoteFn: func(_ context.Context, _, _ int64, _ models.NoteRequest) (bool, error) {
			t.Fatal("UpdateNote should not be called")
			return false, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	body := noteBody(t, models.NoteRequest{Title: "", Content: "c"})
	req := withNoteID(authedRequest(http.MethodPut, "/api/notes/5", body, 42), "5")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title is required")
}

func TestUpdateNote_Handler_ServiceError(t *testing.T) {
	notes := &mockNoteService{
		updateNoteFn: func(_ context.Context, _, _ int64, _ models.NoteRequest) (bool, error) {
			return false, errors.New("db connection lost")
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := withNoteID(authedRequest(http.MethodPut, "/api/notes/5", noteBody(t, validNote), 42), "5")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server error")
}

func TestDeleteNote_Handler_Success(t *testing.T) {
	notes := &mockNoteService{
		deleteNoteFn: func(_ context.Context, noteID, userID int64) (bool, error) {
			assert.Equal(t, int64(5), noteID)
			assert.Equal(t, int64(42), userID)
			return true, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := withNoteID(authedRequest(http.MethodDelete, "/api/notes/5", "", 42), "5")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Note deleted successfully")
}

func TestDeleteNote_Handler_NotFound(t *testing.T) {
	notes := &mockNoteService{
		deleteNoteFn: func(_ context.Context, _, _ int64) (bool, error) {
			return false, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := withNoteID(authedRequest(http.MethodDelete, "/api/notes/5", "", 999), "5")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Note not found")
}

func TestDeleteNote_Handler_InvalidID(t *testing.T) {
	notes := &mockNoteService{
		deleteNoteFn: func(_ context.Context, _, _ int64) (bool, error) {
			t.Fatal("DeleteNote should not be called")
			return false, nil
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := withNoteID(authedRequest(http.MethodDelete, "/api/notes/abc", "", 42), "abc")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteNote_Handler_ServiceError(t *testing.T) {
	notes := &mockNoteService{
		deleteNoteFn: func(_ context.Context, _, _ int64) (bool, error) {
			return false, errors.New("db connection lost")
		},
	}

	h := newHandlerWithNotes(t, notes)
	req := withNoteID(authedRequest(http.MethodDelete, "/api/notes/5", "", 42), "5")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func Test_statusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", service.ErrTokenIsExpired, http.StatusUnauthorized},
		{"invalid token", service.ErrTokenIsInvalid, http.StatusForbidden},
		{"wrapped invalid data", errors.Join(errors.New("outer"), service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
