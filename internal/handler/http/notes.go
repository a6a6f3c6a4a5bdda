package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeJSONError(w, "Access denied", http.StatusUnauthorized)
		return
	}

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("note request failed validation")
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	createdNote, err := h.services.NoteService.CreateNote(ctx, userID, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NoteResponse{
		Response: models.Response{Success: true, Message: "Note created successfully"},
		Note:     createdNote,
	}, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeJSONError(w, "Access denied", http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, userID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NotesListResponse{
		Response: models.Response{Success: true},
		Count:    len(notes),
		Notes:    notes,
	}, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeJSONError(w, "Access denied", http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		// A non-numeric id cannot match any note; report the same
		// not-found as a well-formed miss.
		log.Err(err).Msg("invalid note id in path")
		writeJSONError(w, "Note not found", http.StatusNotFound)
		return
	}

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("note request failed validation")
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	matched, err := h.services.NoteService.UpdateNote(ctx, noteID, userID, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if !matched {
		// Deliberately ambiguous between "does not exist" and "not yours".
		writeJSONError(w, "Note not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "Note updated successfully"}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeJSONError(w, "Access denied", http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid note id in path")
		writeJSONError(w, "Note not found", http.StatusNotFound)
		return
	}

	matched, err := h.services.NoteService.DeleteNote(ctx, noteID, userID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if !matched {
		writeJSONError(w, "Note not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "Note deleted successfully"}, http.StatusOK)
}

// noteIDFromRequest extracts and parses the {id} URL parameter.
func noteIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// respondServiceError maps a service-layer error to an HTTP response.
// Client errors (4xx) carry the error message; anything mapping to a 5xx is
// logged with full detail server-side and answered with a generic message so
// that no internal detail leaks to the client.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error while handling request")
		writeJSONError(w, "Server error", status)
		return
	}

	log.Err(err).Msg("request failed")
	writeJSONError(w, err.Error(), status)
}
