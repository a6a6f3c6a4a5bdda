package models

// Response is the envelope shared by every JSON response the API produces.
// Success mirrors the HTTP status class; Message is a human-readable note and
// is omitted when empty.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AuthResponse is returned by the registration and login endpoints.
// Token carries the compact JWS string the client must present in the
// Authorization header on protected routes.
type AuthResponse struct {
	Response
	Token string `json:"token"`
	User  User   `json:"user"`
}

// NoteResponse is returned by the note creation endpoint.
type NoteResponse struct {
	Response
	Note Note `json:"note"`
}

// NotesListResponse is returned by the note listing endpoint. Count duplicates
// len(Notes) so clients can validate the payload without iterating it.
type NotesListResponse struct {
	Response
	Count int    `json:"count"`
	Notes []Note `json:"notes"`
}

// HealthResponse is returned by the health endpoint and reports whether the
// backing database answered a ping.
type HealthResponse struct {
	Response
	Database string `json:"database"`
}
