package models

// CredentialsRequest is the request body accepted by the registration and
// login endpoints. Both fields are required; validation happens at the
// handler boundary before any service call.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NoteRequest is the request body accepted by the note create and update
// endpoints. Title and Content must be non-empty after trimming whitespace.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
