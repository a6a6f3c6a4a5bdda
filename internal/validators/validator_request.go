package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldTitle    = "title"
	FieldContent  = "content"
)

const (
	// minPasswordLength mirrors the minimum enforced at registration time.
	minPasswordLength = 6

	// maxTitleLength and maxContentLength match the column bounds of the
	// notes table; enforcing them here produces a 400 instead of a driver
	// error surfacing as a 500.
	maxTitleLength   = 255
	maxContentLength = 10000
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RequestValidator validates the typed request bodies accepted by the HTTP
// boundary: credentials for registration/login and note payloads for
// create/update.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialsRequest:
		return v.validateCredentials(ctx, value, fields...)
	case *models.CredentialsRequest:
		return v.validateCredentials(ctx, *value, fields...)

	case models.NoteRequest:
		return v.validateNote(ctx, value, fields...)
	case *models.NoteRequest:
		return v.validateNote(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// validateCredentials checks the email format and the password length.
// When fields is empty, all fields are validated.
func (v *RequestValidator) validateCredentials(_ context.Context, creds models.CredentialsRequest, fields ...string) error {
	for _, field := range v.fieldsOrDefault(fields, FieldEmail, FieldPassword) {
		switch field {
		case FieldEmail:
			email := strings.TrimSpace(creds.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if !emailPattern.MatchString(email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
			if len(creds.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateNote checks that the title and content are non-empty after
// trimming whitespace and fit the persisted column bounds.
func (v *RequestValidator) validateNote(_ context.Context, note models.NoteRequest, fields ...string) error {
	for _, field := range v.fieldsOrDefault(fields, FieldTitle, FieldContent) {
		switch field {
		case FieldTitle:
			title := strings.TrimSpace(note.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if len(title) > maxTitleLength {
				return ErrTitleTooLong
			}
		case FieldContent:
			content := strings.TrimSpace(note.Content)
			if content == "" {
				return ErrEmptyContent
			}
			if len(content) > maxContentLength {
				return ErrContentTooLong
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) fieldsOrDefault(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
