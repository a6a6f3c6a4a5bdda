package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")

	ErrEmptyTitle     = errors.New("title is required")
	ErrTitleTooLong   = errors.New("title is too long")
	ErrEmptyContent   = errors.New("content is required")
	ErrContentTooLong = errors.New("content is too long")
)
