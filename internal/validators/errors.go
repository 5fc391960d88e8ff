package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidUsername    = errors.New("username must be 1-64 characters without surrounding spaces")
	ErrEmptyPassword      = errors.New("master password is required")
	ErrEmptyWebsiteURL    = errors.New("website url is required")
	ErrWebsiteURLTooLong  = errors.New("website url is too long")
	ErrMissingField       = errors.New("encrypted field is required")
	ErrIncompleteField    = errors.New("encrypted field needs ciphertext, nonce and tag")
	ErrMalformedField     = errors.New("encrypted field is not valid base64")
	ErrInvalidNonceLength = errors.New("nonce must decode to 12 bytes")
	ErrInvalidTagLength   = errors.New("tag must decode to 16 bytes")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrConflictingNotes   = errors.New("notes cannot be replaced and cleared in one update")
	ErrEmptyCredentials   = errors.New("credentials list cannot be empty")
	ErrTooManyCredentials = errors.New("too many credentials in one batch")
)
