package client

import "errors"

var (
	errPasswordMismatch = errors.New("master passwords do not match")
	errEmptyInput       = errors.New("input must not be empty")
	errInvalidID        = errors.New("credential id must be a positive integer")
	errAborted          = errors.New("aborted")
)
