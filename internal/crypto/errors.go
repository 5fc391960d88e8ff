// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrAuthentication is returned by Open when the field cannot be
	// decrypted: tampered ciphertext, nonce or tag, truncated artifacts or a
	// wrong key all look the same to the caller.
	ErrAuthentication = errors.New("cannot decrypt field")

	// ErrDecoding is returned when one of the artifacts is not valid base64.
	ErrDecoding = errors.New("malformed encrypted field encoding")

	// ErrInvalidKey is returned when the key is not 32 bytes long.
	ErrInvalidKey = errors.New("invalid encryption key length")

	// ErrInvalidSalt is returned when the account salt is not 16 bytes long.
	ErrInvalidSalt = errors.New("invalid salt length")

	// ErrConfiguration is returned when cost parameters fall outside the
	// supported bounds or derivation exceeds the configured time budget.
	ErrConfiguration = errors.New("invalid crypto configuration")
)
