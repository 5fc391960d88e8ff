// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential protection primitives: the master
// password verifier, the key derivation function and the envelope cipher used
// to seal individual credential fields.
//
// Nothing in this package knows about the network, the database or users.
// Every function works on explicit inputs, so the same code can run on the
// server or inside a client.
//
// Scheme:
//
//	Verifier = PasswordVerifier.Hash(masterPassword)         (login, server)
//	Key      = KeyDeriver.DeriveKey(masterPassword, salt)    (client)
//	Field    = EnvelopeCipher.Seal(plaintext, Key)           (client)
//	Plain    = EnvelopeCipher.Open(Field, Key)               (client)
package crypto

import "github.com/MKhiriev/trustme/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordVerifier turns a master password into a one-way verifier string and
// checks candidates against it.
//
// The verifier embeds its own salt and cost parameters. It is unrelated to the
// account salt, which only feeds key derivation.
type PasswordVerifier interface {
	// Hash returns an opaque verifier for secret.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches verifier. Malformed verifiers or
	// verifiers produced by another algorithm or version never match.
	Verify(secret, verifier string) bool
}

// KeyDeriver derives the 256-bit symmetric key used by [EnvelopeCipher] from
// the master password and the 16-byte account salt.
type KeyDeriver interface {
	// DeriveKey returns the same 32-byte key for the same inputs. The caller
	// owns the returned slice and should [Wipe] it once done.
	DeriveKey(secret string, salt []byte) ([]byte, error)

	// GenerateSalt returns a fresh random account salt.
	GenerateSalt() ([]byte, error)
}

// EnvelopeCipher seals and opens a single credential field.
type EnvelopeCipher interface {
	// Seal encrypts plaintext under key with a fresh random nonce and returns
	// the base64 ciphertext, nonce and tag.
	Seal(plaintext string, key []byte) (models.EncryptedField, error)

	// Open verifies and decrypts a field. It returns [ErrDecoding] for bad
	// base64 and [ErrAuthentication] when the tag does not verify.
	Open(field models.EncryptedField, key []byte) (string, error)
}
