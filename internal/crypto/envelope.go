// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/trustme/models"
)

const (
	// NonceSize is the AES-GCM nonce length (96 bits).
	NonceSize = 12

	// TagSize is the AES-GCM authentication tag length (128 bits).
	TagSize = 16
)

var (
	fieldEncoding = base64.StdEncoding

	// saltEncoding rejects non-canonical padding bits so that two different
	// strings never decode to the same salt.
	saltEncoding = base64.StdEncoding.Strict()
)

type aesGCMCipher struct{}

// NewEnvelopeCipher returns the AES-256-GCM [EnvelopeCipher]. It is stateless
// and safe for concurrent use.
func NewEnvelopeCipher() EnvelopeCipher {
	return &aesGCMCipher{}
}

// Seal implements [EnvelopeCipher]. The GCM output is split so that the tag
// travels separately from the ciphertext.
func (c *aesGCMCipher) Seal(plaintext string, key []byte) (models.EncryptedField, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedField{}, err
	}

	nonce := make([]byte, NonceSize)
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedField{}, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]

	return models.EncryptedField{
		Ciphertext: fieldEncoding.EncodeToString(ciphertext),
		Nonce:      fieldEncoding.EncodeToString(nonce),
		Tag:        fieldEncoding.EncodeToString(tag),
	}, nil
}

// Open implements [EnvelopeCipher].
func (c *aesGCMCipher) Open(field models.EncryptedField, key []byte) (string, error) {
	ciphertext, nonce, tag, err := DecodeField(field)
	if errors.Is(err, ErrAuthentication) {
		return "", ErrAuthentication
	}
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	if len(nonce) != NonceSize || len(tag) != TagSize {
		return "", ErrAuthentication
	}

	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrAuthentication
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not UTF-8", ErrDecoding)
	}

	return string(plaintext), nil
}

// DecodeField decodes the three base64 artifacts of field without checking
// their lengths. An artifact with characters outside the base64 alphabet or a
// length that is not a multiple of four yields [ErrDecoding]. A well-formed
// string that does not round-trip, such as one with misplaced padding or
// non-zero padding bits, was altered after sealing and yields
// [ErrAuthentication].
func DecodeField(field models.EncryptedField) (ciphertext, nonce, tag []byte, err error) {
	if ciphertext, err = decodeArtifact(field.Ciphertext); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: ciphertext", err)
	}
	if nonce, err = decodeArtifact(field.Nonce); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: nonce", err)
	}
	if tag, err = decodeArtifact(field.Tag); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: tag", err)
	}
	return ciphertext, nonce, tag, nil
}

func decodeArtifact(encoded string) ([]byte, error) {
	if len(encoded)%4 != 0 || strings.IndexFunc(encoded, outsideAlphabet) >= 0 {
		return nil, ErrDecoding
	}

	raw, err := fieldEncoding.DecodeString(encoded)
	if err != nil || fieldEncoding.EncodeToString(raw) != encoded {
		return nil, ErrAuthentication
	}
	return raw, nil
}

func outsideAlphabet(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return false
	case r == '+', r == '/', r == '=':
		return false
	}
	return true
}

// EncodeSalt and DecodeSalt convert the account salt to and from the base64
// text that crosses the API boundary.
func EncodeSalt(salt []byte) string {
	return saltEncoding.EncodeToString(salt)
}

func DecodeSalt(encoded string) ([]byte, error) {
	salt, err := saltEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %w", ErrDecoding, err)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidSalt, SaltSize, len(salt))
	}
	return salt, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
