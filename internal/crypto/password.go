// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2Algorithm = "argon2id"

// Argon2Params are the Argon2id cost parameters used for master password
// verifiers. Memory is expressed in KiB.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params returns the OWASP recommended Argon2id settings:
// 1 iteration, 64 MiB, 4 lanes, 16-byte salt, 32-byte hash.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		SaltLen: 16,
		KeyLen:  32,
	}
}

// Validate checks that the parameters stay within interactive bounds.
func (p Argon2Params) Validate() error {
	switch {
	case p.Time < 1 || p.Time > 10:
		return fmt.Errorf("%w: argon2 time must be in [1, 10], got %d", ErrConfiguration, p.Time)
	case p.Threads < 1:
		return fmt.Errorf("%w: argon2 threads must be positive", ErrConfiguration)
	case p.Memory < 8*uint32(p.Threads) || p.Memory > 1024*1024:
		return fmt.Errorf("%w: argon2 memory must be in [8*threads KiB, 1 GiB], got %d KiB", ErrConfiguration, p.Memory)
	case p.SaltLen < 16:
		return fmt.Errorf("%w: argon2 salt must be at least 16 bytes", ErrConfiguration)
	case p.KeyLen < 16 || p.KeyLen > 64:
		return fmt.Errorf("%w: argon2 key length must be in [16, 64]", ErrConfiguration)
	}
	return nil
}

// argon2Verifier is the Argon2id implementation of [PasswordVerifier].
// Verifiers are PHC strings:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
type argon2Verifier struct {
	params Argon2Params
}

// NewPasswordVerifier constructs an Argon2id [PasswordVerifier]. It returns
// [ErrConfiguration] when params are out of bounds.
func NewPasswordVerifier(params Argon2Params) (PasswordVerifier, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &argon2Verifier{params: params}, nil
}

// Hash implements [PasswordVerifier].
func (v *argon2Verifier) Hash(secret string) (string, error) {
	salt := make([]byte, v.params.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate verifier salt: %w", err)
	}

	hash := argon2.IDKey([]byte(secret), salt, v.params.Time, v.params.Memory, v.params.Threads, v.params.KeyLen)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Algorithm,
		argon2.Version,
		v.params.Memory,
		v.params.Time,
		v.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Verify implements [PasswordVerifier]. The stored parameters are used for
// recomputation, so verifiers survive a change of the configured cost.
func (v *argon2Verifier) Verify(secret, verifier string) bool {
	params, salt, want, err := decodeVerifier(verifier)
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(secret), salt, params.Time, params.Memory, params.Threads, uint32(len(want)))
	defer Wipe(got)

	return subtle.ConstantTimeCompare(got, want) == 1
}

func decodeVerifier(verifier string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	parts := strings.Split(verifier, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != argon2Algorithm {
		return params, nil, nil, fmt.Errorf("unsupported verifier format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("parse verifier version: %w", err)
	}
	if version != argon2.Version {
		return params, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return params, nil, nil, fmt.Errorf("parse verifier params: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("decode verifier salt: %w", err)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, fmt.Errorf("decode verifier hash: %w", err)
	}

	params.SaltLen = uint32(len(salt))
	params.KeyLen = uint32(len(hash))
	if err = params.Validate(); err != nil {
		return params, nil, nil, err
	}

	return params, salt, hash, nil
}
