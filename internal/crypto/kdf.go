// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/scrypt"
)

const (
	// SaltSize is the length of the per-account key derivation salt.
	SaltSize = 16

	// KeySize is the length of derived keys (AES-256).
	KeySize = 32

	// maxScryptMemory bounds 128*N*r so a misconfigured cost cannot exhaust
	// the host.
	maxScryptMemory = 256 << 20
)

// ScryptParams are the scrypt cost parameters: N is the CPU/memory cost
// factor, R the block size and P the parallelism.
type ScryptParams struct {
	N int
	R int
	P int
}

// DefaultScryptParams returns N=2^14, r=8, p=1, which derives a key in well
// under a second on commodity hardware.
func DefaultScryptParams() ScryptParams {
	return ScryptParams{N: 1 << 14, R: 8, P: 1}
}

// Validate checks that the parameters are accepted by scrypt and stay within
// interactive bounds.
func (p ScryptParams) Validate() error {
	switch {
	case p.N < 1<<10 || p.N > 1<<20 || p.N&(p.N-1) != 0:
		return fmt.Errorf("%w: scrypt N must be a power of two in [2^10, 2^20], got %d", ErrConfiguration, p.N)
	case p.R < 1 || p.R > 32:
		return fmt.Errorf("%w: scrypt r must be in [1, 32], got %d", ErrConfiguration, p.R)
	case p.P < 1 || p.P > 16:
		return fmt.Errorf("%w: scrypt p must be in [1, 16], got %d", ErrConfiguration, p.P)
	case 128*p.N*p.R > maxScryptMemory:
		return fmt.Errorf("%w: scrypt memory 128*N*r exceeds %d bytes", ErrConfiguration, maxScryptMemory)
	}
	return nil
}

type scryptDeriver struct {
	params ScryptParams
}

// NewKeyDeriver constructs a scrypt based [KeyDeriver]. It returns
// [ErrConfiguration] when params are out of bounds.
func NewKeyDeriver(params ScryptParams) (KeyDeriver, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &scryptDeriver{params: params}, nil
}

// DeriveKey implements [KeyDeriver].
func (d *scryptDeriver) DeriveKey(secret string, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidSalt, SaltSize, len(salt))
	}

	password := []byte(secret)
	defer Wipe(password)

	key, err := scrypt.Key(password, salt, d.params.N, d.params.R, d.params.P, KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return key, nil
}

// GenerateSalt implements [KeyDeriver]. It reads [SaltSize] bytes from the
// OS CSPRNG.
func (d *scryptDeriver) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// CheckDerivationBudget derives one throwaway key and reports
// [ErrConfiguration] if it took longer than budget. A zero budget disables the
// check.
func CheckDerivationBudget(deriver KeyDeriver, budget time.Duration) error {
	if budget <= 0 {
		return nil
	}

	salt := make([]byte, SaltSize)
	start := time.Now()
	key, err := deriver.DeriveKey("budget-check", salt)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	Wipe(key)

	if elapsed > budget {
		return fmt.Errorf("%w: key derivation took %s, budget is %s", ErrConfiguration, elapsed, budget)
	}
	return nil
}
