// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/trustme/internal/crypto"
)

const (
	DefaultTokenDuration  = 30 * time.Minute
	DefaultTokenIssuer    = "trustme-password-manager"
	DefaultTOTPIssuer     = "TrustMe Password Manager"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultClientDSN      = "trustme-session.db"
)

// defaultConfig is merged last, so it only fills fields no other source set.
func defaultConfig() *StructuredConfig {
	scrypt := crypto.DefaultScryptParams()
	argon := crypto.DefaultArgon2Params()

	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			TOTPIssuer:    DefaultTOTPIssuer,
		},
		Crypto: Crypto{
			ScryptN:         scrypt.N,
			ScryptR:         scrypt.R,
			ScryptP:         scrypt.P,
			Argon2Time:      argon.Time,
			Argon2MemoryKiB: argon.Memory,
			Argon2Threads:   argon.Threads,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
