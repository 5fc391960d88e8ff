// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local session database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file holding the login session.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Crypto carries the key derivation cost, which must match across every
	// client of the same account.
	Crypto Crypto
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view.
//
// Command-line flags belong to the client's own commands, so only the
// environment, the JSON file and defaults are consulted here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg), nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	return &ClientConfig{
		Crypto: cfg.Crypto,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
	}
}
