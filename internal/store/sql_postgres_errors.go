// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database call may be retried.
type ErrorClassification int

const (
	// NonRetryable is the default for constraint violations, syntax errors,
	// data exceptions and anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// failures, deadlocks and a server that is starting up.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] using the SQLSTATE
// code carried by *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException, // class 08
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback, // class 40
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow: // 57P03
		return Retryable
	default:
		return NonRetryable
	}
}

// readRetryDelays is the backoff between attempts of idempotent reads.
var readRetryDelays = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond}

// retryRead runs fn again after each delay while it fails with a retryable
// error. Only side-effect free queries go through it.
func (db *DB) retryRead(ctx context.Context, fn func() error) error {
	err := fn()
	for _, delay := range readRetryDelays {
		if err == nil || !db.IsRetryable(err) {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		err = fn()
	}
	return err
}
