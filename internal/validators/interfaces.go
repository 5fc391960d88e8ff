// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
//
// A [Validator] accepts a value and, optionally, the names of the fields to
// check. Without field names every rule for the value's type is applied.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
