// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client runs one command line invocation.
type Client interface {
	Run(ctx context.Context, args []string) error
}

// Prompter reads interactive input.
type Prompter interface {
	// ReadLine shows prompt and returns the entered line without the
	// trailing newline.
	ReadLine(prompt string) (string, error)

	// ReadSecret is like ReadLine but does not echo input on a terminal.
	ReadSecret(prompt string) (string, error)
}

// Clipboard receives text copied by `show --copy`.
type Clipboard interface {
	WriteAll(text string) error
}
