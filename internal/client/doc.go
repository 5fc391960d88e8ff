// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the trustme command-line client.
//
// Every command is a one-shot cobra command. Commands that read or write
// sealed fields prompt for the master password without echo and derive the
// key for that command only; nothing but the session token, salt and 2FA
// flag outlives the process.
package client
