// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// Wipe zeroes b in place. Use it on derived keys and other transient secrets
// as soon as they are no longer needed.
func Wipe(b []byte) {
	clear(b)
}
