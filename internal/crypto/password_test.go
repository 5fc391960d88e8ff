// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastArgon2Params keeps tests quick while staying inside Validate bounds.
func fastArgon2Params() Argon2Params {
	return Argon2Params{Time: 1, Memory: 64, Threads: 1, SaltLen: 16, KeyLen: 32}
}

func newTestVerifier(t *testing.T) PasswordVerifier {
	t.Helper()
	v, err := NewPasswordVerifier(fastArgon2Params())
	require.NoError(t, err)
	return v
}

func TestPasswordVerifier_RoundTrip(t *testing.T) {
	v := newTestVerifier(t)

	verifier, err := v.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(verifier, "$argon2id$v=19$m=64,t=1,p=1$"))
	assert.True(t, v.Verify("correct horse battery staple", verifier))
	assert.False(t, v.Verify("correct horse battery stapl", verifier))
	assert.False(t, v.Verify("", verifier))
}

func TestPasswordVerifier_SaltedPerCall(t *testing.T) {
	v := newTestVerifier(t)

	a, err := v.Hash("same")
	require.NoError(t, err)
	b, err := v.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, v.Verify("same", a))
	assert.True(t, v.Verify("same", b))
}

func TestPasswordVerifier_UsesEmbeddedParams(t *testing.T) {
	old, err := NewPasswordVerifier(fastArgon2Params())
	require.NoError(t, err)

	stronger := fastArgon2Params()
	stronger.Time = 2
	stronger.Memory = 128
	current, err := NewPasswordVerifier(stronger)
	require.NoError(t, err)

	verifier, err := old.Hash("pw")
	require.NoError(t, err)
	assert.True(t, current.Verify("pw", verifier))
}

func TestPasswordVerifier_Malformed(t *testing.T) {
	v := newTestVerifier(t)
	good, err := v.Hash("pw")
	require.NoError(t, err)
	parts := strings.Split(good, "$")

	tests := []struct {
		name     string
		verifier string
	}{
		{name: "empty", verifier: ""},
		{name: "garbage", verifier: "not-a-verifier"},
		{name: "bcrypt", verifier: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"},
		{name: "argon2i", verifier: strings.Replace(good, "$argon2id$", "$argon2i$", 1)},
		{name: "wrong version", verifier: strings.Replace(good, "v=19", "v=16", 1)},
		{name: "missing hash", verifier: strings.Join(parts[:5], "$")},
		{name: "bad salt encoding", verifier: strings.Join([]string{"", parts[1], parts[2], parts[3], "!!!", parts[5]}, "$")},
		{name: "bad params", verifier: strings.Join([]string{"", parts[1], parts[2], "m=x,t=1,p=1", parts[4], parts[5]}, "$")},
		{name: "huge memory", verifier: strings.Join([]string{"", parts[1], parts[2], "m=4194304,t=1,p=1", parts[4], parts[5]}, "$")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, v.Verify("pw", tt.verifier))
			})
		})
	}
}

func TestArgon2Params_Validate(t *testing.T) {
	assert.NoError(t, DefaultArgon2Params().Validate())

	bad := DefaultArgon2Params()
	bad.Time = 0
	assert.ErrorIs(t, bad.Validate(), ErrConfiguration)

	bad = DefaultArgon2Params()
	bad.Threads = 0
	assert.ErrorIs(t, bad.Validate(), ErrConfiguration)

	bad = DefaultArgon2Params()
	bad.Memory = 4
	assert.ErrorIs(t, bad.Validate(), ErrConfiguration)

	bad = DefaultArgon2Params()
	bad.SaltLen = 8
	_, err := NewPasswordVerifier(bad)
	assert.ErrorIs(t, err, ErrConfiguration)
}
