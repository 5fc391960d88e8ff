// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trustme/internal/config"
	"github.com/MKhiriev/trustme/models"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "trustme-test",
		TokenDuration: 30 * time.Minute,
		TOTPIssuer:    "TrustMe Test",
		Version:       "1.0.0",
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	clock := newFakeClock()
	svc := NewTokenService(testAppConfig(), clock.Now)

	token, err := svc.Issue("alice", models.TokenScopeVault, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "alice", token.Identity)
	assert.True(t, clock.Now().Add(time.Minute).Equal(token.ExpiresAt))

	parsed, err := svc.Verify(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Identity)
	assert.Equal(t, models.TokenScopeVault, parsed.Scope)
}

func TestTokenService_TwoFactorScopeSurvivesVerify(t *testing.T) {
	svc := NewTokenService(testAppConfig(), newFakeClock().Now)

	token, err := svc.Issue("alice", models.TokenScopeTwoFactor, time.Minute)
	require.NoError(t, err)

	parsed, err := svc.Verify(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.TokenScopeTwoFactor, parsed.Scope)
	assert.False(t, parsed.Scope.Satisfies(models.TokenScopeVault))
}

func TestTokenService_ExpiresWithInjectedClock(t *testing.T) {
	clock := newFakeClock()
	svc := NewTokenService(testAppConfig(), clock.Now)

	token, err := svc.Issue("alice", models.TokenScopeVault, time.Minute)
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	_, err = svc.Verify(token.SignedString)
	require.NoError(t, err)

	clock.Advance(2 * time.Second)
	_, err = svc.Verify(token.SignedString)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenService_ZeroTTLIsAlreadyExpired(t *testing.T) {
	svc := NewTokenService(testAppConfig(), newFakeClock().Now)

	token, err := svc.Issue("alice", models.TokenScopeVault, 0)
	require.NoError(t, err)

	_, err = svc.Verify(token.SignedString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_InvalidSignature(t *testing.T) {
	clock := newFakeClock()
	svc := NewTokenService(testAppConfig(), clock.Now)

	otherCfg := testAppConfig()
	otherCfg.TokenSignKey = "another-key"
	forged, err := NewTokenService(otherCfg, clock.Now).Issue("alice", models.TokenScopeVault, time.Minute)
	require.NoError(t, err)

	otherCfg = testAppConfig()
	otherCfg.TokenIssuer = "someone-else"
	foreign, err := NewTokenService(otherCfg, clock.Now).Issue("alice", models.TokenScopeVault, time.Minute)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "alice",
		Issuer:    "trustme-test",
		ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Minute)),
	}).SignedString([]byte("test-sign-key"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong key":       forged.SignedString,
		"wrong issuer":    foreign.SignedString,
		"wrong algorithm": hs512,
		"malformed":       "not.a.jwt",
		"empty":           "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidSignature)
			assert.NotErrorIs(t, err, ErrTokenExpired)
		})
	}
}

func TestTokenService_ExpiredWithWrongKeyIsInvalidSignature(t *testing.T) {
	clock := newFakeClock()
	otherCfg := testAppConfig()
	otherCfg.TokenSignKey = "another-key"

	forged, err := NewTokenService(otherCfg, clock.Now).Issue("alice", models.TokenScopeVault, time.Minute)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	_, err = NewTokenService(testAppConfig(), clock.Now).Verify(forged.SignedString)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenService_IssueRejectsEmptyIdentity(t *testing.T) {
	_, err := NewTokenService(testAppConfig(), nil).Issue("", models.TokenScopeVault, time.Minute)
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
