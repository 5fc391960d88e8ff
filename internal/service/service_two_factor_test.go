// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base32"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/mock"
	"github.com/MKhiriev/trustme/internal/store"
	"github.com/MKhiriev/trustme/models"
)

const testTOTPSecret = "JBSWY3DPEHPK3PXPJBSWY3DPEHPK3PXP"

func totpCode(t *testing.T, secret string, at time.Time) string {
	t.Helper()
	code, err := totp.GenerateCodeCustom(secret, at, totp.ValidateOpts{
		Period:    30,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	require.NoError(t, err)
	return code
}

func newTestTwoFactorService(t *testing.T) (TwoFactorService, *mock.MockUserRepository, *fakeClock) {
	t.Helper()
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	clock := newFakeClock()
	return NewTwoFactorService(repo, testAppConfig(), clock.Now, logger.Nop()), repo, clock
}

func pendingAlice() models.User {
	u := storedAlice()
	u.TwoFactorSecret = testTOTPSecret
	return u
}

func enabledAlice() models.User {
	u := pendingAlice()
	u.TwoFactorEnabled = true
	return u
}

// ── Setup ────────────────────────────────────────────────────────────────────

func TestTwoFactorService_Setup(t *testing.T) {
	svc, repo, _ := newTestTwoFactorService(t)

	var stored string
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(storedAlice(), nil)
	repo.EXPECT().SetTwoFactorSecret(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, secret string) error {
			stored = secret
			return nil
		},
	)

	setup, err := svc.Setup(context.Background(), "alice")
	require.NoError(t, err)

	assert.Len(t, setup.Secret, 32)
	decoded, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(setup.Secret)
	require.NoError(t, err)
	assert.Len(t, decoded, 20)
	assert.Equal(t, stored, setup.Secret)

	assert.True(t, strings.HasPrefix(setup.ProvisioningURI, "otpauth://totp/"))
	assert.Contains(t, setup.ProvisioningURI, "alice")
	assert.Contains(t, setup.ProvisioningURI, "secret="+setup.Secret)
	assert.True(t, strings.HasPrefix(setup.QRCode, "data:image/png;base64,"))

	assert.Equal(t, models.TwoFactorDescriptor{
		Algorithm: "SHA1",
		Digits:    6,
		Period:    30,
		Issuer:    "TrustMe Test",
		Account:   "alice",
		Secret:    setup.Secret,
	}, setup.Descriptor)
}

func TestTwoFactorService_Setup_FromPendingReplacesSecret(t *testing.T) {
	svc, repo, _ := newTestTwoFactorService(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(pendingAlice(), nil)
	repo.EXPECT().SetTwoFactorSecret(gomock.Any(), int64(1), gomock.Not(testTOTPSecret)).Return(nil)

	_, err := svc.Setup(context.Background(), "alice")
	assert.NoError(t, err)
}

func TestTwoFactorService_Setup_AlreadyEnabled(t *testing.T) {
	svc, repo, _ := newTestTwoFactorService(t)
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(enabledAlice(), nil)

	_, err := svc.Setup(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrAlreadyEnabled)
}

func TestTwoFactorService_Setup_EnabledConcurrently(t *testing.T) {
	svc, repo, _ := newTestTwoFactorService(t)
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(storedAlice(), nil)
	repo.EXPECT().SetTwoFactorSecret(gomock.Any(), int64(1), gomock.Any()).Return(store.ErrTwoFactorStateConflict)

	_, err := svc.Setup(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrAlreadyEnabled)
}

func TestTwoFactorService_Setup_QRCodeFailureStoresNothing(t *testing.T) {
	svc, repo, _ := newTestTwoFactorService(t)
	svc.(*twoFactorService).renderQRCode = func(*otp.Key) (string, error) {
		return "", errors.New("png encoder failed")
	}

	// no SetTwoFactorSecret expectation: the mock fails the test if it is called
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(storedAlice(), nil)

	_, err := svc.Setup(context.Background(), "alice")
	assert.Error(t, err)
}

// ── Verify ───────────────────────────────────────────────────────────────────

func TestTwoFactorService_Verify_EnablesOnFirstSuccess(t *testing.T) {
	svc, repo, clock := newTestTwoFactorService(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(pendingAlice(), nil)
	repo.EXPECT().EnableTwoFactor(gomock.Any(), int64(1), testTOTPSecret).Return(nil)

	assert.NoError(t, svc.Verify(context.Background(), "alice", totpCode(t, testTOTPSecret, clock.Now())))
}

func TestTwoFactorService_Verify_AcceptsAdjacentWindows(t *testing.T) {
	for name, offset := range map[string]time.Duration{"previous": -30 * time.Second, "next": 30 * time.Second} {
		t.Run(name, func(t *testing.T) {
			svc, repo, clock := newTestTwoFactorService(t)
			repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(enabledAlice(), nil)

			assert.NoError(t, svc.Verify(context.Background(), "alice", totpCode(t, testTOTPSecret, clock.Now().Add(offset))))
		})
	}
}

func TestTwoFactorService_Verify_ReplayAfterTwoWindowsIsRejected(t *testing.T) {
	svc, repo, clock := newTestTwoFactorService(t)
	code := totpCode(t, testTOTPSecret, clock.Now())

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(enabledAlice(), nil).Times(2)

	require.NoError(t, svc.Verify(context.Background(), "alice", code))

	clock.Advance(61 * time.Second)
	assert.ErrorIs(t, svc.Verify(context.Background(), "alice", code), ErrInvalidCode)
}

func TestTwoFactorService_Verify_NotConfigured(t *testing.T) {
	svc, repo, _ := newTestTwoFactorService(t)
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(storedAlice(), nil)

	assert.ErrorIs(t, svc.Verify(context.Background(), "alice", "123456"), ErrNotConfigured)
}

func TestTwoFactorService_Verify_WrongCodeDoesNotMutate(t *testing.T) {
	svc, repo, clock := newTestTwoFactorService(t)
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(pendingAlice(), nil).Times(3)
	// no EnableTwoFactor expectation: any call fails the test

	code := totpCode(t, testTOTPSecret, clock.Now().Add(5*time.Minute))
	assert.ErrorIs(t, svc.Verify(context.Background(), "alice", code), ErrInvalidCode)
	assert.ErrorIs(t, svc.Verify(context.Background(), "alice", "12345"), ErrInvalidCode)
	assert.ErrorIs(t, svc.Verify(context.Background(), "alice", "abcdef"), ErrInvalidCode)
}

func TestTwoFactorService_Verify_LostRaceToSetup(t *testing.T) {
	svc, repo, clock := newTestTwoFactorService(t)
	replaced := pendingAlice()
	replaced.TwoFactorSecret = "KRSXG5CTMVRXEZLUKRSXG5CTMVRXEZLU"

	gomock.InOrder(
		repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(pendingAlice(), nil),
		repo.EXPECT().EnableTwoFactor(gomock.Any(), int64(1), testTOTPSecret).Return(store.ErrTwoFactorStateConflict),
		repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(replaced, nil),
	)

	err := svc.Verify(context.Background(), "alice", totpCode(t, testTOTPSecret, clock.Now()))
	assert.ErrorIs(t, err, ErrInvalidCode)
}

// ── Disable ──────────────────────────────────────────────────────────────────

func TestTwoFactorService_Disable(t *testing.T) {
	svc, repo, clock := newTestTwoFactorService(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(enabledAlice(), nil)
	repo.EXPECT().DisableTwoFactor(gomock.Any(), int64(1)).Return(nil)

	assert.NoError(t, svc.Disable(context.Background(), "alice", totpCode(t, testTOTPSecret, clock.Now())))
}

func TestTwoFactorService_Disable_Rejections(t *testing.T) {
	t.Run("not enabled", func(t *testing.T) {
		svc, repo, clock := newTestTwoFactorService(t)
		repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(pendingAlice(), nil)

		err := svc.Disable(context.Background(), "alice", totpCode(t, testTOTPSecret, clock.Now()))
		assert.ErrorIs(t, err, ErrNotEnabled)
	})

	t.Run("wrong code", func(t *testing.T) {
		svc, repo, _ := newTestTwoFactorService(t)
		repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(enabledAlice(), nil)

		assert.ErrorIs(t, svc.Disable(context.Background(), "alice", "000000"), ErrInvalidCode)
	})
}
