// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/MKhiriev/trustme/internal/config"
	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/store"
	"github.com/MKhiriev/trustme/models"
)

// TOTP parameters. Authenticator apps assume these, so they are not
// configurable.
const (
	totpPeriod     = 30
	totpSkew       = 1
	totpSecretSize = 20
	totpDigits     = otp.DigitsSix
	totpAlgorithm  = otp.AlgorithmSHA1

	qrCodeSize = 256
)

type twoFactorService struct {
	userRepository store.UserRepository
	issuer         string
	now            func() time.Time
	renderQRCode   func(key *otp.Key) (string, error)
	logger         *logger.Logger
}

// NewTwoFactorService constructs a TOTP-backed [TwoFactorService]. now is
// the clock codes are checked against; nil means time.Now.
func NewTwoFactorService(userRepository store.UserRepository, cfg config.App, now func() time.Time, logger *logger.Logger) TwoFactorService {
	if now == nil {
		now = time.Now
	}
	return &twoFactorService{
		userRepository: userRepository,
		issuer:         cfg.TOTPIssuer,
		now:            now,
		renderQRCode:   qrCodeDataURI,
		logger:         logger,
	}
}

// Setup generates a new secret and stores it unconfirmed. Calling it again
// before Verify replaces the previous secret.
func (s *twoFactorService) Setup(ctx context.Context, identity string) (models.TwoFactorSetup, error) {
	log := logger.FromContext(ctx)

	user, err := findUser(ctx, s.userRepository, identity)
	if err != nil {
		return models.TwoFactorSetup{}, err
	}
	if user.TwoFactorState() == models.TwoFactorEnabled {
		return models.TwoFactorSetup{}, ErrAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: user.Username,
		Period:      totpPeriod,
		SecretSize:  totpSecretSize,
		Digits:      totpDigits,
		Algorithm:   totpAlgorithm,
	})
	if err != nil {
		log.Err(err).Msg("error generating totp secret")
		return models.TwoFactorSetup{}, fmt.Errorf("error generating totp secret: %w", err)
	}

	qrCode, err := s.renderQRCode(key)
	if err != nil {
		log.Err(err).Msg("error rendering qr code")
		return models.TwoFactorSetup{}, err
	}

	if err = s.userRepository.SetTwoFactorSecret(ctx, user.UserID, key.Secret()); err != nil {
		if errors.Is(err, store.ErrTwoFactorStateConflict) {
			return models.TwoFactorSetup{}, ErrAlreadyEnabled
		}
		log.Err(err).Int64("user_id", user.UserID).Msg("error storing totp secret")
		return models.TwoFactorSetup{}, fmt.Errorf("error storing totp secret: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("two-factor setup started")

	return models.TwoFactorSetup{
		Secret:          key.Secret(),
		ProvisioningURI: key.URL(),
		Descriptor: models.TwoFactorDescriptor{
			Algorithm: totpAlgorithm.String(),
			Digits:    totpDigits.Length(),
			Period:    totpPeriod,
			Issuer:    s.issuer,
			Account:   user.Username,
			Secret:    key.Secret(),
		},
		QRCode: qrCode,
	}, nil
}

// Verify checks code against the stored secret. The first success after
// Setup enables 2FA. A failed check changes nothing.
func (s *twoFactorService) Verify(ctx context.Context, identity, code string) error {
	user, err := findUser(ctx, s.userRepository, identity)
	if err != nil {
		return err
	}
	if user.TwoFactorState() == models.TwoFactorDisabled {
		return ErrNotConfigured
	}
	if !s.validCode(code, user.TwoFactorSecret) {
		return ErrInvalidCode
	}
	if user.TwoFactorEnabled {
		return nil
	}

	err = s.userRepository.EnableTwoFactor(ctx, user.UserID, user.TwoFactorSecret)
	if errors.Is(err, store.ErrTwoFactorStateConflict) {
		// a concurrent setup replaced the secret or a concurrent verify won
		current, findErr := findUser(ctx, s.userRepository, identity)
		if findErr == nil && current.TwoFactorEnabled && current.TwoFactorSecret == user.TwoFactorSecret {
			return nil
		}
		return ErrInvalidCode
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("error enabling two-factor")
		return fmt.Errorf("error enabling two-factor: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.UserID).Msg("two-factor enabled")
	return nil
}

// Disable turns 2FA off. It requires a currently valid code.
func (s *twoFactorService) Disable(ctx context.Context, identity, code string) error {
	user, err := findUser(ctx, s.userRepository, identity)
	if err != nil {
		return err
	}
	if !user.TwoFactorEnabled {
		return ErrNotEnabled
	}
	if !s.validCode(code, user.TwoFactorSecret) {
		return ErrInvalidCode
	}

	if err = s.userRepository.DisableTwoFactor(ctx, user.UserID); err != nil {
		if errors.Is(err, store.ErrTwoFactorStateConflict) {
			return ErrNotEnabled
		}
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("error disabling two-factor")
		return fmt.Errorf("error disabling two-factor: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.UserID).Msg("two-factor disabled")
	return nil
}

// validCode accepts the code of the current 30-second window and of one
// window either side.
func (s *twoFactorService) validCode(code, secret string) bool {
	valid, err := totp.ValidateCustom(code, secret, s.now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    totpDigits,
		Algorithm: totpAlgorithm,
	})
	return err == nil && valid
}

func qrCodeDataURI(key *otp.Key) (string, error) {
	img, err := key.Image(qrCodeSize, qrCodeSize)
	if err != nil {
		return "", fmt.Errorf("error rendering qr code: %w", err)
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("error encoding qr code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
