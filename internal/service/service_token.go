// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/trustme/internal/config"
	"github.com/MKhiriev/trustme/internal/utils"
	"github.com/MKhiriev/trustme/models"
)

// tokenService signs HS256 JWTs whose subject is the username. There is no
// revocation list: a token lives until it expires.
type tokenService struct {
	signKey string
	issuer  string
	now     func() time.Time
}

// NewTokenService builds a [TokenService] from the app config. now is the
// clock used for issuing and validating; nil means time.Now.
func NewTokenService(cfg config.App, now func() time.Time) TokenService {
	if now == nil {
		now = time.Now
	}
	return &tokenService{
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		now:     now,
	}
}

func (s *tokenService) Issue(identity string, scope models.TokenScope, ttl time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, identity, scope, ttl, s.signKey, s.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

func (s *tokenService) Verify(token string) (models.Token, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer, s.now)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return parsed, nil
}
