// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/trustme/models"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

// tokenClaims are the registered claims plus the scope the token was
// issued for.
type tokenClaims struct {
	jwt.RegisteredClaims
	Scope models.TokenScope `json:"scope"`
}

// GenerateJWTToken creates an HS256 token with the standard claims
// iss, sub, iat and exp = now + tokenDuration, plus a "scope" claim.
//
// A zero tokenDuration is allowed and produces a token that is already
// expired. Issuer, subject, scope and signKey are required.
func GenerateJWTToken(issuer, subject string, scope models.TokenScope, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || subject == "" || scope == "" || signKey == "" || tokenDuration < 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	expiresAt := now.Add(tokenDuration)
	claims := &tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Scope: scope,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		Identity:     subject,
		Scope:        scope,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseJWTToken verifies the signature, pins the algorithm to
// HS256, requires exp and scope, checks iss against tokenIssuer and returns
// the subject with its scope.
//
// now supplies the validation clock. Errors wrap the jwt sentinels, so callers
// can tell an expired token (jwt.ErrTokenExpired) from everything else.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", jwt.ErrTokenInvalidSubject)
	}
	if claims.Scope != models.TokenScopeVault && claims.Scope != models.TokenScopeTwoFactor {
		return models.Token{}, fmt.Errorf("%w: unknown scope %q", jwt.ErrTokenInvalidClaims, claims.Scope)
	}

	return models.Token{
		SignedString: tokenString,
		Identity:     claims.Subject,
		Scope:        claims.Scope,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
