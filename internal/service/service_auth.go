// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/trustme/internal/config"
	"github.com/MKhiriev/trustme/internal/crypto"
	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/store"
	"github.com/MKhiriev/trustme/internal/validators"
	"github.com/MKhiriev/trustme/models"
)

// dummyPassword feeds the verifier that unknown usernames are checked
// against, so a failed login costs the same whether or not the user exists.
const dummyPassword = "trustme-dummy-password"

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository

	verifier  crypto.PasswordVerifier
	deriver   crypto.KeyDeriver
	tokens    TokenService
	validator validators.Validator

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// dummyVerifier is a real verifier of dummyPassword built at start-up.
	dummyVerifier string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. deriver is used only for its
// salt source; the server never derives keys.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	verifier crypto.PasswordVerifier,
	deriver crypto.KeyDeriver,
	tokens TokenService,
	cfg config.App,
	logger *logger.Logger,
) (AuthService, error) {
	dummyVerifier, err := verifier.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error building dummy verifier: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		verifier:       verifier,
		deriver:        deriver,
		tokens:         tokens,
		validator:      validators.NewUserValidator(),
		tokenDuration:  cfg.TokenDuration,
		dummyVerifier:  dummyVerifier,
		logger:         logger,
	}, nil
}

// Register creates a new account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if the username or master password is unusable.
//   - ErrUsernameTaken if the username is already registered.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("username", user.Username).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	verifier, err := a.verifier.Hash(user.MasterPassword)
	if err != nil {
		log.Err(err).Msg("error hashing master password")
		return models.User{}, fmt.Errorf("error hashing master password: %w", err)
	}

	salt, err := a.deriver.GenerateSalt()
	if err != nil {
		log.Err(err).Msg("error generating salt")
		return models.User{}, fmt.Errorf("error generating salt: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:         user.Username,
		PasswordVerifier: verifier,
		Salt:             crypto.EncodeSalt(salt),
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, ErrUsernameTaken
		}
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a bearer token.
//
// The response always carries the account salt and the 2FA flag. When the
// flag is set the token is only good for 2FA verify, which trades it for a
// vault token.
func (a *authService) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		a.verifier.Verify(user.MasterPassword, a.dummyVerifier)
		return models.LoginResponse{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Msg("user search by username failed")
		return models.LoginResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.verifier.Verify(user.MasterPassword, foundUser.PasswordVerifier) {
		log.Info().Int64("user_id", foundUser.UserID).Msg("wrong master password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	scope := models.TokenScopeVault
	if foundUser.TwoFactorEnabled {
		scope = models.TokenScopeTwoFactor
	}

	token, err := a.tokens.Issue(foundUser.Username, scope, a.tokenDuration)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("error issuing token")
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		AccessToken:      token.SignedString,
		TokenType:        models.TokenTypeBearer,
		Salt:             foundUser.Salt,
		TwoFactorEnabled: foundUser.TwoFactorEnabled,
	}, nil
}

// ResolveIdentity verifies token and loads the account it names. Expired and
// invalid tokens, and tokens of deleted accounts, are all ErrUnauthenticated;
// the underlying cause stays in the chain for logging. A token still waiting
// for its TOTP code is ErrTwoFactorRequired wherever a vault token is needed.
func (a *authService) ResolveIdentity(ctx context.Context, token string, scope models.TokenScope) (models.User, error) {
	parsed, err := a.tokens.Verify(token)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if !parsed.Scope.Satisfies(scope) {
		return models.User{}, ErrTwoFactorRequired
	}

	return a.findByIdentity(ctx, parsed.Identity)
}

func (a *authService) IssueVaultToken(ctx context.Context, identity string) (models.Token, error) {
	token, err := a.tokens.Issue(identity, models.TokenScopeVault, a.tokenDuration)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", identity).Msg("error issuing vault token")
		return models.Token{}, err
	}
	return token, nil
}

func (a *authService) GetProfile(ctx context.Context, identity string) (models.User, error) {
	return a.findByIdentity(ctx, identity)
}

func (a *authService) DeleteAccount(ctx context.Context, identity string) error {
	user, err := a.findByIdentity(ctx, identity)
	if err != nil {
		return err
	}

	if err = a.userRepository.DeleteUser(ctx, user.UserID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUnauthenticated
		}
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("error deleting account")
		return fmt.Errorf("error deleting account: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.UserID).Msg("account deleted")
	return nil
}

func (a *authService) findByIdentity(ctx context.Context, identity string) (models.User, error) {
	return findUser(ctx, a.userRepository, identity)
}

// findUser loads the account behind an authenticated identity. A missing
// account means the token outlived it.
func findUser(ctx context.Context, repo store.UserRepository, identity string) (models.User, error) {
	user, err := repo.FindUserByUsername(ctx, identity)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		return models.User{}, fmt.Errorf("error loading account: %w", err)
	}
	return user, nil
}
