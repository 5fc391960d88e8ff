// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/trustme/internal/config"
	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/utils"
	"github.com/MKhiriev/trustme/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] for adapterCfg.HTTPAddress. A bare "host:port" address gets
// an http:// scheme.
//
// Returns [ErrEmptyAddress] if adapterCfg.HTTPAddress is blank.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	address := strings.TrimSpace(adapterCfg.HTTPAddress)
	if address == "" {
		return nil, ErrEmptyAddress
	}

	client := utils.NewHTTPClient(address, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.RegisterResponse, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&registered).
		Post("/api/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return registered, nil
}

// Login implements [ServerAdapter]. POST /api/auth/login. The access token of
// a successful login is stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&login).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if login.AccessToken == "" {
		return models.LoginResponse{}, fmt.Errorf("login response carries no access token")
	}

	h.SetToken(login.AccessToken)
	return login, nil
}

// SetupTwoFactor implements [ServerAdapter]. POST /api/2fa/setup.
func (h *httpServerAdapter) SetupTwoFactor(ctx context.Context) (models.TwoFactorSetup, error) {
	var setup models.TwoFactorSetup

	resp, err := h.authedRequest(ctx).
		SetResult(&setup).
		Post("/api/2fa/setup")
	if err != nil {
		return models.TwoFactorSetup{}, fmt.Errorf("2fa setup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TwoFactorSetup{}, err
	}

	return setup, nil
}

// VerifyTwoFactor implements [ServerAdapter]. POST /api/2fa/verify. The
// vault token of a successful verify is stored via SetToken.
func (h *httpServerAdapter) VerifyTwoFactor(ctx context.Context, code string) (models.TwoFactorStatus, error) {
	status, err := h.postCode(ctx, "/api/2fa/verify", code)
	if err != nil {
		return models.TwoFactorStatus{}, err
	}
	if status.AccessToken != "" {
		h.SetToken(status.AccessToken)
	}
	return status, nil
}

// DisableTwoFactor implements [ServerAdapter]. POST /api/2fa/disable.
func (h *httpServerAdapter) DisableTwoFactor(ctx context.Context, code string) (models.TwoFactorStatus, error) {
	return h.postCode(ctx, "/api/2fa/disable", code)
}

func (h *httpServerAdapter) postCode(ctx context.Context, path, code string) (models.TwoFactorStatus, error) {
	var status models.TwoFactorStatus

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TwoFactorCode{Code: code}).
		SetResult(&status).
		Post(path)
	if err != nil {
		return models.TwoFactorStatus{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TwoFactorStatus{}, err
	}

	return status, nil
}

// GetProfile implements [ServerAdapter]. GET /api/user.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.RegisterResponse, error) {
	var profile models.RegisterResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/user")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return profile, nil
}

// DeleteAccount implements [ServerAdapter]. DELETE /api/user.
func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/user")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateCredential implements [ServerAdapter]. POST /api/credentials.
func (h *httpServerAdapter) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	var created models.Credential

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credential).
		SetResult(&created).
		Post("/api/credentials")
	if err != nil {
		return models.Credential{}, fmt.Errorf("create credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return created, nil
}

// CreateCredentials implements [ServerAdapter]. POST /api/credentials/batch.
func (h *httpServerAdapter) CreateCredentials(ctx context.Context, credentials []models.Credential) ([]models.Credential, error) {
	var created []models.Credential

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BatchCreateRequest{Credentials: credentials}).
		SetResult(&created).
		Post("/api/credentials/batch")
	if err != nil {
		return nil, fmt.Errorf("create credentials request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return created, nil
}

// ListCredentials implements [ServerAdapter]. GET /api/credentials, with the
// filter passed as the "website" query parameter.
func (h *httpServerAdapter) ListCredentials(ctx context.Context, websiteFilter string) ([]models.Credential, error) {
	var credentials []models.Credential

	req := h.authedRequest(ctx).SetResult(&credentials)
	if websiteFilter != "" {
		req.SetQueryParam("website", websiteFilter)
	}

	resp, err := req.Get("/api/credentials")
	if err != nil {
		return nil, fmt.Errorf("list credentials request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return credentials, nil
}

// GetCredential implements [ServerAdapter]. GET /api/credentials/{id}.
func (h *httpServerAdapter) GetCredential(ctx context.Context, credentialID int64) (models.Credential, error) {
	var credential models.Credential

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(credentialID, 10)).
		SetResult(&credential).
		Get("/api/credentials/{id}")
	if err != nil {
		return models.Credential{}, fmt.Errorf("get credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return credential, nil
}

// UpdateCredential implements [ServerAdapter]. PATCH /api/credentials/{id}.
func (h *httpServerAdapter) UpdateCredential(ctx context.Context, credentialID int64, patch models.CredentialPatch) (models.Credential, error) {
	var updated models.Credential

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(credentialID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&updated).
		Patch("/api/credentials/{id}")
	if err != nil {
		return models.Credential{}, fmt.Errorf("update credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return updated, nil
}

// DeleteCredential implements [ServerAdapter]. DELETE /api/credentials/{id}.
func (h *httpServerAdapter) DeleteCredential(ctx context.Context, credentialID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(credentialID, 10)).
		Delete("/api/credentials/{id}")
	if err != nil {
		return fmt.Errorf("delete credential request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetServerVersion implements [ServerAdapter]. GET /api/version returns the
// version as plain text.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
