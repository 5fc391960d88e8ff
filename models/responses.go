// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenTypeBearer is the only token type issued by the server.
const TokenTypeBearer = "bearer"

// LoginResponse is returned on successful login. Salt and TwoFactorEnabled
// always accompany the token.
type LoginResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	Salt             string `json:"salt"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
}

// RegisterResponse is returned on successful registration and by the
// profile endpoint.
type RegisterResponse struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
}

// TwoFactorDescriptor lists the TOTP parameters an authenticator app needs
// when the provisioning URI cannot be scanned.
type TwoFactorDescriptor struct {
	Algorithm string `json:"algorithm"`
	Digits    int    `json:"digits"`
	Period    uint   `json:"period"`
	Issuer    string `json:"issuer"`
	Account   string `json:"account"`
	Secret    string `json:"secret"`
}

// TwoFactorSetup is returned by 2FA setup.
type TwoFactorSetup struct {
	Secret          string              `json:"secret"`
	ProvisioningURI string              `json:"provisioning_uri"`
	Descriptor      TwoFactorDescriptor `json:"descriptor"`

	// QRCode is a data:image/png;base64 URI of the provisioning URI.
	QRCode string `json:"qr_code"`
}

// TwoFactorCode is the request body of 2FA verify and disable.
type TwoFactorCode struct {
	Code string `json:"code"`
}

// TwoFactorStatus is the response body of 2FA verify and disable.
//
// A successful verify also carries a fresh vault-scoped token that replaces
// the pending token issued by login.
type TwoFactorStatus struct {
	Enabled     bool   `json:"enabled"`
	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
