// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/trustme/internal/app"
	"github.com/MKhiriev/trustme/internal/utils"
	"github.com/MKhiriev/trustme/models"
)

func (h *Handler) setupTwoFactor(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgUnauthenticated, http.StatusUnauthorized)
		return
	}

	setup, err := h.services.TwoFactorService.Setup(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "two-factor setup failed")
		return
	}

	_, _ = utils.WriteJSON(w, setup, http.StatusOK)
}

func (h *Handler) verifyTwoFactor(w http.ResponseWriter, r *http.Request) {
	identity, code, ok := h.twoFactorRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.TwoFactorService.Verify(r.Context(), identity, code); err != nil {
		writeError(w, r, err, "two-factor verification failed")
		return
	}

	token, err := h.services.AuthService.IssueVaultToken(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "error issuing vault token")
		return
	}

	_, _ = utils.WriteJSON(w, models.TwoFactorStatus{
		Enabled:     true,
		AccessToken: token.String(),
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

func (h *Handler) disableTwoFactor(w http.ResponseWriter, r *http.Request) {
	identity, code, ok := h.twoFactorRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.TwoFactorService.Disable(r.Context(), identity, code); err != nil {
		writeError(w, r, err, "two-factor disable failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.TwoFactorStatus{Enabled: false}, http.StatusOK)
}

// twoFactorRequest reads the identity and the {"code"} body. It has already
// replied when ok is false.
func (h *Handler) twoFactorRequest(w http.ResponseWriter, r *http.Request) (identity, code string, ok bool) {
	identity, ok = utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgUnauthenticated, http.StatusUnauthorized)
		return "", "", false
	}

	var body models.TwoFactorCode
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err, "invalid two-factor request")
		return "", "", false
	}

	return identity, body.Code, true
}
