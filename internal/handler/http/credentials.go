// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/trustme/internal/app"
	"github.com/MKhiriev/trustme/internal/utils"
	"github.com/MKhiriev/trustme/models"
)

// websiteFilterParam is the query parameter of the list endpoint.
const websiteFilterParam = "website"

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var credential models.Credential
	if err := decodeJSON(w, r, &credential); err != nil {
		writeError(w, r, err, "invalid credential")
		return
	}
	credential.UserID = userID

	created, err := h.services.CredentialService.Create(r.Context(), credential)
	if err != nil {
		writeError(w, r, err, "credential creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) createCredentials(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var batch models.BatchCreateRequest
	if err := decodeJSON(w, r, &batch); err != nil {
		writeError(w, r, err, "invalid credential batch")
		return
	}

	created, err := h.services.CredentialService.CreateBatch(r.Context(), userID, batch.Credentials)
	if err != nil {
		writeError(w, r, err, "credential batch creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	credentials, err := h.services.CredentialService.List(r.Context(), userID, r.URL.Query().Get(websiteFilterParam))
	if err != nil {
		writeError(w, r, err, "credential listing failed")
		return
	}

	_, _ = utils.WriteJSON(w, credentials, http.StatusOK)
}

func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	userID, credentialID, ok := h.credentialTarget(w, r)
	if !ok {
		return
	}

	credential, err := h.services.CredentialService.Get(r.Context(), userID, credentialID)
	if err != nil {
		writeError(w, r, err, "credential lookup failed")
		return
	}

	_, _ = utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	userID, credentialID, ok := h.credentialTarget(w, r)
	if !ok {
		return
	}

	var patch models.CredentialPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, err, "invalid credential patch")
		return
	}

	updated, err := h.services.CredentialService.Update(r.Context(), userID, credentialID, patch)
	if err != nil {
		writeError(w, r, err, "credential update failed")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	userID, credentialID, ok := h.credentialTarget(w, r)
	if !ok {
		return
	}

	if err := h.services.CredentialService.Delete(r.Context(), userID, credentialID); err != nil {
		writeError(w, r, err, "credential deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgUnauthenticated, http.StatusUnauthorized)
	}
	return userID, ok
}

func (h *Handler) credentialTarget(w http.ResponseWriter, r *http.Request) (userID, credentialID int64, ok bool) {
	if userID, ok = h.userID(w, r); !ok {
		return 0, 0, false
	}

	credentialID, err := credentialIDParam(r)
	if err != nil {
		writeError(w, r, err, "invalid credential id")
		return 0, 0, false
	}
	return userID, credentialID, true
}
