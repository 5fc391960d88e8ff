package http

import (
	"net/http"

	"github.com/MKhiriev/trustme/internal/app"
	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/utils"
	"github.com/MKhiriev/trustme/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(w, r, &user); err != nil {
		writeError(w, r, err, "invalid register request")
		return
	}

	registered, err := h.services.AuthService.Register(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", registered.UserID).Msg("user registered")

	_, _ = utils.WriteJSON(w, models.RegisterResponse{
		ID:               registered.UserID,
		Username:         registered.Username,
		TwoFactorEnabled: registered.TwoFactorEnabled,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(w, r, &user); err != nil {
		writeError(w, r, err, "invalid login request")
		return
	}

	login, err := h.services.AuthService.Login(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	_, _ = utils.WriteJSON(w, login, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgUnauthenticated, http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetProfile(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "error loading profile")
		return
	}

	_, _ = utils.WriteJSON(w, models.RegisterResponse{
		ID:               user.UserID,
		Username:         user.Username,
		TwoFactorEnabled: user.TwoFactorEnabled,
	}, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgUnauthenticated, http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.DeleteAccount(r.Context(), identity); err != nil {
		writeError(w, r, err, "account deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
