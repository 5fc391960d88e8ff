package http

import (
	"net/http"

	"github.com/MKhiriev/trustme/internal/app"
	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/utils"
	"github.com/MKhiriev/trustme/models"
)

// auth guards routes that need a fully signed in account.
func (h *Handler) auth(next http.Handler) http.Handler {
	return h.authorize(models.TokenScopeVault)(next)
}

// authorize returns an HTTP middleware that enforces bearer-token
// authentication for tokens of the given scope.
//
// It extracts the token from the "Authorization" header, resolves it to an
// account via [service.AuthService.ResolveIdentity] and stores both the
// username and the user ID in the request context for downstream handlers.
//
// Every failure (missing or malformed header, expired token, bad signature,
// deleted account) is answered with the same 401 body so callers cannot
// tell them apart. A valid token still waiting for its second factor gets a
// distinct 401 so the client knows to ask for a TOTP code.
func (h *Handler) authorize(scope models.TokenScope) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
				utils.WriteError(w, app.MsgUnauthenticated, http.StatusUnauthorized)
				return
			}

			tokenString, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				log.Debug().Err(err).Send()
				utils.WriteError(w, app.MsgUnauthenticated, http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			user, err := h.services.AuthService.ResolveIdentity(ctx, tokenString, scope)
			if err != nil {
				writeError(w, r, err, "token rejected")
				return
			}

			ctx = utils.WithIdentity(ctx, user.Username)
			ctx = utils.WithUserID(ctx, user.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
