package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/trustme/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// the pending token handed out by login may only submit a TOTP code
	router.Group(func(r chi.Router) {
		r.Use(h.authorize(models.TokenScopeTwoFactor))

		r.Post("/api/2fa/verify", h.verifyTwoFactor)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/2fa/setup", h.setupTwoFactor)
		r.Post("/api/2fa/disable", h.disableTwoFactor)

		r.Get("/api/user", h.getProfile)
		r.Delete("/api/user", h.deleteAccount)

		r.Post("/api/credentials", h.createCredential)
		r.Get("/api/credentials", h.listCredentials)
		r.Post("/api/credentials/batch", h.createCredentials)
		r.Get("/api/credentials/{id}", h.getCredential)
		r.Patch("/api/credentials/{id}", h.updateCredential)
		r.Delete("/api/credentials/{id}", h.deleteCredential)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
