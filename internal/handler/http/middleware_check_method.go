// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/trustme/internal/app"
	"github.com/MKhiriev/trustme/internal/utils"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405 it answers 404 when the method is not registered for
// the path, so an unsupported method does not reveal that the route exists.
// Parameterised routes such as /api/credentials/{id} are matched through the
// router's own tree. If the method does match, the request is served
// normally.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			notFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
