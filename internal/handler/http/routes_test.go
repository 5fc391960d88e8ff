// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/trustme/internal/app"
)

var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodPost, "/api/2fa/setup"},
	{http.MethodPost, "/api/2fa/verify"},
	{http.MethodPost, "/api/2fa/disable"},
	{http.MethodGet, "/api/user"},
	{http.MethodDelete, "/api/user"},
	{http.MethodPost, "/api/credentials"},
	{http.MethodGet, "/api/credentials"},
	{http.MethodPost, "/api/credentials/batch"},
	{http.MethodGet, "/api/credentials/1"},
	{http.MethodPatch, "/api/credentials/1"},
	{http.MethodDelete, "/api/credentials/1"},
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	f := newHandlerFixture(t)

	for _, rt := range protectedRoutes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rr := f.do(t, rt.method, rt.path, "", false)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, app.MsgUnauthenticated, errorBody(t, rr))
		})
	}
}

func TestInit_PublicRoutes(t *testing.T) {
	f := newHandlerFixture(t)

	// an empty body is rejected by the handler, which proves the route exists
	for _, path := range []string{"/api/auth/register", "/api/auth/login"} {
		rr := f.do(t, http.MethodPost, path, "", false)
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
	}

	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3")
	rr := f.do(t, http.MethodGet, "/api/version", "", false)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_UnknownRoutesAreNotFound(t *testing.T) {
	f := newHandlerFixture(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/unknown"},
		{http.MethodGet, "/api/auth/register"},
		{http.MethodPut, "/api/credentials/1"},
		{http.MethodPost, "/api/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := f.do(t, tt.method, tt.path, "", true)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, app.MsgNotFound, errorBody(t, rr))
		})
	}
}

func TestInit_SetsTraceID(t *testing.T) {
	f := newHandlerFixture(t)

	rr := f.do(t, http.MethodGet, "/api/unknown", "", false)
	require.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
