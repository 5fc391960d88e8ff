package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/trustme/internal/app"
	"github.com/MKhiriev/trustme/internal/service"
	"github.com/MKhiriev/trustme/internal/utils"
	"github.com/MKhiriev/trustme/models"
)

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		resolveErr error
	}{
		{name: "missing header"},
		{name: "no scheme", header: testToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer "},
		{name: "expired token", header: "Bearer " + testToken, resolveErr: service.ErrUnauthenticated},
		{name: "deleted account", header: "Bearer " + testToken, resolveErr: service.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.resolveErr != nil {
				f.auth.EXPECT().ResolveIdentity(gomock.Any(), testToken, models.TokenScopeVault).Return(models.User{}, tt.resolveErr)
			}

			called := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/api/credentials", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			f.handler.auth(next).ServeHTTP(rr, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, app.MsgUnauthenticated, errorBody(t, rr))
		})
	}
}

func TestAuth_StoresIdentityInContext(t *testing.T) {
	f := newHandlerFixture(t)
	f.signedIn()

	var (
		identity string
		userID   int64
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, _ = utils.GetIdentityFromContext(r.Context())
		userID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/credentials", nil)
	req.Header.Set("Authorization", "bearer "+testToken)
	rr := httptest.NewRecorder()
	f.handler.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alice", identity)
	assert.Equal(t, int64(7), userID)
}

func TestAuthorize_PendingTwoFactorToken(t *testing.T) {
	f := newHandlerFixture(t)
	f.auth.EXPECT().ResolveIdentity(gomock.Any(), testToken, models.TokenScopeVault).
		Return(models.User{}, service.ErrTwoFactorRequired)

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/api/credentials", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr := httptest.NewRecorder()
	f.handler.auth(next).ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgTwoFactorRequired, errorBody(t, rr))
}

func TestAuthorize_PassesScope(t *testing.T) {
	f := newHandlerFixture(t)
	f.signedInFor(models.TokenScopeTwoFactor)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/2fa/verify", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr := httptest.NewRecorder()
	f.handler.authorize(models.TokenScopeTwoFactor)(next).ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}
