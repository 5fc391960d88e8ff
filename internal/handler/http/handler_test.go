package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/mock"
	"github.com/MKhiriev/trustme/internal/service"
	"github.com/MKhiriev/trustme/models"
)

const testToken = "test-token"

type handlerFixture struct {
	handler     *Handler
	router      http.Handler
	auth        *mock.MockAuthService
	twoFactor   *mock.MockTwoFactorService
	credentials *mock.MockCredentialService
	appInfo     *mock.MockAppInfoService
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		auth:        mock.NewMockAuthService(ctrl),
		twoFactor:   mock.NewMockTwoFactorService(ctrl),
		credentials: mock.NewMockCredentialService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}
	f.handler = NewHandler(&service.Services{
		AuthService:       f.auth,
		TwoFactorService:  f.twoFactor,
		CredentialService: f.credentials,
		AppInfoService:    f.appInfo,
	}, logger.Nop())
	f.router = f.handler.Init()
	return f
}

// signedIn makes the next bearer token resolve to alice (user 7) on a route
// that needs a vault token.
func (f *handlerFixture) signedIn() {
	f.signedInFor(models.TokenScopeVault)
}

func (f *handlerFixture) signedInFor(scope models.TokenScope) {
	f.auth.EXPECT().ResolveIdentity(gomock.Any(), testToken, scope).
		Return(models.User{UserID: 7, Username: "alice"}, nil)
}

func (f *handlerFixture) do(t *testing.T, method, path, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)
	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.NotSame(t, h, NewHandler(svc, log))
}
