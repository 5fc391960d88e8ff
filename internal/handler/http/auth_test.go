package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/trustme/internal/app"
	"github.com/MKhiriev/trustme/internal/service"
	"github.com/MKhiriev/trustme/internal/store"
	"github.com/MKhiriev/trustme/models"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{name: "created", body: `{"username":"alice","master_password":"Secret123!"}`, wantStatus: http.StatusCreated},
		{name: "malformed json", body: `{"username":`, wantStatus: http.StatusBadRequest, wantError: app.MsgInvalidDataProvided},
		{name: "empty username", body: `{"username":"","master_password":"x"}`, serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantError: app.MsgInvalidDataProvided},
		{name: "taken", body: `{"username":"alice","master_password":"x"}`, serviceErr: service.ErrUsernameTaken, wantStatus: http.StatusConflict, wantError: app.MsgUsernameTaken},
		{name: "store conflict", body: `{"username":"alice","master_password":"x"}`, serviceErr: store.ErrUsernameAlreadyExists, wantStatus: http.StatusConflict, wantError: app.MsgUsernameTaken},
		{name: "internal", body: `{"username":"alice","master_password":"x"}`, serviceErr: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantError: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.wantStatus == http.StatusCreated {
				f.auth.EXPECT().Register(gomock.Any(), models.User{Username: "alice", MasterPassword: "Secret123!"}).
					Return(models.User{UserID: 1, Username: "alice", Salt: "salt", PasswordVerifier: "verifier"}, nil)
			} else if tt.serviceErr != nil {
				f.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)
			}

			rr := f.do(t, http.MethodPost, "/api/auth/register", tt.body, false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorBody(t, rr))
				return
			}
			assert.JSONEq(t, `{"id":1,"username":"alice","two_factor_enabled":false}`, rr.Body.String())
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.auth.EXPECT().Login(gomock.Any(), models.User{Username: "alice", MasterPassword: "Secret123!"}).
			Return(models.LoginResponse{
				AccessToken:      "jwt",
				TokenType:        models.TokenTypeBearer,
				Salt:             "c2FsdHNhbHRzYWx0c2FsdA==",
				TwoFactorEnabled: true,
			}, nil)

		rr := f.do(t, http.MethodPost, "/api/auth/login", `{"username":"alice","master_password":"Secret123!"}`, false)
		require.Equal(t, http.StatusOK, rr.Code)

		var got models.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "jwt", got.AccessToken)
		assert.Equal(t, models.TokenTypeBearer, got.TokenType)
		assert.Equal(t, "c2FsdHNhbHRzYWx0c2FsdA==", got.Salt)
		assert.True(t, got.TwoFactorEnabled)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{}, service.ErrInvalidCredentials)

		rr := f.do(t, http.MethodPost, "/api/auth/login", `{"username":"ghost","master_password":"x"}`, false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, app.MsgInvalidCredentials, errorBody(t, rr))
	})

	t.Run("oversized body", func(t *testing.T) {
		f := newHandlerFixture(t)
		body := `{"username":"` + string(make([]byte, maxRequestBodySize)) + `"}`

		rr := f.do(t, http.MethodPost, "/api/auth/login", body, false)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.signedIn()
		f.auth.EXPECT().DeleteAccount(gomock.Any(), "alice").Return(nil)

		rr := f.do(t, http.MethodDelete, "/api/user", "", true)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.signedIn()
		f.auth.EXPECT().DeleteAccount(gomock.Any(), "alice").Return(store.ErrExecutingStatement)

		rr := f.do(t, http.MethodDelete, "/api/user", "", true)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, app.MsgInternalServerError, errorBody(t, rr))
	})
}

func TestGetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.signedIn()
		f.auth.EXPECT().GetProfile(gomock.Any(), "alice").
			Return(models.User{UserID: 7, Username: "alice", TwoFactorEnabled: true, TwoFactorSecret: "JBSWY3DPEHPK3PXP"}, nil)

		rr := f.do(t, http.MethodGet, "/api/user", "", true)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":7,"username":"alice","two_factor_enabled":true}`, rr.Body.String())
	})

	t.Run("account gone", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.signedIn()
		f.auth.EXPECT().GetProfile(gomock.Any(), "alice").Return(models.User{}, service.ErrUnauthenticated)

		rr := f.do(t, http.MethodGet, "/api/user", "", true)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, app.MsgUnauthenticated, errorBody(t, rr))
	})
}
