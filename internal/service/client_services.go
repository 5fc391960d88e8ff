package service

import (
	"fmt"

	"github.com/MKhiriev/trustme/internal/adapter"
	"github.com/MKhiriev/trustme/internal/config"
	"github.com/MKhiriev/trustme/internal/crypto"
	"github.com/MKhiriev/trustme/internal/store"
)

type ClientServices struct {
	FieldService     ClientFieldService
	AuthService      ClientAuthService
	TwoFactorService ClientTwoFactorService
	VaultService     ClientVaultService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.Crypto) (*ClientServices, error) {
	deriver, err := crypto.NewKeyDeriver(cfg.ScryptParams())
	if err != nil {
		return nil, fmt.Errorf("error building key deriver: %w", err)
	}

	fieldSvc := NewClientFieldService(deriver, crypto.NewEnvelopeCipher())
	authSvc := NewClientAuthService(localStore.SessionRepository, serverAdapter, nil)

	return &ClientServices{
		FieldService:     fieldSvc,
		AuthService:      authSvc,
		TwoFactorService: NewClientTwoFactorService(authSvc, localStore.SessionRepository, serverAdapter),
		VaultService:     NewClientVaultService(authSvc, localStore.SessionRepository, serverAdapter, fieldSvc),
	}, nil
}
