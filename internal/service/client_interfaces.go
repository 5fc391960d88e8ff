package service

import (
	"context"

	"github.com/MKhiriev/trustme/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientFieldService seals and opens credential fields on the client. The
// server never sees the key or the plaintext.
type ClientFieldService interface {
	// DeriveKey derives the 32-byte field key from the master password and
	// the base64 salt returned at login. Callers wipe the key when done.
	DeriveKey(masterPassword, salt string) ([]byte, error)

	// SealCredential encrypts the username, password and notes of plain.
	// Empty notes are omitted rather than sealed.
	SealCredential(plain models.PlainCredential, key []byte) (models.Credential, error)

	// OpenCredential decrypts every field of credential. Any field that does
	// not authenticate fails the whole call.
	OpenCredential(credential models.Credential, key []byte) (models.PlainCredential, error)

	// SealPatch seals the present fields of patch.
	SealPatch(patch models.PlainCredentialPatch, key []byte) (models.CredentialPatch, error)
}

// ClientAuthService defines the client-side contract for registration, login
// and the local session.
type ClientAuthService interface {
	// Register creates the account on the server. It does not log in.
	Register(ctx context.Context, user models.User) (models.RegisterResponse, error)

	// Login authenticates against the server and persists the session. The
	// master password is not stored.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// Logout forgets the local session. It succeeds when nobody is logged in.
	Logout(ctx context.Context) error

	// Session loads the local session and arms the adapter with its token.
	// Returns ErrNotLoggedIn when there is none.
	Session(ctx context.Context) (models.Session, error)

	// Profile asks the server which account the session belongs to.
	Profile(ctx context.Context) (models.RegisterResponse, error)

	// DeleteAccount removes the account on the server and the local session.
	DeleteAccount(ctx context.Context) error
}

// ClientTwoFactorService drives 2FA enrolment for the logged-in account.
type ClientTwoFactorService interface {
	Setup(ctx context.Context) (models.TwoFactorSetup, error)

	// Verify confirms code on the server and unlocks the vault for the
	// current session.
	Verify(ctx context.Context, code string) error

	Disable(ctx context.Context, code string) error
}

// ClientVaultService manages credentials of the logged-in account. Every
// operation that touches a sealed field takes the master password, checks it
// with the server and derives the key for that call only.
type ClientVaultService interface {
	Add(ctx context.Context, masterPassword string, plain models.PlainCredential) (models.PlainCredential, error)

	// Import adds several credentials in one server transaction.
	Import(ctx context.Context, masterPassword string, plains []models.PlainCredential) ([]models.PlainCredential, error)

	// List returns credentials without opening them; only WebsiteURL and the
	// timestamps are readable.
	List(ctx context.Context, websiteFilter string) ([]models.Credential, error)

	Show(ctx context.Context, masterPassword string, credentialID int64) (models.PlainCredential, error)

	Edit(ctx context.Context, masterPassword string, credentialID int64, patch models.PlainCredentialPatch) (models.PlainCredential, error)

	Remove(ctx context.Context, credentialID int64) error
}
