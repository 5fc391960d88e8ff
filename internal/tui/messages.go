package tui

import "github.com/MKhiriev/trustme/models"

type sessionLoadedMsg struct {
	session models.Session
	err     error
}

// authDoneMsg finishes login and register. masterPassword is kept for the
// vault calls that follow.
type authDoneMsg struct {
	session        models.Session
	masterPassword string
	err            error
}

type verifiedMsg struct {
	err error
}

type listLoadedMsg struct {
	credentials []models.Credential
	err         error
}

type shownMsg struct {
	plain models.PlainCredential
	err   error
}

type savedMsg struct {
	plain models.PlainCredential
	err   error
}

type deletedMsg struct {
	err error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
