package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/trustme/models"
)

// statusTTL is how long a status line stays on screen.
var statusTTL = 2 * time.Second

func (m appModel) cmdLoadSession() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Session(ctx)
		return sessionLoadedMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, user)
		return authDoneMsg{session: session, masterPassword: user.MasterPassword, err: err}
	}
}

func (m appModel) cmdRegisterAndLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		if _, err := auth.Register(ctx, user); err != nil {
			return authDoneMsg{err: err}
		}
		session, err := auth.Login(ctx, user)
		return authDoneMsg{session: session, masterPassword: user.MasterPassword, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdVerify(code string) tea.Cmd {
	ctx := m.ctx
	twoFactor := m.services.TwoFactorService
	return func() tea.Msg {
		return verifiedMsg{err: twoFactor.Verify(ctx, code)}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	vault := m.services.VaultService
	filter := m.list.activeFilter
	return func() tea.Msg {
		credentials, err := vault.List(ctx, filter)
		return listLoadedMsg{credentials: credentials, err: err}
	}
}

func (m appModel) cmdShow(credentialID int64) tea.Cmd {
	ctx := m.ctx
	vault := m.services.VaultService
	masterPassword := m.masterPassword
	return func() tea.Msg {
		plain, err := vault.Show(ctx, masterPassword, credentialID)
		return shownMsg{plain: plain, err: err}
	}
}

func (m appModel) cmdAdd(plain models.PlainCredential) tea.Cmd {
	ctx := m.ctx
	vault := m.services.VaultService
	masterPassword := m.masterPassword
	return func() tea.Msg {
		created, err := vault.Add(ctx, masterPassword, plain)
		return savedMsg{plain: created, err: err}
	}
}

func (m appModel) cmdEdit(credentialID int64, patch models.PlainCredentialPatch) tea.Cmd {
	ctx := m.ctx
	vault := m.services.VaultService
	masterPassword := m.masterPassword
	return func() tea.Msg {
		updated, err := vault.Edit(ctx, masterPassword, credentialID, patch)
		return savedMsg{plain: updated, err: err}
	}
}

func (m appModel) cmdRemove(credentialID int64) tea.Cmd {
	ctx := m.ctx
	vault := m.services.VaultService
	return func() tea.Msg {
		return deletedMsg{err: vault.Remove(ctx, credentialID)}
	}
}

func (m appModel) cmdCopy(what, text string) tea.Cmd {
	clipboard := m.clipboard
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{what: what, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
