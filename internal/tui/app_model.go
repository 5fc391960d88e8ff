package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/trustme/internal/service"
	"github.com/MKhiriev/trustme/models"
)

type screen int

const (
	screenLoading screen = iota
	screenWelcome
	screenLogin
	screenRegister
	screenTwoFactor
	screenUnlock
	screenList
	screenDetail
	screenForm
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	clipboard Clipboard

	currentScreen screen
	session       models.Session

	// masterPassword unlocks sealed fields for every vault call. Empty means
	// the vault is locked.
	masterPassword string

	welcomeIdx int
	login      inputForm
	register   inputForm
	twoFactor  inputForm
	unlock     inputForm
	list       listModel
	detail     detailModel
	form       credentialForm

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func newAppModel(ctx context.Context, services *service.ClientServices, clipboard Clipboard) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		clipboard:     clipboard,
		currentScreen: screenLoading,
		login:         newLoginForm(),
		register:      newRegisterForm(),
		twoFactor:     newCodeForm(),
		unlock:        newUnlockForm(),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadSession()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdRemove(m.confirm.id)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}

	case sessionLoadedMsg:
		if msg.err != nil {
			m.currentScreen = screenWelcome
			if errors.Is(msg.err, service.ErrNotLoggedIn) {
				return m, nil
			}
			return m.fail(msg.err)
		}
		m.session = msg.session
		if !msg.session.VaultUnlocked() {
			m.currentScreen = screenTwoFactor
			return m, nil
		}
		m.currentScreen = screenUnlock
		return m, nil

	case authDoneMsg:
		m.login.submitting = false
		m.register.submitting = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.login.reset()
		m.register.reset()
		m.session = msg.session
		m.masterPassword = msg.masterPassword
		if !msg.session.VaultUnlocked() {
			m.currentScreen = screenTwoFactor
			return m, nil
		}
		return m.openList()

	case verifiedMsg:
		m.twoFactor.submitting = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.twoFactor.reset()
		m.session.TwoFactorVerified = true
		if m.masterPassword == "" {
			m.currentScreen = screenUnlock
			return m, nil
		}
		return m.openList()

	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.list.setCredentials(msg.credentials)
		return m, nil

	case shownMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.detail = detailModel{plain: msg.plain}
		m.currentScreen = screenDetail
		return m, nil

	case savedMsg:
		m.form.submitting = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.detail = detailModel{plain: msg.plain, status: "saved"}
		m.currentScreen = screenDetail
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())

	case deletedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.detail = detailModel{}
		m.list.status = "deleted"
		m.currentScreen = screenList
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())

	case loggedOutMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.lock()
		m.session = models.Session{}
		m.currentScreen = screenWelcome
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.detail.status = msg.what + " copied to clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenTwoFactor:
		return m.updateTwoFactor(msg)
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLoading:
		body = renderPage("TRUSTME", "loading session...", "")
	case screenWelcome:
		body = m.welcomeView()
	case screenLogin:
		body = renderPage("LOG IN", m.login.View()+submittingLine(m.login.submitting), "esc: back │ tab: next field │ enter: log in")
	case screenRegister:
		body = renderPage("REGISTER", m.register.View()+submittingLine(m.register.submitting), "esc: back │ tab: next field │ enter: create account")
	case screenTwoFactor:
		body = renderPage("TWO-FACTOR CODE", "enter the 6-digit code from your authenticator app\n\n"+m.twoFactor.View(), "enter: verify │ esc: log out")
	case screenUnlock:
		body = renderPage("UNLOCK "+m.session.Username, m.unlock.View(), "enter: unlock │ esc: log out")
	case screenList:
		body = renderPage("VAULT "+m.session.Username, m.list.View(), "enter: open │ n: new │ d: delete │ /: filter │ r: reload │ L: log out │ q: quit")
	case screenDetail:
		body = renderPage("CREDENTIAL", m.detail.View(), "p: show password │ c: copy password │ u: copy username │ e: edit │ d: delete │ esc: back")
	case screenForm:
		body = renderPage(m.form.title(), m.form.View()+submittingLine(m.form.submitting), "esc: cancel │ tab: next field │ enter: save")
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) welcomeView() string {
	out := "trustme keeps website credentials encrypted with your master password\n\n"
	for i, item := range welcomeItems {
		cursor := "  "
		if i == m.welcomeIdx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	return renderPage("TRUSTME", out, "enter: select │ q: quit")
}

var welcomeItems = []string{"Log in", "Register"}

func submittingLine(submitting bool) string {
	if submitting {
		return "\nworking...\n"
	}
	return ""
}

// fail routes err to the screen that can recover from it and shows it.
func (m appModel) fail(err error) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(err, service.ErrNotLoggedIn), errors.Is(err, service.ErrSessionExpired):
		m.lock()
		m.currentScreen = screenWelcome
	case errors.Is(err, service.ErrTwoFactorRequired):
		m.session.TwoFactorVerified = false
		m.currentScreen = screenTwoFactor
	case errors.Is(err, service.ErrInvalidCredentials) && m.masterPassword != "":
		// the stored master password no longer matches
		m.lock()
		m.currentScreen = screenUnlock
	}

	m.showError = true
	m.errorOverlay.message = humanizeServerUnavailableError(err)
	return m, nil
}

func (m *appModel) lock() {
	m.masterPassword = ""
	m.detail = detailModel{}
	m.form = credentialForm{}
	m.list = newListModel()
	m.unlock.reset()
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.lock()
	return m, tea.Quit
}

func (m appModel) openList() (tea.Model, tea.Cmd) {
	m.currentScreen = screenList
	m.list.loading = true
	return m, m.cmdLoadList()
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcomeIdx > 0 {
			m.welcomeIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcomeIdx < len(welcomeItems)-1 {
			m.welcomeIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcomeIdx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		return m.quit()
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.login.reset()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			username, password := m.login.trimmed(0), m.login.value(1)
			if username == "" || password == "" {
				return m.fail(errMissingFields)
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.User{Username: username, MasterPassword: password})
		}
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.register.reset()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			username, password := m.register.trimmed(0), m.register.value(1)
			if username == "" || password == "" {
				return m.fail(errMissingFields)
			}
			if password != m.register.value(2) {
				return m.fail(errPasswordMismatch)
			}
			m.register.submitting = true
			return m, m.cmdRegisterAndLogin(models.User{Username: username, MasterPassword: password})
		}
	}

	var cmd tea.Cmd
	m.register, cmd = m.register.update(msg)
	return m, cmd
}

func (m appModel) updateTwoFactor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.twoFactor.reset()
			return m, m.cmdLogout()
		case key.Matches(keyMsg, keys.enter):
			if m.twoFactor.submitting {
				return m, nil
			}
			code := m.twoFactor.trimmed(0)
			if code == "" {
				return m.fail(errMissingFields)
			}
			m.twoFactor.submitting = true
			return m, m.cmdVerify(code)
		}
	}

	var cmd tea.Cmd
	m.twoFactor, cmd = m.twoFactor.update(msg)
	return m, cmd
}

// updateUnlock takes the master password of a session restored from disk.
// It is checked by the first vault call that opens a field.
func (m appModel) updateUnlock(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, m.cmdLogout()
		case key.Matches(keyMsg, keys.enter):
			password := m.unlock.value(0)
			if password == "" {
				return m.fail(errMissingFields)
			}
			m.unlock.reset()
			m.masterPassword = password
			return m.openList()
		}
	}

	var cmd tea.Cmd
	m.unlock, cmd = m.unlock.update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.filtering {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.list.filtering = false
			m.list.filter.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.list.filtering = false
			m.list.filter.Blur()
			m.list.activeFilter = m.list.filter.Value()
			m.list.loading = true
			return m, m.cmdLoadList()
		}
		var cmd tea.Cmd
		m.list.filter, cmd = m.list.filter.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m.quit()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.enter):
		credential, ok := m.list.selected()
		if !ok {
			return m, nil
		}
		return m, m.cmdShow(credential.ID)
	case key.Matches(keyMsg, keys.newItem):
		m.form = newCredentialForm(nil)
		m.currentScreen = screenForm
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		credential, ok := m.list.selected()
		if !ok {
			return m, nil
		}
		m.confirm = confirmModel{website: credential.WebsiteURL, id: credential.ID}
		m.showConfirm = true
		return m, nil
	case key.Matches(keyMsg, keys.filter):
		m.list.filtering = true
		m.list.filter.SetValue(m.list.activeFilter)
		return m, m.list.filter.Focus()
	case key.Matches(keyMsg, keys.reload):
		m.list.loading = true
		return m, m.cmdLoadList()
	}

	var cmd tea.Cmd
	m.list.table, cmd = m.list.table.Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail = detailModel{}
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.reveal):
		m.detail.revealed = !m.detail.revealed
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopy("password", m.detail.plain.Password)
	case key.Matches(keyMsg, keys.copyUser):
		return m, m.cmdCopy("username", m.detail.plain.Username)
	case key.Matches(keyMsg, keys.edit):
		plain := m.detail.plain
		m.form = newCredentialForm(&plain)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		m.confirm = confirmModel{website: m.detail.plain.WebsiteURL, id: m.detail.plain.ID}
		m.showConfirm = true
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			m.form = credentialForm{}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			plain := m.form.plain()
			if plain.WebsiteURL == "" || plain.Username == "" || plain.Password == "" {
				return m.fail(errMissingFields)
			}
			if !m.form.editing {
				m.form.submitting = true
				return m, m.cmdAdd(plain)
			}
			patch := m.form.patch()
			if patch.IsEmpty() {
				m.detail.status = "nothing changed"
				m.currentScreen = screenDetail
				return m, cmdClearStatus()
			}
			m.form.submitting = true
			return m, m.cmdEdit(m.form.original.ID, patch)
		}
	}

	var cmd tea.Cmd
	m.form.inputForm, cmd = m.form.inputForm.update(msg)
	return m, cmd
}
