package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/trustme/models"
)

type listModel struct {
	table       table.Model
	credentials []models.Credential
	loading     bool
	status      string

	filter       textinput.Model
	filtering    bool
	activeFilter string
}

func newListModel() listModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "WEBSITE", Width: 40},
			{Title: "UPDATED", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	filter := textinput.New()
	filter.Placeholder = "website contains"
	filter.Width = 40

	return listModel{table: t, filter: filter, loading: true}
}

func (m *listModel) setCredentials(credentials []models.Credential) {
	m.credentials = credentials
	rows := make([]table.Row, 0, len(credentials))
	for _, c := range credentials {
		rows = append(rows, table.Row{strconv.FormatInt(c.ID, 10), c.WebsiteURL, formatTime(c.UpdatedAt)})
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// selected returns the credential under the cursor.
func (m listModel) selected() (models.Credential, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.credentials) {
		return models.Credential{}, false
	}
	return m.credentials[cursor], true
}

func (m listModel) View() string {
	var out string
	switch {
	case m.loading:
		out = "loading...\n"
	case len(m.credentials) == 0:
		out = "no credentials stored\n"
	default:
		out = m.table.View() + "\n"
	}

	if m.filtering {
		out += "\nfilter: " + m.filter.View() + "\n"
	} else if m.activeFilter != "" {
		out += "\nfilter: " + m.activeFilter + "\n"
	}
	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status) + "\n"
	}
	return out
}
