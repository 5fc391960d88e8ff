package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/trustme/models"
)

type detailModel struct {
	plain    models.PlainCredential
	revealed bool
	status   string
}

func (m detailModel) View() string {
	password := "********"
	if m.revealed {
		password = m.plain.Password
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.plain.WebsiteURL))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("id") + strconv.FormatInt(m.plain.ID, 10) + "\n")
	b.WriteString(labelStyle.Render("username") + m.plain.Username + "\n")
	b.WriteString(labelStyle.Render("password") + password + "\n")
	b.WriteString(labelStyle.Render("notes") + orDash(m.plain.Notes) + "\n")
	b.WriteString(labelStyle.Render("created") + formatTime(m.plain.CreatedAt) + "\n")
	b.WriteString(labelStyle.Render("updated") + formatTime(m.plain.UpdatedAt) + "\n")

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	return b.String()
}
