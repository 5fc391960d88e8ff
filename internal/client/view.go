package client

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/trustme/models"
)

const timeLayout = "2006-01-02 15:04"

func renderCredentialList(out io.Writer, credentials []models.Credential) {
	if len(credentials) == 0 {
		fmt.Fprintln(out, "no credentials stored")
		return
	}

	idWidth, websiteWidth := lipgloss.Width("ID"), lipgloss.Width("WEBSITE")
	for _, c := range credentials {
		idWidth = max(idWidth, lipgloss.Width(strconv.FormatInt(c.ID, 10)))
		websiteWidth = max(websiteWidth, lipgloss.Width(c.WebsiteURL))
	}
	idCol := lipgloss.NewStyle().Width(idWidth + 2)
	websiteCol := lipgloss.NewStyle().Width(websiteWidth + 2)

	fmt.Fprintln(out, idCol.Render(headerStyle.Render("ID"))+websiteCol.Render(headerStyle.Render("WEBSITE"))+headerStyle.Render("UPDATED"))
	for _, c := range credentials {
		fmt.Fprintln(out, idCol.Render(strconv.FormatInt(c.ID, 10))+websiteCol.Render(c.WebsiteURL)+formatTime(c.UpdatedAt))
	}
}

// renderCredential prints the opened fields. The password is masked unless
// withPassword is set.
func renderCredential(out io.Writer, plain models.PlainCredential, withPassword bool) {
	password := "********"
	if withPassword {
		password = plain.Password
	}

	body := titleStyle.Render(plain.WebsiteURL) + "\n\n" +
		labelStyle.Render("id") + strconv.FormatInt(plain.ID, 10) + "\n" +
		labelStyle.Render("username") + plain.Username + "\n" +
		labelStyle.Render("password") + password
	if plain.Notes != "" {
		body += "\n" + labelStyle.Render("notes") + plain.Notes
	}
	body += "\n" + labelStyle.Render("updated") + formatTime(plain.UpdatedAt)

	fmt.Fprintln(out, boxStyle.Render(body))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
