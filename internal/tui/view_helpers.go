package tui

import (
	"strings"
	"time"
)

const (
	uiDivider  = "──────────────────────────────────────────────────────"
	timeLayout = "2006-01-02 15:04"
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(strings.TrimRight(data, "\n"))
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
