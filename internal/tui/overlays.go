package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("error") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}

type confirmModel struct {
	website string
	id      int64
}

func (m confirmModel) View() string {
	content := "delete \"" + m.website + "\"?\n\n" + helpStyle.Render("y: yes    n: no")
	return overlayBoxStyle.Render(content)
}
