package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputForm is a column of labelled text inputs with one focused field.
type inputForm struct {
	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
}

type field struct {
	label     string
	secret    bool
	charLimit int
}

func newInputForm(fields ...field) inputForm {
	f := inputForm{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, spec := range fields {
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 256
		if spec.charLimit > 0 {
			in.CharLimit = spec.charLimit
		}
		if spec.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels[i] = spec.label
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f inputForm) value(i int) string {
	return f.inputs[i].Value()
}

func (f inputForm) trimmed(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *inputForm) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *inputForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *inputForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// reset clears every input, e.g. after a secret has been submitted.
func (f *inputForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.submitting = false
}

func (f inputForm) update(msg tea.Msg) (inputForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f inputForm) View() string {
	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(labelStyle.Render(f.labels[i]))
		b.WriteString(" [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	return b.String()
}

func newLoginForm() inputForm {
	return newInputForm(
		field{label: "username", charLimit: 64},
		field{label: "password", secret: true},
	)
}

func newRegisterForm() inputForm {
	return newInputForm(
		field{label: "username", charLimit: 64},
		field{label: "password", secret: true},
		field{label: "repeat", secret: true},
	)
}

func newCodeForm() inputForm {
	return newInputForm(field{label: "code", charLimit: 6})
}

func newUnlockForm() inputForm {
	return newInputForm(field{label: "password", secret: true})
}
