package tui

import (
	"strings"

	"github.com/MKhiriev/go-student-registry/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldNIM = iota
	formFieldName
	formFieldMajor
	formFieldCount
)

var formLabels = [formFieldCount]string{"NIM", "Nama", "Jurusan"}

// studentForm is the "new student" input with three single-line fields.
type studentForm struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newStudentForm() studentForm {
	inputs := make([]textinput.Model, formFieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = formLabels[i]
		in.CharLimit = 128
		in.Width = 40
		inputs[i] = in
	}
	inputs[formFieldNIM].Focus()

	return studentForm{inputs: inputs}
}

func (f studentForm) draft() models.StudentDraft {
	return models.StudentDraft{
		NIM:   f.inputs[formFieldNIM].Value(),
		Name:  f.inputs[formFieldName].Value(),
		Major: f.inputs[formFieldMajor].Value(),
	}
}

func (f studentForm) moveFocus(delta int) studentForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + formFieldCount) % formFieldCount
	f.inputs[f.focus].Focus()
	return f
}

// update forwards non-navigation keys to the focused input.
func (f studentForm) update(msg tea.Msg) (studentForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			return f.moveFocus(1), nil
		case key.Matches(keyMsg, keys.backtab):
			return f.moveFocus(-1), nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f studentForm) View() string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := formLabels[i] + ":"
		if i == f.focus {
			label = focusedInputStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(label)
		b.WriteString("\n    ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if f.submitting {
		b.WriteString("\nSaving...")
	}
	return strings.TrimRight(b.String(), "\n")
}
