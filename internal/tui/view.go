package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-student-registry/internal/app"
	"github.com/MKhiriev/go-student-registry/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	appTitle         = "STUDENT REGISTRY"
	connectivityText = "Could not load the student list.\nPress r to retry or p to test the connection."
	tableHotKeys     = "↑/↓: move  n: new  d: delete  e: edit  c: copy NIM  r: refresh  p: ping  v: about  q: quit"
	formHotKeys      = "tab/shift+tab: next field  enter: save  esc: cancel"
	confirmHotKeys   = "y: yes  n: no"
)

func (m model) View() string {
	var title, body, hotKeys string

	switch m.screen {
	case screenBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	case screenForm:
		title, body, hotKeys = "NEW STUDENT", m.form.View(), formHotKeys
	case screenConfirmDelete:
		title, hotKeys = appTitle, confirmHotKeys
		prompt := fmt.Sprintf(app.MsgConfirmDeleteFormat, m.pendingDelete.Name, m.pendingDelete.NIM)
		body = m.viewTable() + "\n\n" + overlayBoxStyle.Render(prompt)
	default:
		title, body, hotKeys = appTitle, m.viewTable(), tableHotKeys
	}

	if m.busy {
		title += "  " + m.spinner.View()
	}
	if line := m.viewStatus(); line != "" {
		body += "\n\n" + line
	}

	return appStyle.Render(renderPage(titleStyle.Render(title), body, helpStyle.Render(hotKeys)))
}

func (m model) viewTable() string {
	switch m.state {
	case tableLoading:
		return m.spinner.View() + " Loading..."
	case tableFailed:
		return errorStyle.Render(connectivityText)
	}

	if len(m.students) == 0 {
		return app.MsgNoStudents
	}

	return renderStudentTable(m.students, m.idx)
}

func (m model) viewStatus() string {
	if m.status.text == "" {
		return ""
	}
	style, ok := severityStyles[m.status.severity]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return style.Render(fmt.Sprintf("[%s] %s", m.status.severity, m.status.text))
}

// renderStudentTable draws students with the row at selected highlighted.
func renderStudentTable(students []models.Student, selected int) string {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			s.ID.String(),
			fitText(s.NIM, 20),
			fitText(s.Name, 32),
			fitText(s.Major, 32),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NIM", "NAMA", "JURUSAN").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerCellStyle
			case row == selected:
				return selectedCellStyle
			default:
				return cellStyle
			}
		})

	return strings.TrimRight(t.Render(), "\n")
}
