package tui

import (
	"github.com/MKhiriev/go-student-registry/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	headerCellStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle         = lipgloss.NewStyle().Padding(0, 1)
	selectedCellStyle = cellStyle.Reverse(true)
	focusedInputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

var severityStyles = map[models.Severity]lipgloss.Style{
	models.SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	models.SeveritySuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	models.SeverityWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	models.SeverityError:   errorStyle,
}
