package designer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/timedbutton/internal/export"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	warningColor = lipgloss.Color("226") // Yellow
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237")).
			Padding(0, 1).
			MarginLeft(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(18)

	focusedLabelStyle = labelStyle.
				Foreground(accentColor).
				Bold(true)

	pickerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	focusedPickerStyle = pickerStyle.
				Foreground(accentColor).
				Bold(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	toastBaseStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder())
)

// toastStyle returns the banner style for a notification severity.
func toastStyle(sev export.Severity) lipgloss.Style {
	switch sev {
	case export.SeveritySuccess:
		return toastBaseStyle.Foreground(successColor).BorderForeground(successColor)
	case export.SeverityWarning:
		return toastBaseStyle.Foreground(warningColor).BorderForeground(warningColor)
	case export.SeverityError:
		return toastBaseStyle.Foreground(errorColor).BorderForeground(errorColor)
	default:
		return toastBaseStyle.Foreground(primaryColor).BorderForeground(primaryColor)
	}
}
