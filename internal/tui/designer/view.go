package designer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/timedbutton/internal/config"
)

// View renders the current model state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
			m.width, m.height, minWidth, minHeight)
	}

	left, right := m.columnWidths()

	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Timed Button Generator"),
		subtitleStyle.Render("Create customizable timed buttons for your website"),
	)

	form := panelStyle.Width(left).Render(m.renderForm())
	side := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Width(right).Render(m.renderPreview(right-4)),
		panelStyle.Width(right).Render(m.renderCode()),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, form, " ", side)

	sections := []string{header}
	if m.toast != nil {
		sections = append(sections, m.renderToast())
	}
	sections = append(sections, body, footerStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderForm renders every control with its label.
func (m Model) renderForm() string {
	lines := []string{panelTitleStyle.Render("Button Configuration"), ""}
	for i, c := range m.controls {
		lines = append(lines, m.renderControl(c, i == m.focus))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderControl(c control, focused bool) string {
	ls := labelStyle
	if focused {
		ls = focusedLabelStyle
	}
	label := ls.Render(c.label)

	var value string
	switch c.kind {
	case kindSwatch:
		value = m.renderSwatch(c, focused)
	case kindSelect:
		value = m.renderSelect(c, focused)
	default:
		value = c.input.View()
	}
	return label + value
}

func (m Model) renderSwatch(c control, focused bool) string {
	current := m.button.Value(c.field)
	chip := lipgloss.NewStyle().Background(lipgloss.Color(current)).Render("      ")
	name := "custom"
	if i := c.optionIndex(current); i >= 0 {
		name = c.options[i].Label
	}
	ps := pickerStyle
	if focused {
		ps = focusedPickerStyle
	}
	return chip + " " + ps.Render("◀ "+name+" ▶")
}

func (m Model) renderSelect(c control, focused bool) string {
	current := m.button.Value(c.field)
	name := "custom"
	if i := c.optionIndex(current); i >= 0 {
		name = c.options[i].Label
	} else if c.field == config.FieldFontFamily && current != "" {
		name = config.FontFamilyLabel(current)
	}
	ps := pickerStyle
	if focused {
		ps = focusedPickerStyle
	}
	return ps.Render("◀ " + name + " ▶")
}

// renderPreview renders the live preview panel.
func (m Model) renderPreview(width int) string {
	title := lipgloss.JoinHorizontal(lipgloss.Center,
		panelTitleStyle.Render("Live Preview"),
		badgeStyle.Render(fmt.Sprintf("Delay: %ds", m.button.DelaySeconds)),
	)
	area := renderPreviewArea(m.button, m.scheduler.Visible(), m.previewPlaceholder(), width)
	return lipgloss.JoinVertical(lipgloss.Left, title, "", area, "")
}

// renderCode renders the read-only generated document.
func (m Model) renderCode() string {
	title := panelTitleStyle.Render("Generated HTML Code")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", m.code.View())
}

func (m Model) renderToast() string {
	n := m.toast.notification
	text := n.Title
	if n.Description != "" {
		text += "  " + n.Description
	}
	return toastStyle(n.Severity).Render(text)
}
