package designer

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/timedbutton/internal/config"
)

const (
	pxPerColumn = 8.0
	pxPerRow    = 16.0
	pxPerEm     = 16.0
)

// previewPosition maps the button alignment onto the preview container's
// justification: flex-start, center and flex-end become left, center and right.
func previewPosition(a config.Alignment) lipgloss.Position {
	switch a.FlexJustify() {
	case "flex-start":
		return lipgloss.Left
	case "flex-end":
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

// renderPreviewButton draws the button using the raw configuration values.
// CSS lengths are approximated in terminal cells.
func renderPreviewButton(b config.Button) string {
	width := cssLengthToCells(b.Width, pxPerColumn, len([]rune(b.ButtonText))+4)
	height := cssLengthToCells(b.Height, pxPerRow, 1)
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	innerHeight := height - 2
	if innerHeight < 1 {
		innerHeight = 1
	}

	style := lipgloss.NewStyle().
		Width(inner).
		Height(innerHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(b.BackgroundColor)).
		Foreground(lipgloss.Color(b.TextColor)).
		Bold(isBold(b.FontWeight))

	if cssLengthToCells(b.BorderWidth, pxPerColumn, 1) > 0 {
		style = style.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(b.BorderColor)).
			BorderBackground(lipgloss.Color(b.BackgroundColor))
	}

	return style.Render(b.ButtonText)
}

// renderPreviewArea places the button (or placeholder) across width columns.
func renderPreviewArea(b config.Button, visible bool, placeholder string, width int) string {
	if width < 1 {
		width = 1
	}
	if !visible {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, placeholderStyle.Render(placeholder))
	}
	return lipgloss.PlaceHorizontal(width, previewPosition(b.Alignment), renderPreviewButton(b))
}

// cssLengthToCells converts a CSS length into terminal cells, rounding up.
// Values it cannot interpret fall back to def.
func cssLengthToCells(value string, pxPerCell float64, def int) int {
	v := strings.TrimSpace(strings.ToLower(value))
	end := 0
	for end < len(v) && (v[end] == '.' || (v[end] >= '0' && v[end] <= '9')) {
		end++
	}
	if end == 0 {
		return def
	}
	n, err := strconv.ParseFloat(v[:end], 64)
	if err != nil {
		return def
	}

	var px float64
	switch unit := strings.TrimSpace(v[end:]); unit {
	case "", "px":
		px = n
	case "em", "rem":
		px = n * pxPerEm
	case "pt":
		px = n * 4 / 3
	default:
		return def
	}

	if px <= 0 {
		return 0
	}
	cells := int(px / pxPerCell)
	if float64(cells)*pxPerCell < px {
		cells++
	}
	return cells
}

func isBold(weight string) bool {
	switch w := strings.TrimSpace(strings.ToLower(weight)); w {
	case "bold", "bolder":
		return true
	default:
		n, err := strconv.Atoi(w)
		return err == nil && n >= 600
	}
}

// remainingSeconds rounds d up to whole seconds.
func remainingSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	secs := int(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	return secs
}
