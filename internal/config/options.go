package config

// Alignment positions the button inside its container.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Alignments returns the supported alignments in picker order.
func Alignments() []Alignment {
	return []Alignment{AlignLeft, AlignCenter, AlignRight}
}

// Valid reports whether a is one of the supported alignments.
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	default:
		return false
	}
}

// Label returns the picker label.
func (a Alignment) Label() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return string(a)
	}
}

// FlexJustify maps the alignment to the justify-content value used by the
// live preview container.
func (a Alignment) FlexJustify() string {
	switch a {
	case AlignLeft:
		return "flex-start"
	case AlignRight:
		return "flex-end"
	default:
		return "center"
	}
}

// FontFamily is one entry of the font picker.
type FontFamily struct {
	Label string
	Value string
}

var fontFamilies = []FontFamily{
	{Label: "Arial", Value: "Arial, sans-serif"},
	{Label: "Helvetica", Value: "Helvetica, sans-serif"},
	{Label: "Times New Roman", Value: "'Times New Roman', serif"},
	{Label: "Georgia", Value: "Georgia, serif"},
	{Label: "Courier New", Value: "'Courier New', monospace"},
	{Label: "Verdana", Value: "Verdana, sans-serif"},
	{Label: "Trebuchet MS", Value: "'Trebuchet MS', sans-serif"},
	{Label: "Impact", Value: "Impact, sans-serif"},
	{Label: "Comic Sans MS", Value: "'Comic Sans MS', cursive"},
	{Label: "Lucida Console", Value: "'Lucida Console', monospace"},
}

// FontFamilies returns the enumerated font families offered by the picker.
func FontFamilies() []FontFamily {
	out := make([]FontFamily, len(fontFamilies))
	copy(out, fontFamilies)
	return out
}

// FontFamilyIndex returns the picker index of value, or -1 for free text.
func FontFamilyIndex(value string) int {
	for i, f := range fontFamilies {
		if f.Value == value {
			return i
		}
	}
	return -1
}

// FontFamilyLabel returns the picker label for value, or value itself when it
// is not one of the enumerated families.
func FontFamilyLabel(value string) string {
	if i := FontFamilyIndex(value); i >= 0 {
		return fontFamilies[i].Label
	}
	return value
}
