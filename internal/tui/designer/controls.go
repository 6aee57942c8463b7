package designer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/timedbutton/internal/config"
)

// controlKind determines how a form control is edited and rendered.
type controlKind int

const (
	kindText controlKind = iota
	kindNumber
	kindSwatch
	kindSelect
)

// option is one entry of a swatch palette or a select picker.
type option struct {
	Label string
	Value string
}

// control is a single focusable form element bound to one Button field.
// Several controls may write to the same field (a color swatch and its
// free-text input, the font picker and the custom font input).
type control struct {
	field   config.Field
	kind    controlKind
	label   string
	input   textinput.Model
	options []option
}

var palette = []option{
	{Label: "Blue", Value: "#3b82f6"},
	{Label: "Dark Blue", Value: "#1d4ed8"},
	{Label: "White", Value: "#ffffff"},
	{Label: "Black", Value: "#000000"},
	{Label: "Red", Value: "#ef4444"},
	{Label: "Amber", Value: "#f59e0b"},
	{Label: "Emerald", Value: "#10b981"},
	{Label: "Violet", Value: "#8b5cf6"},
	{Label: "Pink", Value: "#ec4899"},
	{Label: "Gray", Value: "#6b7280"},
}

func fontOptions() []option {
	families := config.FontFamilies()
	out := make([]option, 0, len(families))
	for _, f := range families {
		out = append(out, option{Label: f.Label, Value: f.Value})
	}
	return out
}

func alignmentOptions() []option {
	aligns := config.Alignments()
	out := make([]option, 0, len(aligns))
	for _, a := range aligns {
		out = append(out, option{Label: a.Label(), Value: string(a)})
	}
	return out
}

func newTextControl(field config.Field, label, placeholder string) control {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.Width = 28
	return control{field: field, kind: kindText, label: label, input: ti}
}

// buildControls lays out the form in field order. Color fields get a swatch
// followed by a free-text input; the font family gets a picker and a custom
// stack input.
func buildControls() []control {
	defaults := config.Defaults()

	var controls []control
	for _, f := range config.Fields() {
		switch {
		case f.IsColor():
			controls = append(controls,
				control{field: f, kind: kindSwatch, label: f.Label(), options: palette},
				newTextControl(f, "", defaults.Value(f)),
			)
		case f == config.FieldFontFamily:
			controls = append(controls,
				control{field: f, kind: kindSelect, label: f.Label(), options: fontOptions()},
				newTextControl(f, "", "custom font stack"),
			)
		case f == config.FieldAlignment:
			controls = append(controls, control{field: f, kind: kindSelect, label: f.Label(), options: alignmentOptions()})
		case f == config.FieldDelaySeconds:
			delay := newTextControl(f, f.Label(), defaults.Value(f))
			delay.kind = kindNumber
			delay.input.CharLimit = 6
			controls = append(controls, delay)
		default:
			controls = append(controls, newTextControl(f, f.Label(), defaults.Value(f)))
		}
	}
	return controls
}

func (c control) editable() bool {
	return c.kind == kindText || c.kind == kindNumber
}

func (c control) cyclable() bool {
	return c.kind == kindSwatch || c.kind == kindSelect
}

// optionIndex returns the index of value among the options, or -1.
func (c control) optionIndex(value string) int {
	for i, o := range c.options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

// cycle returns the option value step positions away from current. A value
// outside the option list starts from the first (or last) option.
func (c control) cycle(current string, step int) string {
	n := len(c.options)
	if n == 0 {
		return current
	}
	i := c.optionIndex(current)
	if i < 0 {
		if step > 0 {
			return c.options[0].Value
		}
		return c.options[n-1].Value
	}
	return c.options[((i+step)%n+n)%n].Value
}

func (c *control) focus() tea.Cmd {
	if c.editable() {
		return c.input.Focus()
	}
	return nil
}

func (c *control) blur() {
	if c.editable() {
		c.input.Blur()
	}
}

// sync refreshes the control's displayed text from b unless it is being
// edited; the focused input keeps the user's raw text.
func (c *control) sync(b config.Button) {
	if !c.editable() || c.input.Focused() {
		return
	}
	value := b.Value(c.field)
	if c.field == config.FieldFontFamily && config.FontFamilyIndex(value) >= 0 {
		value = ""
	}
	if c.input.Value() != value {
		c.input.SetValue(value)
	}
}
