package config

import (
	"strconv"
)

// Field identifies a single Button property. Values match the YAML keys.
type Field string

const (
	FieldWidth           Field = "width"
	FieldHeight          Field = "height"
	FieldBackgroundColor Field = "background_color"
	FieldTextColor       Field = "text_color"
	FieldBorderWidth     Field = "border_width"
	FieldBorderColor     Field = "border_color"
	FieldFontSize        Field = "font_size"
	FieldFontWeight      Field = "font_weight"
	FieldFontFamily      Field = "font_family"
	FieldButtonText      Field = "button_text"
	FieldLinkURL         Field = "link_url"
	FieldDelaySeconds    Field = "delay_seconds"
	FieldAlignment       Field = "alignment"
)

// Button is the full set of style and behaviour fields describing one timed button.
type Button struct {
	Width           string    `yaml:"width" validate:"required"`
	Height          string    `yaml:"height" validate:"required"`
	BackgroundColor string    `yaml:"background_color" validate:"required"`
	TextColor       string    `yaml:"text_color" validate:"required"`
	BorderWidth     string    `yaml:"border_width" validate:"required"`
	BorderColor     string    `yaml:"border_color" validate:"required"`
	FontSize        string    `yaml:"font_size" validate:"required"`
	FontWeight      string    `yaml:"font_weight" validate:"required"`
	FontFamily      string    `yaml:"font_family" validate:"required"`
	ButtonText      string    `yaml:"button_text"`
	LinkURL         string    `yaml:"link_url"`
	DelaySeconds    int       `yaml:"delay_seconds" validate:"min=0,max=2147483"`
	Alignment       Alignment `yaml:"alignment" validate:"required,alignment"`
}

// Defaults returns a fully populated Button.
func Defaults() Button {
	return Button{
		Width:           "200px",
		Height:          "50px",
		BackgroundColor: "#3b82f6",
		TextColor:       "#ffffff",
		BorderWidth:     "2px",
		BorderColor:     "#1d4ed8",
		FontSize:        "16px",
		FontWeight:      "bold",
		FontFamily:      "Arial, sans-serif",
		ButtonText:      "Click Me!",
		LinkURL:         "https://example.com",
		DelaySeconds:    3,
		Alignment:       AlignCenter,
	}
}

// Fields lists every field in form order.
func Fields() []Field {
	return []Field{
		FieldWidth,
		FieldHeight,
		FieldBackgroundColor,
		FieldTextColor,
		FieldBorderWidth,
		FieldBorderColor,
		FieldFontSize,
		FieldFontWeight,
		FieldFontFamily,
		FieldButtonText,
		FieldLinkURL,
		FieldDelaySeconds,
		FieldAlignment,
	}
}

// Label returns the human readable form label of the field.
func (f Field) Label() string {
	switch f {
	case FieldWidth:
		return "Width"
	case FieldHeight:
		return "Height"
	case FieldBackgroundColor:
		return "Background Color"
	case FieldTextColor:
		return "Text Color"
	case FieldBorderWidth:
		return "Border Width"
	case FieldBorderColor:
		return "Border Color"
	case FieldFontSize:
		return "Font Size"
	case FieldFontWeight:
		return "Font Weight"
	case FieldFontFamily:
		return "Font Family"
	case FieldButtonText:
		return "Button Text"
	case FieldLinkURL:
		return "Link URL"
	case FieldDelaySeconds:
		return "Delay (seconds)"
	case FieldAlignment:
		return "Button Alignment"
	default:
		return string(f)
	}
}

// IsColor reports whether the field holds a color value.
func (f Field) IsColor() bool {
	return f == FieldBackgroundColor || f == FieldTextColor || f == FieldBorderColor
}

// With returns a copy of b with field replaced by value. Unknown fields leave
// the copy unchanged. Delay input is coerced through ParseDelay.
func (b Button) With(field Field, value string) Button {
	switch field {
	case FieldWidth:
		b.Width = value
	case FieldHeight:
		b.Height = value
	case FieldBackgroundColor:
		b.BackgroundColor = value
	case FieldTextColor:
		b.TextColor = value
	case FieldBorderWidth:
		b.BorderWidth = value
	case FieldBorderColor:
		b.BorderColor = value
	case FieldFontSize:
		b.FontSize = value
	case FieldFontWeight:
		b.FontWeight = value
	case FieldFontFamily:
		b.FontFamily = value
	case FieldButtonText:
		b.ButtonText = value
	case FieldLinkURL:
		b.LinkURL = value
	case FieldDelaySeconds:
		b.DelaySeconds = ParseDelay(value)
	case FieldAlignment:
		b.Alignment = Alignment(value)
	}
	return b
}

// Value returns the current text of field.
func (b Button) Value(field Field) string {
	switch field {
	case FieldWidth:
		return b.Width
	case FieldHeight:
		return b.Height
	case FieldBackgroundColor:
		return b.BackgroundColor
	case FieldTextColor:
		return b.TextColor
	case FieldBorderWidth:
		return b.BorderWidth
	case FieldBorderColor:
		return b.BorderColor
	case FieldFontSize:
		return b.FontSize
	case FieldFontWeight:
		return b.FontWeight
	case FieldFontFamily:
		return b.FontFamily
	case FieldButtonText:
		return b.ButtonText
	case FieldLinkURL:
		return b.LinkURL
	case FieldDelaySeconds:
		return strconv.Itoa(b.DelaySeconds)
	case FieldAlignment:
		return string(b.Alignment)
	default:
		return ""
	}
}

// DelayMillis is the delay handed to setTimeout in the generated document,
// capped at MaxDelaySeconds.
func (b Button) DelayMillis() int {
	return min(b.DelaySeconds, MaxDelaySeconds) * 1000
}
