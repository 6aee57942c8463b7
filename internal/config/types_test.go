package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreFullyPopulated(t *testing.T) {
	t.Parallel()

	b := Defaults()
	for _, field := range Fields() {
		assert.NotEmpty(t, b.Value(field), "field %s should have a default", field)
	}

	require.Equal(t, "200px", b.Width)
	require.Equal(t, "50px", b.Height)
	require.Equal(t, "#3b82f6", b.BackgroundColor)
	require.Equal(t, "#1d4ed8", b.BorderColor)
	require.Equal(t, "#ffffff", b.TextColor)
	require.Equal(t, "2px", b.BorderWidth)
	require.Equal(t, "16px", b.FontSize)
	require.Equal(t, "bold", b.FontWeight)
	require.Equal(t, "Arial, sans-serif", b.FontFamily)
	require.Equal(t, "Click Me!", b.ButtonText)
	require.Equal(t, "https://example.com", b.LinkURL)
	require.Equal(t, 3, b.DelaySeconds)
	require.Equal(t, AlignCenter, b.Alignment)
	require.NoError(t, ValidateButton(&b))
}

func TestWithReplacesSingleFieldWithoutMutatingReceiver(t *testing.T) {
	t.Parallel()

	original := Defaults()
	for _, field := range Fields() {
		if field == FieldDelaySeconds || field == FieldAlignment {
			continue
		}
		updated := original.With(field, "replaced")
		assert.Equal(t, "replaced", updated.Value(field), "field %s", field)

		for _, other := range Fields() {
			if other == field {
				continue
			}
			assert.Equal(t, original.Value(other), updated.Value(other), "field %s changed while setting %s", other, field)
		}
	}

	require.Equal(t, Defaults(), original)
}

func TestWithCoercesDelay(t *testing.T) {
	t.Parallel()

	b := Defaults().With(FieldDelaySeconds, "10")
	require.Equal(t, 10, b.DelaySeconds)
	require.Equal(t, 10000, b.DelayMillis())

	b = b.With(FieldDelaySeconds, "soon")
	require.Equal(t, 0, b.DelaySeconds)
	require.Equal(t, "0", b.Value(FieldDelaySeconds))
}

func TestWithAlignment(t *testing.T) {
	t.Parallel()

	b := Defaults().With(FieldAlignment, "left")
	require.Equal(t, AlignLeft, b.Alignment)
	require.Equal(t, "flex-start", b.Alignment.FlexJustify())
}

func TestWithUnknownFieldIsNoop(t *testing.T) {
	t.Parallel()

	require.Equal(t, Defaults(), Defaults().With(Field("shadow"), "0 0 4px"))
	require.Empty(t, Defaults().Value(Field("shadow")))
}

func TestFieldLabelsAndColors(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Delay (seconds)", FieldDelaySeconds.Label())
	require.Equal(t, "Button Alignment", FieldAlignment.Label())
	require.True(t, FieldBorderColor.IsColor())
	require.False(t, FieldBorderWidth.IsColor())

	colors := 0
	for _, f := range Fields() {
		if f.IsColor() {
			colors++
		}
	}
	require.Equal(t, 3, colors)
}

func TestDelayMillisIsCappedAtBrowserLimit(t *testing.T) {
	t.Parallel()

	b := Defaults().With(FieldDelaySeconds, "9300000000000000")
	require.Equal(t, MaxDelaySeconds, b.DelaySeconds)
	require.Equal(t, 2147483000, b.DelayMillis())

	b.DelaySeconds = 9300000000000000
	require.Equal(t, 2147483000, b.DelayMillis(), "out-of-range values never wrap negative")
}
