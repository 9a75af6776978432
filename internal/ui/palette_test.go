package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestThemerPaintsRegisteredSwatches(t *testing.T) {
	app := test.NewTempApp(t)
	themer := NewThemer(app, DarkPalette, LightPalette, true)

	bg := themer.Background(canvas.NewRectangle(color.Transparent))
	surface := themer.Surface(canvas.NewRectangle(color.Transparent))
	text := themer.Text(canvas.NewText("Title:", color.Transparent))

	assert.Equal(t, DarkPalette.Background, bg.FillColor)
	assert.Equal(t, DarkPalette.Surface, surface.FillColor)
	assert.Equal(t, DarkPalette.Text, text.Color)

	assert.False(t, themer.Toggle())
	assert.Equal(t, LightPalette.Background, bg.FillColor)
	assert.Equal(t, LightPalette.Surface, surface.FillColor)
	assert.Equal(t, LightPalette.Text, text.Color)
	assert.Equal(t, LightPalette.Selected, app.Settings().Theme().Color(theme.ColorNameSelection, theme.VariantLight))

	assert.True(t, themer.Toggle())
	assert.Equal(t, DarkPalette.Background, bg.FillColor)
	assert.Equal(t, DarkPalette.Surface, app.Settings().Theme().Color(theme.ColorNameHeaderBackground, theme.VariantDark))
}

func TestPaletteThemeFallsBackToDefault(t *testing.T) {
	th := newPaletteTheme(DarkPalette, true)
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNamePrimary, theme.VariantDark),
		th.Color(theme.ColorNamePrimary, theme.VariantLight),
	)
	assert.Equal(t, DarkPalette.Text, th.Color(theme.ColorNameForeground, theme.VariantLight))
}
