package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
)

// Palette is the set of colors one theme mode paints with.
type Palette struct {
	Background color.Color
	Surface    color.Color
	Text       color.Color
	Selected   color.Color
}

var (
	DarkPalette = Palette{
		Background: color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff},
		Surface:    color.NRGBA{R: 0x2e, G: 0x2e, B: 0x2e, A: 0xff},
		Text:       color.White,
		Selected:   color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff},
	}
	LightPalette = Palette{
		Background: color.White,
		Surface:    color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
		Text:       color.Black,
		Selected:   color.NRGBA{R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff},
	}
)

// swatch is one themable element with the color it takes in each mode.
type swatch struct {
	paint func(color.Color)
	dark  color.Color
	light color.Color
}

// Themer owns the dark/light flag for a window and repaints the elements
// registered with it.
type Themer struct {
	app      fyne.App
	dark     Palette
	light    Palette
	darkMode bool
	swatches []swatch
}

func NewThemer(app fyne.App, dark, light Palette, darkMode bool) *Themer {
	return &Themer{
		app:      app,
		dark:     dark,
		light:    light,
		darkMode: darkMode,
	}
}

func (t *Themer) DarkMode() bool {
	return t.darkMode
}

func (t *Themer) Palette() Palette {
	if t.darkMode {
		return t.dark
	}
	return t.light
}

// Background registers a container backdrop.
func (t *Themer) Background(r *canvas.Rectangle) *canvas.Rectangle {
	t.add(rectPainter(r), t.dark.Background, t.light.Background)
	return r
}

// Surface registers the backdrop behind the task table.
func (t *Themer) Surface(r *canvas.Rectangle) *canvas.Rectangle {
	t.add(rectPainter(r), t.dark.Surface, t.light.Surface)
	return r
}

func (t *Themer) Text(txt *canvas.Text) *canvas.Text {
	t.add(func(c color.Color) {
		txt.Color = c
		txt.Refresh()
	}, t.dark.Text, t.light.Text)
	return txt
}

func (t *Themer) add(paint func(color.Color), dark, light color.Color) {
	s := swatch{paint: paint, dark: dark, light: light}
	t.swatches = append(t.swatches, s)
	t.paintSwatch(s)
}

// Toggle flips the mode, repaints and reports the new mode.
func (t *Themer) Toggle() bool {
	t.darkMode = !t.darkMode
	t.Apply()
	return t.darkMode
}

// Apply paints every swatch and installs the matching Fyne theme so stock
// widgets, the table included, follow the mode.
func (t *Themer) Apply() {
	for _, s := range t.swatches {
		t.paintSwatch(s)
	}
	if t.app != nil {
		t.app.Settings().SetTheme(newPaletteTheme(t.Palette(), t.darkMode))
	}
}

func (t *Themer) paintSwatch(s swatch) {
	if t.darkMode {
		s.paint(s.dark)
	} else {
		s.paint(s.light)
	}
}

func rectPainter(r *canvas.Rectangle) func(color.Color) {
	return func(c color.Color) {
		r.FillColor = c
		r.Refresh()
	}
}

type paletteTheme struct {
	palette Palette
	variant fyne.ThemeVariant
}

func newPaletteTheme(p Palette, dark bool) fyne.Theme {
	variant := theme.VariantLight
	if dark {
		variant = theme.VariantDark
	}
	return &paletteTheme{palette: p, variant: variant}
}

func (p *paletteTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return p.palette.Background
	case theme.ColorNameInputBackground, theme.ColorNameHeaderBackground:
		return p.palette.Surface
	case theme.ColorNameForeground:
		return p.palette.Text
	case theme.ColorNameSelection:
		return p.palette.Selected
	}
	return theme.DefaultTheme().Color(name, p.variant)
}

func (p *paletteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (p *paletteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (p *paletteTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
