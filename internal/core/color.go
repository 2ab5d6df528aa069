package core

import "fmt"

// Color is an opaque 24-bit RGB color.
// It satisfies image/color.Color so frontends can hand it to drawing APIs directly.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette used by the road, HUD and menu.
var (
	ColorSkyBlue   = RGB(135, 206, 235)
	ColorRoad      = RGB(50, 50, 50)
	ColorWhite     = RGB(255, 255, 255)
	ColorBlack     = RGB(0, 0, 0)
	ColorRed       = RGB(255, 0, 0)
	ColorShadow    = RGB(200, 200, 200)
	ColorMenuBG    = RGB(30, 30, 30)
	ColorMenuItem  = RGB(50, 50, 50)
	ColorMenuHover = RGB(80, 80, 80)
	ColorMenuRule  = RGB(100, 100, 100)
	ColorLabel     = RGB(200, 200, 200)
	ColorHighScore = RGB(150, 150, 255)
)
