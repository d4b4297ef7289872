package dxfgen

import "image/color"

// ColorToken is an AutoCAD Color Index (ACI) value from the small palette
// used by this package. It is written unchanged into the DXF output; the PNG
// output translates it through RasterColor.
type ColorToken uint8

const (
	ByBlock ColorToken = 0
	Red     ColorToken = 1
	Yellow  ColorToken = 2
	Green   ColorToken = 3
	Cyan    ColorToken = 4
	Blue    ColorToken = 5
	Magenta ColorToken = 6
	White   ColorToken = 7
	Black   ColorToken = 7 // ACI 7 flips between white and black with the background
	Gray    ColorToken = 8
)

// DefaultColor is used by the add operations when no color is given.
const DefaultColor = White

// rasterColors overrides tokens for drawing on a white background: white and
// gray both render as black, yellow as orange. This table must stay in sync
// with the PNG output, it is not derived from the ACI palette.
var rasterColors = map[ColorToken]color.RGBA{
	Red:     {255, 0, 0, 255},
	Yellow:  {255, 165, 0, 255},
	Green:   {0, 128, 0, 255},
	Cyan:    {0, 255, 255, 255},
	Blue:    {0, 0, 255, 255},
	Magenta: {255, 0, 255, 255},
	White:   {0, 0, 0, 255},
	Gray:    {0, 0, 0, 255},
}

// RasterColor returns the color a token renders as in the PNG output. Tokens
// outside the palette render as black.
func RasterColor(c ColorToken) color.RGBA {
	if rgba, ok := rasterColors[c]; ok {
		return rgba
	}
	return color.RGBA{0, 0, 0, 255}
}

// pickColor returns the first of colors, or def when none are given.
func pickColor(def ColorToken, colors []ColorToken) ColorToken {
	if 0 < len(colors) {
		return colors[0]
	}
	return def
}
