package dxfgen

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestRasterColor(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}

	// white and gray render as black on the white background
	test.T(t, RasterColor(White), black)
	test.T(t, RasterColor(Black), black)
	test.T(t, RasterColor(Gray), black)

	// yellow renders as orange for contrast
	test.T(t, RasterColor(Yellow), color.RGBA{255, 165, 0, 255})

	test.T(t, RasterColor(Red), color.RGBA{255, 0, 0, 255})
	test.T(t, RasterColor(Green), color.RGBA{0, 128, 0, 255})
	test.T(t, RasterColor(Cyan), color.RGBA{0, 255, 255, 255})
	test.T(t, RasterColor(Blue), color.RGBA{0, 0, 255, 255})
	test.T(t, RasterColor(Magenta), color.RGBA{255, 0, 255, 255})

	// anything outside the palette falls back to black
	test.T(t, RasterColor(ByBlock), black)
	test.T(t, RasterColor(ColorToken(200)), black)
}
