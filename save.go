package dxfgen

import (
	"path/filepath"
	"strings"
)

// PNG canvas defaults, in inches and dots per inch.
const (
	DefaultWidthInch  = 12.0
	DefaultHeightInch = 8.0
	DefaultDPI        = 300
)

// PNGOptions sets the PNG canvas size and resolution. Zero fields take the
// defaults.
type PNGOptions struct {
	WidthInch, HeightInch float64
	DPI                   int
}

func (o PNGOptions) withDefaults() PNGOptions {
	if o.WidthInch == 0.0 {
		o.WidthInch = DefaultWidthInch
	}
	if o.HeightInch == 0.0 {
		o.HeightInch = DefaultHeightInch
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	return o
}

// SaveDXF writes the drawing as a DXF document, appending the .dxf extension
// when missing.
func (d *Drawing) SaveDXF(filename string) error {
	return d.dxfDocument().Save(ensureExt(filename, ".dxf"))
}

// Save writes the drawing as a DXF document and, when opts is non-nil, also
// as a PNG preview next to it with the same base name.
func (d *Drawing) Save(filename string, opts *PNGOptions) error {
	filename = ensureExt(filename, ".dxf")
	if err := d.dxfDocument().Save(filename); err != nil {
		return err
	}
	if opts != nil {
		base := filename[:len(filename)-len(filepath.Ext(filename))]
		return d.SavePNG(base+".png", *opts)
	}
	return nil
}

// SavePNG writes the drawing as a PNG image, appending the .png extension
// when missing. It is independent of the DXF output.
func (d *Drawing) SavePNG(filename string, opts PNGOptions) error {
	return d.renderPNG(ensureExt(filename, ".png"), opts.withDefaults())
}

func ensureExt(filename, ext string) string {
	if strings.ToLower(filepath.Ext(filename)) != ext {
		filename += ext
	}
	return filename
}
