package dxfgen

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Font sizes in points per drawing unit of text height. Grid labels render
// at 60% of user text so dense coordinate grids stay readable.
const (
	textFontScale      = 4.0
	gridLabelFontScale = 2.4
)

// rasterPrimitive is one plotting command for the raster backend: a text
// label when FontSize is set, otherwise a polyline.
type rasterPrimitive struct {
	Points   []Point
	Label    string
	Pos      Point
	FontSize float64 // in points
	Color    color.RGBA
}

// rasterPrimitives flattens the drawing into plotting primitives in insertion
// order, one per shape, with colors mapped through the raster override table.
func (d *Drawing) rasterPrimitives() []rasterPrimitive {
	prims := make([]rasterPrimitive, 0, len(d.shapes))
	polyline := func(pts []Point, closed bool, col ColorToken) {
		if closed && 0 < len(pts) && !pts[0].Equals(pts[len(pts)-1]) {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		prims = append(prims, rasterPrimitive{Points: pts, Color: RasterColor(col)})
	}

	for _, s := range d.shapes {
		switch s := s.(type) {
		case Line:
			polyline([]Point{s.Start, s.End}, false, s.Color)
		case GridLine:
			polyline([]Point{s.Start, s.End}, false, s.Color)
		case Circle:
			polyline(arcPoints(s.Center, s.Radius, 0.0, 360.0), true, s.Color)
		case Rect:
			polyline([]Point{s.Min, {s.Max.X, s.Min.Y}, s.Max, {s.Min.X, s.Max.Y}}, true, s.Color)
		case Polygon:
			polyline(s.Points, s.Closed, s.Color)
		case Arc:
			polyline(s.Points, false, s.Color)
		case Spline:
			polyline(s.Points, false, s.Color)
		case Star:
			polyline(s.Points, true, s.Color)
		case Text:
			prims = append(prims, rasterPrimitive{Label: s.Content, Pos: s.Pos, FontSize: textFontScale * s.Height, Color: RasterColor(s.Color)})
		case GridLabel:
			prims = append(prims, rasterPrimitive{Label: s.Content, Pos: s.Pos, FontSize: gridLabelFontScale * s.Height, Color: RasterColor(s.Color)})
		}
	}
	return prims
}

// renderPNG draws the whole drawing on a white canvas of the given size and
// writes it as PNG. The view is fitted to the geometry bounding box with a 5%
// margin and widened on the short side toward the canvas aspect ratio.
func (d *Drawing) renderPNG(filename string, opts PNGOptions) error {
	if opts.WidthInch <= 0.0 || opts.HeightInch <= 0.0 {
		return fmt.Errorf("%w: canvas size (%v,%v) must be positive", ErrInvalidGeometry, opts.WidthInch, opts.HeightInch)
	} else if opts.DPI <= 0 {
		return fmt.Errorf("%w: resolution %d must be positive", ErrInvalidGeometry, opts.DPI)
	}

	p := plot.New()
	p.BackgroundColor = color.White

	faint := color.NRGBA{211, 211, 211, 77}
	axes := plotter.NewGrid()
	axes.Vertical.Color = faint
	axes.Horizontal.Color = faint
	p.Add(axes)

	for _, prim := range d.rasterPrimitives() {
		if 0.0 < prim.FontSize {
			labels, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    plotter.XYs{{X: prim.Pos.X, Y: prim.Pos.Y}},
				Labels: []string{prim.Label},
			})
			if err != nil {
				return err
			}
			labels.TextStyle[0].Color = prim.Color
			labels.TextStyle[0].Font.Size = vg.Points(prim.FontSize)
			p.Add(labels)
			continue
		}

		xys := make(plotter.XYs, len(prim.Points))
		for i, pt := range prim.Points {
			xys[i].X, xys[i].Y = pt.X, pt.Y
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Color = prim.Color
		line.LineStyle.Width = vg.Points(1.0)
		p.Add(line)
	}

	if min, max, ok := d.Bounds(); ok {
		p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = fitView(min, max, opts.WidthInch/opts.HeightInch)
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.WidthInch)*vg.Inch, vg.Length(opts.HeightInch)*vg.Inch),
		vgimg.UseDPI(opts.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err = png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// fitView expands the bounding box by a 5% margin and widens the short axis
// so data units map roughly square on a canvas with the given aspect ratio.
func fitView(min, max Point, aspect float64) (xmin, xmax, ymin, ymax float64) {
	span := max.Sub(min)
	margin := 0.05 * span.X
	if span.X < span.Y {
		margin = 0.05 * span.Y
	}
	if margin == 0.0 {
		margin = 1.0
	}
	xmin, xmax = min.X-margin, max.X+margin
	ymin, ymax = min.Y-margin, max.Y+margin

	if (ymax-ymin)*aspect < xmax-xmin {
		pad := ((xmax - xmin) / aspect - (ymax - ymin)) / 2.0
		ymin, ymax = ymin-pad, ymax+pad
	} else {
		pad := ((ymax - ymin) * aspect - (xmax - xmin)) / 2.0
		xmin, xmax = xmin-pad, xmax+pad
	}
	return xmin, xmax, ymin, ymax
}
