package dxfgen

import (
	"github.com/dxfgen/dxfgen/dxf"
)

// dxfDocument translates the drawing into DXF entities in insertion order.
// Colors pass through unchanged, the raster override table is a PNG-only
// concern.
func (d *Drawing) dxfDocument() *dxf.Document {
	doc := dxf.New()
	for _, s := range d.shapes {
		switch s := s.(type) {
		case Line:
			doc.Line(s.Start.X, s.Start.Y, s.End.X, s.End.Y, int(s.Color))
		case GridLine:
			doc.Line(s.Start.X, s.Start.Y, s.End.X, s.End.Y, int(s.Color))
		case Circle:
			doc.Circle(s.Center.X, s.Center.Y, s.Radius, int(s.Color))
		case Rect:
			pts := []Point{s.Min, {s.Max.X, s.Min.Y}, s.Max, {s.Min.X, s.Max.Y}}
			doc.Polyline(dxfPoints(pts), true, int(s.Color))
		case Polygon:
			doc.Polyline(dxfPoints(s.Points), s.Closed, int(s.Color))
		case Star:
			doc.Polyline(dxfPoints(s.Points), true, int(s.Color))
		case Arc:
			doc.Arc(s.Center.X, s.Center.Y, s.Radius, s.Start, s.End, int(s.Color))
		case Spline:
			doc.Spline(dxfPoints(s.Control), int(s.Color))
		case Text:
			doc.Text(s.Content, s.Pos.X, s.Pos.Y, s.Height, int(s.Color))
		case GridLabel:
			doc.Text(s.Content, s.Pos.X, s.Pos.Y, s.Height, int(s.Color))
		}
	}
	return doc
}

func dxfPoints(pts []Point) []dxf.Point {
	dst := make([]dxf.Point, len(pts))
	for i, p := range pts {
		dst[i] = dxf.Point{X: p.X, Y: p.Y}
	}
	return dst
}
