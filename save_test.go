package dxfgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dxfgen/dxfgen/dxf"
	"github.com/tdewolff/test"
)

func TestDXFRoundTrip(t *testing.T) {
	d := New()
	test.Error(t, d.AddLine(Point{0, 0}, Point{1, 1}, Cyan))
	test.Error(t, d.AddCircle(Point{2, 2}, 1.0))
	test.Error(t, d.AddRectangle(Point{0, 0}, Point{4, 2}))
	test.Error(t, d.AddPolygon([]Point{{0, 0}, {2, 2}, {4, 0}}, false))
	test.Error(t, d.AddArc(Point{0, 0}, 3.0, 30.0, 60.0))
	test.Error(t, d.AddSpline([]Point{{0, 0}, {1, 2}, {2, 0}}))
	test.Error(t, d.AddText("t", Point{0, 0}, 1.0))
	test.Error(t, d.AddStar(Point{0, 0}, 3.0, 1.0, 5))

	entities := d.dxfDocument().Entities()
	test.T(t, len(entities), d.Len()) // same order, one entity per shape

	line := entities[0].(dxf.Line)
	test.T(t, line.Color, int(Cyan))

	circle := entities[1].(dxf.Circle)
	test.T(t, circle.R, 1.0)

	rect := entities[2].(dxf.Polyline)
	test.T(t, len(rect.Points), 4)
	test.T(t, rect.Closed, true)

	polygon := entities[3].(dxf.Polyline)
	test.T(t, polygon.Closed, false)

	arc := entities[4].(dxf.Arc)
	test.T(t, arc.Start, 30.0)
	test.T(t, arc.End, 60.0)

	// the DXF spline keeps the control points, not the sampled curve
	spline := entities[5].(dxf.Spline)
	test.T(t, len(spline.Control), 3)

	text := entities[6].(dxf.Text)
	test.T(t, text.Value, "t")

	star := entities[7].(dxf.Polyline)
	test.T(t, len(star.Points), 10)
	test.T(t, star.Closed, true)
}

func TestGridRoundTrip(t *testing.T) {
	d := New()
	test.Error(t, d.AddGrid(100.0, 80.0, 10.0, Point{0, 0}, true, 0.8))

	var lines, texts int
	for _, e := range d.dxfDocument().Entities() {
		switch e.(type) {
		case dxf.Line:
			lines++
		case dxf.Text:
			texts++
		default:
			test.Fail(t, "unexpected entity kind for grid")
		}
	}
	test.T(t, lines, 20)
	test.T(t, texts, 80)
	test.T(t, len(d.rasterPrimitives()), 100) // raster primitive list matches
}

func TestSave(t *testing.T) {
	d := New()
	test.Error(t, d.AddRectangle(Point{0, 0}, Point{10, 5}))
	test.Error(t, d.AddCircle(Point{15, 2.5}, 3.0))

	dir := t.TempDir()
	test.Error(t, d.Save(filepath.Join(dir, "t.dxf"), &PNGOptions{DPI: 72}))

	b, err := os.ReadFile(filepath.Join(dir, "t.dxf"))
	test.Error(t, err)
	s := string(b)
	test.T(t, strings.Count(s, "0\nLWPOLYLINE\n"), 1)
	test.T(t, strings.Count(s, "0\nCIRCLE\n"), 1)

	// the PNG lands next to the DXF with the same base name
	fi, err := os.Stat(filepath.Join(dir, "t.png"))
	test.Error(t, err)
	test.T(t, 0 < fi.Size(), true)

	// the rendered view covers all geometry
	min, max, ok := d.Bounds()
	test.T(t, ok, true)
	xmin, xmax, ymin, ymax := fitView(min, max, DefaultWidthInch/DefaultHeightInch)
	test.T(t, xmin <= 0.0 && 18.0 <= xmax, true)
	test.T(t, ymin <= 0.0 && 5.0 <= ymax, true)
}

func TestSaveDerivedPNGPath(t *testing.T) {
	d := New()
	test.Error(t, d.AddLine(Point{0, 0}, Point{1, 1}))

	dir := t.TempDir()
	test.Error(t, d.Save(filepath.Join(dir, "T.DXF"), &PNGOptions{DPI: 36}))

	// the PNG shares the base name even with an uppercase extension
	_, err := os.Stat(filepath.Join(dir, "T.png"))
	test.Error(t, err)
	if _, err := os.Stat(filepath.Join(dir, "T.DXF.png")); !os.IsNotExist(err) {
		test.Fail(t, "PNG must replace the extension, not append to it")
	}
}

func TestSaveVectorOnly(t *testing.T) {
	d := New()
	test.Error(t, d.AddLine(Point{0, 0}, Point{1, 1}))

	dir := t.TempDir()
	test.Error(t, d.Save(filepath.Join(dir, "plain"), nil)) // extension gets appended

	_, err := os.Stat(filepath.Join(dir, "plain.dxf"))
	test.Error(t, err)
	if _, err := os.Stat(filepath.Join(dir, "plain.png")); !os.IsNotExist(err) {
		test.Fail(t, "no PNG expected without raster options")
	}
}

func TestSaveBadPath(t *testing.T) {
	d := New()
	test.Error(t, d.AddLine(Point{0, 0}, Point{1, 1}))
	if err := d.Save(filepath.Join(t.TempDir(), "missing", "t.dxf"), nil); err == nil {
		test.Fail(t, "expected error for unwritable path")
	}
}
