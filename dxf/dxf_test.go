package dxf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestDocument(t *testing.T) {
	d := New()
	d.Line(0.0, 0.0, 100.0, 50.0, 1)
	d.Circle(10.0, 10.0, 5.0, 3)
	d.Arc(0.0, 0.0, 8.0, 45.0, 135.0, 4)
	d.Polyline([]Point{{0, 0}, {10, 0}, {10, 10}}, true, 5)
	d.Spline([]Point{{0, 0}, {5, 10}, {10, 0}, {15, 10}}, 6)
	d.Text("hello", 1.0, 2.0, 2.5, 7)
	test.T(t, len(d.Entities()), 6)

	buf := &bytes.Buffer{}
	n, err := d.WriteTo(buf)
	test.Error(t, err)
	test.T(t, n, int64(buf.Len()))

	s := buf.String()
	for _, want := range []string{
		"$ACADVER\n1\nAC1015",
		"0\nLINE\n", "0\nCIRCLE\n", "0\nARC\n", "0\nLWPOLYLINE\n", "0\nSPLINE\n", "0\nTEXT\n",
		"2\nENTITIES",
		"0\nEOF\n",
	} {
		if !strings.Contains(s, want) {
			test.Fail(t, "output misses", strings.ReplaceAll(want, "\n", " "))
		}
	}

	// arc angles use group codes 50 and 51
	test.T(t, strings.Contains(s, "50\n45\n"), true)
	test.T(t, strings.Contains(s, "51\n135\n"), true)

	// text carries height and value
	test.T(t, strings.Contains(s, "40\n2.5\n1\nhello\n"), true)
}

func TestSplineKnots(t *testing.T) {
	// cubic spline through 4 control points uses a clamped uniform knot vector
	test.T(t, clampedKnots(4, 3), []float64{0, 0, 0, 0, 1, 1, 1, 1})
	test.T(t, clampedKnots(5, 3), []float64{0, 0, 0, 0, 1, 2, 2, 2, 2})

	// fewer control points lower the degree
	d := New()
	d.Spline([]Point{{0, 0}, {1, 1}}, 7)
	buf := &bytes.Buffer{}
	_, err := d.WriteTo(buf)
	test.Error(t, err)
	test.T(t, strings.Contains(buf.String(), "71\n1\n"), true)
}

func TestPolylineFlags(t *testing.T) {
	d := New()
	d.Polyline([]Point{{0, 0}, {1, 0}, {1, 1}}, false, 2)
	buf := &bytes.Buffer{}
	_, err := d.WriteTo(buf)
	test.Error(t, err)
	test.T(t, strings.Contains(buf.String(), "90\n3\n70\n0\n"), true)
}

func TestSave(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.dxf")
	d := New()
	d.Line(0.0, 0.0, 1.0, 1.0, 7)
	test.Error(t, d.Save(filename))

	b, err := os.ReadFile(filename)
	test.Error(t, err)
	test.T(t, strings.HasSuffix(string(b), "0\nEOF\n"), true)
}

func TestSaveBadPath(t *testing.T) {
	d := New()
	if err := d.Save(filepath.Join(t.TempDir(), "missing", "out.dxf")); err == nil {
		test.Fail(t, "expected error for unwritable path")
	}
}
