// Package dxf implements a minimal writer for ASCII DXF documents. It covers
// the entity types needed for simple technical drawings (LINE, CIRCLE, ARC,
// LWPOLYLINE, SPLINE, TEXT) on layer 0 with per-entity ACI colors. The output
// carries a HEADER section with $ACADVER AC1015 and an ENTITIES section; it
// does not aim for full R2000 compliance (no tables, no objects).
package dxf

import (
	"bufio"
	"io"
	"os"
	"strconv"
)

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Entity is a drawing entity of the document.
type Entity interface {
	writeTo(w *writer)
}

// Line is a segment from (X1,Y1) to (X2,Y2).
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          int
}

// Circle is a circle around (X,Y) with radius R.
type Circle struct {
	X, Y, R float64
	Color   int
}

// Arc is a counter clockwise circular arc between two angles in degrees.
type Arc struct {
	X, Y, R    float64
	Start, End float64
	Color      int
}

// Polyline is a lightweight polyline through Points.
type Polyline struct {
	Points []Point
	Closed bool
	Color  int
}

// Spline is a clamped spline through its control points, cubic when there are
// at least 4, otherwise of degree len(Control)-1.
type Spline struct {
	Control []Point
	Color   int
}

// Text is a single-line text entity with its insertion point at (X,Y).
type Text struct {
	Value  string
	X, Y   float64
	Height float64
	Color  int
}

// Document is an in-memory DXF drawing.
type Document struct {
	entities []Entity
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Entities returns the entities in insertion order.
func (d *Document) Entities() []Entity {
	return d.entities
}

// Add appends an entity.
func (d *Document) Add(e Entity) {
	d.entities = append(d.entities, e)
}

// Line appends a line entity.
func (d *Document) Line(x1, y1, x2, y2 float64, color int) {
	d.Add(Line{x1, y1, x2, y2, color})
}

// Circle appends a circle entity.
func (d *Document) Circle(x, y, r float64, color int) {
	d.Add(Circle{x, y, r, color})
}

// Arc appends an arc entity with angles in degrees.
func (d *Document) Arc(x, y, r, start, end float64, color int) {
	d.Add(Arc{x, y, r, start, end, color})
}

// Polyline appends a polyline entity.
func (d *Document) Polyline(points []Point, closed bool, color int) {
	d.Add(Polyline{points, closed, color})
}

// Spline appends a spline entity through the given control points.
func (d *Document) Spline(control []Point, color int) {
	d.Add(Spline{control, color})
}

// Text appends a text entity.
func (d *Document) Text(value string, x, y, height float64, color int) {
	d.Add(Text{value, x, y, height, color})
}

// WriteTo writes the document as ASCII DXF.
func (d *Document) WriteTo(dst io.Writer) (int64, error) {
	w := &writer{b: bufio.NewWriter(dst)}

	w.tag(0, "SECTION")
	w.tag(2, "HEADER")
	w.tag(9, "$ACADVER")
	w.tag(1, "AC1015")
	w.tag(0, "ENDSEC")

	w.tag(0, "SECTION")
	w.tag(2, "ENTITIES")
	for _, e := range d.entities {
		e.writeTo(w)
	}
	w.tag(0, "ENDSEC")
	w.tag(0, "EOF")

	if w.err == nil {
		w.err = w.b.Flush()
	}
	return w.n, w.err
}

// Save writes the document to the given file.
func (d *Document) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err = d.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writer emits group code/value pairs and latches the first write error.
type writer struct {
	b      *bufio.Writer
	n      int64
	err    error
	handle int
}

func (w *writer) tag(code int, value string) {
	if w.err != nil {
		return
	}
	n, err := w.b.WriteString(strconv.Itoa(code) + "\n" + value + "\n")
	w.n += int64(n)
	w.err = err
}

func (w *writer) num(code int, f float64) {
	w.tag(code, strconv.FormatFloat(f, 'f', -1, 64))
}

func (w *writer) int(code, v int) {
	w.tag(code, strconv.Itoa(v))
}

// begin writes the groups every entity starts with: type, handle, subclass
// marker, layer and color.
func (w *writer) begin(typ string, color int) {
	w.handle++
	w.tag(0, typ)
	w.tag(5, strconv.FormatInt(int64(w.handle), 16))
	w.tag(100, "AcDbEntity")
	w.tag(8, "0")
	w.int(62, color)
}

func (e Line) writeTo(w *writer) {
	w.begin("LINE", e.Color)
	w.tag(100, "AcDbLine")
	w.num(10, e.X1)
	w.num(20, e.Y1)
	w.num(30, 0.0)
	w.num(11, e.X2)
	w.num(21, e.Y2)
	w.num(31, 0.0)
}

func (e Circle) writeTo(w *writer) {
	w.begin("CIRCLE", e.Color)
	w.tag(100, "AcDbCircle")
	w.num(10, e.X)
	w.num(20, e.Y)
	w.num(30, 0.0)
	w.num(40, e.R)
}

func (e Arc) writeTo(w *writer) {
	w.begin("ARC", e.Color)
	w.tag(100, "AcDbCircle")
	w.num(10, e.X)
	w.num(20, e.Y)
	w.num(30, 0.0)
	w.num(40, e.R)
	w.tag(100, "AcDbArc")
	w.num(50, e.Start)
	w.num(51, e.End)
}

func (e Polyline) writeTo(w *writer) {
	w.begin("LWPOLYLINE", e.Color)
	w.tag(100, "AcDbPolyline")
	w.int(90, len(e.Points))
	if e.Closed {
		w.int(70, 1)
	} else {
		w.int(70, 0)
	}
	for _, p := range e.Points {
		w.num(10, p.X)
		w.num(20, p.Y)
	}
}

func (e Spline) writeTo(w *writer) {
	degree := 3
	if len(e.Control)-1 < degree {
		degree = len(e.Control) - 1
	}
	knots := clampedKnots(len(e.Control), degree)

	w.begin("SPLINE", e.Color)
	w.tag(100, "AcDbSpline")
	w.int(70, 8) // planar
	w.int(71, degree)
	w.int(72, len(knots))
	w.int(73, len(e.Control))
	w.int(74, 0)
	for _, k := range knots {
		w.num(40, k)
	}
	for _, p := range e.Control {
		w.num(10, p.X)
		w.num(20, p.Y)
		w.num(30, 0.0)
	}
}

func (e Text) writeTo(w *writer) {
	w.begin("TEXT", e.Color)
	w.tag(100, "AcDbText")
	w.num(10, e.X)
	w.num(20, e.Y)
	w.num(30, 0.0)
	w.num(40, e.Height)
	w.tag(1, e.Value)
}

// clampedKnots returns the uniform clamped knot vector for n control points
// of the given degree: degree+1 repeated knots at both ends.
func clampedKnots(n, degree int) []float64 {
	knots := make([]float64, n+degree+1)
	for i := range knots {
		switch {
		case i < degree+1:
			knots[i] = 0.0
		case n <= i:
			knots[i] = float64(n - degree)
		default:
			knots[i] = float64(i - degree)
		}
	}
	return knots
}
