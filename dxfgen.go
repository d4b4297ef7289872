// Package dxfgen builds simple 2D technical drawings and exports them as DXF
// documents with optional PNG previews. Shapes are appended to a Drawing in
// order; later shapes overlay earlier ones in both outputs.
package dxfgen

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned by the add operations for non-positive radii,
// spacings or dimensions and for too-few points. Match with errors.Is.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Shape is one entry of a Drawing.
type Shape interface {
	shape()
}

// Line is a straight segment between two points.
type Line struct {
	Start, End Point
	Color      ColorToken
}

// Circle is a full circle around a center point.
type Circle struct {
	Center Point
	Radius float64
	Color  ColorToken
}

// Rect is an axis-aligned rectangle with Min the lower-left and Max the
// upper-right corner.
type Rect struct {
	Min, Max Point
	Color    ColorToken
}

// Polygon is a sequence of points, optionally closed.
type Polygon struct {
	Points []Point
	Closed bool
	Color  ColorToken
}

// Arc is a circular arc between two angles in degrees, counter clockwise.
// Points holds the sampled curve used by the PNG output.
type Arc struct {
	Center     Point
	Radius     float64
	Start, End float64
	Points     []Point
	Color      ColorToken
}

// Spline is a smooth curve through its control points. Points holds the
// sampled approximation used by the PNG output; the DXF output writes a
// native spline entity from the control points instead.
type Spline struct {
	Control []Point
	Points  []Point
	Color   ColorToken
}

// Star is a closed star polygon with N spikes alternating between Outer and
// Inner radius. Points holds its 2N vertices.
type Star struct {
	Center       Point
	Outer, Inner float64
	N            int
	Points       []Point
	Color        ColorToken
}

// Text is a text label anchored at the lower-left of Pos.
type Text struct {
	Content string
	Pos     Point
	Height  float64
	Color   ColorToken
}

// GridLine is a grid line added by AddGrid. It exports like Line but lets the
// outputs tell grid geometry apart from user shapes.
type GridLine struct {
	Start, End Point
	Color      ColorToken
}

// GridLabel is a coordinate label added by AddGrid. The PNG output renders it
// at a smaller font than Text of the same height.
type GridLabel struct {
	Content string
	Pos     Point
	Height  float64
	Color   ColorToken
}

func (Line) shape()      {}
func (Circle) shape()    {}
func (Rect) shape()      {}
func (Polygon) shape()   {}
func (Arc) shape()       {}
func (Spline) shape()    {}
func (Star) shape()      {}
func (Text) shape()      {}
func (GridLine) shape()  {}
func (GridLabel) shape() {}

// Drawing is an append-only collection of shapes. It is not safe for
// concurrent mutation; the save operations only read it.
type Drawing struct {
	shapes []Shape
}

// New returns an empty drawing.
func New() *Drawing {
	return &Drawing{}
}

// Len returns the number of shapes in the drawing.
func (d *Drawing) Len() int {
	return len(d.shapes)
}

// Shapes returns the shapes in insertion order. The returned slice must not
// be modified.
func (d *Drawing) Shapes() []Shape {
	return d.shapes
}

// AddLine adds a line from start to end.
func (d *Drawing) AddLine(start, end Point, color ...ColorToken) error {
	d.shapes = append(d.shapes, Line{start, end, pickColor(DefaultColor, color)})
	return nil
}

// AddCircle adds a circle around center with radius r.
func (d *Drawing) AddCircle(center Point, r float64, color ...ColorToken) error {
	if r <= 0.0 {
		return fmt.Errorf("%w: circle radius %v must be positive", ErrInvalidGeometry, r)
	}
	d.shapes = append(d.shapes, Circle{center, r, pickColor(DefaultColor, color)})
	return nil
}

// AddRectangle adds the axis-aligned rectangle spanned by two opposite
// corners, given in any order.
func (d *Drawing) AddRectangle(corner1, corner2 Point, color ...ColorToken) error {
	min := Point{math.Min(corner1.X, corner2.X), math.Min(corner1.Y, corner2.Y)}
	max := Point{math.Max(corner1.X, corner2.X), math.Max(corner1.Y, corner2.Y)}
	d.shapes = append(d.shapes, Rect{min, max, pickColor(DefaultColor, color)})
	return nil
}

// AddPolygon adds a polygon through the given points, closed back to the
// first point when closed is set. It needs at least 2 points.
func (d *Drawing) AddPolygon(points []Point, closed bool, color ...ColorToken) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: polygon needs at least 2 points, got %d", ErrInvalidGeometry, len(points))
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	d.shapes = append(d.shapes, Polygon{pts, closed, pickColor(DefaultColor, color)})
	return nil
}

// AddArc adds a circular arc around center from theta0 to theta1 in degrees,
// counter clockwise. If theta1 < theta0 the arc wraps through 0/360; equal
// angles give a zero-length arc.
func (d *Drawing) AddArc(center Point, r, theta0, theta1 float64, color ...ColorToken) error {
	if r <= 0.0 {
		return fmt.Errorf("%w: arc radius %v must be positive", ErrInvalidGeometry, r)
	}
	d.shapes = append(d.shapes, Arc{center, r, theta0, theta1, arcPoints(center, r, theta0, theta1), pickColor(DefaultColor, color)})
	return nil
}

// AddSpline adds a smooth curve through at least 2 control points.
func (d *Drawing) AddSpline(control []Point, color ...ColorToken) error {
	if len(control) < 2 {
		return fmt.Errorf("%w: spline needs at least 2 control points, got %d", ErrInvalidGeometry, len(control))
	}
	ctrl := make([]Point, len(control))
	copy(ctrl, control)
	d.shapes = append(d.shapes, Spline{ctrl, splinePoints(ctrl), pickColor(DefaultColor, color)})
	return nil
}

// AddText adds a text label with its lower-left anchor at pos.
func (d *Drawing) AddText(text string, pos Point, height float64, color ...ColorToken) error {
	if height <= 0.0 {
		return fmt.Errorf("%w: text height %v must be positive", ErrInvalidGeometry, height)
	}
	d.shapes = append(d.shapes, Text{text, pos, height, pickColor(DefaultColor, color)})
	return nil
}

// AddStar adds a closed star polygon with n spikes alternating between outer
// and inner radius, the first spike pointing up. n must be at least 2.
func (d *Drawing) AddStar(center Point, outer, inner float64, n int, color ...ColorToken) error {
	if outer <= 0.0 || inner <= 0.0 {
		return fmt.Errorf("%w: star radii (%v,%v) must be positive", ErrInvalidGeometry, outer, inner)
	} else if n < 2 {
		return fmt.Errorf("%w: star needs at least 2 points, got %d", ErrInvalidGeometry, n)
	}
	d.shapes = append(d.shapes, Star{center, outer, inner, n, starPoints(center, outer, inner, n), pickColor(DefaultColor, color)})
	return nil
}

// AddGrid adds a coordinate grid of the given width and height starting at
// origin, with grid lines every spacing units and boundary lines at exactly
// the far edges even when spacing does not divide them. When showCoords is
// set, a label with the origin-relative coordinates is placed at every
// interior grid intersection, offset by 5% of the spacing; textHeight <= 0
// uses a default of 0.8. Grid lines default to Gray and labels are Red.
func (d *Drawing) AddGrid(width, height, spacing float64, origin Point, showCoords bool, textHeight float64, color ...ColorToken) error {
	if width <= 0.0 || height <= 0.0 {
		return fmt.Errorf("%w: grid size (%v,%v) must be positive", ErrInvalidGeometry, width, height)
	} else if spacing <= 0.0 {
		return fmt.Errorf("%w: grid spacing %v must be positive", ErrInvalidGeometry, spacing)
	}
	if textHeight <= 0.0 {
		textHeight = 0.8
	}
	col := pickColor(Gray, color)

	xs := gridSteps(width, spacing)
	ys := gridSteps(height, spacing)
	for _, x := range xs {
		d.shapes = append(d.shapes, GridLine{origin.Add(Point{x, 0.0}), origin.Add(Point{x, height}), col})
	}
	for _, y := range ys {
		d.shapes = append(d.shapes, GridLine{origin.Add(Point{0.0, y}), origin.Add(Point{width, y}), col})
	}

	if showCoords {
		// labels sit next to each interior intersection, the far boundary
		// lines stay unlabeled
		offset := 0.05 * spacing
		for _, x := range xs[:len(xs)-1] {
			for _, y := range ys[:len(ys)-1] {
				pos := origin.Add(Point{x + offset, y + offset})
				d.shapes = append(d.shapes, GridLabel{Point{x, y}.String(), pos, textHeight, Red})
			}
		}
	}
	return nil
}

// Bounds returns the lower-left and upper-right corners of the box containing
// all geometry, or false for an empty drawing. Text extents are approximated
// by their anchor points.
func (d *Drawing) Bounds() (Point, Point, bool) {
	if len(d.shapes) == 0 {
		return Point{}, Point{}, false
	}

	min := Point{math.Inf(1), math.Inf(1)}
	max := Point{math.Inf(-1), math.Inf(-1)}
	grow := func(pts ...Point) {
		for _, p := range pts {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	for _, s := range d.shapes {
		switch s := s.(type) {
		case Line:
			grow(s.Start, s.End)
		case GridLine:
			grow(s.Start, s.End)
		case Circle:
			grow(Point{s.Center.X - s.Radius, s.Center.Y - s.Radius}, Point{s.Center.X + s.Radius, s.Center.Y + s.Radius})
		case Rect:
			grow(s.Min, s.Max)
		case Polygon:
			grow(s.Points...)
		case Arc:
			grow(s.Points...)
		case Spline:
			grow(s.Points...)
		case Star:
			grow(s.Points...)
		case Text:
			grow(s.Pos)
		case GridLabel:
			grow(s.Pos)
		}
	}
	return min, max, true
}
