package dxfgen

import (
	"math"
	"strconv"
)

// Epsilon is the tolerance used for coordinate comparisons.
const Epsilon = 1e-9

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// num formats a coordinate the way it appears in labels and DXF output,
// without trailing zeros.
func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// P returns the point at (x,y).
func P(x, y float64) Point {
	return Point{x, y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dist returns the distance between P and Q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

func (p Point) String() string {
	return "(" + num(p.X) + "," + num(p.Y) + ")"
}
