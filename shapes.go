package dxfgen

import (
	"math"
)

// arcPoints samples the circular arc with radius r between angles theta0 and
// theta1 in degrees, roughly one point per degree with the first and last
// points at exactly theta0 and theta1. If theta1 < theta0 the arc wraps
// through 0/360. If theta0 == theta1 a single point is returned.
func arcPoints(center Point, r, theta0, theta1 float64) []Point {
	if theta1 < theta0 {
		theta1 += 360.0
	}
	sweep := theta1 - theta0
	if equal(sweep, 0.0) {
		sintheta, costheta := math.Sincos(theta0 * math.Pi / 180.0)
		return []Point{{center.X + r*costheta, center.Y + r*sintheta}}
	}

	n := int(math.Ceil(sweep)) + 1
	if n < 2 {
		n = 2
	}
	pts := make([]Point, n)
	for i := range pts {
		theta := (theta0 + sweep*float64(i)/float64(n-1)) * math.Pi / 180.0
		sintheta, costheta := math.Sincos(theta)
		pts[i] = Point{center.X + r*costheta, center.Y + r*sintheta}
	}
	return pts
}

const splineSamplesPerSegment = 16

// splinePoints approximates a smooth curve through all control points using
// uniform Catmull-Rom segments with clamped end points. It needs at least 2
// control points; with exactly 2 the curve is the straight segment.
func splinePoints(ctrl []Point) []Point {
	if len(ctrl) < 2 {
		return nil
	} else if len(ctrl) == 2 {
		return []Point{ctrl[0], ctrl[1]}
	}

	pts := make([]Point, 0, (len(ctrl)-1)*splineSamplesPerSegment+1)
	pts = append(pts, ctrl[0])
	for i := 0; i < len(ctrl)-1; i++ {
		p0 := ctrl[max(i-1, 0)]
		p1, p2 := ctrl[i], ctrl[i+1]
		p3 := ctrl[min(i+2, len(ctrl)-1)]
		for j := 1; j <= splineSamplesPerSegment; j++ {
			t := float64(j) / splineSamplesPerSegment
			pts = append(pts, catmullRom(p0, p1, p2, p3, t))
		}
	}
	return pts
}

func catmullRom(p0, p1, p2, p3 Point, t float64) Point {
	t2, t3 := t*t, t*t*t
	return Point{
		0.5 * (2.0*p1.X + (p2.X-p0.X)*t + (2.0*p0.X-5.0*p1.X+4.0*p2.X-p3.X)*t2 + (3.0*p1.X-p0.X-3.0*p2.X+p3.X)*t3),
		0.5 * (2.0*p1.Y + (p2.Y-p0.Y)*t + (2.0*p0.Y-5.0*p1.Y+4.0*p2.Y-p3.Y)*t2 + (3.0*p1.Y-p0.Y-3.0*p2.Y+p3.Y)*t3),
	}
}

// starPoints returns the 2n vertices of a star polygon with alternating
// outer and inner radius. The first vertex points up and vertices proceed
// counter clockwise.
func starPoints(center Point, outer, inner float64, n int) []Point {
	dtheta := math.Pi / float64(n)
	theta0 := 0.5 * math.Pi

	pts := make([]Point, 2*n)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		sintheta, costheta := math.Sincos(theta0 + float64(i)*dtheta)
		pts[i] = Point{center.X + r*costheta, center.Y + r*sintheta}
	}
	return pts
}

// gridSteps returns the grid line offsets along one axis: every multiple of
// spacing below length, plus the boundary at exactly length even when spacing
// does not divide it.
func gridSteps(length, spacing float64) []float64 {
	steps := []float64{}
	for i := 0; ; i++ {
		x := float64(i) * spacing
		if length <= x || equal(x, length) {
			break
		}
		steps = append(steps, x)
	}
	return append(steps, length)
}
