/*
Package polygon implements planar survey regions with boolean set
operations.

A Polygon is a rigid sequence of corner waypoints in the z=0 plane. It
is built with the same builder idiom as the spline routes of package
interp:

	region := polygon.NullPolygon().
		Knot(curvetk.P(0, 0)).
		Knot(curvetk.P(10, 0)).
		Knot(curvetk.P(10, 8)).
		Knot(curvetk.P(0, 8)).
		Cycle()

Boolean operations (union, intersection, difference, symmetric
difference) are delegated to a polygon clipping library implementing
the Martínez–Rueda–Feito algorithm. An operation may produce zero or
more result polygons, one per resulting contour.

Closed polygons convert to meters-parametrized curves via Outline, so
a region boundary can be sampled, sectioned and intersected like any
other mission geometry.

BSD License

Copyright (c) Giulio Mercatali

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/gmercatali/curvetk"
	"github.com/gmercatali/curvetk/curve"
)

// tracer writes to trace with key 'polygon'
func tracer() tracing.Trace {
	return tracing.Select("polygon")
}

// ErrOpenPolygon flags an operation which needs a closed polygon.
var ErrOpenPolygon = errors.New("polygon is not closed")

// ErrTooFewKnots flags a polygon with less than 3 corners.
var ErrTooFewKnots = errors.New("polygon needs at least 3 corners")

// Polygon is a sequence of corner waypoints, optionally closed into a
// region. Clients construct polygons using NullPolygon() and the builder
// methods.
type Polygon struct {
	points []curvetk.Pair
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
func NullPolygon() *Polygon {
	return &Polygon{points: make([]curvetk.Pair, 0, 8)}
}

// Knot appends a corner waypoint. Part of builder functionality.
// Corners coinciding with the previous one are dropped.
func (pg *Polygon) Knot(p curvetk.Pair) *Polygon {
	if n := len(pg.points); n > 0 && pg.points[n-1].Equal(p) {
		return pg
	}
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes the polygon into a region. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a closed axis-aligned rectangle from two opposite corners.
func Box(topleft, bottomright curvetk.Pair) *Polygon {
	return NullPolygon().
		Knot(topleft).
		Knot(curvetk.P(bottomright.X(), topleft.Y())).
		Knot(bottomright).
		Knot(curvetk.P(topleft.X(), bottomright.Y())).
		Cycle()
}

// N returns the number of corner waypoints.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns corner waypoint i, modulo N.
func (pg *Polygon) Pt(i int) curvetk.Pair {
	return pg.points[i%len(pg.points)]
}

// IsCycle is a predicate: is this polygon a closed region?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// AsString makes a polygon printable.
func AsString(pg *Polygon) string {
	var s string
	for i, pt := range pg.points {
		if i > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("(%.4g,%.4g)", pt.X(), pt.Y())
	}
	if pg.cycle {
		s += " -- cycle"
	}
	return s
}

func (pg *Polygon) String() string {
	return AsString(pg)
}

// signed shoelace sum, positive for counter-clockwise winding
func (pg *Polygon) signedArea() float64 {
	a := 0.0
	n := len(pg.points)
	for i := 0; i < n; i++ {
		p, q := pg.points[i], pg.points[(i+1)%n]
		a += p.X()*q.Y() - q.X()*p.Y()
	}
	return a / 2
}

// Area computes the enclosed area of a closed polygon.
func (pg *Polygon) Area() (float64, error) {
	if err := pg.validateRegion(); err != nil {
		return 0, err
	}
	a := pg.signedArea()
	if a < 0 {
		a = -a
	}
	return a, nil
}

// IsCounterclockwise is a predicate: does the region wind counter-clockwise?
func (pg *Polygon) IsCounterclockwise() bool {
	return pg.signedArea() > 0
}

// Centroid computes the area centroid of a closed polygon.
func (pg *Polygon) Centroid() (curvetk.Pair, error) {
	if err := pg.validateRegion(); err != nil {
		return curvetk.P(0, 0), err
	}
	a := pg.signedArea()
	if curvetk.Is0(a) {
		return curvetk.P(0, 0), fmt.Errorf("%w: degenerate region", ErrTooFewKnots)
	}
	cx, cy := 0.0, 0.0
	n := len(pg.points)
	for i := 0; i < n; i++ {
		p, q := pg.points[i], pg.points[(i+1)%n]
		w := p.X()*q.Y() - q.X()*p.Y()
		cx += (p.X() + q.X()) * w
		cy += (p.Y() + q.Y()) * w
	}
	return curvetk.P(cx/(6*a), cy/(6*a)), nil
}

// Contains tests whether a point lies inside a closed polygon.
func (pg *Polygon) Contains(p curvetk.Pair) (bool, error) {
	if err := pg.validateRegion(); err != nil {
		return false, err
	}
	return pg.contour().Contains(polyclip.Point{X: p.X(), Y: p.Y()}), nil
}

// Reversed returns a copy with opposite winding.
func (pg *Polygon) Reversed() *Polygon {
	rev := &Polygon{
		points: make([]curvetk.Pair, len(pg.points)),
		cycle:  pg.cycle,
	}
	for i, pt := range pg.points {
		rev.points[len(pg.points)-1-i] = pt
	}
	return rev
}

func (pg *Polygon) validateRegion() error {
	if !pg.cycle {
		return ErrOpenPolygon
	}
	if len(pg.points) < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewKnots, len(pg.points))
	}
	return nil
}

// --- Boolean operations ----------------------------------------------------

// Union computes the set union of two closed polygons. The result may
// consist of more than one contour (e.g., for disjoint operands).
func Union(pg, other *Polygon) ([]*Polygon, error) {
	return construct(polyclip.UNION, pg, other)
}

// Intersect computes the set intersection of two closed polygons. The
// result is empty for non-overlapping operands.
func Intersect(pg, other *Polygon) ([]*Polygon, error) {
	return construct(polyclip.INTERSECTION, pg, other)
}

// Difference computes the set difference pg minus other. Cutting a hole
// produces more than one contour.
func Difference(pg, other *Polygon) ([]*Polygon, error) {
	return construct(polyclip.DIFFERENCE, pg, other)
}

// SymmetricDifference computes the areas covered by exactly one operand.
func SymmetricDifference(pg, other *Polygon) ([]*Polygon, error) {
	return construct(polyclip.XOR, pg, other)
}

func construct(op polyclip.Op, pg, other *Polygon) ([]*Polygon, error) {
	if err := pg.validateRegion(); err != nil {
		return nil, err
	}
	if err := other.validateRegion(); err != nil {
		return nil, err
	}
	clipped := pg.clip().Construct(op, other.clip())
	tracer().Debugf("clip op %d: %d * %d corners -> %d contours",
		op, pg.N(), other.N(), len(clipped))
	result := make([]*Polygon, 0, len(clipped))
	for _, contour := range clipped {
		r := NullPolygon()
		for _, pt := range contour {
			r.Knot(curvetk.P(pt.X, pt.Y))
		}
		if r.N() >= 3 {
			result = append(result, r.Cycle())
		}
	}
	return result, nil
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, len(pg.points))
	for _, pt := range pg.points {
		c.Add(polyclip.Point{X: pt.X(), Y: pt.Y()})
	}
	return c
}

func (pg *Polygon) clip() polyclip.Polygon {
	return polyclip.Polygon{pg.contour()}
}

// --- Conversion to mission geometry ----------------------------------------

// Outline converts a closed polygon into a meters-parametrized curve
// tracing its boundary, starting and ending at corner 0.
func (pg *Polygon) Outline(name string) (*curve.Curve, error) {
	if err := pg.validateRegion(); err != nil {
		return nil, err
	}
	pts := make([]vec3.T, 0, len(pg.points)+1)
	for _, pt := range pg.points {
		pts = append(pts, vec3.T{pt.X(), pt.Y(), 0})
	}
	pts = append(pts, pts[0])
	c, err := curve.NewPolyline(pts)
	if err != nil {
		return nil, err
	}
	c.SetName(name)
	return c, nil
}
