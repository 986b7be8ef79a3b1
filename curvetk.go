/*
Package curvetk provides the numeric ground floor for a meters-parametrized
curve toolbox: tolerance handling, planar pairs, rigid motions, tangent
frames and the status convention shared by the geometry packages.

The actual spline mathematics lives in the wrapped NURBS engine
(github.com/alexozer/verb); this module only layers an arc-length ("meters")
parametrization and a small facade on top of it.

# BSD License

# Copyright (c) Giulio Mercatali

All rights reserved.

Please refer to the license file for more information.
*/
package curvetk

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curvetk'
func tracer() tracing.Trace {
	return tracing.Select("curvetk")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// DefaultEpsge is the default geometric resolution for arc-length queries.
var DefaultEpsge float64 = 0.000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// === Status Convention =====================================================

// Status is the flag convention shared by the geometry types: zero is OK,
// positive values are warnings, negative values are errors. Geometry types
// keep the status of their last delegated call.
type Status int

// Status values set by curve operations.
const (
	StatusDegenerate Status = -2 // geometry degenerate, call failed
	StatusFailed     Status = -1 // last delegated call failed
	StatusOK         Status = 0  // last delegated call succeeded
	StatusClamped    Status = 1  // query was clamped into the valid range
)

func (s Status) String() string {
	switch s {
	case StatusFailed:
		return "failed"
	case StatusOK:
		return "ok"
	case StatusClamped:
		return "clamped"
	case StatusDegenerate:
		return "degenerate"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// IsWarning is a predicate: warning statuses signal a recoverable condition.
func (s Status) IsWarning() bool {
	return s > 0
}

// IsError is a predicate: error statuses signal a failed delegated call.
func (s Status) IsError() bool {
	return s < 0
}

// === Pair Data Type ========================================================

// Pair is an interface for pairs / 2D-points. Waypoint interpolation and
// polygon clipping operate in the z=0 plane of the world frame and use pairs
// for their planar work.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	px := real(p.C())
	py := imag(p.C())
	return px, py
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	p = P(Zap(p.X()), Zap(p.Y()))
	return p
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a).Zap()
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	T := Translation(v)
	return T.Transform(p).Zap()
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	T := Rotation(theta)
	return T.Transform(p).Zap()
}
