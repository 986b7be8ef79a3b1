package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexozer/verb"
	vmake "github.com/alexozer/verb/make"
	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/gmercatali/curvetk"
)

// tracer writes to trace with key 'curve'
func tracer() tracing.Trace {
	return tracing.Select("curve")
}

// Dimension of the world frame. The wrapped engine evaluates 3D curves only.
const Dimension = 3

var (
	// ErrNilCurve indicates a nil engine curve handle.
	ErrNilCurve = errors.New("engine curve must not be nil")
	// ErrDegenerate indicates a curve of (nearly) zero length.
	ErrDegenerate = errors.New("curve is degenerate")
	// ErrOutOfRange indicates an abscissa outside the curve's parameter range.
	ErrOutOfRange = errors.New("abscissa out of range")
	// ErrInvalidSection indicates section bounds that do not describe a forward interval.
	ErrInvalidSection = errors.New("section bounds are invalid")
	// ErrTooFewSamples indicates a sampling request with fewer than 2 points.
	ErrTooFewSamples = errors.New("sampling needs at least 2 points")
	// ErrDerivativeOrder indicates a derivative request of order < 1.
	ErrDerivativeOrder = errors.New("derivative order must be at least 1")
	// ErrTooFewControls indicates too few control points for the requested curve.
	ErrTooFewControls = errors.New("too few control points")
)

// Curve is a meters-parametrized view onto an engine NURBS curve. The engine
// handle stays opaque; Curve caches derived facts about it and converts
// between the meters abscissa and the engine's native abscissa on every
// geometric query.
type Curve struct {
	crv    *verb.NurbsCurve // engine handle, owns the spline math
	order  int              // order (degree + 1) of the curve
	epsge  float64          // geometric resolution
	status curvetk.Status   // status of the last delegated call

	name       string
	length     float64 // cached arc length in meters
	startU     float64 // first value of the native parametrization
	endU       float64 // last value of the native parametrization
	startPoint vec3.T  // curve start point, world frame
	endPoint   vec3.T  // curve end point, world frame
}

// New wraps an existing engine curve. The curve's length, parameter ranges
// and endpoints are derived and cached; curves shorter than ε are rejected.
func New(crv *verb.NurbsCurve, name string) (*Curve, error) {
	if crv == nil {
		return nil, ErrNilCurve
	}
	c := &Curve{
		crv:   crv,
		epsge: curvetk.DefaultEpsge,
		name:  name,
	}
	if err := c.refresh(); err != nil {
		return nil, err
	}
	tracer().Debugf("wrapped curve %s", c)
	return c, nil
}

// refresh re-derives the cached facts from the engine handle.
func (c *Curve) refresh() error {
	knots := c.crv.Knots()
	c.order = c.crv.Degree() + 1
	c.startU = knots[0]
	c.endU = knots[len(knots)-1]
	c.length = c.crv.Length()
	// coincident endpoints poison the engine's knot normalization with NaNs
	if math.IsNaN(c.length) || curvetk.Is0(c.length) {
		c.status = curvetk.StatusDegenerate
		return fmt.Errorf("%w: length %g", ErrDegenerate, c.length)
	}
	c.startPoint = c.crv.Point(c.startU)
	c.endPoint = c.crv.Point(c.endU)
	c.status = curvetk.StatusOK
	return nil
}

// NewStraightLine builds the straight line from start to end.
func NewStraightLine(start, end vec3.T) (*Curve, error) {
	return New(vmake.Line(&start, &end), "straight-line")
}

// NewPolyline builds a piecewise-linear curve through the given points.
func NewPolyline(points []vec3.T) (*Curve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: polyline needs 2 points, got %d", ErrTooFewControls, len(points))
	}
	return New(vmake.Polyline(points), "polyline")
}

// NewArc builds a circular arc around center in the z=0 plane. Angles are in
// radians, counter-clockwise, the arc runs from startAngle to endAngle.
func NewArc(center vec3.T, radius, startAngle, endAngle float64) (*Curve, error) {
	xaxis, yaxis := vec3.UnitX, vec3.UnitY
	return New(vmake.Arc(&center, &xaxis, &yaxis, radius, startAngle, endAngle), "arc")
}

// NewCircle builds a full circle around center in the z=0 plane.
func NewCircle(center vec3.T, radius float64) (*Curve, error) {
	xaxis, yaxis := vec3.UnitX, vec3.UnitY
	return New(vmake.Circle(&center, &xaxis, &yaxis, radius), "circle")
}

// NewEllipseArc builds an elliptical arc around center with the given scaled
// axes. Angles are in radians, with 0 pointing along xaxis.
func NewEllipseArc(center, xaxis, yaxis vec3.T, startAngle, endAngle float64) (*Curve, error) {
	return New(vmake.EllipseArc(&center, &xaxis, &yaxis, startAngle, endAngle), "ellipse-arc")
}

// NewBezier builds a Bézier curve of degree len(controlPoints)-1.
func NewBezier(controlPoints []vec3.T) (*Curve, error) {
	if len(controlPoints) < 2 {
		return nil, fmt.Errorf("%w: bezier needs 2 control points, got %d", ErrTooFewControls, len(controlPoints))
	}
	return New(vmake.BezierCurve(controlPoints), "bezier")
}

// Pretty Stringer for tracing.
func (c *Curve) String() string {
	return fmt.Sprintf("Curve name: %s | Length: %g | In meters parametrization interval: [0, %g] | Native parametrization interval: [%g, %g]",
		c.name, c.length, c.length, c.startU, c.endU)
}

// Nurbs exposes the wrapped engine handle. Callers must not mutate it.
func (c *Curve) Nurbs() *verb.NurbsCurve { return c.crv }

// Dimension of the curve.
func (c *Curve) Dimension() int { return Dimension }

// Order (degree + 1) of the curve.
func (c *Curve) Order() int { return c.order }

// Epsge is the geometric resolution used for arc-length queries.
func (c *Curve) Epsge() float64 { return c.epsge }

// SetEpsge overrides the geometric resolution. Values below ε are ignored.
func (c *Curve) SetEpsge(epsge float64) {
	if epsge > curvetk.Epsilon {
		c.epsge = epsge
	}
}

// Status of the last delegated call.
func (c *Curve) Status() curvetk.Status { return c.status }

// Name of the curve.
func (c *Curve) Name() string { return c.name }

// SetName assigns a human-readable name.
func (c *Curve) SetName(name string) { c.name = name }

// Length of the curve in meters.
func (c *Curve) Length() float64 { return c.length }

// StartParam is the first value of the native parametrization.
func (c *Curve) StartParam() float64 { return c.startU }

// EndParam is the last value of the native parametrization.
func (c *Curve) EndParam() float64 { return c.endU }

// StartMeters is the first value of the meters parametrization, always 0.
func (c *Curve) StartMeters() float64 { return 0 }

// EndMeters is the last value of the meters parametrization, the length.
func (c *Curve) EndMeters() float64 { return c.length }

// StartPoint of the curve in the world frame.
func (c *Curve) StartPoint() vec3.T { return c.startPoint }

// EndPoint of the curve in the world frame.
func (c *Curve) EndPoint() vec3.T { return c.endPoint }
