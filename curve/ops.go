package curve

import (
	"fmt"

	"github.com/alexozer/verb"
	"github.com/alexozer/verb/intersect"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/gmercatali/curvetk"
)

// Reverse turns the direction of the curve in place. The meters
// parametrization interval is unchanged, the cached endpoints swap.
func (c *Curve) Reverse() {
	c.crv = c.crv.Reverse()
	if err := c.refresh(); err != nil {
		// reversal cannot change the length; refresh only re-reads caches
		tracer().Errorf("refresh after reverse failed: %v", err)
	}
}

// Section extracts the part of the curve between two meters abscissae. The
// section is an independent curve whose meters parametrization starts at 0
// again; its name derives from the parent's.
func (c *Curve) Section(startM, endM float64) (*Curve, error) {
	startM, err := c.clampMeters(startM)
	if err != nil {
		return nil, err
	}
	endM, err = c.clampMeters(endM)
	if err != nil {
		return nil, err
	}
	if endM-startM <= curvetk.Epsilon {
		return nil, fmt.Errorf("%w: [%g, %g] is not a forward interval", ErrInvalidSection, startM, endM)
	}
	u1, err := c.MetersToNative(startM)
	if err != nil {
		return nil, err
	}
	u2, err := c.MetersToNative(endM)
	if err != nil {
		return nil, err
	}
	part := c.crv
	if u1-c.startU > curvetk.Epsilon {
		// splitting preserves knot values, so u2 stays valid on the right part
		_, part = part.Split(u1)
	}
	if c.endU-u2 > curvetk.Epsilon {
		part, _ = part.Split(u2)
	}
	section, err := New(part, c.name+"-section")
	if err != nil {
		return nil, err
	}
	section.SetEpsge(c.epsge)
	return section, nil
}

// ClosestPoint finds the point on the curve closest to a world-frame
// position. It returns the meters abscissa of the on-curve solution and the
// distance between position and that solution.
//
// The engine's projection is fast and reliable in clear-cut cases but does
// not guarantee the global optimum on self-approaching geometry.
func (c *Curve) ClosestPoint(position vec3.T) (abscissaM float64, distance float64, err error) {
	u := c.crv.ClosestParam(&position)
	u, err = c.clampNative(u)
	if err != nil {
		return 0, 0, err
	}
	foot := c.crv.Point(u)
	abscissaM, err = c.NativeToMeters(u)
	if err != nil {
		return 0, 0, err
	}
	return abscissaM, vec3.Distance(&position, &foot), nil
}

// Intersection is one curve/curve intersection in both parametrizations.
type Intersection struct {
	Point         vec3.T  // world-frame intersection point
	Abscissa      float64 // meters abscissa on the receiver
	OtherAbscissa float64 // meters abscissa on the other curve
}

// Intersections evaluates the intersection points between two curves,
// delegated to the engine's intersection solver. Results are ordered by
// meters abscissa on the receiver.
func (c *Curve) Intersections(other *Curve) ([]Intersection, error) {
	if other == nil {
		return nil, ErrNilCurve
	}
	hits := intersect.Curves(c.crv, other.crv, c.epsge)
	if len(hits) == 0 {
		return nil, nil
	}
	// order results by abscissa on the receiver
	ordered := treemap.NewWith(utils.Float64Comparator)
	for _, hit := range hits {
		m, err := c.NativeToMeters(hit.U0)
		if err != nil {
			return nil, err
		}
		otherM, err := other.NativeToMeters(hit.U1)
		if err != nil {
			return nil, err
		}
		is := Intersection{Point: hit.Point0, Abscissa: m, OtherAbscissa: otherM}
		if prev, ok := ordered.Get(m); ok {
			ordered.Put(m, append(prev.([]Intersection), is))
		} else {
			ordered.Put(m, []Intersection{is})
		}
	}
	result := make([]Intersection, 0, len(hits))
	ordered.Each(func(key interface{}, value interface{}) {
		result = append(result, value.([]Intersection)...)
	})
	tracer().Debugf("%d intersection(s) between %s and %s", len(result), c.name, other.name)
	return result, nil
}

// Transformed returns a copy of the curve moved by a rigid motion. The curve
// is rebuilt from transformed control points; degree, weights and knots are
// carried over, so both parametrizations survive the motion.
func (c *Curve) Transformed(m curvetk.Motion) (*Curve, error) {
	ctrl := c.crv.ControlPoints()
	moved := make([]vec3.T, len(ctrl))
	for i := range ctrl {
		moved[i] = m.TransformVec3(&ctrl[i])
	}
	rebuilt := verb.NewNurbsCurveUnchecked(c.crv.Degree(), moved, c.crv.Weights(), c.crv.Knots())
	transformed, err := New(rebuilt, c.name)
	if err != nil {
		return nil, err
	}
	transformed.SetEpsge(c.epsge)
	return transformed, nil
}
