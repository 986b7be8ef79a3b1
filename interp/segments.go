package interp

import (
	"fmt"
	"math/cmplx"

	"github.com/gmercatali/curvetk"
)

func (rp *routePartial) IsCycle() bool {
	return rp.whole.IsCycle() && rp.whole.N() == rp.N()
}

func (rp *routePartial) N() int {
	return rp.end - rp.start + 1
}

func (rp *routePartial) pmap(i int) int {
	i = i%rp.N() + rp.start
	return i
}

func (rp *routePartial) Z(i int) curvetk.Pair {
	if rp.IsCycle() {
		return rp.whole.Z(i)
	}
	return rp.whole.Z(rp.pmap(i))
}

func (rp *routePartial) PreDir(i int) curvetk.Pair {
	return rp.whole.PreDir(rp.pmap(i))
}

func (rp *routePartial) PostDir(i int) curvetk.Pair {
	return rp.whole.PostDir(rp.pmap(i))
}

func (rp *routePartial) PreCurl(i int) float64 {
	return rp.whole.PreCurl(rp.pmap(i))
}

func (rp *routePartial) PostCurl(i int) float64 {
	return rp.whole.PostCurl(rp.pmap(i))
}

func (rp *routePartial) PreTension(i int) float64 {
	return rp.whole.PreTension(rp.pmap(i))
}

func (rp *routePartial) PostTension(i int) float64 {
	return rp.whole.PostTension(rp.pmap(i))
}

func (rp *routePartial) SetPreControl(i int, c curvetk.Pair) {
	rp.controls.SetPreControl(rp.pmap(i), c)
}

func (rp *routePartial) SetPostControl(i int, c curvetk.Pair) {
	rp.controls.SetPostControl(rp.pmap(i), c)
}

func (rp *routePartial) delta(i int) curvetk.Pair {
	return rp.Z(i+1) - rp.Z(i)
}

func (rp *routePartial) d(i int) float64 {
	r, _ := cmplx.Polar(rp.delta(i).C())
	return r
}

// Turning angle at z.i.
func (rp *routePartial) psi(i int) float64 {
	psi := 0.0
	if rp.IsCycle() || (i > 0 && i < rp.N()-1) {
		psi = cmplx.Phase(rp.delta(i).C()) - cmplx.Phase(rp.delta(i-1).C())
	}
	return reduceAngle(psi)
}

func asStringPartial(route *routePartial, contr *Controls) string {
	var s string
	for i := 0; i < route.N(); i++ {
		pt := route.Z(i)
		if i > 0 {
			if contr != nil {
				s += fmt.Sprintf(" and %s\n  .. ", ptstring(contr.PreControl(route.pmap(i)), true))
			} else {
				s += " .. "
			}
		}
		s += ptstring(pt, false)
		if contr != nil && (i < route.N()-1 || route.IsCycle()) {
			s += fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(route.pmap(i)), true))
		}
	}
	if route.IsCycle() {
		if contr != nil {
			s += fmt.Sprintf(" and %s\n ", ptstring(contr.PreControl(route.pmap(0)), true))
		}
		s += " .. cycle"
	}
	return s
}

// Split a route into segments, breaking it up at "rough" waypoints.
// Rough waypoints are those with parameters creating a discontinuity.
func splitSegments(route *Route) []*routePartial {
	var segments []*routePartial
	segcnt, at := 0, 0
	for i := 1; i < route.N(); i++ {
		if isrough(route, i) {
			segments = append(segments, makeRouteSegment(route, at, i))
			segcnt++
			at = i
		}
	}
	if route.IsCycle() {
		if segcnt == 0 {
			segments = append(segments, makeRouteSegment(route, 0, last(route)))
		} else {
			segments = append(segments, makeRouteSegment(route, at, route.N()))
		}
	} else if at != last(route) {
		segments = append(segments, makeRouteSegment(route, at, last(route)))
	}
	return segments
}

// Create a route segment as a projection onto a parent route subset.
func makeRouteSegment(route *Route, from, to int) *routePartial {
	partial := &routePartial{
		whole: route,
		start: from,
		end:   to,
	}
	tracer().Debugf("breaking segment %d - %d of length %d, at %s and %s", from, to, partial.N(),
		ptstring(route.Z(from), false), ptstring(route.Z(to), false))
	tracer().Infof("partial = %s", asStringPartial(partial, nil))
	return partial
}

func validateSegment(seg *routePartial) error {
	if seg == nil || seg.whole == nil {
		return ErrNilRoute
	}
	if seg.N() < 2 {
		return fmt.Errorf("%w: segment has %d waypoints", ErrTooFewKnots, seg.N())
	}
	limit := seg.N() - 1
	if seg.IsCycle() {
		limit = seg.N()
	}
	for i := 0; i < limit; i++ {
		if cmplx.Abs(seg.delta(i).C()) <= _epsilon {
			j := i + 1
			if seg.IsCycle() {
				j = (i + 1) % seg.N()
			}
			return fmt.Errorf("%w in segment between %d and %d", ErrDegenerateSegment, i, j)
		}
	}
	return nil
}

func last(route *Route) int {
	return route.N() - 1
}

func delta(route *Route, i int) curvetk.Pair {
	return route.Z(i+1) - route.Z(i)
}

func d(route *Route, i int) float64 {
	r, _ := cmplx.Polar(delta(route, i).C())
	return r
}

// Turning angle at z.i.
func psi(route *Route, i int) float64 {
	psi := 0.0
	if route.IsCycle() || (i > 0 && i < route.N()-1) {
		psi = cmplx.Phase(delta(route, i).C()) - cmplx.Phase(delta(route, i-1).C())
	}
	return reduceAngle(psi)
}

// Is a waypoint a breakpoint for splitting a route into segments?
func isrough(route *Route, i int) bool {
	lc, rc := route.PreCurl(i), route.PostCurl(i)
	hascurl := lc != 1 || rc != 1
	ld, rd := route.PreDir(i), route.PostDir(i)
	has2dirs := (!cmplx.IsNaN(ld.C()) && !cmplx.IsNaN(rd.C())) && !equal(ld, rd)
	if hascurl || has2dirs {
		return true
	}
	return false
}
