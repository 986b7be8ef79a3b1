// Package interp interpolates smooth survey routes through waypoint lists.
// It provides an implementation of John Hobby's spline interpolation
// algorithm.
/*

Mission waypoints are sparse; vehicles want smooth transit. Spline
interpolation by Hobby's algorithm results in aesthetically pleasing curves
superior to "normal" spline interpolation, and it is what this package uses
to turn a waypoint skeleton into a drivable route. The primary source of
information for "Hobby-splines" is:

   Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
   Computer Science Dept. Stanford University
   Report No. STAN-CS-85-1047, Jan 1985
   http://i.stanford.edu/pub/cstr/reports/cs/tr/85/1047/CS-TR-85-1047.pdf

The practical algorithm is explained in

   Computers & Typesetting, Vol. B & D.
   http://www-cs-faculty.stanford.edu/~knuth/abcde.html

Waypoints live in the z=0 plane of the world frame. Clients build a
"skeleton" route without any spline control point information, possibly with
parameters at knots and/or joins, with a builder pattern (package qualifiers
omitted for clarity and brevity):

   NullRoute().Knot(P(0,0)).Curve().Knot(P(2,3)).TensionCurve(1.4,1.4).Knot(P(5,3))
      .Curve().DirKnot(P(3,-1),P(-1,0)).Curve().Cycle()

A built route is then subjected to a call to FindControls(...)

   controls, err := FindControls(route, nil)

which returns the cubic control points of a smooth curve through the knots.
BuildPath(...) goes one step further and emits every solved segment as a
cubic Bézier curve of the spline engine, strung into a meters-parametrized
mission path:

   p, err := BuildPath(route)
   pt, err := p.At(12.5) // 12.5 m into the route

Caveats

Control points cannot be set explicitly; the solver owns them. Tension
specs below 3/4 are clamped, "at least" (negative) tensions are not
completely implemented.

BSD License

Copyright (c) Giulio Mercatali

All rights reserved.

Please refer to the license file for more information.
*/
package interp

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'interp'
func tracer() tracing.Trace {
	return tracing.Select("interp")
}

// AsString returns a route -- optionally including spline control points --
// as a (debugging) string. The string contains newlines if control point
// information is present. Otherwise it will include the knot coordinates in
// one line.
func AsString(route *Route, contr *Controls) string {
	var s string
	for i := 0; i < route.N(); i++ {
		pt := route.Z(i)
		if i > 0 {
			if contr != nil {
				s += fmt.Sprintf(" and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				s += " .. "
			}
		}
		s += ptstring(pt, false)
		if contr != nil && (i < route.N()-1 || route.IsCycle()) {
			s += fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	if route.IsCycle() {
		if contr != nil {
			s += fmt.Sprintf(" and %s\n ", ptstring(contr.PreControl(0), true))
		}
		s += " .. cycle"
	}
	return s
}
