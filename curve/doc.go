// Package curve wraps NURBS curves of an external spline engine and
// parametrizes them in meters.
/*

The spline engine in use is verb (github.com/alexozer/verb), a Go port of
verb.js. verb owns the curve representation and all the numerical heavy
lifting: B-spline evaluation, derivatives, arc length, closest-point
projection, splitting and curve/curve intersection. This package adds the
one thing navigation code keeps asking for and spline engines keep not
providing: a parametrization proportional to the physical distance traveled
along the curve.

A Curve therefore knows two abscissae for every point:

  - the native abscissa of the engine's knot vector, and
  - the meters abscissa, with 0 at the curve start and Length() at its end.

Conversion from native to meters delegates to the engine's arc-length
function. The opposite direction has no closed form and is solved by an
iterative lookup against that same arc-length function, bracketed over the
native parameter range and refined to the curve's geometric resolution
(epsge).

Usage

Construct curves through the engine-backed constructors and query them in
meters (package qualifiers omitted):

   c, err := NewStraightLine(vec3.T{0, 0, 0}, vec3.T{30, 40, 0})
   pt, err := c.At(25)          // 25 m from the start
   fr, err := c.TangentFrame(25)
   sec, err := c.Section(10, 40)

Every Curve caches derived facts about the wrapped handle: its length, the
parameter ranges in both parametrizations, the world-frame endpoints, and
the status of the last delegated call. Mutating operations (Reverse)
recompute the caches.

Caveats

Derivatives are reported with respect to the engine's native parametrization;
directions are unaffected, magnitudes are not
arc-length normalized. Curvature and tangent frames are parametrization
invariant.

BSD License

Copyright (c) Giulio Mercatali

All rights reserved.

Please refer to the license file for more information.
*/
package curve
