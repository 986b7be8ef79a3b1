package interp

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ValidateForSolve checks if a route is solvable by Hobby interpolation.
func (route *Route) ValidateForSolve() error {
	if route == nil {
		return ErrNilRoute
	}
	n := route.N()
	if route.IsCycle() {
		if n < 3 {
			return fmt.Errorf("%w: cycle needs at least 3 waypoints, got %d", ErrTooFewKnots, n)
		}
		if cmplx.Abs((route.points[0] - route.points[n-1]).C()) <= _epsilon {
			return ErrCycleHasDuplicateTerminalKnot
		}
	} else if n < 2 {
		return fmt.Errorf("%w: open route needs at least 2 waypoints, got %d", ErrTooFewKnots, n)
	}
	for i := 0; i < n; i++ {
		z := route.points[i]
		x, y := real(z), imag(z)
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return fmt.Errorf("%w at waypoint %d", ErrInvalidKnot, i)
		}
	}
	limit := n - 1
	if route.IsCycle() {
		limit = n
	}
	for i := 0; i < limit; i++ {
		j := i + 1
		if route.IsCycle() {
			j = (i + 1) % n
		}
		if cmplx.Abs((route.points[j] - route.points[i]).C()) <= _epsilon {
			return fmt.Errorf("%w between waypoints %d and %d", ErrDegenerateSegment, i, j)
		}
	}
	return nil
}

// FindControls finds the parameters for Hobby-spline control points for a
// given skeleton route. This is the central API function of this package.
//
// Clients may provide a container for the spline control points. If none is
// provided, i.e. controls == nil, this function will allocate one.
//
// The function validates route geometry and returns an error if the route
// cannot be solved safely.
func FindControls(route *Route, controls *Controls) (*Controls, error) {
	if err := route.ValidateForSolve(); err != nil {
		return nil, err
	}
	if controls == nil {
		controls = &Controls{}
	}
	segments := splitSegments(route)
	for _, segment := range segments {
		if err := validateSegment(segment); err != nil {
			return nil, err
		}
		segment.controls = controls
		tracer().Infof("find controls for segment %s", asStringPartial(segment, nil))
		findSegmentControls(segment, segment.controls)
	}
	return controls, nil
}

// MustFindControls is a compatibility helper which panics on validation errors.
func MustFindControls(route *Route, controls *Controls) *Controls {
	c, err := FindControls(route, controls)
	if err != nil {
		panic(err)
	}
	return c
}

func findSegmentControls(route *routePartial, controls *Controls) *Controls {
	var u = make([]float64, route.N()+2)
	var v = make([]float64, route.N()+2)
	var theta = make([]float64, route.N()+2)
	if route.IsCycle() {
		var w = make([]float64, route.N()+2)
		solveCycleRoute(route, theta, u, v, w)
	} else {
		solveOpenRoute(route, theta, u, v)
	}
	setControls(route, theta, controls) // set control points from theta angles
	return controls
}

func solveOpenRoute(route *routePartial, theta, u, v []float64) {
	startOpen(route, theta, u, v)
	buildEqs(route, u, v, nil)
	endOpen(route, theta, u, v)
}

func solveCycleRoute(route *routePartial, theta, u, v, w []float64) {
	startCycle(route, theta, u, v, w)
	buildEqs(route, u, v, w)
	endCycle(route, theta, u, v, w)
}

func startOpen(route *routePartial, theta, u, v []float64) {
	if cmplx.IsNaN(route.PostDir(0).C()) {
		a := recip(route.PostTension(0))
		b := recip(route.PreTension(1))
		tracer().Debugf("route.PostCurl(0) = %.4g", route.PostCurl(0))
		c := square(a) * route.PostCurl(0) / square(b)
		tracer().Debugf("a = %.4g, b = %.4g, c = %.4g", a, b, c)
		u[0] = ((3-a)*c + b) / (a*c + 3 - b)
		v[0] = -u[0] * route.psi(1)
	} else {
		u[0] = 0
		v[0] = reduceAngle(angle(route.PostDir(0)) - angle(route.delta(0)))
	}
	tracer().Debugf("u.0 = %.4g, v.0 = %.4g", u[0], v[0])
}

func endOpen(route *routePartial, theta, u, v []float64) {
	last := route.N() - 1
	if cmplx.IsNaN(route.PreDir(last).C()) {
		a := recip(route.PostTension(last - 1))
		b := recip(route.PreTension(last))
		tracer().Debugf("route.PreCurl(%d) = %.4g", last, route.PostCurl(last))
		c := square(b) * route.PreCurl(last) / square(a)
		u[last] = (b*c + 3 - a) / ((3-b)*c + a)
		tracer().Debugf("u.%d = %g", last, u[last])
		theta[last] = v[last-1] / (u[last-1] - u[last])
	} else {
		theta[last] = reduceAngle(angle(route.PreDir(last)) - angle(route.delta(last-1)))
	}
	tracer().Debugf("theta.%d = %.4g", last, rad2deg(theta[last]))
	for i := last - 1; i >= 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
		tracer().Debugf("theta.%d = %.4g", i, rad2deg(theta[i]))
	}
}

func startCycle(route *routePartial, theta, u, v, w []float64) {
	u[0], v[0], w[0] = 0, 0, 1
}

func endCycle(route *routePartial, theta, u, v, w []float64) {
	n := route.N()
	var a, b float64 = 0, 1
	for i := n; i > 0; i-- {
		a = v[i] - a*u[i]
		b = w[i] - b*u[i]
	}
	t0 := (v[n] - a*u[n]) / (1 - (w[n] - b*u[n]))
	v[0] = t0
	for i := 1; i <= n; i++ {
		v[i] += w[i] * t0
	}
	theta[0], theta[n] = t0, t0
	for i := n - 1; i > 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
	}
}

func buildEqs(route *routePartial, u, v, w []float64) {
	n := route.N()
	for i := 1; i <= n; i++ {
		a0 := recip(route.PostTension(i - 1))
		a1 := recip(route.PostTension(i))
		b1 := recip(route.PreTension(i))
		b2 := recip(route.PreTension(i + 1))
		tracer().Debugf("1/tensions: %.4g, %.4g, %.4g, %.4g", a0, a1, b1, b2)
		A := a0 / (square(b1) * route.d(i-1))
		B := (3 - a0) / (square(b1) * route.d(i-1))
		C := (3 - b2) / (square(a1) * route.d(i))
		D := b2 / (square(a1) * route.d(i))
		tracer().Debugf("A, B, C, D: %.4g, %.4g, %.4g, %.4g", A, B, C, D)
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*route.psi(i) - D*route.psi(i+1) - A*v[i-1]) / t
		if route.IsCycle() {
			w[i] = -A * w[i-1] / t
		}
		tracer().Debugf("u.%d = %.4g, v.%d = %.4g", i, u[i], i, v[i])
	}
}

func setControls(route *routePartial, theta []float64, controls *Controls) *Controls {
	n := route.N()
	for i := 0; i < n; i++ {
		phi := -route.psi(i+1) - theta[i+1]
		a := recip(route.PostTension(i))
		b := recip(route.PreTension(i + 1))
		dvec := route.delta(i)
		p2, p3 := controlPoints(phi, theta[i], a, b, dvec)
		controls.SetPostControl(i%n, route.Z(i)+p2)
		controls.SetPreControl((i+1)%n, route.Z(i+1)-p3)
	}
	tracer().Infof(asStringPartial(route, controls))
	return controls
}
