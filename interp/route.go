package interp

import (
	"errors"
	"math/cmplx"

	"github.com/gmercatali/curvetk"
)

var (
	// ErrNilRoute indicates a nil route pointer.
	ErrNilRoute = errors.New("route must not be nil")
	// ErrTooFewKnots indicates route waypoint count is insufficient for solving.
	ErrTooFewKnots = errors.New("route has too few waypoints")
	// ErrInvalidKnot indicates a waypoint coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("route has invalid waypoint coordinate")
	// ErrDegenerateSegment indicates two consecutive waypoints collapse to one point.
	ErrDegenerateSegment = errors.New("route has degenerate segment")
	// ErrCycleHasDuplicateTerminalKnot indicates cyclic route redundantly repeats first waypoint as last waypoint.
	ErrCycleHasDuplicateTerminalKnot = errors.New("cyclic route must not repeat first waypoint as terminal waypoint")
)

// Route is the concrete type for building and solving waypoint skeletons.
// To construct a route, start with NullRoute(), which creates an empty
// route, and then extend it.
type Route struct {
	points   []curvetk.Pair // waypoint i
	cycle    bool           // is this route cyclic ?
	predirs  []curvetk.Pair // explicit pre-direction at waypoint i
	postdirs []curvetk.Pair // explicit post-direction at waypoint i
	curls    []curvetk.Pair // explicit l and r curl at waypoint i
	tensions []curvetk.Pair // explicit pre- and post-tension at waypoint i
	Controls *Controls      // control points to be calculated
}

// A segment view onto a parent route.
type routePartial struct {
	whole    *Route    // parent route
	start    int       // first index within parent route
	end      int       // last index within parent route
	controls *Controls // control points, shared with parent route
}

// Controls collects calculated spline control points.
type Controls struct {
	prec  []curvetk.Pair // control point i-, to be calculated
	postc []curvetk.Pair // control point i+, to be calculated
}

// SetPreControl is used by the solver only; control points cannot be set
// explicitly by clients.
func (ctrls *Controls) SetPreControl(i int, c curvetk.Pair) {
	ctrls.prec = extendC(ctrls.prec, i, curvetk.Pair(cmplx.NaN()))
	ctrls.prec[i] = c
}

func (ctrls *Controls) SetPostControl(i int, c curvetk.Pair) {
	ctrls.postc = extendC(ctrls.postc, i, curvetk.Pair(cmplx.NaN()))
	ctrls.postc[i] = c
}

func (ctrls *Controls) PreControl(i int) curvetk.Pair {
	return getC(ctrls.prec, i, curvetk.Pair(cmplx.NaN()))
}

func (ctrls *Controls) PostControl(i int) curvetk.Pair {
	return getC(ctrls.postc, i, curvetk.Pair(cmplx.NaN()))
}

func newSkeletonRoute(points []curvetk.Pair) *Route {
	route := &Route{}
	route.points = make([]curvetk.Pair, len(points), len(points)*2)
	route.predirs = make([]curvetk.Pair, len(points), len(points)*2)
	route.postdirs = make([]curvetk.Pair, len(points), len(points)*2)
	route.curls = make([]curvetk.Pair, len(points), len(points)*2)
	route.tensions = make([]curvetk.Pair, len(points), len(points)*2)
	copy(route.points, points)
	route.Controls = &Controls{}
	return route
}

// NullRoute creates an empty route, to be extended by subsequent builder
// calls. The following example builds a closed route of three waypoints,
// which are connected by a curve, then a straight line, and a curve again.
//
//	route = NullRoute().Knot(P(0,0)).Curve().Knot(P(3,2)).Line().Knot(P(5,2.5)).Curve().Cycle()
//
// Calling Cycle() or End() returns a route. Its control point container
// (route.Controls) is empty and to be filled by calculating the spline
// control points.
func NullRoute() *Route {
	return newSkeletonRoute(nil)
}

// End an open route. Part of builder functionality.
func (route *Route) End() *Route {
	return route
}

// Cycle closes a cyclic route. Part of builder functionality.
func (route *Route) Cycle() *Route {
	route.cycle = true
	return route
}

// Knot adds a standard smooth waypoint to a route. Part of builder functionality.
func (route *Route) Knot(pr curvetk.Pair) *Route {
	return route.SmoothKnot(pr)
}

// SmoothKnot adds a standard smooth waypoint to a route (same as Knot(pr)).
// Part of builder functionality.
func (route *Route) SmoothKnot(p curvetk.Pair) *Route {
	route.points = append(route.points, p)
	return route
}

// CurlKnot adds a waypoint with curl information to a route. Callers may
// specify pre- and/or post-curl. A curl value of 1.0 is considered neutral.
// Part of builder functionality.
func (route *Route) CurlKnot(p curvetk.Pair, precurl, postcurl float64) *Route {
	route.points = append(route.points, p)
	route.SetPreCurl(route.N()-1, precurl)
	route.SetPostCurl(route.N()-1, postcurl)
	return route
}

// DirKnot adds a waypoint with a given tangent direction.
// Part of builder functionality.
func (route *Route) DirKnot(p curvetk.Pair, dir curvetk.Pair) *Route {
	route.points = append(route.points, p)
	route.SetPreDir(route.N()-1, dir)
	route.SetPostDir(route.N()-1, dir)
	return route
}

// Line connects two waypoints with a straight line.
// Part of builder functionality.
func (route *Route) Line() *Route {
	if route.N() == 0 {
		panic("cannot add line to empty route")
	}
	route.SetPostCurl(route.N()-1, 1.0)
	route.SetPreCurl(route.N(), 1.0)
	return route
}

// Curve connects two waypoints with a smooth curve.
// Part of builder functionality.
func (route *Route) Curve() *Route {
	if route.N() == 0 {
		panic("cannot add curve to empty route")
	}
	route.TensionCurve(1.0, 1.0)
	return route
}

// TensionCurve connects two waypoints with a tense curve.
// Part of builder functionality.
//
// Tensions are adapted to lie between 3/4 and 4 (absolute). Negative tensions
// are interpreted as "at least" tensions to ensure the spline stays within
// the bounding box at its control point.
func (route *Route) TensionCurve(t1, t2 float64) *Route {
	if route.N() == 0 {
		panic("cannot add curve to empty route")
	}
	if t1 != 1.0 {
		route.SetPostTension(route.N()-1, t1)
	}
	if t2 != 1.0 {
		route.SetPreTension(route.N(), t2)
	}
	return route
}

// SetPreDir is a property setter.
func (route *Route) SetPreDir(i int, dir curvetk.Pair) *Route {
	route.predirs = extendC(route.predirs, i, curvetk.Pair(cmplx.NaN()))
	route.predirs[i] = dir
	return route
}

// SetPostDir is a property setter.
func (route *Route) SetPostDir(i int, dir curvetk.Pair) *Route {
	route.postdirs = extendC(route.postdirs, i, curvetk.Pair(cmplx.NaN()))
	route.postdirs[i] = dir
	return route
}

// SetPreCurl is a property setter.
func (route *Route) SetPreCurl(i int, curl float64) *Route {
	route.curls = extendC(route.curls, i, 1+1i)
	c := route.curls[i]
	post := imag(c)
	route.curls[i] = curvetk.P(curl, post)
	return route
}

// SetPostCurl is a property setter.
func (route *Route) SetPostCurl(i int, curl float64) *Route {
	route.curls = extendC(route.curls, i, 1+1i)
	c := route.curls[i]
	pre := real(c)
	route.curls[i] = curvetk.P(pre, curl)
	return route
}

// SetPreTension is a property setter.
//
// Tensions are adapted to lie between 3/4 and 4 (absolute).
func (route *Route) SetPreTension(i int, tension float64) *Route {
	route.tensions = extendC(route.tensions, i, 1+1i)
	t := route.tensions[i]
	post := imag(t)
	route.tensions[i] = curvetk.P(clampTension(tension), post)
	return route
}

// SetPostTension is a property setter.
//
// Tensions are adapted to lie between 3/4 and 4 (absolute).
func (route *Route) SetPostTension(i int, tension float64) *Route {
	route.tensions = extendC(route.tensions, i, 1+1i)
	t := route.tensions[i]
	pre := real(t)
	route.tensions[i] = curvetk.P(pre, clampTension(tension))
	return route
}

func clampTension(tension float64) float64 {
	if tension < 0.75 {
		return 0.75
	}
	if tension > 4.0 {
		return 4.0
	}
	return tension
}

// IsCycle is a predicate: is this route cyclic?
func (route *Route) IsCycle() bool {
	return route.cycle
}

// N returns the length of this route (waypoint count). For cyclic routes,
// the first and last waypoint count as one.
func (route *Route) N() int {
	return len(route.points)
}

// Z returns the waypoint at position (i mod N).
func (route *Route) Z(i int) curvetk.Pair {
	if i < 0 || i >= route.N() {
		i = i % route.N()
	}
	z := route.points[i]
	return z
}

// PreDir gets the incoming tangent / direction vector at z.i.
func (route *Route) PreDir(i int) curvetk.Pair {
	return getC(route.predirs, i, curvetk.Pair(cmplx.NaN()))
}

// PostDir gets the outgoing tangent / direction vector at z.i.
func (route *Route) PostDir(i int) curvetk.Pair {
	return getC(route.postdirs, i, curvetk.Pair(cmplx.NaN()))
}

// PreCurl gets the curl before z.i.
func (route *Route) PreCurl(i int) float64 {
	c := getC(route.curls, i, 1+1i)
	return real(c)
}

// PostCurl gets the curl after z.i.
func (route *Route) PostCurl(i int) float64 {
	c := getC(route.curls, i, 1+1i)
	return imag(c)
}

// PreTension returns the tension before z.i.
func (route *Route) PreTension(i int) float64 {
	t := getC(route.tensions, i, 1+1i)
	return real(t)
}

// PostTension returns the tension after z.i.
func (route *Route) PostTension(i int) float64 {
	t := getC(route.tensions, i, 1+1i)
	return imag(t)
}
