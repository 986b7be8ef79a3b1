package interp

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/gmercatali/curvetk"
	"github.com/gmercatali/curvetk/curve"
	"github.com/gmercatali/curvetk/path"
)

// BuildPath solves a skeleton route and emits every solved segment as a
// cubic Bézier curve of the spline engine, strung into a meters-parametrized
// mission path. Waypoints live in the z=0 plane, so do the emitted pieces.
func BuildPath(route *Route) (*path.Path, error) {
	controls, err := FindControls(route, route.Controls)
	if err != nil {
		return nil, err
	}
	n := route.N()
	legs := n - 1
	if route.IsCycle() {
		legs = n
	}
	p := path.Nullpath()
	for i := 0; i < legs; i++ {
		j := (i + 1) % n
		leg, err := curve.NewBezier([]vec3.T{
			pairToVec(route.Z(i)),
			pairToVec(controls.PostControl(i)),
			pairToVec(controls.PreControl(j)),
			pairToVec(route.Z(j)),
		})
		if err != nil {
			return nil, fmt.Errorf("emitting leg %d: %w", i, err)
		}
		leg.SetName(fmt.Sprintf("leg-%d", i))
		p.Append(leg)
	}
	tracer().Infof("emitted %s", p)
	return p, nil
}

// MustBuildPath is a compatibility helper which panics on validation errors.
func MustBuildPath(route *Route) *path.Path {
	p, err := BuildPath(route)
	if err != nil {
		panic(err)
	}
	return p
}

func pairToVec(p curvetk.Pair) vec3.T {
	return vec3.T{p.X(), p.Y(), 0}
}
