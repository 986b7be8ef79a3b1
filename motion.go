package curvetk

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// === Rigid Motions =========================================================

// Motion is a rigid motion in the z=0 plane of the world frame: a 3x3
// homogeneous matrix, flattened by rows. Curves are moved around the plane
// (translated, rotated) without changing their z coordinates, which is how
// survey paths are laid out over an area.
type Motion []float64

// Internal constructor. Clients implicitely use this as a starting point for
// motion combinations.
func newMotion() Motion {
	m := make([]float64, 9)
	return m
}

func (m Motion) get(row, col int) float64 {
	return m[row*3+col]
}

func (m Motion) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m Motion) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m Motion) col(col int) []float64 {
	c := make([]float64, 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity motion. Will move a point onto itself.
func Identity() Motion {
	m := newMotion()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation motion. Translate a point by (dx,dy).
func Translation(p Pair) Motion {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Rotation motion. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) Motion {
	m := newMotion()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Debug Stringer for a motion.
func (m Motion) String() string {
	s := fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	p1 := vec1[0] * vec2[0]
	p2 := vec1[1] * vec2[1]
	p3 := vec1[2] * vec2[2]
	return p1 + p2 + p3
}

// Combine 2 motions to a new one. Returns a new motion without changing the
// argument(s).
func (m Motion) Combine(n Motion) Motion {
	o := newMotion()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

func (m *Motion) multiplyVector(v []float64) []float64 {
	c := make([]float64, 3)
	c[0] = dotProd(m.row(0), v)
	c[1] = dotProd(m.row(1), v)
	c[2] = dotProd(m.row(2), v)
	return c
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m Motion) Transform(p Pair) Pair {
	c := make([]float64, 3)
	c[0] = p.X()
	c[1] = p.Y()
	c[2] = 1.0
	c = m.multiplyVector(c)
	return P(c[0], c[1])
}

// TransformVec3 moves a world-frame point in the z=0 plane. x and y are
// transformed, z is carried over unchanged.
func (m Motion) TransformVec3(v *vec3.T) vec3.T {
	p := m.Transform(P(v[0], v[1]))
	return vec3.T{p.X(), p.Y(), v[2]}
}
