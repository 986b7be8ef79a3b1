package curvetk

import (
	"errors"

	"github.com/ungerik/go3d/float64/vec3"
)

// ErrDegenerateTangent indicates a tangent frame cannot be derived because
// the tangent vanishes or is parallel to the world z axis.
var ErrDegenerateTangent = errors.New("tangent frame is degenerate")

// Frame is an orthonormal tangent frame of a curve point in the world frame.
// The normal is the cross product of the tangent with the world z versor, the
// binormal the cross product of tangent and normal. All three are unit length.
type Frame struct {
	Tangent  vec3.T
	Normal   vec3.T
	Binormal vec3.T
}

// zVersor of the world frame.
var zVersor = vec3.T{0, 0, 1}

// NewFrame derives a tangent frame from a (not necessarily unit) tangent
// direction. The direction of the tangent depends on the direction of the
// curve it was sampled from.
func NewFrame(tangent vec3.T) (Frame, error) {
	if Is0(tangent.Length()) {
		return Frame{}, ErrDegenerateTangent
	}
	t := tangent.Normalized()
	n := vec3.Cross(&t, &zVersor)
	if Is0(n.Length()) {
		// vertical tangent: the z versor cannot anchor a normal
		return Frame{}, ErrDegenerateTangent
	}
	n = n.Normalized()
	b := vec3.Cross(&t, &n)
	return Frame{Tangent: t, Normal: n, Binormal: b.Normalized()}, nil
}
