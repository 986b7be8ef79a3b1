package curve

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/gmercatali/curvetk"
)

// At returns the world-frame point at a meters abscissa.
func (c *Curve) At(abscissaM float64) (vec3.T, error) {
	u, err := c.MetersToNative(abscissaM)
	if err != nil {
		return vec3.T{}, err
	}
	return c.crv.Point(u), nil
}

// PointAtNative returns the world-frame point at a native abscissa.
func (c *Curve) PointAtNative(abscissaU float64) (vec3.T, error) {
	u, err := c.clampNative(abscissaU)
	if err != nil {
		return vec3.T{}, err
	}
	return c.crv.Point(u), nil
}

// Derivatives evaluates the derivatives from order 1 up to order at a meters
// abscissa. Derivatives are taken with respect to the native parametrization;
// their directions are those of the curve, their magnitudes are not
// arc-length normalized.
func (c *Curve) Derivatives(order int, abscissaM float64) ([]vec3.T, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDerivativeOrder, order)
	}
	u, err := c.MetersToNative(abscissaM)
	if err != nil {
		return nil, err
	}
	// the engine reports the point itself at index 0
	ders := c.crv.Derivatives(u, order)
	return ders[1:], nil
}

// Curvature evaluates the curvature at a meters abscissa from the first two
// derivatives, |c′ × c″| / |c′|³. The formula is parametrization invariant.
func (c *Curve) Curvature(abscissaM float64) (float64, error) {
	ders, err := c.Derivatives(2, abscissaM)
	if err != nil {
		return 0, err
	}
	d1, d2 := ders[0], ders[1]
	speed := d1.Length()
	if curvetk.Is0(speed) {
		c.status = curvetk.StatusDegenerate
		return 0, fmt.Errorf("%w: vanishing first derivative at %g m", ErrDegenerate, abscissaM)
	}
	cross := vec3.Cross(&d1, &d2)
	return cross.Length() / (speed * speed * speed), nil
}

// TangentFrame evaluates the tangent frame at a meters abscissa. The tangent
// direction depends on the direction of the curve; normal and binormal follow
// the world-frame convention of curvetk.NewFrame.
func (c *Curve) TangentFrame(abscissaM float64) (curvetk.Frame, error) {
	ders, err := c.Derivatives(1, abscissaM)
	if err != nil {
		return curvetk.Frame{}, err
	}
	return curvetk.NewFrame(ders[0])
}

// Sampling returns samples points spread uniformly in meters over the whole
// curve, both endpoints included.
func (c *Curve) Sampling(samples int) ([]vec3.T, error) {
	if samples < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, samples)
	}
	step := c.length / float64(samples-1)
	points := make([]vec3.T, 0, samples)
	for i := 0; i < samples; i++ {
		m := float64(i) * step
		if m > c.length {
			m = c.length
		}
		pt, err := c.At(m)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}
	return points, nil
}
