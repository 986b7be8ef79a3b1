package curve

import (
	"fmt"
	"math"

	"github.com/gmercatali/curvetk"
)

// maxLookupIter bounds the iterative meters-to-native lookup.
const maxLookupIter = 100

// clampNative validates a native abscissa against [startU, endU]. Values off
// by no more than epsge are clamped (warning status), values farther out are
// rejected.
func (c *Curve) clampNative(u float64) (float64, error) {
	switch {
	case u < c.startU:
		if c.startU-u > c.epsge {
			c.status = curvetk.StatusFailed
			return 0, fmt.Errorf("%w: native abscissa %g below [%g, %g]", ErrOutOfRange, u, c.startU, c.endU)
		}
		c.status = curvetk.StatusClamped
		return c.startU, nil
	case u > c.endU:
		if u-c.endU > c.epsge {
			c.status = curvetk.StatusFailed
			return 0, fmt.Errorf("%w: native abscissa %g above [%g, %g]", ErrOutOfRange, u, c.startU, c.endU)
		}
		c.status = curvetk.StatusClamped
		return c.endU, nil
	}
	c.status = curvetk.StatusOK
	return u, nil
}

// clampMeters validates a meters abscissa against [0, length], with the same
// clamping policy as clampNative.
func (c *Curve) clampMeters(m float64) (float64, error) {
	switch {
	case m < 0:
		if -m > c.epsge {
			c.status = curvetk.StatusFailed
			return 0, fmt.Errorf("%w: meters abscissa %g below [0, %g]", ErrOutOfRange, m, c.length)
		}
		c.status = curvetk.StatusClamped
		return 0, nil
	case m > c.length:
		if m-c.length > c.epsge {
			c.status = curvetk.StatusFailed
			return 0, fmt.Errorf("%w: meters abscissa %g above [0, %g]", ErrOutOfRange, m, c.length)
		}
		c.status = curvetk.StatusClamped
		return c.length, nil
	}
	c.status = curvetk.StatusOK
	return m, nil
}

// NativeToMeters converts a native abscissa to the meters parametrization.
// An abscissa out of range by more than epsge yields ErrOutOfRange.
func (c *Curve) NativeToMeters(u float64) (float64, error) {
	u, err := c.clampNative(u)
	if err != nil {
		return 0, err
	}
	return c.crv.LengthAtParam(u), nil
}

// MetersToNative converts a meters abscissa to the native parametrization.
// An abscissa out of range by more than epsge yields ErrOutOfRange.
//
// The conversion has no closed form; the native abscissa is found by an
// iterative lookup against the engine's arc-length function: a false-position
// step where it helps, a bisection step where it does not, until the residual
// length drops below epsge.
func (c *Curve) MetersToNative(m float64) (float64, error) {
	m, err := c.clampMeters(m)
	if err != nil {
		return 0, err
	}
	if m <= 0 {
		return c.startU, nil
	}
	if m >= c.length {
		return c.endU, nil
	}
	lo, hi := c.startU, c.endU
	flo, fhi := -m, c.length-m
	var u float64
	for i := 0; i < maxLookupIter; i++ {
		u = 0.5 * (lo + hi)
		if fhi != flo {
			// false-position candidate, kept only if it stays inside the bracket
			xf := lo - flo*(hi-lo)/(fhi-flo)
			if xf > lo && xf < hi {
				u = xf
			}
		}
		f := c.crv.LengthAtParam(u) - m
		if math.Abs(f) <= c.epsge {
			tracer().Debugf("meters lookup converged after %d iterations", i+1)
			return u, nil
		}
		if f > 0 {
			hi, fhi = u, f
		} else {
			lo, flo = u, f
		}
	}
	tracer().Infof("meters lookup exhausted %d iterations, residual bracket [%g, %g]", maxLookupIter, lo, hi)
	return u, nil
}
