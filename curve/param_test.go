package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestConversionEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustLine(t, vec3.T{0, 0, 0}, vec3.T{7, 0, 0})
	m, err := c.NativeToMeters(c.StartParam())
	if err != nil || !near(m, 0, c.Epsge()) {
		t.Errorf("Expected 0 m at native start, got %g (%v)", m, err)
	}
	m, err = c.NativeToMeters(c.EndParam())
	if err != nil || !near(m, c.Length(), c.Epsge()) {
		t.Errorf("Expected length at native end, got %g (%v)", m, err)
	}
	u, err := c.MetersToNative(0)
	if err != nil || !near(u, c.StartParam(), c.Epsge()) {
		t.Errorf("Expected native start at 0 m, got %g (%v)", u, err)
	}
	u, err = c.MetersToNative(c.Length())
	if err != nil || !near(u, c.EndParam(), c.Epsge()) {
		t.Errorf("Expected native end at full length, got %g (%v)", u, err)
	}
}

func TestConversionRoundtrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	circle, err := NewCircle(vec3.T{0, 0, 0}, 5)
	if err != nil {
		t.Fatalf("NewCircle failed: %v", err)
	}
	for _, frac := range []float64{0.1, 0.25, 0.5, 0.8, 0.99} {
		m := frac * circle.Length()
		u, err := circle.MetersToNative(m)
		if err != nil {
			t.Fatalf("MetersToNative(%g) failed: %v", m, err)
		}
		back, err := circle.NativeToMeters(u)
		if err != nil {
			t.Fatalf("NativeToMeters(%g) failed: %v", u, err)
		}
		if math.Abs(back-m) > 10*circle.Epsge() {
			t.Errorf("Roundtrip at %g m drifted to %g m", m, back)
		}
	}
}

func TestConversionMonotone(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	arc, err := NewArc(vec3.T{0, 0, 0}, 3, 0, math.Pi)
	if err != nil {
		t.Fatalf("NewArc failed: %v", err)
	}
	prev := arc.StartParam()
	for _, frac := range []float64{0.2, 0.4, 0.6, 0.8} {
		u, err := arc.MetersToNative(frac * arc.Length())
		if err != nil {
			t.Fatalf("MetersToNative failed: %v", err)
		}
		if u <= prev {
			t.Errorf("Expected native abscissa to grow with meters, got %g after %g", u, prev)
		}
		prev = u
	}
}

func TestConversionOutOfRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustLine(t, vec3.T{0, 0, 0}, vec3.T{1, 0, 0})
	if _, err := c.MetersToNative(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange above length, got %v", err)
	}
	if _, err := c.NativeToMeters(c.EndParam() + 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange above native end, got %v", err)
	}
}

func TestCircleLengthAndCurvature(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	circle, err := NewCircle(vec3.T{1, 2, 0}, 5)
	if err != nil {
		t.Fatalf("NewCircle failed: %v", err)
	}
	if math.Abs(circle.Length()-2*math.Pi*5) > 1e-3 {
		t.Errorf("Expected circumference %g, got %g", 2*math.Pi*5, circle.Length())
	}
	k, err := circle.Curvature(circle.Length() / 3)
	if err != nil {
		t.Fatalf("Curvature failed: %v", err)
	}
	if math.Abs(k-0.2) > 1e-3 {
		t.Errorf("Expected curvature 0.2, got %g", k)
	}
}
