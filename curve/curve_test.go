package curve

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/gmercatali/curvetk"
)

func mustLine(t *testing.T, start, end vec3.T) *Curve {
	t.Helper()
	c, err := NewStraightLine(start, end)
	if err != nil {
		t.Fatalf("NewStraightLine failed: %v", err)
	}
	return c
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func nearV(a, b vec3.T, tol float64) bool {
	return near(a[0], b[0], tol) && near(a[1], b[1], tol) && near(a[2], b[2], tol)
}

func TestStraightLineCaches(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustLine(t, vec3.T{0, 0, 0}, vec3.T{3, 4, 0})
	if !near(c.Length(), 5, 1e-9) {
		t.Errorf("Expected length 5, got %g", c.Length())
	}
	if c.StartMeters() != 0 || !near(c.EndMeters(), c.Length(), 1e-12) {
		t.Errorf("Expected meters interval [0, length], got [%g, %g]", c.StartMeters(), c.EndMeters())
	}
	if !nearV(c.StartPoint(), vec3.T{0, 0, 0}, 1e-9) || !nearV(c.EndPoint(), vec3.T{3, 4, 0}, 1e-9) {
		t.Errorf("Unexpected cached endpoints: %v, %v", c.StartPoint(), c.EndPoint())
	}
	if c.Dimension() != 3 {
		t.Errorf("Expected dimension 3, got %d", c.Dimension())
	}
	if c.Order() != 2 {
		t.Errorf("Expected order 2 for a straight line, got %d", c.Order())
	}
}

func TestDegenerateCurveRejected(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewPolyline([]vec3.T{{1, 1, 0}})
	if !errors.Is(err, ErrTooFewControls) {
		t.Errorf("Expected ErrTooFewControls, got %v", err)
	}
	// coincident endpoints give a zero-length curve, which the engine turns
	// into a NaN knot vector; construction must reject it either way
	c, err := NewStraightLine(vec3.T{1, 1, 0}, vec3.T{1, 1, 0})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("Expected ErrDegenerate for coincident endpoints, got %v", err)
	}
	if c != nil {
		t.Errorf("Expected no curve handle for degenerate geometry, got %v", c)
	}
	_, err = NewPolyline([]vec3.T{{2, 0, 0}, {2, 0, 0}})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("Expected ErrDegenerate for coincident polyline points, got %v", err)
	}
}

func TestAtMidpoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustLine(t, vec3.T{0, 0, 0}, vec3.T{3, 4, 0})
	pt, err := c.At(2.5)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if !nearV(pt, vec3.T{1.5, 2, 0}, 1e-6) {
		t.Errorf("Expected midpoint (1.5,2,0), got %v", pt)
	}
}

func TestAtOutOfRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustLine(t, vec3.T{0, 0, 0}, vec3.T{10, 0, 0})
	if _, err := c.At(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange below start, got %v", err)
	}
	if c.Status() != curvetk.StatusFailed {
		t.Errorf("Expected StatusFailed after rejected query, got %v", c.Status())
	}
	// off by less than epsge: clamped with warning status
	pt, err := c.At(c.Length() + c.Epsge()/2)
	if err != nil {
		t.Fatalf("Expected clamped query to succeed, got %v", err)
	}
	if !nearV(pt, vec3.T{10, 0, 0}, 1e-6) {
		t.Errorf("Expected clamp to end point, got %v", pt)
	}
	if c.Status() != curvetk.StatusClamped {
		t.Errorf("Expected StatusClamped, got %v", c.Status())
	}
}

func TestSamplingUniform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustLine(t, vec3.T{0, 0, 0}, vec3.T{8, 0, 0})
	pts, err := c.Sampling(5)
	if err != nil {
		t.Fatalf("Sampling failed: %v", err)
	}
	if len(pts) != 5 {
		t.Fatalf("Expected 5 samples, got %d", len(pts))
	}
	for i, pt := range pts {
		if !nearV(pt, vec3.T{float64(i) * 2, 0, 0}, 1e-6) {
			t.Errorf("Sample %d off: %v", i, pt)
		}
	}
	if _, err := c.Sampling(1); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("Expected ErrTooFewSamples, got %v", err)
	}
}

func TestReverseSwapsEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustLine(t, vec3.T{0, 0, 0}, vec3.T{6, 0, 0})
	length := c.Length()
	c.Reverse()
	if !near(c.Length(), length, 1e-9) {
		t.Errorf("Expected length unchanged by reverse, got %g", c.Length())
	}
	if !nearV(c.StartPoint(), vec3.T{6, 0, 0}, 1e-9) {
		t.Errorf("Expected reversed start (6,0,0), got %v", c.StartPoint())
	}
	pt, err := c.At(1)
	if err != nil {
		t.Fatalf("At after reverse failed: %v", err)
	}
	if !nearV(pt, vec3.T{5, 0, 0}, 1e-6) {
		t.Errorf("Expected (5,0,0) one meter into reversed line, got %v", pt)
	}
}

func TestSectionOfLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustLine(t, vec3.T{0, 0, 0}, vec3.T{10, 0, 0})
	sec, err := c.Section(2, 7)
	if err != nil {
		t.Fatalf("Section failed: %v", err)
	}
	if !near(sec.Length(), 5, 1e-6) {
		t.Errorf("Expected section length 5, got %g", sec.Length())
	}
	if !nearV(sec.StartPoint(), vec3.T{2, 0, 0}, 1e-6) || !nearV(sec.EndPoint(), vec3.T{7, 0, 0}, 1e-6) {
		t.Errorf("Unexpected section endpoints: %v, %v", sec.StartPoint(), sec.EndPoint())
	}
	// the section's meters parametrization restarts at 0
	pt, err := sec.At(1)
	if err != nil {
		t.Fatalf("At on section failed: %v", err)
	}
	if !nearV(pt, vec3.T{3, 0, 0}, 1e-6) {
		t.Errorf("Expected (3,0,0) one meter into section, got %v", pt)
	}
	if _, err := c.Section(7, 2); !errors.Is(err, ErrInvalidSection) {
		t.Errorf("Expected ErrInvalidSection for backward interval, got %v", err)
	}
}

func TestClosestPointOnLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustLine(t, vec3.T{0, 0, 0}, vec3.T{10, 0, 0})
	m, dist, err := c.ClosestPoint(vec3.T{4, 3, 0})
	if err != nil {
		t.Fatalf("ClosestPoint failed: %v", err)
	}
	if !near(m, 4, 1e-4) {
		t.Errorf("Expected foot point at 4 m, got %g", m)
	}
	if !near(dist, 3, 1e-4) {
		t.Errorf("Expected distance 3, got %g", dist)
	}
}

func TestIntersectionsOfCrossingLines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := mustLine(t, vec3.T{0, 0, 0}, vec3.T{2, 0, 0})
	b := mustLine(t, vec3.T{1, -1, 0}, vec3.T{1, 1, 0})
	hits, err := a.Intersections(b)
	if err != nil {
		t.Fatalf("Intersections failed: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("Expected 1 intersection, got %d", len(hits))
	}
	if !nearV(hits[0].Point, vec3.T{1, 0, 0}, 1e-4) {
		t.Errorf("Expected intersection at (1,0,0), got %v", hits[0].Point)
	}
	if !near(hits[0].Abscissa, 1, 1e-4) || !near(hits[0].OtherAbscissa, 1, 1e-4) {
		t.Errorf("Expected 1 m on both curves, got %g and %g", hits[0].Abscissa, hits[0].OtherAbscissa)
	}
}

func TestTangentFrameOfLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustLine(t, vec3.T{0, 0, 0}, vec3.T{10, 0, 0})
	fr, err := c.TangentFrame(5)
	if err != nil {
		t.Fatalf("TangentFrame failed: %v", err)
	}
	if !nearV(fr.Tangent, vec3.T{1, 0, 0}, 1e-6) {
		t.Errorf("Expected tangent (1,0,0), got %v", fr.Tangent)
	}
	if !nearV(fr.Normal, vec3.T{0, -1, 0}, 1e-6) {
		t.Errorf("Expected normal (0,-1,0), got %v", fr.Normal)
	}
	if !nearV(fr.Binormal, vec3.T{0, 0, -1}, 1e-6) {
		t.Errorf("Expected binormal (0,0,-1), got %v", fr.Binormal)
	}
}

func TestTransformedKeepsLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustLine(t, vec3.T{0, 0, 0}, vec3.T{0, 5, 0})
	moved, err := c.Transformed(curvetk.Translation(curvetk.P(3, -2)).Combine(curvetk.Rotation(90 * curvetk.Deg2Rad)))
	if err != nil {
		t.Fatalf("Transformed failed: %v", err)
	}
	if !near(moved.Length(), c.Length(), 1e-9) {
		t.Errorf("Expected rigid motion to keep length, got %g", moved.Length())
	}
	if nearV(moved.StartPoint(), c.StartPoint(), 1e-9) {
		t.Errorf("Expected start point to move, still %v", moved.StartPoint())
	}
}

// Build a straight line and walk it in meters. A Curve hides the engine's
// native knot parametrization completely: clients only ever deal in physical
// distance from the curve start.
func ExampleCurve_usage() {
	c, _ := NewStraightLine(vec3.T{0, 0, 0}, vec3.T{30, 40, 0})
	fmt.Printf("length = %g m\n", c.Length())
	pt, _ := c.At(25)
	fmt.Printf("halfway = %v\n", pt)

	// length = 50 m
	// halfway = (15, 20, 0) up to engine rounding
}
