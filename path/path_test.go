package path

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/gmercatali/curvetk/curve"
)

// L-shaped test path: 4 m east, then 3 m north.
func testpath(t *testing.T) *Path {
	t.Helper()
	east, err := curve.NewStraightLine(vec3.T{0, 0, 0}, vec3.T{4, 0, 0})
	if err != nil {
		t.Fatalf("NewStraightLine failed: %v", err)
	}
	north, err := curve.NewStraightLine(vec3.T{4, 0, 0}, vec3.T{4, 3, 0})
	if err != nil {
		t.Fatalf("NewStraightLine failed: %v", err)
	}
	return Nullpath().Append(east).Append(north)
}

func TestPathLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := testpath(t)
	assert.Equal(t, 2, p.N())
	assert.InDelta(t, 7, p.Length(), 1e-9)
}

func TestPathAtCrossesPieces(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := testpath(t)
	pt, err := p.At(2)
	assert.NoError(t, err)
	assert.InDelta(t, 2, pt[0], 1e-6)
	assert.InDelta(t, 0, pt[1], 1e-6)
	pt, err = p.At(5)
	assert.NoError(t, err)
	assert.InDelta(t, 4, pt[0], 1e-6)
	assert.InDelta(t, 1, pt[1], 1e-6)
	pt, err = p.At(7)
	assert.NoError(t, err)
	assert.InDelta(t, 3, pt[1], 1e-6)
}

func TestPathOutOfRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := testpath(t)
	_, err := p.At(8)
	assert.True(t, errors.Is(err, curve.ErrOutOfRange))
	_, err = Nullpath().At(0)
	assert.True(t, errors.Is(err, ErrEmptyPath))
}

func TestPathTangentFrame(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := testpath(t)
	fr, err := p.TangentFrame(6)
	assert.NoError(t, err)
	assert.InDelta(t, 0, fr.Tangent[0], 1e-6)
	assert.InDelta(t, 1, fr.Tangent[1], 1e-6)
}

func TestPathSampling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := testpath(t)
	pts, err := p.Sampling(8)
	assert.NoError(t, err)
	assert.Len(t, pts, 8)
	assert.InDelta(t, 0, pts[0][0], 1e-6)
	assert.InDelta(t, 4, pts[7][0], 1e-6)
	assert.InDelta(t, 3, pts[7][1], 1e-6)
}

func TestPathClosestPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := testpath(t)
	m, dist, err := p.ClosestPoint(vec3.T{5, 2, 0})
	assert.NoError(t, err)
	assert.InDelta(t, 6, m, 1e-3)
	assert.InDelta(t, 1, dist, 1e-3)
}

func TestPathSection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := testpath(t)
	sec, err := p.Section(2, 6)
	assert.NoError(t, err)
	assert.Equal(t, 2, sec.N())
	assert.InDelta(t, 4, sec.Length(), 1e-6)
	pt, err := sec.At(0)
	assert.NoError(t, err)
	assert.InDelta(t, 2, pt[0], 1e-6)
	pt, err = sec.At(4)
	assert.NoError(t, err)
	assert.InDelta(t, 2, pt[1], 1e-6)
	_, err = p.Section(6, 2)
	assert.True(t, errors.Is(err, curve.ErrInvalidSection))
}

func TestPathSectionWithinOnePiece(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := testpath(t)
	sec, err := p.Section(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 1, sec.N())
	assert.InDelta(t, 2, sec.Length(), 1e-6)
}
