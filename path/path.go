// Package path concatenates meters-parametrized curves into mission paths.
//
// A Path strings together curves end to end and exposes one cumulative
// meters parametrization across all of its pieces: abscissa 0 is the start
// of the first piece, Length() the end of the last one. Queries dispatch to
// the piece containing the abscissa; an ordered map over the cumulative
// start abscissae keeps the lookup cheap.
package path

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/gmercatali/curvetk"
	"github.com/gmercatali/curvetk/curve"
)

// tracer writes to trace with key 'path'
func tracer() tracing.Trace {
	return tracing.Select("path")
}

var (
	// ErrEmptyPath indicates a query on a path without pieces.
	ErrEmptyPath = errors.New("path has no pieces")
	// ErrNilPiece indicates appending a nil curve.
	ErrNilPiece = errors.New("piece must not be nil")
)

// Path is an ordered sequence of curves with a cumulative meters
// parametrization.
type Path struct {
	pieces []*curve.Curve
	index  *treemap.Map // cumulative start abscissa -> piece position
	length float64
}

// Nullpath creates an empty path, to be extended by Append.
func Nullpath() *Path {
	return &Path{index: treemap.NewWith(utils.Float64Comparator)}
}

// Append extends the path by one curve. Part of builder functionality.
func (p *Path) Append(c *curve.Curve) *Path {
	if c == nil {
		panic(ErrNilPiece)
	}
	p.index.Put(p.length, len(p.pieces))
	p.pieces = append(p.pieces, c)
	p.length += c.Length()
	return p
}

// N returns the number of pieces.
func (p *Path) N() int {
	return len(p.pieces)
}

// Piece returns piece i.
func (p *Path) Piece(i int) *curve.Curve {
	return p.pieces[i]
}

// Length of the whole path in meters.
func (p *Path) Length() float64 {
	return p.length
}

// Pretty Stringer for paths.
func (p *Path) String() string {
	return fmt.Sprintf("Path with %d piece(s) | Length: %g", len(p.pieces), p.length)
}

// locate finds the piece containing a cumulative meters abscissa and the
// local abscissa within it. Out-of-range policy follows the curve package:
// clamp within epsilon, reject farther out.
func (p *Path) locate(m float64) (piece *curve.Curve, localM float64, pos int, err error) {
	if len(p.pieces) == 0 {
		return nil, 0, 0, ErrEmptyPath
	}
	if m < 0 {
		if -m > curvetk.DefaultEpsge {
			return nil, 0, 0, fmt.Errorf("%w: path abscissa %g below [0, %g]", curve.ErrOutOfRange, m, p.length)
		}
		m = 0
	}
	if m >= p.length {
		if m-p.length > curvetk.DefaultEpsge {
			return nil, 0, 0, fmt.Errorf("%w: path abscissa %g above [0, %g]", curve.ErrOutOfRange, m, p.length)
		}
		last := p.pieces[len(p.pieces)-1]
		return last, last.Length(), len(p.pieces) - 1, nil
	}
	foundKey, foundValue := p.index.Floor(m)
	if foundKey == nil {
		return nil, 0, 0, ErrEmptyPath
	}
	pos = foundValue.(int)
	return p.pieces[pos], m - foundKey.(float64), pos, nil
}

// At returns the world-frame point at a cumulative meters abscissa.
func (p *Path) At(abscissaM float64) (vec3.T, error) {
	piece, localM, _, err := p.locate(abscissaM)
	if err != nil {
		return vec3.T{}, err
	}
	return piece.At(localM)
}

// TangentFrame evaluates the tangent frame at a cumulative meters abscissa.
func (p *Path) TangentFrame(abscissaM float64) (curvetk.Frame, error) {
	piece, localM, _, err := p.locate(abscissaM)
	if err != nil {
		return curvetk.Frame{}, err
	}
	return piece.TangentFrame(localM)
}

// Sampling returns samples points spread uniformly in meters over the whole
// path, both endpoints included.
func (p *Path) Sampling(samples int) ([]vec3.T, error) {
	if len(p.pieces) == 0 {
		return nil, ErrEmptyPath
	}
	if samples < 2 {
		return nil, fmt.Errorf("%w: got %d", curve.ErrTooFewSamples, samples)
	}
	step := p.length / float64(samples-1)
	points := make([]vec3.T, 0, samples)
	for i := 0; i < samples; i++ {
		pt, err := p.At(float64(i) * step)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}
	return points, nil
}

// ClosestPoint finds the point on the path closest to a world-frame
// position: the best projection across all pieces. It returns the cumulative
// meters abscissa of the solution and its distance to position.
func (p *Path) ClosestPoint(position vec3.T) (abscissaM float64, distance float64, err error) {
	if len(p.pieces) == 0 {
		return 0, 0, ErrEmptyPath
	}
	best := -1.0
	cum := 0.0
	for _, piece := range p.pieces {
		localM, dist, err := piece.ClosestPoint(position)
		if err != nil {
			return 0, 0, err
		}
		if best < 0 || dist < best {
			best = dist
			abscissaM = cum + localM
		}
		cum += piece.Length()
	}
	return abscissaM, best, nil
}

// Section extracts the part of the path between two cumulative meters
// abscissae, crossing piece boundaries where needed. The result is a new
// path whose parametrization starts at 0.
func (p *Path) Section(startM, endM float64) (*Path, error) {
	if len(p.pieces) == 0 {
		return nil, ErrEmptyPath
	}
	if endM-startM <= curvetk.Epsilon {
		return nil, fmt.Errorf("%w: [%g, %g] is not a forward interval", curve.ErrInvalidSection, startM, endM)
	}
	_, startLocal, startPos, err := p.locate(startM)
	if err != nil {
		return nil, err
	}
	_, endLocal, endPos, err := p.locate(endM)
	if err != nil {
		return nil, err
	}
	section := Nullpath()
	for pos := startPos; pos <= endPos; pos++ {
		piece := p.pieces[pos]
		lo, hi := 0.0, piece.Length()
		if pos == startPos {
			lo = startLocal
		}
		if pos == endPos {
			hi = endLocal
		}
		if hi-lo <= curvetk.Epsilon {
			continue // boundary sliver
		}
		cut := piece
		if lo > 0 || hi < piece.Length() {
			cut, err = piece.Section(lo, hi)
			if err != nil {
				return nil, err
			}
		}
		section.Append(cut)
	}
	tracer().Debugf("extracted %s from %s", section, p)
	return section, nil
}
