package annotate

import (
	"errors"

	"github.com/clanmonsterxd-cmd/quadcad/geom"
	"github.com/clanmonsterxd-cmd/quadcad/quad"
)

// ErrNilShape is returned by Resolve when no solved shape is supplied.
var ErrNilShape = errors.New("annotate: nil solved shape")

// Line is a construction segment anchored to the boundary of a
// quadrilateral by two (side, ratio) pairs. Ratio 0 is the side's
// first vertex in clockwise order, 1 its second. The zero value
// anchors both ends to vertex A.
type Line struct {
	StartSide  quad.Side
	StartRatio float64
	EndSide    quad.Side
	EndRatio   float64
}

// Resolved is a Line projected onto one concrete solved shape: both
// endpoints in micrometer coordinates and the segment length rounded
// to integer micrometers.
type Resolved struct {
	Start    geom.Point
	End      geom.Point
	LengthUM int64
}

// Resolve computes the line's endpoints against a solved shape.
// Ratio violations surface as quad.ErrRatioRange.
//
// Complexity: O(1).
func (l Line) Resolve(s *quad.Solved) (Resolved, error) {
	if s == nil {
		return Resolved{}, ErrNilShape
	}

	start, err := s.PointOnSide(l.StartSide, l.StartRatio)
	if err != nil {
		return Resolved{}, err
	}
	end, err := s.PointOnSide(l.EndSide, l.EndRatio)
	if err != nil {
		return Resolved{}, err
	}

	return Resolved{
		Start:    start,
		End:      end,
		LengthUM: geom.DistanceUM(start, end),
	}, nil
}
