package state

import (
	"fmt"
	"iter"
)

// Point is a position in the vector layer's local coordinate space, which is
// also the layout box of the background image.
type Point struct{ X, Y float32 }

// Pt returns the point (x, y).
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Curve is a quadratic Bézier curve from From to To, bent by Control.
type Curve struct {
	From    Point
	To      Point
	Control Point
}

// Record flattens the curve into the six-component form used on disk:
// from.x, from.y, to.x, to.y, control.x, control.y.
func (c Curve) Record() [6]float32 {
	return [6]float32{c.From.X, c.From.Y, c.To.X, c.To.Y, c.Control.X, c.Control.Y}
}

// CurveFromRecord is the inverse of Curve.Record.
func CurveFromRecord(r [6]float32) Curve {
	return Curve{
		From:    Pt(r[0], r[1]),
		To:      Pt(r[2], r[3]),
		Control: Pt(r[4], r[5]),
	}
}

// CurveSet is an ordered collection of curves. Insertion order is draw order
// and listing order.
type CurveSet struct {
	curves []Curve
}

// NewCurveSet returns a set holding curves in the given order.
func NewCurveSet(curves ...Curve) CurveSet {
	return CurveSet{curves: append([]Curve(nil), curves...)}
}

// Append adds c after every curve already in the set.
func (s *CurveSet) Append(c Curve) {
	s.curves = append(s.curves, c)
}

// Clear removes every curve.
func (s *CurveSet) Clear() {
	s.curves = nil
}

func (s CurveSet) Len() int { return len(s.curves) }

// At returns the i-th curve in insertion order.
func (s CurveSet) At(i int) Curve { return s.curves[i] }

// All yields the curves in insertion order. The sequence can be ranged over
// any number of times and never mutates the set.
func (s CurveSet) All() iter.Seq[Curve] {
	return func(yield func(Curve) bool) {
		for _, c := range s.curves {
			if !yield(c) {
				return
			}
		}
	}
}

// Clone returns a set that shares no storage with s.
func (s CurveSet) Clone() CurveSet {
	return NewCurveSet(s.curves...)
}

// Equal reports whether both sets hold the same curves in the same order.
func (s CurveSet) Equal(o CurveSet) bool {
	if len(s.curves) != len(o.curves) {
		return false
	}
	for i := range s.curves {
		if s.curves[i] != o.curves[i] {
			return false
		}
	}
	return true
}

// Document is the unit of persistence: the background image path and the
// curves drawn over it.
type Document struct {
	SourcePath string
	Curves     CurveSet
}

// Equal compares path and every coordinate of every curve exactly.
func (d Document) Equal(o Document) bool {
	return d.SourcePath == o.SourcePath && d.Curves.Equal(o.Curves)
}
