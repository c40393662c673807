// Package render turns curve sets and pending click sequences into
// backend-neutral display lists and replays them onto drawing targets.
package render

import (
	"BezierBoard/internal/state"
)

// OpKind selects the primitive an Op strokes.
type OpKind int

const (
	OpLine OpKind = iota + 1
	OpQuad
	OpRect
)

// Op is one stroked primitive. For OpLine P0 and P1 are the endpoints; for
// OpQuad P0 is the start, P1 the control point and P2 the end; for OpRect P0
// and P1 are opposite corners.
type Op struct {
	Kind  OpKind
	P0    state.Point
	P1    state.Point
	P2    state.Point
	Width float32
}

// Layer is an ordered display list. Later ops draw over earlier ones.
type Layer []Op

// Size is the extent of the vector layer's layout box.
type Size struct {
	Width, Height float32
}

// Contains reports whether p is inside the box anchored at the origin.
func (s Size) Contains(p state.Point) bool {
	return state.InBounds(p, s.Width, s.Height)
}

// Style holds stroke widths used when building layers.
type Style struct {
	CurveWidth  float32
	BoundsWidth float32
}

// DefaultStyle strokes curves at width 2 and the bounds at width 1.
var DefaultStyle = Style{CurveWidth: 2, BoundsWidth: 1}

// CurveOp returns the op that strokes c.
func CurveOp(c state.Curve, width float32) Op {
	return Op{Kind: OpQuad, P0: c.From, P1: c.Control, P2: c.To, Width: width}
}

// LineOp returns the op that strokes a straight segment.
func LineOp(from, to state.Point, width float32) Op {
	return Op{Kind: OpLine, P0: from, P1: to, Width: width}
}

// BoundsOp returns the op that strokes the outline of a box of size sz.
func BoundsOp(sz Size, width float32) Op {
	return Op{Kind: OpRect, P1: state.Pt(sz.Width, sz.Height), Width: width}
}

// BuildContent strokes every curve in order, then the bounds rectangle.
func BuildContent(curves state.CurveSet, sz Size, style Style) Layer {
	layer := make(Layer, 0, curves.Len()+1)
	for c := range curves.All() {
		layer = append(layer, CurveOp(c, style.CurveWidth))
	}
	return append(layer, BoundsOp(sz, style.BoundsWidth))
}
