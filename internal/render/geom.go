package render

import (
	"iter"

	"BezierBoard/internal/state"

	"honnef.co/go/curve"
)

func toCurve(p state.Point) curve.Point {
	return curve.Pt(float64(p.X), float64(p.Y))
}

func fromCurve(p curve.Point) state.Point {
	return state.Pt(float32(p.X), float32(p.Y))
}

// PathElements returns op as a Bézier path.
func (op Op) PathElements() iter.Seq[curve.PathElement] {
	switch op.Kind {
	case OpLine:
		return curve.Line{P0: toCurve(op.P0), P1: toCurve(op.P1)}.PathElements(0)
	case OpQuad:
		return curve.QuadBez{P0: toCurve(op.P0), P1: toCurve(op.P1), P2: toCurve(op.P2)}.PathElements(0)
	case OpRect:
		return curve.NewRectFromPoints(toCurve(op.P0), toCurve(op.P1)).PathElements(0)
	default:
		return func(func(curve.PathElement) bool) {}
	}
}

// Polyline flattens op into connected points within tolerance of the true
// shape. Closed shapes repeat their first point at the end.
func Polyline(op Op, tolerance float64) []state.Point {
	var pts []state.Point
	var start state.Point
	for el := range curve.Flatten(op.PathElements(), tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			start = fromCurve(el.P0)
			pts = append(pts, start)
		case curve.LineToKind:
			pts = append(pts, fromCurve(el.P0))
		case curve.ClosePathKind:
			pts = append(pts, start)
		}
	}
	return pts
}

// Bounds returns the bounding box of every op in layer, ignoring stroke width.
// ok is false for an empty layer.
func Bounds(layer Layer) (min, max state.Point, ok bool) {
	var box curve.Rect
	for _, op := range layer {
		var r curve.Rect
		switch op.Kind {
		case OpLine:
			r = curve.Line{P0: toCurve(op.P0), P1: toCurve(op.P1)}.BoundingBox()
		case OpQuad:
			r = curve.QuadBez{P0: toCurve(op.P0), P1: toCurve(op.P1), P2: toCurve(op.P2)}.BoundingBox()
		case OpRect:
			r = curve.NewRectFromPoints(toCurve(op.P0), toCurve(op.P1))
		default:
			continue
		}
		if !ok {
			box, ok = r, true
		} else {
			box = box.Union(r)
		}
	}
	if !ok {
		return state.Point{}, state.Point{}, false
	}
	return fromCurve(curve.Pt(box.MinX(), box.MinY())), fromCurve(curve.Pt(box.MaxX(), box.MaxY())), true
}
