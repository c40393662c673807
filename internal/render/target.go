package render

import (
	"image"

	"BezierBoard/internal/state"
)

// Target is a drawing backend that can stroke the primitives a Layer holds.
type Target interface {
	StrokeLine(from, to state.Point, width float32)
	StrokeQuad(from, control, to state.Point, width float32)
	StrokeRect(min, max state.Point, width float32)
}

// Surface is a Target that can also place a background image under its
// strokes, stretched to its own layout box.
type Surface interface {
	Target
	DrawBackground(img image.Image)
}

// Replay strokes every op of every layer onto t, in order.
func Replay(t Target, layers ...Layer) {
	for _, layer := range layers {
		for _, op := range layer {
			switch op.Kind {
			case OpLine:
				t.StrokeLine(op.P0, op.P1, op.Width)
			case OpQuad:
				t.StrokeQuad(op.P0, op.P1, op.P2, op.Width)
			case OpRect:
				t.StrokeRect(op.P0, op.P1, op.Width)
			}
		}
	}
}

// Composite draws the background first and the vector layers over it. A nil
// background draws nothing for that layer; the vector layers still render.
func Composite(s Surface, background image.Image, layers ...Layer) {
	if background != nil {
		s.DrawBackground(background)
	}
	Replay(s, layers...)
}
