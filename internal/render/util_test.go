package render

import (
	"testing"

	"BezierBoard/internal/state"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// recorder is a Target that logs the ops it is asked to stroke.
type recorder struct {
	ops Layer
}

func (r *recorder) StrokeLine(from, to state.Point, width float32) {
	r.ops = append(r.ops, Op{Kind: OpLine, P0: from, P1: to, Width: width})
}

func (r *recorder) StrokeQuad(from, control, to state.Point, width float32) {
	r.ops = append(r.ops, Op{Kind: OpQuad, P0: from, P1: control, P2: to, Width: width})
}

func (r *recorder) StrokeRect(min, max state.Point, width float32) {
	r.ops = append(r.ops, Op{Kind: OpRect, P0: min, P1: max, Width: width})
}
