package render

import "BezierBoard/internal/state"

// Preview builds the uncached layer for an in-progress click sequence. While
// one point is known it is a line to the cursor; with two points it is the
// curve whose control point follows the cursor. Nothing is drawn when idle or
// when the cursor is outside sz.
func Preview(p state.PendingState, cursor state.Point, sz Size, style Style) Layer {
	if !sz.Contains(cursor) {
		return nil
	}
	switch p.Kind {
	case state.OneClicked:
		return Layer{LineOp(p.From, cursor, style.CurveWidth)}
	case state.TwoClicked:
		c := state.Curve{From: p.From, To: p.To, Control: cursor}
		return Layer{CurveOp(c, style.CurveWidth)}
	default:
		return nil
	}
}
