package ui

import (
	"fmt"

	"BezierBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// CurveLabel is the sidebar text for the i-th curve, counting from zero.
func CurveLabel(i int, c state.Curve) string {
	return fmt.Sprintf("#%d %s → %s ctl %s", i+1, c.From, c.To, c.Control)
}

// NewSidebar lists the session's curves in insertion order. Call Refresh on
// the returned list after the curve set changes.
func NewSidebar(session *state.Session) *widget.List {
	list := widget.NewList(
		func() int { return session.Curves().Len() },
		func() fyne.CanvasObject { return widget.NewLabel("#000 (0000,0000) → (0000,0000) ctl (0000,0000)") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			curves := session.Curves()
			if id < 0 || id >= curves.Len() {
				return
			}
			obj.(*widget.Label).SetText(CurveLabel(id, curves.At(id)))
		},
	)
	return list
}
