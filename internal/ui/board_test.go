package ui

import (
	"image"
	"testing"

	"BezierBoard/internal/render"
	"BezierBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"
)

func press(c *CurveCanvas, x, y float32, button desktop.MouseButton) {
	c.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	})
}

func move(c *CurveCanvas, x, y float32) {
	c.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}})
}

func newTestCanvas(t *testing.T) (*CurveCanvas, *state.Session, *render.Cache) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	s := state.NewSession(state.Document{SourcePath: "board.png"})
	cache := render.NewCache(render.DefaultStyle)
	c := NewCurveCanvas(s, cache, 0.25)
	s.OnNewCurve = func(state.Curve) { c.Invalidate() }
	s.OnClear = c.Invalidate
	c.Resize(fyne.NewSize(200, 100))
	return c, s, cache
}

func TestCurveCanvasThreeClicks(t *testing.T) {
	c, s, _ := newTestCanvas(t)

	press(c, 10, 10, desktop.MouseButtonPrimary)
	press(c, 50, 10, desktop.MouseButtonPrimary)
	require.Equal(t, state.TwoClickedState(state.Pt(10, 10), state.Pt(50, 10)), s.Pending())
	press(c, 30, 40, desktop.MouseButtonPrimary)

	require.Equal(t, state.IdleState(), s.Pending())
	require.Equal(t, 1, s.Curves().Len())
	require.Equal(t, sampleCurve, s.Curves().At(0))
}

func TestCurveCanvasIgnoresOutsideAndSecondaryPresses(t *testing.T) {
	c, s, _ := newTestCanvas(t)

	press(c, 5, 5, desktop.MouseButtonPrimary)
	press(c, 250, 50, desktop.MouseButtonPrimary)
	press(c, 20, 20, desktop.MouseButtonSecondary)

	require.Equal(t, state.OneClickedState(state.Pt(5, 5)), s.Pending())
	require.Equal(t, 0, s.Curves().Len())
}

func countObjects(objs []fyne.CanvasObject) (lines, rects int) {
	for _, o := range objs {
		switch o.(type) {
		case *canvas.Line:
			lines++
		case *canvas.Rectangle:
			rects++
		}
	}
	return lines, rects
}

func TestCurveCanvasRendererUsesCache(t *testing.T) {
	c, s, cache := newTestCanvas(t)
	r := test.WidgetRenderer(c)

	lines, rects := countObjects(r.Objects())
	require.Zero(t, lines)
	require.Equal(t, 1, rects)
	builds := cache.Builds()

	// Moving without a pending sequence redraws nothing.
	c.MouseIn(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(1, 1)}})
	r.Refresh()
	require.Equal(t, builds, cache.Builds())

	for _, p := range []state.Point{sampleCurve.From, sampleCurve.To, sampleCurve.Control} {
		press(c, p.X, p.Y, desktop.MouseButtonPrimary)
	}
	require.Equal(t, 1, s.Curves().Len())
	r.Refresh()
	require.Equal(t, builds+1, cache.Builds())
	lines, rects = countObjects(r.Objects())
	require.Greater(t, lines, 1)
	require.Equal(t, 1, rects)

	r.Refresh()
	require.Equal(t, builds+1, cache.Builds())
}

func TestCurveCanvasPreview(t *testing.T) {
	c, _, cache := newTestCanvas(t)
	r := test.WidgetRenderer(c)
	c.MouseIn(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(1, 1)}})

	press(c, 10, 10, desktop.MouseButtonPrimary)
	move(c, 60, 60)
	lines, _ := countObjects(r.Objects())
	require.Equal(t, 1, lines)
	builds := cache.Builds()

	press(c, 90, 10, desktop.MouseButtonPrimary)
	move(c, 50, 80)
	lines, _ = countObjects(r.Objects())
	require.Greater(t, lines, 1)

	// The preview is drawn on top of the cached content but never enters it.
	require.Equal(t, builds, cache.Builds())

	c.MouseOut()
	lines, _ = countObjects(r.Objects())
	require.Zero(t, lines)
}

func TestCurveCanvasCrosshair(t *testing.T) {
	c, _, _ := newTestCanvas(t)
	require.Equal(t, desktop.CrosshairCursor, c.Cursor())
}

func TestOverlayLayout(t *testing.T) {
	c, _, _ := newTestCanvas(t)
	bg := image.NewRGBA(image.Rect(0, 0, 8, 6))
	o := NewOverlay(bg, c)
	r := test.WidgetRenderer(o)

	objs := r.Objects()
	require.Len(t, objs, 2)
	img, ok := objs[0].(*canvas.Image)
	require.True(t, ok, "background must be drawn first")
	require.Same(t, c, objs[1])
	require.Equal(t, canvas.ImageFillStretch, img.FillMode)

	o.Resize(fyne.NewSize(320, 240))
	require.Equal(t, fyne.NewSize(320, 240), c.Size())
	require.Equal(t, c.Size(), img.Size())
	require.Equal(t, c.Position(), img.Position())
}

func TestOverlayWithoutBackground(t *testing.T) {
	c, _, _ := newTestCanvas(t)
	o := NewOverlay(nil, c)
	objs := test.WidgetRenderer(o).Objects()
	require.Len(t, objs, 1)
	require.Same(t, c, objs[0])
}

func TestOverlayTakesNoInput(t *testing.T) {
	c, _, _ := newTestCanvas(t)
	var o fyne.CanvasObject = NewOverlay(image.NewRGBA(image.Rect(0, 0, 2, 2)), c)

	_, mouse := o.(desktop.Mouseable)
	_, hover := o.(desktop.Hoverable)
	_, tap := o.(fyne.Tappable)
	_, drag := o.(fyne.Draggable)
	require.False(t, mouse || hover || tap || drag, "overlay must leave pointer events to the canvas")

	var top fyne.CanvasObject = c
	_, mouse = top.(desktop.Mouseable)
	require.True(t, mouse)
}
