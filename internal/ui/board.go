package ui

import (
	"image/color"

	"BezierBoard/internal/render"
	"BezierBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// CurveCanvas is the interactive vector layer. Presses are fed to the
// session's click state machine; the committed curves come from a render
// cache and the in-progress preview is rebuilt on every pointer move.
type CurveCanvas struct {
	widget.BaseWidget

	session   *state.Session
	cache     *render.Cache
	tolerance float64

	cursor   state.Point
	hovering bool
}

var _ fyne.Widget = (*CurveCanvas)(nil)
var _ desktop.Mouseable = (*CurveCanvas)(nil)
var _ desktop.Hoverable = (*CurveCanvas)(nil)
var _ desktop.Cursorable = (*CurveCanvas)(nil)

// NewCurveCanvas draws session's curves through cache. Quadratic curves are
// flattened into line segments within tolerance pixels.
func NewCurveCanvas(session *state.Session, cache *render.Cache, tolerance float64) *CurveCanvas {
	c := &CurveCanvas{session: session, cache: cache, tolerance: tolerance}
	c.ExtendBaseWidget(c)
	return c
}

// Invalidate drops the cached curve layer and schedules a redraw. It must be
// called after every change to the session's curve set.
func (c *CurveCanvas) Invalidate() {
	c.cache.Invalidate()
	c.Refresh()
}

func (c *CurveCanvas) layoutSize() render.Size {
	sz := c.Size()
	return render.Size{Width: sz.Width, Height: sz.Height}
}

func (c *CurveCanvas) MouseDown(e *desktop.MouseEvent) {
	sz := c.layoutSize()
	pos := state.Pt(e.Position.X, e.Position.Y)
	ev := state.ResolvePress(e.Button == desktop.MouseButtonPrimary, pos, sz.Width, sz.Height)
	c.session.HandlePointer(ev)
	c.cursor = pos
	c.Refresh()
}

func (c *CurveCanvas) MouseUp(*desktop.MouseEvent) {}

func (c *CurveCanvas) MouseIn(e *desktop.MouseEvent) {
	c.hovering = true
	c.MouseMoved(e)
}

func (c *CurveCanvas) MouseMoved(e *desktop.MouseEvent) {
	c.cursor = state.Pt(e.Position.X, e.Position.Y)
	if c.session.Pending().Kind != state.Idle {
		c.Refresh()
	}
}

func (c *CurveCanvas) MouseOut() {
	c.hovering = false
	c.Refresh()
}

func (c *CurveCanvas) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

func (c *CurveCanvas) MinSize() fyne.Size {
	c.ExtendBaseWidget(c)
	return fyne.NewSize(100, 100)
}

func (c *CurveCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &curveCanvasRenderer{canvas: c}
	r.rebuild(c.layoutSize())
	return r
}

type curveCanvasRenderer struct {
	canvas  *CurveCanvas
	content []fyne.CanvasObject
	objects []fyne.CanvasObject
}

// rebuild refreshes the content objects only when the cache rebuilt its
// layer, and the preview objects every time.
func (r *curveCanvasRenderer) rebuild(sz render.Size) {
	c := r.canvas
	layer, rebuilt := c.cache.Content(c.session.Curves(), sz)
	if rebuilt || r.content == nil {
		t := &fyneTarget{tolerance: c.tolerance}
		render.Replay(t, layer)
		r.content = t.objects
	}

	objects := make([]fyne.CanvasObject, len(r.content), len(r.content)+8)
	copy(objects, r.content)
	if c.hovering {
		t := &fyneTarget{tolerance: c.tolerance, objects: objects}
		render.Replay(t, render.Preview(c.session.Pending(), c.cursor, sz, c.cache.Style))
		objects = t.objects
	}
	r.objects = objects
}

func (r *curveCanvasRenderer) Layout(size fyne.Size) {
	r.rebuild(render.Size{Width: size.Width, Height: size.Height})
}

func (r *curveCanvasRenderer) MinSize() fyne.Size { return r.canvas.MinSize() }

func (r *curveCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *curveCanvasRenderer) Refresh() {
	r.rebuild(r.canvas.layoutSize())
	canvas.Refresh(r.canvas)
}

func (r *curveCanvasRenderer) Destroy() {}

// fyneTarget turns layer ops into fyne canvas objects. fyne has no curve
// primitive, so quadratics become polylines.
type fyneTarget struct {
	tolerance float64
	objects   []fyne.CanvasObject
}

var strokeColor color.Color = color.Black

func (t *fyneTarget) StrokeLine(from, to state.Point, width float32) {
	l := canvas.NewLine(strokeColor)
	l.StrokeWidth = width
	l.Position1 = fyne.NewPos(from.X, from.Y)
	l.Position2 = fyne.NewPos(to.X, to.Y)
	t.objects = append(t.objects, l)
}

func (t *fyneTarget) StrokeQuad(from, control, to state.Point, width float32) {
	op := render.CurveOp(state.Curve{From: from, To: to, Control: control}, width)
	pts := render.Polyline(op, t.tolerance)
	for i := 1; i < len(pts); i++ {
		t.StrokeLine(pts[i-1], pts[i], width)
	}
}

func (t *fyneTarget) StrokeRect(min, max state.Point, width float32) {
	rect := canvas.NewRectangle(color.Transparent)
	rect.StrokeColor = strokeColor
	rect.StrokeWidth = width
	rect.Move(fyne.NewPos(min.X, min.Y))
	rect.Resize(fyne.NewSize(max.X-min.X, max.Y-min.Y))
	t.objects = append(t.objects, rect)
}
