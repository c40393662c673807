package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Overlay stacks a static background image under the vector canvas. The
// canvas dictates the layout box and the image is stretched to it, so a
// point means the same place in both layers. Overlay handles no input
// itself; pointer events reach the canvas, which is on top.
type Overlay struct {
	widget.BaseWidget

	Canvas     *CurveCanvas
	background *canvas.Image
}

var _ fyne.Widget = (*Overlay)(nil)

// NewOverlay places vector over img. A nil img leaves only the vector layer.
func NewOverlay(img image.Image, vector *CurveCanvas) *Overlay {
	o := &Overlay{Canvas: vector}
	if img != nil {
		o.background = canvas.NewImageFromImage(img)
		o.background.FillMode = canvas.ImageFillStretch
		o.background.ScaleMode = canvas.ImageScaleSmooth
	}
	o.ExtendBaseWidget(o)
	return o
}

func (o *Overlay) CreateRenderer() fyne.WidgetRenderer {
	objects := []fyne.CanvasObject{o.Canvas}
	if o.background != nil {
		objects = []fyne.CanvasObject{o.background, o.Canvas}
	}
	return &overlayRenderer{overlay: o, objects: objects}
}

type overlayRenderer struct {
	overlay *Overlay
	objects []fyne.CanvasObject
}

func (r *overlayRenderer) Layout(size fyne.Size) {
	c := r.overlay.Canvas
	c.Move(fyne.NewPos(0, 0))
	c.Resize(size)
	if bg := r.overlay.background; bg != nil {
		bg.Move(c.Position())
		bg.Resize(c.Size())
	}
}

func (r *overlayRenderer) MinSize() fyne.Size { return r.overlay.Canvas.MinSize() }

func (r *overlayRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *overlayRenderer) Refresh() {
	if bg := r.overlay.background; bg != nil {
		bg.Refresh()
	}
	r.overlay.Canvas.Refresh()
}

func (r *overlayRenderer) Destroy() {}
