package render

import (
	"image"
	"image/color"
	"image/draw"
	"iter"
	"math"

	"BezierBoard/internal/state"

	"honnef.co/go/curve"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Raster is a Surface backed by an in-memory image. Strokes are expanded to
// outlines and filled with an anti-aliasing rasterizer.
type Raster struct {
	Dst       draw.Image
	Color     color.Color
	Tolerance float64

	z *vector.Rasterizer
}

var _ Surface = (*Raster)(nil)

// NewRaster strokes in black onto dst.
func NewRaster(dst draw.Image) *Raster {
	b := dst.Bounds()
	return &Raster{
		Dst:       dst,
		Color:     color.Black,
		Tolerance: 0.1,
		z:         vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

func (r *Raster) StrokeLine(from, to state.Point, width float32) {
	r.stroke(LineOp(from, to, width).PathElements(), width)
}

func (r *Raster) StrokeQuad(from, control, to state.Point, width float32) {
	r.stroke(CurveOp(state.Curve{From: from, To: to, Control: control}, width).PathElements(), width)
}

func (r *Raster) StrokeRect(min, max state.Point, width float32) {
	op := Op{Kind: OpRect, P0: min, P1: max, Width: width}
	r.stroke(op.PathElements(), width)
}

// DrawBackground stretches img over the whole destination.
func (r *Raster) DrawBackground(img image.Image) {
	xdraw.ApproxBiLinear.Scale(r.Dst, r.Dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
}

func (r *Raster) stroke(path iter.Seq[curve.PathElement], width float32) {
	if width <= 0 || math.IsNaN(float64(width)) {
		return
	}
	b := r.Dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over

	style := curve.DefaultStroke.WithWidth(float64(width))
	outline := curve.StrokePath(path, style, curve.StrokeOpts{}, r.Tolerance)
	for el := range outline {
		switch el.Kind {
		case curve.MoveToKind:
			r.z.MoveTo(f32(el.P0.X), f32(el.P0.Y))
		case curve.LineToKind:
			r.z.LineTo(f32(el.P0.X), f32(el.P0.Y))
		case curve.QuadToKind:
			r.z.QuadTo(f32(el.P0.X), f32(el.P0.Y), f32(el.P1.X), f32(el.P1.Y))
		case curve.CubicToKind:
			r.z.CubeTo(f32(el.P0.X), f32(el.P0.Y), f32(el.P1.X), f32(el.P1.Y), f32(el.P2.X), f32(el.P2.Y))
		case curve.ClosePathKind:
			r.z.ClosePath()
		}
	}
	r.z.Draw(r.Dst, b, image.NewUniform(r.Color), image.Point{})
}

func f32(v float64) float32 { return float32(v) }

// Rasterize composites background and layers into a new white image of size
// sz, rounded up to whole pixels.
func Rasterize(sz Size, background image.Image, layers ...Layer) *image.RGBA {
	w := int(math.Ceil(float64(sz.Width)))
	h := int(math.Ceil(float64(sz.Height)))
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	Composite(NewRaster(dst), background, layers...)
	return dst
}
