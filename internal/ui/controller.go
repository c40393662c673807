package ui

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"BezierBoard/internal/disk"
	"BezierBoard/internal/export"
	"BezierBoard/internal/render"
	"BezierBoard/internal/state"

	"go.uber.org/zap"
)

// Reporter shows the outcome of a command to the user.
type Reporter interface {
	ShowError(err error)
	ShowInfo(title, message string)
}

// Controller runs the file commands of one session. It never changes the
// curve set except through Clear, so a failed save or export leaves the
// session exactly as it was.
type Controller struct {
	Session *state.Session
	// Extension is appended to suggested document paths.
	Extension string
	// Background and Size describe the overlay for PNG snapshots.
	Background image.Image
	Size       func() render.Size
	Style      render.Style

	log    *zap.Logger
	report Reporter
}

func NewController(s *state.Session, report Reporter, log *zap.Logger) *Controller {
	return &Controller{
		Session:   s,
		Extension: ".bez",
		Size:      func() render.Size { return render.Size{Width: export.CanvasWidth, Height: export.CanvasHeight} },
		Style:     render.DefaultStyle,
		log:       log,
		report:    report,
	}
}

// SuggestPath proposes a destination next to the background image, with the
// image's extension replaced by ext.
func (c *Controller) SuggestPath(ext string) string {
	src := c.Session.SourcePath()
	if src == "" {
		return "untitled" + ext
	}
	return strings.TrimSuffix(src, filepath.Ext(src)) + ext
}

// Clear empties the curve set and resets the pending click sequence.
func (c *Controller) Clear() {
	n := c.Session.Curves().Len()
	c.Session.Clear()
	c.log.Info("cleared curves", zap.Int("curves", n))
}

// Save writes the session's document to path.
func (c *Controller) Save(path string) error {
	doc := c.Session.Document()
	return c.finish("save", path, doc.Curves.Len(), disk.Save(path, doc))
}

// Export writes the SVG export of the curve set to path.
func (c *Controller) Export(path string) error {
	curves := c.Session.Document().Curves
	c.checkCanvas("export svg", curves)
	return c.finish("export svg", path, curves.Len(), export.WriteSVGFile(path, curves))
}

// ExportPDF writes the curve set as a one-page PDF to path.
func (c *Controller) ExportPDF(path string) error {
	curves := c.Session.Document().Curves
	c.checkCanvas("export pdf", curves)
	return c.finish("export pdf", path, curves.Len(), export.WritePDFFile(path, curves))
}

// ExportPNG writes a raster snapshot of the overlay, background included, to
// path. The pending preview is not part of the snapshot.
func (c *Controller) ExportPNG(path string) error {
	curves := c.Session.Document().Curves
	sz := c.Size()
	layer := render.BuildContent(curves, sz, c.Style)
	return c.finish("export png", path, curves.Len(), export.WritePNGFile(path, c.Background, sz, layer))
}

// checkCanvas warns when a curve reaches outside the fixed export canvas,
// where it would be clipped.
func (c *Controller) checkCanvas(op string, curves state.CurveSet) {
	layer := make(render.Layer, 0, curves.Len())
	for cv := range curves.All() {
		layer = append(layer, render.CurveOp(cv, 0))
	}
	min, max, ok := render.Bounds(layer)
	if !ok {
		return
	}
	if min.X < 0 || min.Y < 0 || max.X > export.CanvasWidth || max.Y > export.CanvasHeight {
		c.log.Warn(op+": curves extend past the export canvas",
			zap.Stringer("min", min), zap.Stringer("max", max))
	}
}

func (c *Controller) finish(op, path string, curves int, err error) error {
	if err != nil {
		c.log.Error(op+" failed", zap.String("path", path), zap.Error(err))
		c.report.ShowError(fmt.Errorf("%s: %w", op, err))
		return err
	}
	c.log.Info(op, zap.String("path", path), zap.Int("curves", curves))
	c.report.ShowInfo(strings.ToUpper(op[:1])+op[1:], fmt.Sprintf("Wrote %d curves to %s", curves, filepath.Base(path)))
	return nil
}
