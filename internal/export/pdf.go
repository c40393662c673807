package export

import (
	"fmt"
	"io"
	"time"

	"BezierBoard/internal/disk"
	"BezierBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// PDF draws curves on a single page the size of the SVG canvas, one point per
// canvas unit, so both exports line up.
func PDF(w io.Writer, curves state.CurveSet) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: CanvasWidth, Ht: CanvasHeight},
	})
	p.SetCreationDate(time.Unix(0, 0).UTC())
	p.SetTitle("Bezier curves", true)
	p.AddPage()
	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(3)
	p.SetLineCapStyle("round")

	for c := range curves.All() {
		p.Curve(
			float64(c.From.X), float64(c.From.Y),
			float64(c.Control.X), float64(c.Control.Y),
			float64(c.To.X), float64(c.To.Y),
			"D",
		)
	}
	return p.Output(w)
}

// WritePDFFile exports curves as a PDF document at path.
func WritePDFFile(path string, curves state.CurveSet) error {
	err := disk.WriteFileAtomic(path, func(w io.Writer) error {
		return PDF(w, curves)
	})
	if err != nil {
		return fmt.Errorf("export pdf %s: %w", path, err)
	}
	return nil
}
