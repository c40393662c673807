package ui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"BezierBoard/internal/state"
)

// writePNG creates a small solid image in dir and returns its path.
func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := range 6 {
		for x := range 8 {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

var sampleCurve = state.Curve{From: state.Pt(10, 10), To: state.Pt(50, 10), Control: state.Pt(30, 40)}

type fakeReporter struct {
	errs  []error
	infos []string
}

func (r *fakeReporter) ShowError(err error) { r.errs = append(r.errs, err) }

func (r *fakeReporter) ShowInfo(title, message string) {
	r.infos = append(r.infos, title+": "+message)
}
