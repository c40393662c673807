package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"BezierBoard/internal/render"
	"BezierBoard/internal/state"
)

func TestPDF(t *testing.T) {
	curves := state.NewCurveSet(
		state.Curve{From: state.Pt(0, 0), To: state.Pt(100, 100), Control: state.Pt(50, 0)},
		state.Curve{From: state.Pt(10, 10), To: state.Pt(20, 20), Control: state.Pt(30, 5)},
	)
	var buf bytes.Buffer
	if err := PDF(&buf, curves); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestWritePDFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := WritePDFFile(path, state.CurveSet{}); err != nil {
		t.Fatal(err)
	}
}

func TestPNG(t *testing.T) {
	bgImg := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			bgImg.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	sz := render.Size{Width: 64, Height: 48}
	content := render.BuildContent(state.NewCurveSet(state.Curve{From: state.Pt(4, 24), To: state.Pt(60, 24), Control: state.Pt(32, 24)}), sz, render.DefaultStyle)

	var buf bytes.Buffer
	if err := PNG(&buf, bgImg, sz, content); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 64, 48) {
		t.Errorf("got bounds %v", got)
	}
	if r, g, b, _ := img.At(32, 10).RGBA(); r > 0x0800 || g > 0x0800 || b < 0xf000 {
		t.Errorf("background missing at (32,10): %v", img.At(32, 10))
	}
}

func TestPDFDeterministic(t *testing.T) {
	curves := state.NewCurveSet(
		state.Curve{From: state.Pt(0, 0), To: state.Pt(100, 100), Control: state.Pt(50, 0)},
		state.Curve{From: state.Pt(1.5, 2.25), To: state.Pt(512, 384), Control: state.Pt(1000, 700)},
	)
	var a, b bytes.Buffer
	if err := PDF(&a, curves); err != nil {
		t.Fatal(err)
	}
	if err := PDF(&b, curves); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two exports of the same curves differ")
	}
}
