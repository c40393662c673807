package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	writePNG(t, path, 7, 3)

	img, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Format != "png" {
		t.Errorf("got format %q", img.Format)
	}
	if got := img.Bounds(); got.Dx() != 7 || got.Dy() != 3 {
		t.Errorf("got bounds %v", got)
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadImage(filepath.Join(dir, "missing.png"))
	var le *ImageLoadError
	if !errors.As(err, &le) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadImage(garbage)
	if !errors.As(err, &le) || !errors.Is(err, image.ErrFormat) {
		t.Errorf("garbage file: got %v", err)
	}
}

func TestIsImagePath(t *testing.T) {
	for path, want := range map[string]bool{
		"a.png":      true,
		"b.JPG":      true,
		"c.webp":     true,
		"d.bez":      false,
		"noext":      false,
		"dir.png/x":  false,
		"scan.TIFF":  true,
	} {
		if got := IsImagePath(path); got != want {
			t.Errorf("IsImagePath(%q) = %t, want %t", path, got, want)
		}
	}
}
