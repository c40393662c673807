// Package export renders curve sets into standalone vector and raster files.
package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"BezierBoard/internal/disk"
	"BezierBoard/internal/state"
)

// Fixed canvas of every exported SVG document.
const (
	CanvasWidth  = 1024
	CanvasHeight = 768
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	svgStroke      = "black"
	svgStrokeWidth = "3"
)

// SVGDocument is the exported form of a curve set.
type SVGDocument struct {
	XMLName xml.Name  `xml:"svg"`
	Xmlns   string    `xml:"xmlns,attr"`
	ViewBox string    `xml:"viewBox,attr"`
	Paths   []SVGPath `xml:"path"`
}

// SVGPath is one curve of an SVGDocument.
type SVGPath struct {
	D           string `xml:"d,attr"`
	Fill        string `xml:"fill,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
}

// SVG maps curves, in order, to one path element each.
func SVG(curves state.CurveSet) SVGDocument {
	doc := SVGDocument{
		Xmlns:   svgNamespace,
		ViewBox: fmt.Sprintf("0 0 %d %d", CanvasWidth, CanvasHeight),
		Paths:   make([]SVGPath, 0, curves.Len()),
	}
	for c := range curves.All() {
		doc.Paths = append(doc.Paths, SVGPath{
			D:           PathData(c),
			Fill:        "none",
			Stroke:      svgStroke,
			StrokeWidth: svgStrokeWidth,
		})
	}
	return doc
}

// PathData returns the SVG path commands for c: a move to the start point and
// a quadratic segment through the control point to the end point.
func PathData(c state.Curve) string {
	var sb strings.Builder
	sb.WriteString("M")
	writePair(&sb, c.From)
	sb.WriteString(" Q")
	writePair(&sb, c.Control)
	sb.WriteString(" ")
	writePair(&sb, c.To)
	return sb.String()
}

func writePair(sb *strings.Builder, p state.Point) {
	sb.WriteString(formatCoord(p.X))
	sb.WriteString(",")
	sb.WriteString(formatCoord(p.Y))
}

// formatCoord prints the shortest decimal that reads back as v.
func formatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// WriteTo writes the document with an XML declaration. The output depends
// only on the document's contents.
func (d SVGDocument) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if _, err := io.WriteString(cw, xml.Header); err != nil {
		return cw.n, err
	}
	enc := xml.NewEncoder(cw)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return cw.n, err
	}
	if err := enc.Close(); err != nil {
		return cw.n, err
	}
	_, err := io.WriteString(cw, "\n")
	return cw.n, err
}

// Bytes returns the serialized document.
func (d SVGDocument) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSVGFile exports curves to path, replacing any existing file only once
// the whole document has been written.
func WriteSVGFile(path string, curves state.CurveSet) error {
	doc := SVG(curves)
	err := disk.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := doc.WriteTo(w)
		return err
	})
	if err != nil {
		return fmt.Errorf("export svg %s: %w", path, err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
