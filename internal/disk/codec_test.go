package disk

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"BezierBoard/internal/state"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func sampleDocument() state.Document {
	return state.Document{
		SourcePath: "/tmp/a.png",
		Curves: state.NewCurveSet(
			state.Curve{From: state.Pt(0, 0), To: state.Pt(10, 0), Control: state.Pt(5, 5)},
		),
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []state.Document{
		sampleDocument(),
		{},
		{SourcePath: "bilder/größe €.png"},
		{
			SourcePath: `C:\images\map.png`,
			Curves: state.NewCurveSet(
				state.Curve{From: state.Pt(-1.5, 2.25), To: state.Pt(1e6, -1e-6), Control: state.Pt(0.1, 0.2)},
				state.Curve{From: state.Pt(math.MaxFloat32, math.SmallestNonzeroFloat32), To: state.Pt(3, 4), Control: state.Pt(5, 6)},
				state.Curve{From: state.Pt(0.1, 0.2), To: state.Pt(0.1, 0.2), Control: state.Pt(0.1, 0.2)},
			),
		},
	}
	for _, doc := range docs {
		data, err := Encode(doc)
		if err != nil {
			t.Fatalf("Encode(%q): %v", doc.SourcePath, err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode(%q): %v", doc.SourcePath, err)
		}
		if !got.Equal(doc) {
			t.Errorf("round trip changed document:\n%s", cmp.Diff(doc, got))
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	data, err := Encode(sampleDocument())
	if err != nil {
		t.Fatal(err)
	}
	var want []byte
	want = binary.LittleEndian.AppendUint64(want, 10)
	want = append(want, "/tmp/a.png"...)
	want = binary.LittleEndian.AppendUint64(want, 1)
	want = binary.LittleEndian.AppendUint64(want, 6)
	for _, v := range []float32{0, 0, 10, 0, 5, 5} {
		want = binary.LittleEndian.AppendUint32(want, math.Float32bits(v))
	}
	diff(t, want, data)
}

func TestEncodeDeterministic(t *testing.T) {
	a, _ := Encode(sampleDocument())
	b, _ := Encode(sampleDocument())
	diff(t, a, b)
}

func TestEncodeRejectsInvalidUTF8(t *testing.T) {
	if _, err := Encode(state.Document{SourcePath: "bad\xff.png"}); err == nil {
		t.Fatal("expected error for invalid UTF-8 path")
	}
}

func TestDecodeTruncated(t *testing.T) {
	data, err := Encode(sampleDocument())
	if err != nil {
		t.Fatal(err)
	}
	for n := range len(data) {
		_, err := Decode(data[:n])
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("Decode of %d/%d bytes: got %v, want *DecodeError", n, len(data), err)
		}
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("Decode of %d/%d bytes: got %v, want ErrTruncated", n, len(data), err)
		}
	}
}

func TestDecodeWrongArity(t *testing.T) {
	for _, arity := range []uint64{0, 5, 7} {
		var data []byte
		data = binary.LittleEndian.AppendUint64(data, 0)
		data = binary.LittleEndian.AppendUint64(data, 1)
		data = binary.LittleEndian.AppendUint64(data, arity)
		for range arity {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(1))
		}
		_, err := Decode(data)
		if !errors.Is(err, ErrArity) {
			t.Errorf("arity %d: got %v, want ErrArity", arity, err)
		}
		var de *DecodeError
		if errors.As(err, &de) && de.Offset != 16 {
			t.Errorf("arity %d: got offset %d, want 16", arity, de.Offset)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	huge := binary.LittleEndian.AppendUint64(nil, math.MaxUint64)
	if _, err := Decode(huge); !errors.Is(err, ErrTruncated) {
		t.Errorf("huge path length: got %v", err)
	}

	var badPath []byte
	badPath = binary.LittleEndian.AppendUint64(badPath, 2)
	badPath = append(badPath, 0xff, 0xfe)
	badPath = binary.LittleEndian.AppendUint64(badPath, 0)
	if _, err := Decode(badPath); !errors.Is(err, ErrMalformed) {
		t.Errorf("invalid UTF-8 path: got %v", err)
	}

	good, _ := Encode(sampleDocument())
	if _, err := Decode(append(good, 0)); !errors.Is(err, ErrTrailingData) {
		t.Errorf("trailing byte: got %v", err)
	}
}
