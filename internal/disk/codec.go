// Package disk encodes documents to and from their on-disk binary form.
//
// The layout is little-endian throughout:
//
//	u64 path length, path bytes (UTF-8)
//	u64 curve count
//	per curve: u64 component count (always 6), six f32 components
//	           from.x from.y to.x to.y control.x control.y
//
// There is no magic number or version tag.
package disk

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"BezierBoard/internal/state"
)

// RecordLen is the number of components in a persisted curve.
const RecordLen = 6

var (
	ErrTruncated    = errors.New("unexpected end of data")
	ErrArity        = errors.New("curve record does not have 6 components")
	ErrMalformed    = errors.New("malformed data")
	ErrTrailingData = errors.New("trailing data after document")
)

// DecodeError reports where decoding stopped and why.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode document at byte %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Encode serializes doc. It fails only if the source path is not valid UTF-8,
// which the format cannot carry.
func Encode(doc state.Document) ([]byte, error) {
	if !utf8.ValidString(doc.SourcePath) {
		return nil, fmt.Errorf("encode document: source path %q is not valid UTF-8", doc.SourcePath)
	}
	n := doc.Curves.Len()
	buf := make([]byte, 0, 16+len(doc.SourcePath)+n*(8+4*RecordLen))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(doc.SourcePath)))
	buf = append(buf, doc.SourcePath...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(n))
	for c := range doc.Curves.All() {
		buf = binary.LittleEndian.AppendUint64(buf, RecordLen)
		for _, v := range c.Record() {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
		}
	}
	return buf, nil
}

// Decode parses data produced by Encode. Any truncation, bad length, record
// of the wrong arity or leftover byte yields a *DecodeError; no partial
// document is ever returned.
func Decode(data []byte) (state.Document, error) {
	d := decoder{data: data}

	pathLen, err := d.length(1)
	if err != nil {
		return state.Document{}, err
	}
	pathStart := d.off
	raw, err := d.bytes(pathLen)
	if err != nil {
		return state.Document{}, err
	}
	if !utf8.Valid(raw) {
		return state.Document{}, &DecodeError{Offset: pathStart, Err: fmt.Errorf("%w: source path is not valid UTF-8", ErrMalformed)}
	}

	count, err := d.length(8)
	if err != nil {
		return state.Document{}, err
	}
	curves := make([]state.Curve, 0, count)
	for range count {
		recStart := d.off
		arity, err := d.u64()
		if err != nil {
			return state.Document{}, err
		}
		if arity != RecordLen {
			return state.Document{}, &DecodeError{Offset: recStart, Err: fmt.Errorf("%w: got %d", ErrArity, arity)}
		}
		var rec [RecordLen]float32
		for i := range rec {
			bits, err := d.u32()
			if err != nil {
				return state.Document{}, err
			}
			rec[i] = math.Float32frombits(bits)
		}
		curves = append(curves, state.CurveFromRecord(rec))
	}

	if d.off != len(d.data) {
		return state.Document{}, &DecodeError{Offset: d.off, Err: fmt.Errorf("%w: %d bytes", ErrTrailingData, len(d.data)-d.off)}
	}
	return state.Document{SourcePath: string(raw), Curves: state.NewCurveSet(curves...)}, nil
}

type decoder struct {
	data []byte
	off  int
}

func (d *decoder) remaining() int { return len(d.data) - d.off }

func (d *decoder) truncated() error {
	return &DecodeError{Offset: d.off, Err: ErrTruncated}
}

func (d *decoder) u64() (uint64, error) {
	if d.remaining() < 8 {
		return 0, d.truncated()
	}
	v := binary.LittleEndian.Uint64(d.data[d.off:])
	d.off += 8
	return v, nil
}

func (d *decoder) u32() (uint32, error) {
	if d.remaining() < 4 {
		return 0, d.truncated()
	}
	v := binary.LittleEndian.Uint32(d.data[d.off:])
	d.off += 4
	return v, nil
}

// length reads a u64 count of items that each take at least minSize bytes,
// rejecting counts the remaining input cannot possibly hold.
func (d *decoder) length(minSize int) (int, error) {
	start := d.off
	v, err := d.u64()
	if err != nil {
		return 0, err
	}
	if rem := d.remaining(); v > uint64(rem/minSize) {
		return 0, &DecodeError{Offset: start, Err: fmt.Errorf("%w: length %d exceeds remaining %d bytes", ErrTruncated, v, rem)}
	}
	return int(v), nil
}

func (d *decoder) bytes(n int) ([]byte, error) {
	if d.remaining() < n {
		return nil, d.truncated()
	}
	b := d.data[d.off : d.off+n]
	d.off += n
	return b, nil
}
