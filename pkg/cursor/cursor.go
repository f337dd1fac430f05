// Package cursor provides sequential little-endian access to in-memory byte
// buffers. It is the substrate the level codec reads and writes through.
//
// A Reader only moves forward. A Writer appends, but can be moved back with
// Seek so that fields whose value is only known at the end (checksums) can be
// patched in place.
package cursor

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrUnexpectedEOF is returned when a read needs more bytes than remain.
var ErrUnexpectedEOF = errors.New("unexpected end of buffer")

// Reader reads primitive fields from a byte slice starting at offset zero.
type Reader struct {
	data []byte
	off  int
}

// NewReader wraps data without copying it.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// next returns the next n bytes as a view into the buffer and advances.
func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, errors.Wrapf(ErrUnexpectedEOF, "need %d bytes at offset %d, have %d", n, r.off, r.Remaining())
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Skip advances past n bytes without interpreting them.
func (r *Reader) Skip(n int) error {
	_, err := r.next(n)
	return err
}

// ReadBytes returns a copy of the next n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.next(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadU8 reads an unsigned byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI8 reads a signed byte.
func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16 reads a little-endian int16.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI32 reads a little-endian int32.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadF64 reads a little-endian IEEE 754 double.
func (r *Reader) ReadF64() (float64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// Writer builds a byte buffer field by field.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter returns a Writer with room for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Len returns the total number of bytes written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Offset returns the current write position.
func (w *Writer) Offset() int {
	return w.pos
}

// Seek moves the write position. Positions past the end are rejected.
func (w *Writer) Seek(off int) error {
	if off < 0 || off > len(w.buf) {
		return errors.Newf("seek offset %d outside [0, %d]", off, len(w.buf))
	}
	w.pos = off
	return nil
}

// Bytes returns the written buffer. The slice aliases the writer's storage.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteBytes writes b at the current position, overwriting existing bytes
// and growing the buffer as needed.
func (w *Writer) WriteBytes(b []byte) {
	end := w.pos + len(b)
	if end > len(w.buf) {
		w.buf = append(w.buf, make([]byte, end-len(w.buf))...)
	}
	copy(w.buf[w.pos:end], b)
	w.pos = end
}

// WritePadded writes b followed by zero bytes up to width. The caller must
// ensure len(b) <= width.
func (w *Writer) WritePadded(b []byte, width int) {
	field := make([]byte, width)
	copy(field, b)
	w.WriteBytes(field)
}

// WriteU8 writes a single byte.
func (w *Writer) WriteU8(v uint8) {
	w.WriteBytes([]byte{v})
}

// WriteU16 writes a little-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.WriteBytes(b[:])
}

// WriteI16 writes a little-endian int16.
func (w *Writer) WriteI16(v int16) {
	w.WriteU16(uint16(v))
}

// WriteU32 writes a little-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.WriteBytes(b[:])
}

// WriteI32 writes a little-endian int32.
func (w *Writer) WriteI32(v int32) {
	w.WriteU32(uint32(v))
}

// WriteF64 writes a little-endian IEEE 754 double.
func (w *Writer) WriteF64(v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	w.WriteBytes(b[:])
}
