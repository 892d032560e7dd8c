package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// writer appends little-endian values to a growing byte slice.
type writer struct {
	buf []byte
}

func (w *writer) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) bool(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *writer) u16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *writer) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *writer) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *writer) f32(v float64) {
	w.u32(math.Float32bits(float32(v)))
}

func (w *writer) f64(v float64) {
	w.u64(math.Float64bits(v))
}

// str writes a length-prefixed string. The length includes a null
// terminator; an empty string encodes as length 0 with no bytes.
func (w *writer) str(s string) {
	if s == "" {
		w.u32(0)
		return
	}
	w.u32(uint32(len(s)) + 1)
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, 0)
}

// reader consumes little-endian values from a byte slice. The first
// underflow or (in strict mode) malformed value latches an error; further
// reads return zero values so decode paths stay linear.
type reader struct {
	data   []byte
	off    int
	err    *DecodeError
	strict bool
}

func (r *reader) fail(format string, args ...any) {
	if r.err == nil {
		r.err = &DecodeError{Offset: r.off, Message: fmt.Sprintf(format, args...)}
	}
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.data) {
		r.fail("truncated input: need %d bytes, have %d", n, len(r.data)-r.off)
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

func (r *reader) u8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) bool() bool {
	return r.u8() != 0
}

func (r *reader) u16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *reader) u32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *reader) u64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *reader) f32() float64 {
	return float64(math.Float32frombits(r.u32()))
}

func (r *reader) f64() float64 {
	return math.Float64frombits(r.u64())
}

func (r *reader) str() string {
	n := r.u32()
	if n == 0 || r.err != nil {
		return ""
	}
	b := r.take(int(n))
	if b == nil {
		return ""
	}
	// Drop the null terminator.
	return string(b[:n-1])
}

// enum reads a uint8 tag and clamps it to [0, max]. Strict mode fails on
// out-of-range tags; defensive mode substitutes the zero variant.
func (r *reader) enum(max uint8, what string) uint8 {
	v := r.u8()
	if v > max {
		if r.strict {
			r.fail("%s tag %d out of range (max %d)", what, v, max)
		}
		return 0
	}
	return v
}
