package bits

import (
	"github.com/wippyai/bits-codec/errors"
)

// Reader is a forward-only cursor over a flat bit sequence. Bits are
// numbered from the most significant bit of the first byte; multi-bit reads
// are big-endian. The cursor only advances; there is no rollback.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	data []byte
	pos  int // current bit offset
	n    int // total bits
}

// NewReader creates a Reader over data. All 8*len(data) bits are readable.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, n: len(data) * 8}
}

// Len returns the total number of bits in the underlying sequence.
func (r *Reader) Len() int {
	return r.n
}

// Position returns the current bit offset.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return r.n - r.pos
}

// ReadBits consumes the next n bits (1 to 64) and returns them as a
// big-endian unsigned integer, advancing the cursor. It fails with an
// out-of-bits error when fewer than n bits remain.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 1 || n > 64 {
		return 0, errors.New(errors.PhaseDecode, errors.KindInvalidInput).
			Offset(r.pos).
			Detail("read width %d out of range [1,64]", n).
			Build()
	}
	if n > r.Remaining() {
		return 0, errors.OutOfBits(errors.PhaseDecode, r.pos, n, r.Remaining())
	}
	var v uint64
	for i := 0; i < n; i++ {
		b := r.data[r.pos>>3] >> (7 - uint(r.pos&7)) & 1
		v = v<<1 | uint64(b)
		r.pos++
	}
	return v, nil
}

// ReadBit consumes a single bit.
func (r *Reader) ReadBit() (uint8, error) {
	v, err := r.ReadBits(1)
	return uint8(v), err
}

// ReadBool consumes a single bit as a flag.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadBits(1)
	return v != 0, err
}
