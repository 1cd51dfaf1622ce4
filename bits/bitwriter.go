package bits

// Writer appends bits MSB-first into a growing byte buffer. It is the
// encoding counterpart of Reader.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf   []byte
	cur   byte
	nCur  int // bits buffered in cur
	total int // bits written overall
}

// NewWriter creates an empty bit Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return w.total
}

// WriteBits appends the low n bits (0 to 64) of v, most significant first.
// Bits of v above the low n are ignored.
func (w *Writer) WriteBits(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		w.writeBit(byte(v >> uint(i) & 1))
	}
}

// WriteBool appends a single flag bit.
func (w *Writer) WriteBool(b bool) {
	if b {
		w.writeBit(1)
	} else {
		w.writeBit(0)
	}
}

func (w *Writer) writeBit(b byte) {
	if b != 0 {
		w.cur |= 1 << (7 - uint(w.nCur))
	}
	w.nCur++
	w.total++
	if w.nCur == 8 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.nCur = 0
	}
}

// Bytes returns the written bits zero-padded to a byte boundary. The Writer
// remains usable; further writes continue from the unpadded bit position.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.buf), len(w.buf)+1)
	copy(out, w.buf)
	if w.nCur > 0 {
		out = append(out, w.cur)
	}
	return out
}
