package bits

import (
	"errors"
	"testing"
)

func TestReaderReadBits(t *testing.T) {
	// 1101 0010 1111 1110 0010 1000
	data := []byte{0xD2, 0xFE, 0x28}
	r := NewReader(data)

	tests := []struct {
		n    int
		want uint64
	}{
		{3, 0b110},
		{3, 0b100},
		{1, 1},
		{4, 0b0111},
		{1, 1},
		{4, 0b1110},
		{1, 0},
		{4, 0b0101},
	}

	pos := 0
	for i, tt := range tests {
		if r.Position() != pos {
			t.Errorf("position before read %d: got %d, want %d", i, r.Position(), pos)
		}
		got, err := r.ReadBits(tt.n)
		if err != nil {
			t.Fatalf("ReadBits(%d) at step %d: %v", tt.n, i, err)
		}
		if got != tt.want {
			t.Errorf("ReadBits(%d) at step %d: got %#b, want %#b", tt.n, i, got, tt.want)
		}
		pos += tt.n
	}

	if r.Remaining() != 24-pos {
		t.Errorf("Remaining: got %d, want %d", r.Remaining(), 24-pos)
	}
}

func TestReaderWideReads(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	r := NewReader(data)

	got, err := r.ReadBits(64)
	if err != nil {
		t.Fatalf("ReadBits(64): %v", err)
	}
	if got != ^uint64(0) {
		t.Errorf("ReadBits(64): got %#x, want all ones", got)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining: got %d, want 0", r.Remaining())
	}
}

func TestReaderCrossesByteBoundary(t *testing.T) {
	// 0000 0001 1000 0000
	r := NewReader([]byte{0x01, 0x80})
	if _, err := r.ReadBits(7); err != nil {
		t.Fatal(err)
	}
	got, err := r.ReadBits(2)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0b11 {
		t.Errorf("ReadBits(2) across boundary: got %#b, want 0b11", got)
	}
}

func TestReaderOutOfBits(t *testing.T) {
	r := NewReader([]byte{0xAB})
	if _, err := r.ReadBits(5); err != nil {
		t.Fatal(err)
	}

	_, err := r.ReadBits(4)
	if err == nil {
		t.Fatal("expected error reading past end")
	}
	if !errors.Is(err, ErrOutOfBits) {
		t.Errorf("expected ErrOutOfBits, got %v", err)
	}

	// The failed read must not advance the cursor.
	if r.Position() != 5 {
		t.Errorf("position after failed read: got %d, want 5", r.Position())
	}
	got, err := r.ReadBits(3)
	if err != nil {
		t.Fatalf("ReadBits(3): %v", err)
	}
	if got != 0b011 {
		t.Errorf("ReadBits(3): got %#b, want 0b011", got)
	}
}

func TestReaderInvalidWidth(t *testing.T) {
	r := NewReader([]byte{0x00})
	for _, n := range []int{0, -1, 65} {
		if _, err := r.ReadBits(n); err == nil {
			t.Errorf("ReadBits(%d): expected error", n)
		}
	}
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(nil)
	if r.Len() != 0 || r.Remaining() != 0 {
		t.Errorf("empty reader: Len=%d Remaining=%d", r.Len(), r.Remaining())
	}
	if _, err := r.ReadBits(1); !errors.Is(err, ErrOutOfBits) {
		t.Errorf("expected ErrOutOfBits, got %v", err)
	}
}

func TestReaderReadBool(t *testing.T) {
	r := NewReader([]byte{0b1010_0000})
	want := []bool{true, false, true, false}
	for i, w := range want {
		got, err := r.ReadBool()
		if err != nil {
			t.Fatalf("ReadBool %d: %v", i, err)
		}
		if got != w {
			t.Errorf("ReadBool %d: got %v, want %v", i, got, w)
		}
	}
}
