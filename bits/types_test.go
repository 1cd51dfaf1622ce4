package bits_test

import (
	"testing"

	"github.com/wippyai/bits-codec/bits"
)

func TestPacketKindPredicates(t *testing.T) {
	lit := &bits.Packet{TypeID: bits.TypeLiteral, Value: 1}
	if !lit.IsLiteral() || lit.IsOperator() {
		t.Error("literal packet misclassified")
	}

	op := &bits.Packet{TypeID: uint8(bits.OpSum), Packets: []*bits.Packet{lit}}
	if op.IsLiteral() || !op.IsOperator() {
		t.Error("operator packet misclassified")
	}
}

func TestPacketOp(t *testing.T) {
	op := &bits.Packet{TypeID: uint8(bits.OpProduct)}
	got, err := op.Op()
	if err != nil {
		t.Fatalf("Op: %v", err)
	}
	if got != bits.OpProduct {
		t.Errorf("Op: got %v, want %v", got, bits.OpProduct)
	}

	lit := &bits.Packet{TypeID: bits.TypeLiteral}
	if _, err := lit.Op(); err == nil {
		t.Error("expected error for literal packet")
	}

	bad := &bits.Packet{TypeID: 9}
	if _, err := bad.Op(); err == nil {
		t.Error("expected error for type ID outside the 3-bit range")
	}
}

func TestFlatten(t *testing.T) {
	p, err := bits.DecodeHex("EE00D40C823060")
	if err != nil {
		t.Fatalf("DecodeHex: %v", err)
	}

	flat := p.Flatten()
	if len(flat) != 4 {
		t.Fatalf("Flatten: got %d packets, want 4", len(flat))
	}
	// Sub-packets come first, the packet itself last.
	if flat[len(flat)-1] != p {
		t.Error("Flatten: expected self last")
	}
	if p.SubPacketCount() != 3 {
		t.Errorf("SubPacketCount: got %d, want 3", p.SubPacketCount())
	}
}

func TestFlattenNested(t *testing.T) {
	p, err := bits.DecodeHex("9C0141080250320F1802104A08")
	if err != nil {
		t.Fatalf("DecodeHex: %v", err)
	}
	// eq(sum(1, 3), product(2, 2)): 7 packets in total.
	if got := len(p.Flatten()); got != 7 {
		t.Errorf("Flatten: got %d packets, want 7", got)
	}
	if got := p.SubPacketCount(); got != 6 {
		t.Errorf("SubPacketCount: got %d, want 6", got)
	}
}

func TestOpStrings(t *testing.T) {
	tests := []struct {
		op       bits.Op
		symbol   string
		funcName string
		variadic bool
	}{
		{bits.OpSum, "+", "sum", false},
		{bits.OpProduct, "*", "product", false},
		{bits.OpMinimum, "min", "min", true},
		{bits.OpMaximum, "max", "max", true},
		{bits.OpGreaterThan, ">", "gt", false},
		{bits.OpLessThan, "<", "lt", false},
		{bits.OpEqualTo, "==", "eq", false},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.symbol {
			t.Errorf("%v.String(): got %q, want %q", tt.op, got, tt.symbol)
		}
		if got := tt.op.FuncName(); got != tt.funcName {
			t.Errorf("%v.FuncName(): got %q, want %q", tt.op, got, tt.funcName)
		}
		if got := tt.op.IsVariadicFunc(); got != tt.variadic {
			t.Errorf("%v.IsVariadicFunc(): got %v, want %v", tt.op, got, tt.variadic)
		}
		if !tt.op.Valid() {
			t.Errorf("%v.Valid(): got false", tt.op)
		}
	}

	if bits.Op(bits.TypeLiteral).Valid() {
		t.Error("Op(4).Valid(): literal type ID is not an operator")
	}
	if bits.Op(8).Valid() {
		t.Error("Op(8).Valid(): out of 3-bit range")
	}
}

func TestLengthKindString(t *testing.T) {
	if bits.LengthTotalBits.String() != "total-bits" {
		t.Errorf("LengthTotalBits.String(): got %q", bits.LengthTotalBits.String())
	}
	if bits.LengthPacketCount.String() != "packet-count" {
		t.Errorf("LengthPacketCount.String(): got %q", bits.LengthPacketCount.String())
	}
}
