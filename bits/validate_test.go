package bits_test

import (
	"errors"
	"testing"

	"github.com/wippyai/bits-codec/bits"
)

func TestValidateDecodedTrees(t *testing.T) {
	for _, hex := range []string{
		"D2FE28",
		"38006F45291200",
		"EE00D40C823060",
		"9C0141080250320F1802104A08",
	} {
		p, err := bits.DecodeHex(hex)
		if err != nil {
			t.Fatalf("DecodeHex(%s): %v", hex, err)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("Validate(%s): %v", hex, err)
		}
	}
}

func TestValidateRejectsInvalidTrees(t *testing.T) {
	lit := func(v uint64) *bits.Packet {
		return &bits.Packet{TypeID: bits.TypeLiteral, Value: v}
	}

	tests := []struct {
		name         string
		p            *bits.Packet
		operandCount bool
	}{
		{"version out of range", &bits.Packet{Version: 8, TypeID: bits.TypeLiteral}, false},
		{"type out of range", &bits.Packet{TypeID: 9, Packets: []*bits.Packet{lit(1)}}, false},
		{"literal with sub-packets", &bits.Packet{TypeID: bits.TypeLiteral, Packets: []*bits.Packet{lit(1)}}, true},
		{"operator without sub-packets", &bits.Packet{TypeID: uint8(bits.OpSum)}, true},
		{"comparison with one operand", &bits.Packet{TypeID: uint8(bits.OpLessThan), Packets: []*bits.Packet{lit(1)}}, true},
		{"nested invalid sub-packet", &bits.Packet{
			TypeID: uint8(bits.OpSum),
			Packets: []*bits.Packet{
				lit(1),
				{TypeID: uint8(bits.OpEqualTo), Packets: []*bits.Packet{lit(1)}},
			},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if tt.operandCount && !errors.Is(err, bits.ErrOperandCount) {
				t.Errorf("expected ErrOperandCount, got %v", err)
			}
		})
	}
}

func TestDecodeHexValidate(t *testing.T) {
	p, err := bits.DecodeHexValidate("C200B40A82")
	if err != nil {
		t.Fatalf("DecodeHexValidate: %v", err)
	}
	if p.TypeID != uint8(bits.OpSum) {
		t.Errorf("TypeID: got %d, want %d", p.TypeID, bits.OpSum)
	}

	if _, err := bits.DecodeHexValidate("ZZ"); err == nil {
		t.Error("expected error for invalid hex")
	}
}
