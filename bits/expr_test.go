package bits_test

import (
	"testing"

	"github.com/wippyai/bits-codec/bits"
)

func TestExpression(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"D2FE28", "2021"},
		{"C200B40A82", "1 + 2"},
		{"04005AC33890", "6 * 9"},
		{"880086C3E88112", "min(7, 8, 9)"},
		{"CE00C43D881120", "max(7, 8, 9)"},
		{"D8005AC2A8F0", "5 < 15"},
		{"F600BC2D8F", "5 > 15"},
		{"9C005AC2F8F0", "5 == 15"},
		{"9C0141080250320F1802104A08", "(1 + 3) == (2 * 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p, err := bits.DecodeHex(tt.hex)
			if err != nil {
				t.Fatalf("DecodeHex: %v", err)
			}
			got, err := p.Expression()
			if err != nil {
				t.Fatalf("Expression: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expression: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpressionSingleOperandInfix(t *testing.T) {
	// An infix operator with one operand renders in function form.
	p := &bits.Packet{
		Version: 1,
		TypeID:  uint8(bits.OpSum),
		Packets: []*bits.Packet{{TypeID: bits.TypeLiteral, Value: 9}},
	}
	got, err := p.Expression()
	if err != nil {
		t.Fatalf("Expression: %v", err)
	}
	if got != "sum(9)" {
		t.Errorf("Expression: got %q, want %q", got, "sum(9)")
	}
}

func TestExpressionVariadicChildNotParenthesized(t *testing.T) {
	// min/max render as function calls, so they never need parentheses
	// even inside an infix parent; infix sub-expressions always do.
	p := &bits.Packet{
		Version: 1,
		TypeID:  uint8(bits.OpSum),
		Packets: []*bits.Packet{
			{
				TypeID:  uint8(bits.OpMinimum),
				Packets: []*bits.Packet{{TypeID: bits.TypeLiteral, Value: 4}},
			},
			{
				TypeID: uint8(bits.OpProduct),
				Packets: []*bits.Packet{
					{TypeID: bits.TypeLiteral, Value: 2},
					{TypeID: bits.TypeLiteral, Value: 3},
				},
			},
		},
	}
	got, err := p.Expression()
	if err != nil {
		t.Fatalf("Expression: %v", err)
	}
	if got != "min(4) + (2 * 3)" {
		t.Errorf("Expression: got %q, want %q", got, "min(4) + (2 * 3)")
	}
}
