package bits

import (
	"github.com/wippyai/bits-codec/errors"
)

// Packet is one decoded BITS unit. TypeID determines the payload: TypeLiteral
// packets carry Value and have no sub-packets; every other type ID is an
// operator whose Packets are combined by the operator's function.
//
// A decoded packet tree is immutable by convention: Eval, Expression, and
// Encode never mutate it, so a tree may be shared read-only across
// goroutines. Ownership is strictly hierarchical; decoding cannot produce
// sharing or cycles.
type Packet struct {
	Version uint8
	TypeID  uint8

	// Value is the literal payload. Meaningful only when TypeID == TypeLiteral.
	Value uint64

	// LengthKind records the framing mode the packet was decoded with and
	// will be encoded with. Meaningful only for operator packets.
	LengthKind LengthKind

	// Packets are the operator's sub-packets in declaration order. Order is
	// semantically significant for comparison operators.
	Packets []*Packet
}

// IsLiteral reports whether the packet carries a literal value.
func (p *Packet) IsLiteral() bool {
	return p.TypeID == TypeLiteral
}

// IsOperator reports whether the packet combines sub-packets.
func (p *Packet) IsOperator() bool {
	return p.TypeID != TypeLiteral
}

// Op returns the packet's operator. It fails for literal packets and for
// type IDs outside the 3-bit range.
func (p *Packet) Op() (Op, error) {
	if p.TypeID > MaxFieldValue || p.TypeID == TypeLiteral {
		return 0, errors.InvalidOperator(errors.PhaseEval, p.TypeID)
	}
	return Op(p.TypeID), nil
}

// Flatten returns the packet and all of its descendants, sub-packets first.
func (p *Packet) Flatten() []*Packet {
	var out []*Packet
	for _, sub := range p.Packets {
		out = append(out, sub.Flatten()...)
	}
	return append(out, p)
}

// SubPacketCount returns the number of packets contained within this packet,
// recursively, not counting the packet itself.
func (p *Packet) SubPacketCount() int {
	return len(p.Flatten()) - 1
}

// ToLiteral evaluates the packet and returns an equivalent literal packet
// with the same version. The receiver and its sub-packets are not modified.
func (p *Packet) ToLiteral() (*Packet, error) {
	value, err := p.Eval()
	if err != nil {
		return nil, err
	}
	return &Packet{
		Version: p.Version,
		TypeID:  TypeLiteral,
		Value:   value,
	}, nil
}
