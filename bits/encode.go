package bits

import (
	"github.com/wippyai/bits-codec/errors"
)

// Encode encodes the packet tree to its wire form, zero-padded to a byte
// boundary. Operator packets re-emit the framing mode recorded in
// LengthKind; the declared totals and counts are recomputed from the
// sub-packets, so a decoded tree round-trips to its original transmission.
func (p *Packet) Encode() ([]byte, error) {
	w := NewWriter()
	if err := p.writeBits(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// EncodeHex encodes the packet tree and returns the uppercase hexadecimal
// transmission.
func (p *Packet) EncodeHex() (string, error) {
	data, err := p.Encode()
	if err != nil {
		return "", err
	}
	return HexFromBytes(data), nil
}

func (p *Packet) writeBits(w *Writer) error {
	if p.Version > MaxFieldValue {
		return errors.FieldOverflow(errors.PhaseEncode, "version", p.Version, VersionBits)
	}
	if p.TypeID > MaxFieldValue {
		return errors.FieldOverflow(errors.PhaseEncode, "type", p.TypeID, TypeBits)
	}

	w.WriteBits(uint64(p.Version), VersionBits)
	w.WriteBits(uint64(p.TypeID), TypeBits)

	if p.IsLiteral() {
		writeLiteral(w, p.Value)
		return nil
	}

	switch p.LengthKind {
	case LengthPacketCount:
		if len(p.Packets) >= 1<<PacketCountBits {
			return errors.FieldOverflow(errors.PhaseEncode, "sub-packet count", len(p.Packets), PacketCountBits)
		}
		w.WriteBool(true)
		w.WriteBits(uint64(len(p.Packets)), PacketCountBits)
		for _, sub := range p.Packets {
			if err := sub.writeBits(w); err != nil {
				return err
			}
		}

	default: // LengthTotalBits
		// Measure the sub-packets first; the 15-bit length field precedes them.
		sub := NewWriter()
		for _, s := range p.Packets {
			if err := s.writeBits(sub); err != nil {
				return err
			}
		}
		if sub.Len() >= 1<<TotalLengthBits {
			return errors.FieldOverflow(errors.PhaseEncode, "total length", sub.Len(), TotalLengthBits)
		}
		w.WriteBool(false)
		w.WriteBits(uint64(sub.Len()), TotalLengthBits)
		for _, s := range p.Packets {
			if err := s.writeBits(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeLiteral emits a literal value as the minimal sequence of 5-bit
// groups, most significant group first.
func writeLiteral(w *Writer, v uint64) {
	groups := 1
	for x := v >> GroupValueBits; x != 0; x >>= GroupValueBits {
		groups++
	}
	for i := groups - 1; i >= 0; i-- {
		w.WriteBool(i != 0)
		w.WriteBits(v>>(uint(i)*GroupValueBits)&0xf, GroupValueBits)
	}
}
