package bits

import (
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/bits-codec/errors"
)

// DecodeHex decodes one top-level packet from a hexadecimal transmission.
// Each hex digit expands to exactly 4 bits, most significant bit first.
// An odd number of digits is allowed; the stream is padded with a zero digit.
func DecodeHex(s string) (*Packet, error) {
	data, err := BytesFromHex(s)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// DecodeHexValidate decodes a hexadecimal transmission and validates the
// resulting tree. This is a convenience function combining DecodeHex and
// Validate.
func DecodeHexValidate(s string) (*Packet, error) {
	p, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Decode decodes one top-level packet from raw bytes. Trailing all-zero
// padding bits are expected and ignored; non-zero trailing bits are ignored
// as well but reported at debug level, since their meaning is up to the
// caller.
func Decode(data []byte) (*Packet, error) {
	r := NewReader(data)
	p, err := DecodePacket(r)
	if err != nil {
		return nil, err
	}
	if rem := r.Remaining(); rem > 0 && !residueIsZero(r) {
		Logger().Debug("non-zero trailing bits after top-level packet",
			zap.Int("position", r.Position()),
			zap.Int("bits", rem))
	}
	return p, nil
}

// DecodePacket decodes a single packet from the reader's current position,
// recursing into sub-packets. The reader is left positioned immediately
// after the packet's last bit.
func DecodePacket(r *Reader) (*Packet, error) {
	version, err := r.ReadBits(VersionBits)
	if err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	typeID, err := r.ReadBits(TypeBits)
	if err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}

	p := &Packet{Version: uint8(version), TypeID: uint8(typeID)}

	if p.TypeID == TypeLiteral {
		value, err := readLiteral(r)
		if err != nil {
			return nil, err
		}
		p.Value = value
		return p, nil
	}

	lengthType, err := r.ReadBits(LengthTypeBits)
	if err != nil {
		return nil, fmt.Errorf("length type: %w", err)
	}
	p.LengthKind = LengthKind(lengthType)

	switch p.LengthKind {
	case LengthTotalBits:
		total, err := r.ReadBits(TotalLengthBits)
		if err != nil {
			return nil, fmt.Errorf("total length: %w", err)
		}
		start := r.Position()
		for r.Position()-start < int(total) {
			sub, err := DecodePacket(r)
			if err != nil {
				return nil, fmt.Errorf("sub-packet %d: %w", len(p.Packets), err)
			}
			p.Packets = append(p.Packets, sub)
		}
		if consumed := r.Position() - start; consumed != int(total) {
			return nil, errors.FrameOverrun(errors.PhaseDecode, nil, int(total), consumed)
		}

	case LengthPacketCount:
		count, err := r.ReadBits(PacketCountBits)
		if err != nil {
			return nil, fmt.Errorf("sub-packet count: %w", err)
		}
		for i := 0; i < int(count); i++ {
			sub, err := DecodePacket(r)
			if err != nil {
				return nil, fmt.Errorf("sub-packet %d: %w", i, err)
			}
			p.Packets = append(p.Packets, sub)
		}
	}

	if len(p.Packets) == 0 {
		return nil, errors.InvalidData(errors.PhaseDecode, nil, "operator packet has no sub-packets")
	}
	return p, nil
}

// readLiteral accumulates 5-bit groups into a literal value: a continuation
// flag followed by 4 payload bits, most significant group first, ending with
// the group whose flag is clear.
func readLiteral(r *Reader) (uint64, error) {
	var value uint64
	for groups := 0; ; groups++ {
		if groups >= maxLiteralGroups {
			return 0, errors.Overflow(errors.PhaseDecode, nil, "literal value exceeds 64 bits")
		}
		more, err := r.ReadBool()
		if err != nil {
			return 0, fmt.Errorf("literal group flag: %w", err)
		}
		group, err := r.ReadBits(GroupValueBits)
		if err != nil {
			return 0, fmt.Errorf("literal group value: %w", err)
		}
		value = value<<GroupValueBits | group
		if !more {
			return value, nil
		}
	}
}

// residueIsZero consumes the reader's remaining bits and reports whether
// they were all zero.
func residueIsZero(r *Reader) bool {
	for r.Remaining() > 0 {
		n := r.Remaining()
		if n > 64 {
			n = 64
		}
		v, err := r.ReadBits(n)
		if err != nil || v != 0 {
			return false
		}
	}
	return true
}

// BytesFromHex converts a hexadecimal string to bytes. Unlike
// encoding/hex, an odd number of digits is accepted: the final digit is
// followed by an implicit zero digit, preserving the 4-bits-per-digit
// expansion.
func BytesFromHex(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.InvalidInput(errors.PhaseParse, "empty hex string")
	}
	if len(s)%2 != 0 {
		s += "0"
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidInput, err, "decode hex transmission")
	}
	return data, nil
}

// HexFromBytes converts bytes to an uppercase hexadecimal string.
func HexFromBytes(data []byte) string {
	return fmt.Sprintf("%X", data)
}
