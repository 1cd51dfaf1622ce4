// Package bits provides decoding, evaluation, and encoding of BITS packets.
//
// BITS is a bit-packed hierarchical transmission format: every packet starts
// with a 3-bit version and a 3-bit type ID, followed either by a literal
// value (type ID 4) or by a framed sequence of sub-packets combined by the
// operator the type ID selects.
//
// # Decoding
//
// Decode a packet from its hexadecimal transmission:
//
//	packet, err := bits.DecodeHex("D2FE28")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decode with structural validation enabled:
//
//	packet, err := bits.DecodeHexValidate("D2FE28")
//
// Raw byte input and lower-level control are available through Decode and
// DecodePacket with an explicit Reader.
//
// # Evaluation
//
// Evaluate folds a packet tree into a single value:
//
//	value, err := packet.Eval()
//
// Operator semantics by type ID: 0 sum, 1 product, 2 minimum, 3 maximum,
// 5 greater-than, 6 less-than, 7 equal-to. Comparison operators take exactly
// two sub-packets in declaration order and yield 1 or 0.
//
// # Encoding
//
// Encode a packet tree back to its wire form:
//
//	data, err := packet.Encode()
//	hex, err := packet.EncodeHex()
//
// Round-trip decoding and encoding preserves the transmission:
//
//	packet, _ := bits.DecodeHex(h)
//	out, _ := packet.EncodeHex()
//	// out == h for byte-aligned transmissions
//
// # Expressions
//
// Expression renders the tree as arithmetic notation:
//
//	expr, err := packet.Expression()  // e.g. "(1 + 3) == (2 * 2)"
//
// # Bit-level IO
//
// Reader and Writer are the MSB-first bit cursor primitives the codec is
// built on and can be used directly:
//
//	r := bits.NewReader(data)
//	version, err := r.ReadBits(3)
package bits
