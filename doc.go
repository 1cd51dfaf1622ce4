// Package bitscodec provides a Go implementation of the BITS transmission
// format: a bit-packed hierarchical protocol where every packet carries a
// version, a type, and either a literal value or an operator over nested
// sub-packets.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	bitscodec/       Root package with one-call convenience API
//	├── bits/        Core codec: bit reader/writer, packet decoder,
//	│                evaluator, encoder, expression renderer
//	├── errors/      Structured error types for debugging
//	└── cmd/bits/    CLI for decoding and evaluating transmissions
//
// # Quick Start
//
// Evaluate a hexadecimal transmission:
//
//	value, err := bitscodec.Evaluate("C200B40A82")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(value) // 3
//
// Decode into a packet tree for inspection:
//
//	packet, err := bitscodec.Decode("38006F45291200")
//	for _, sub := range packet.Packets {
//	    fmt.Println(sub.Value)
//	}
//
// Render a transmission as arithmetic notation:
//
//	expr, err := bitscodec.Expression("9C0141080250320F1802104A08")
//	fmt.Println(expr) // (1 + 3) == (2 * 2)
//
// The bits package exposes the full API: lower-level decoding with an
// explicit Reader, re-encoding packet trees to their wire form, structural
// validation, and tree transforms.
package bitscodec
