package bitscodec

import (
	"github.com/wippyai/bits-codec/bits"
)

// Decode decodes one top-level packet from a hexadecimal transmission and
// validates the resulting tree.
func Decode(hexStr string) (*bits.Packet, error) {
	return bits.DecodeHexValidate(hexStr)
}

// Evaluate decodes a hexadecimal transmission and folds the packet tree
// into its value.
func Evaluate(hexStr string) (uint64, error) {
	p, err := bits.DecodeHexValidate(hexStr)
	if err != nil {
		return 0, err
	}
	return p.Eval()
}

// Expression decodes a hexadecimal transmission and renders it as
// arithmetic notation.
func Expression(hexStr string) (string, error) {
	p, err := bits.DecodeHexValidate(hexStr)
	if err != nil {
		return "", err
	}
	return p.Expression()
}
