package bits

import (
	"github.com/wippyai/bits-codec/errors"
)

// Validate checks the packet tree for structural validity without
// evaluating it: field ranges, literal shape, and operand counts. A tree
// produced by a successful decode always validates; Validate exists for
// hand-built trees and as a defense against decoder bugs.
func (p *Packet) Validate() error {
	return p.validate(nil)
}

func (p *Packet) validate(path []string) error {
	if p.Version > MaxFieldValue {
		return errors.New(errors.PhaseEval, errors.KindInvalidData).
			Path(path...).
			Value(p.Version).
			Detail("version %d out of 3-bit range", p.Version).
			Build()
	}
	if p.TypeID > MaxFieldValue {
		return errors.InvalidOperator(errors.PhaseEval, p.TypeID)
	}

	if p.IsLiteral() {
		if len(p.Packets) != 0 {
			return errors.OperandCount(errors.PhaseEval, path, "literal", len(p.Packets))
		}
		return nil
	}

	op := Op(p.TypeID)
	switch {
	case len(p.Packets) == 0:
		return errors.OperandCount(errors.PhaseEval, path, op.FuncName(), 0)
	case !op.IsVariadicFunc() && op != OpSum && op != OpProduct && len(p.Packets) != 2:
		// Comparison operators take exactly two operands.
		return errors.OperandCount(errors.PhaseEval, path, op.FuncName(), len(p.Packets))
	}

	for i, sub := range p.Packets {
		if err := sub.validate(childPath(path, i)); err != nil {
			return err
		}
	}
	return nil
}
