package bits

import (
	"strconv"

	"github.com/wippyai/bits-codec/errors"
)

// Eval folds the packet tree into a single value. Sub-packets are evaluated
// before their parent, in declaration order; the first-declared sub-packet
// is the left operand of a comparison. Eval is a pure function of the tree
// and never modifies it.
//
// A structurally invalid tree (an operator with too few operands, or a
// comparison without exactly two) fails with an operand-count error rather
// than substituting a default.
func (p *Packet) Eval() (uint64, error) {
	return p.eval(nil)
}

func (p *Packet) eval(path []string) (uint64, error) {
	if p.IsLiteral() {
		if len(p.Packets) != 0 {
			return 0, errors.OperandCount(errors.PhaseEval, path, "literal", len(p.Packets))
		}
		return p.Value, nil
	}

	op, err := p.Op()
	if err != nil {
		return 0, err
	}

	values := make([]uint64, len(p.Packets))
	for i, sub := range p.Packets {
		v, err := sub.eval(childPath(path, i))
		if err != nil {
			return 0, err
		}
		values[i] = v
	}

	switch op {
	case OpSum:
		if len(values) == 0 {
			return 0, errors.OperandCount(errors.PhaseEval, path, op.FuncName(), 0)
		}
		var sum uint64
		for _, v := range values {
			sum += v
		}
		return sum, nil

	case OpProduct:
		if len(values) == 0 {
			return 0, errors.OperandCount(errors.PhaseEval, path, op.FuncName(), 0)
		}
		product := uint64(1)
		for _, v := range values {
			product *= v
		}
		return product, nil

	case OpMinimum:
		if len(values) == 0 {
			return 0, errors.OperandCount(errors.PhaseEval, path, op.FuncName(), 0)
		}
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}
		return min, nil

	case OpMaximum:
		if len(values) == 0 {
			return 0, errors.OperandCount(errors.PhaseEval, path, op.FuncName(), 0)
		}
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max, nil

	case OpGreaterThan:
		if len(values) != 2 {
			return 0, errors.OperandCount(errors.PhaseEval, path, op.FuncName(), len(values))
		}
		return boolValue(values[0] > values[1]), nil

	case OpLessThan:
		if len(values) != 2 {
			return 0, errors.OperandCount(errors.PhaseEval, path, op.FuncName(), len(values))
		}
		return boolValue(values[0] < values[1]), nil

	case OpEqualTo:
		if len(values) != 2 {
			return 0, errors.OperandCount(errors.PhaseEval, path, op.FuncName(), len(values))
		}
		return boolValue(values[0] == values[1]), nil
	}

	return 0, errors.InvalidOperator(errors.PhaseEval, p.TypeID)
}

func boolValue(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// childPath extends a packet path without aliasing the parent's slice.
func childPath(path []string, i int) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, strconv.Itoa(i))
}
