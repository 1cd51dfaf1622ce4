package bits

// Wire field widths, in bits.
const (
	VersionBits     = 3  // packet version
	TypeBits        = 3  // packet type ID
	GroupFlagBits   = 1  // literal group continuation flag
	GroupValueBits  = 4  // literal group payload
	LengthTypeBits  = 1  // operator framing mode selector
	TotalLengthBits = 15 // bit-length framing field
	PacketCountBits = 11 // count framing field
)

// TypeLiteral is the type ID of a literal packet. Every other type ID
// selects an operator.
const TypeLiteral uint8 = 4

// MaxFieldValue is the largest value a 3-bit version or type field can carry.
const MaxFieldValue = 7

// maxLiteralGroups bounds literal accumulation to 64 bits of payload.
const maxLiteralGroups = 16

// Op identifies the combining function of an operator packet. The values
// are the wire type IDs; TypeLiteral (4) is not an Op.
type Op uint8

const (
	OpSum         Op = 0
	OpProduct     Op = 1
	OpMinimum     Op = 2
	OpMaximum     Op = 3
	OpGreaterThan Op = 5
	OpLessThan    Op = 6
	OpEqualTo     Op = 7
)

// Valid reports whether op maps to a defined operator.
func (op Op) Valid() bool {
	return op <= OpEqualTo && uint8(op) != TypeLiteral
}

// String returns the operator's symbol for infix rendering. Minimum and
// maximum have no infix form and return their function names.
func (op Op) String() string {
	switch op {
	case OpSum:
		return "+"
	case OpProduct:
		return "*"
	case OpMinimum:
		return "min"
	case OpMaximum:
		return "max"
	case OpGreaterThan:
		return ">"
	case OpLessThan:
		return "<"
	case OpEqualTo:
		return "=="
	default:
		return "op?"
	}
}

// FuncName returns the operator's function-call name.
func (op Op) FuncName() string {
	switch op {
	case OpSum:
		return "sum"
	case OpProduct:
		return "product"
	case OpMinimum:
		return "min"
	case OpMaximum:
		return "max"
	case OpGreaterThan:
		return "gt"
	case OpLessThan:
		return "lt"
	case OpEqualTo:
		return "eq"
	default:
		return "op?"
	}
}

// IsVariadicFunc reports whether the operator renders as a function call
// rather than an infix expression.
func (op Op) IsVariadicFunc() bool {
	return op == OpMinimum || op == OpMaximum
}

// LengthKind selects how an operator packet frames its sub-packets on the wire.
type LengthKind uint8

const (
	// LengthTotalBits declares the total bit length of all sub-packets
	// in a 15-bit field.
	LengthTotalBits LengthKind = 0

	// LengthPacketCount declares the number of sub-packets in an
	// 11-bit field.
	LengthPacketCount LengthKind = 1
)

// String returns a human-readable framing mode name.
func (k LengthKind) String() string {
	switch k {
	case LengthTotalBits:
		return "total-bits"
	case LengthPacketCount:
		return "packet-count"
	default:
		return "length?"
	}
}
