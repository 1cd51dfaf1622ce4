package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // hex/text input parsing
	PhaseDecode Phase = "decode" // bit stream to packet tree
	PhaseEncode Phase = "encode" // packet tree to bit stream
	PhaseEval   Phase = "eval"   // packet tree evaluation
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBits       Kind = "out_of_bits"
	KindFrameOverrun    Kind = "frame_overrun"
	KindOperandCount    Kind = "operand_count"
	KindOverflow        Kind = "overflow"
	KindInvalidOperator Kind = "invalid_operator"
	KindInvalidData     Kind = "invalid_data"
	KindInvalidInput    Kind = "invalid_input"
	KindFieldOverflow   Kind = "field_overflow"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Detail string
	Path   []string
	Offset int // bit offset where the error occurred; -1 if unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at packet ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Offset > 0 {
		fmt.Fprintf(&b, " (bit %d)", e.Offset)
	}

	if e.Op != "" {
		b.WriteString(": op ")
		b.WriteString(e.Op)
	}

	if e.Detail != "" {
		if e.Op != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Path sets the packet path (child indices from the root)
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Op sets the operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Offset sets the bit offset
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfBits creates an error for a read past the end of the bit stream
func OutOfBits(phase Phase, offset, requested, remaining int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBits,
		Offset: offset,
		Detail: fmt.Sprintf("requested %d bits, %d remain", requested, remaining),
		Value:  requested,
	}
}

// FrameOverrun creates an error for a bit-length frame whose children
// consumed more bits than the frame declared
func FrameOverrun(phase Phase, path []string, declared, consumed int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFrameOverrun,
		Path:   path,
		Offset: -1,
		Detail: fmt.Sprintf("children consumed %d bits, frame declared %d", consumed, declared),
		Value:  consumed,
	}
}

// OperandCount creates an error for an operator with an invalid number of operands
func OperandCount(phase Phase, path []string, op string, count int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOperandCount,
		Path:   path,
		Op:     op,
		Offset: -1,
		Detail: fmt.Sprintf("invalid operand count %d", count),
		Value:  count,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Offset: -1,
		Detail: detail,
	}
}

// InvalidOperator creates an error for a type ID with no operator mapping
func InvalidOperator(phase Phase, typeID uint8) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidOperator,
		Offset: -1,
		Detail: fmt.Sprintf("invalid operator type ID %d", typeID),
		Value:  typeID,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Offset: -1,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: -1,
		Detail: detail,
	}
}

// FieldOverflow creates an error for a value that does not fit its wire field
func FieldOverflow(phase Phase, field string, value any, width int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldOverflow,
		Offset: -1,
		Detail: fmt.Sprintf("value %v does not fit %d-bit field %s", value, width, field),
		Value:  value,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
