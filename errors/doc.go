// Package errors provides structured error types for the bits-codec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: the packet path, the operation involved,
// bit offsets, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindFrameOverrun).
//		Path("0", "2").
//		Offset(118).
//		Detail("children consumed 27 bits, frame declared 22").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBits(errors.PhaseDecode, 118, 11, 6)
//	err := errors.OperandCount(errors.PhaseEval, path, "gt", 3)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when their Phase and Kind agree,
// which is how the sentinel values exported by the bits package work.
package errors
