package bits

import (
	"github.com/wippyai/bits-codec/errors"
)

// Sentinel errors for the codec's failure conditions. These are match
// targets for errors.Is; the errors actually returned carry bit offsets,
// packet paths, and details.
var (
	// ErrOutOfBits matches a read past the end of the bit stream.
	ErrOutOfBits = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBits, Offset: -1}

	// ErrFrameOverrun matches a bit-length-framed operator whose sub-packets
	// consumed more bits than the frame declared.
	ErrFrameOverrun = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindFrameOverrun, Offset: -1}

	// ErrOverflow matches a literal whose groups exceed 64 bits of payload.
	ErrOverflow = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOverflow, Offset: -1}

	// ErrOperandCount matches a structurally invalid tree found during
	// evaluation or validation.
	ErrOperandCount = &errors.Error{Phase: errors.PhaseEval, Kind: errors.KindOperandCount, Offset: -1}
)
