package codec

import (
	"fmt"

	"github.com/ssargent/elmalev/pkg/cursor"
)

// FormatError is a level format violation. Specific failures are wrapped
// around one of the sentinels below and can be matched with errors.Is.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// Errors
var (
	ErrUnexpectedEOF           = cursor.ErrUnexpectedEOF
	ErrUnrecognizedFormat      = &FormatError{"unrecognized level format"}
	ErrInvalidCount            = &FormatError{"invalid element count"}
	ErrUnrecognizedObjectType  = &FormatError{"unrecognized object type"}
	ErrMarkerMismatch          = &FormatError{"marker mismatch"}
	ErrInvalidLeaderboardCount = &FormatError{"invalid leaderboard count"}
	ErrInvalidBlockSize        = &FormatError{"invalid leaderboard block size"}
	ErrFieldTooLong            = &FormatError{"text field too long"}
	ErrInvalidText             = &FormatError{"text not representable"}
	ErrIntegrityMismatch       = &FormatError{"integrity check failed"}
)

// MarkerError reports a structural marker that did not hold the expected
// constant. It matches ErrMarkerMismatch.
type MarkerError struct {
	Marker   string // "end-of-data" or "end-of-file"
	Expected int32
	Actual   int32
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("%s marker mismatch: expected 0x%08X, got 0x%08X", e.Marker, uint32(e.Expected), uint32(e.Actual))
}

// Is reports whether target is ErrMarkerMismatch.
func (e *MarkerError) Is(target error) bool {
	return target == ErrMarkerMismatch
}
