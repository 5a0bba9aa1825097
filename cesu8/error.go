package cesu8

import "fmt"

// Error describes CESU-8 input that could not be decoded.
type Error struct {
	Offset int    // byte offset of the offending sequence
	Reason string // what was wrong with it
}

func (e *Error) Error() string {
	return fmt.Sprintf("cesu8.Decode: %s at offset %d", e.Reason, e.Offset)
}

// reasons reported by Error
const (
	errUnexpectedEOF = "unexpected end of data"
	errContinuation  = "unexpected continuation byte"
	errExpectedCont  = "expected continuation byte"
	errOverlong      = "larger representation than necessary"
	errFourByte      = "4-byte sequence not permitted"
	errInvalidLead   = "invalid lead byte"
	errUnpairedHigh  = "unpaired high surrogate"
	errUnpairedLow   = "unpaired low surrogate"
)
