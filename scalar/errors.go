package scalar

import "fmt"

// InvalidCodepointError reports an attempt to construct a Scalar from a code
// point that is not a Unicode scalar value.
type InvalidCodepointError struct {
	Codepoint uint32
}

func (e *InvalidCodepointError) Error() string {
	if e.Codepoint >= surrogateMin && e.Codepoint <= surrogateMax {
		return fmt.Sprintf("invalid codepoint U+%04X: surrogate", e.Codepoint)
	}
	return fmt.Sprintf("invalid codepoint 0x%X: above U+10FFFF", e.Codepoint)
}

// Reasons for a MalformedSequenceError.
const (
	ReasonTruncated    = "truncated sequence"
	ReasonBadLead      = "invalid lead byte"
	ReasonBadCont      = "invalid continuation byte"
	ReasonOverlong     = "overlong encoding"
	ReasonSurrogate    = "encoded surrogate"
	ReasonOutOfBounds  = "offset out of bounds"
	ReasonAboveMaxRune = "above U+10FFFF"
)

// MalformedSequenceError reports an invalid UTF-8 sequence found while
// decoding at Offset.
type MalformedSequenceError struct {
	Offset int
	Reason string
}

func (e *MalformedSequenceError) Error() string {
	return fmt.Sprintf("malformed UTF-8 at byte %d: %s", e.Offset, e.Reason)
}
