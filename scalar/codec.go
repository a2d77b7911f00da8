package scalar

import "unicode/utf8"

// UTFMax is the maximum number of bytes in the UTF-8 encoding of one scalar.
const UTFMax = utf8.UTFMax

// Encode returns the UTF-8 encoding of s. It is total: every Scalar encodes
// to 1..4 bytes.
func Encode(s Scalar) []byte {
	return utf8.AppendRune(nil, s.r)
}

// AppendEncode appends the UTF-8 encoding of s to dst and returns the
// extended slice.
func AppendEncode(dst []byte, s Scalar) []byte {
	return utf8.AppendRune(dst, s.r)
}

// IsBoundary reports whether off is a scalar boundary in b: zero, the length
// of b, or the position of a byte that is not a UTF-8 continuation byte.
// Offsets outside [0, len(b)] are not boundaries.
func IsBoundary(b []byte, off int) bool {
	if off < 0 || off > len(b) {
		return false
	}
	if off == 0 || off == len(b) {
		return true
	}
	return b[off]&0xC0 != 0x80
}

// DecodeOne decodes the scalar whose encoding starts at off in b, which must
// be a boundary. It returns the scalar and the number of bytes consumed, or
// a *MalformedSequenceError describing why the sequence is invalid.
//
// DecodeOne is strict: truncated, overlong, and surrogate-encoding sequences
// are all rejected. It never substitutes U+FFFD; see DecodeOneLossy.
func DecodeOne(b []byte, off int) (Scalar, int, error) {
	if off < 0 || off >= len(b) {
		return Scalar{}, 0, &MalformedSequenceError{Offset: off, Reason: ReasonOutOfBounds}
	}

	lead := b[off]
	if lead < 0x80 {
		return Scalar{r: rune(lead)}, 1, nil
	}

	var size int
	var min rune
	switch {
	case lead&0xC0 == 0x80:
		return Scalar{}, 0, &MalformedSequenceError{Offset: off, Reason: ReasonBadLead}
	case lead < 0xC2:
		// 0xC0 and 0xC1 can only begin overlong two-byte forms.
		return Scalar{}, 0, &MalformedSequenceError{Offset: off, Reason: ReasonOverlong}
	case lead < 0xE0:
		size, min = 2, 0x80
	case lead < 0xF0:
		size, min = 3, 0x800
	case lead < 0xF5:
		size, min = 4, 0x10000
	default:
		return Scalar{}, 0, &MalformedSequenceError{Offset: off, Reason: ReasonBadLead}
	}

	if off+size > len(b) {
		return Scalar{}, 0, &MalformedSequenceError{Offset: off, Reason: ReasonTruncated}
	}

	r := rune(lead & leadMask(size))
	for i := 1; i < size; i++ {
		c := b[off+i]
		if c&0xC0 != 0x80 {
			return Scalar{}, 0, &MalformedSequenceError{Offset: off, Reason: ReasonBadCont}
		}
		r = r<<6 | rune(c&0x3F)
	}

	switch {
	case r < min:
		return Scalar{}, 0, &MalformedSequenceError{Offset: off, Reason: ReasonOverlong}
	case r >= surrogateMin && r <= surrogateMax:
		return Scalar{}, 0, &MalformedSequenceError{Offset: off, Reason: ReasonSurrogate}
	case r > utf8.MaxRune:
		return Scalar{}, 0, &MalformedSequenceError{Offset: off, Reason: ReasonAboveMaxRune}
	}

	return Scalar{r: r}, size, nil
}

// DecodeOneLossy is the explicitly lossy variant of DecodeOne: on malformed
// input it returns U+FFFD and a width of one byte so a caller can skip
// forward, matching the convention of unicode/utf8.
func DecodeOneLossy(b []byte, off int) (Scalar, int) {
	s, size, err := DecodeOne(b, off)
	if err != nil {
		return Scalar{r: utf8.RuneError}, 1
	}
	return s, size
}

func leadMask(size int) byte {
	switch size {
	case 2:
		return 0x1F
	case 3:
		return 0x0F
	default:
		return 0x07
	}
}
