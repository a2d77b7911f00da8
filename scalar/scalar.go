package scalar

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Scalar is a single Unicode scalar value: a code point in
// [U+0000, U+D7FF] or [U+E000, U+10FFFF]. The zero value is U+0000.
//
// Scalar is an immutable value type; it is produced by decoding UTF-8 bytes
// or by validated construction, and consumed by classification queries or by
// re-encoding to bytes.
type Scalar struct {
	r rune
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// FromCodepoint constructs a Scalar from a raw code point value. It fails
// with *InvalidCodepointError if cp is a surrogate or exceeds U+10FFFF.
func FromCodepoint(cp uint32) (Scalar, error) {
	if cp > utf8.MaxRune || (cp >= surrogateMin && cp <= surrogateMax) {
		return Scalar{}, &InvalidCodepointError{Codepoint: cp}
	}
	return Scalar{r: rune(cp)}, nil
}

// FromRune constructs a Scalar from a Go rune, applying the same validation
// as FromCodepoint. Negative runes are rejected.
func FromRune(r rune) (Scalar, error) {
	if r < 0 {
		return Scalar{}, &InvalidCodepointError{Codepoint: uint32(r)}
	}
	return FromCodepoint(uint32(r))
}

// MustFromRune is FromRune for rune literals known to be valid; it panics on
// invalid input.
func MustFromRune(r rune) Scalar {
	s, err := FromRune(r)
	if err != nil {
		panic(err)
	}
	return s
}

// Rune returns the scalar as a Go rune.
func (s Scalar) Rune() rune { return s.r }

// Codepoint returns the scalar's code point value.
func (s Scalar) Codepoint() uint32 { return uint32(s.r) }

// String returns the scalar encoded as UTF-8.
func (s Scalar) String() string { return string(s.r) }

// EncodedLen returns the number of bytes (1..4) of the scalar's UTF-8
// encoding.
func (s Scalar) EncodedLen() int {
	return utf8.RuneLen(s.r)
}

// IsAlphabetic reports whether the scalar is in a Unicode letter category.
func (s Scalar) IsAlphabetic() bool { return unicode.IsLetter(s.r) }

// IsNumeric reports whether the scalar is in a Unicode number category.
func (s Scalar) IsNumeric() bool { return unicode.IsNumber(s.r) }

// IsSpace reports whether the scalar is Unicode whitespace.
func (s Scalar) IsSpace() bool { return unicode.IsSpace(s.r) }

// ToUpper returns the full language-neutral uppercase mapping of the scalar.
// Full Unicode case mapping may expand a single scalar into several
// (ß -> SS), which is why the case methods return slices.
func (s Scalar) ToUpper() []Scalar {
	return caseMap(s, cases.Upper(language.Und))
}

// ToLower returns the full language-neutral lowercase mapping of the scalar.
func (s Scalar) ToLower() []Scalar {
	return caseMap(s, cases.Lower(language.Und))
}

// A cases.Caser is stateful, so each call builds its own.
func caseMap(s Scalar, c cases.Caser) []Scalar {
	mapped := c.String(string(s.r))
	out := make([]Scalar, 0, 1)
	for _, r := range mapped {
		out = append(out, Scalar{r: r})
	}
	return out
}
