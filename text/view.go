package text

import (
	"bytes"
	"unicode/utf8"

	"github.com/iw2rmb/strand/internal/grapheme"
	"github.com/iw2rmb/strand/scalar"
)

// View is an immutable, non-owning window into a run of valid UTF-8 bytes.
// Both endpoints of the window always lie on scalar boundaries.
//
// A View is a small value; copy it freely. A View taken from a Buffer
// remains usable only until that Buffer's next mutation; using it afterwards
// panics (see Buffer.AsView). Views built from strings or standalone byte
// slices have no such restriction.
type View struct {
	data  []byte
	owner *Buffer
	gen   uint64
}

// NewView builds a View over the bytes of s. It fails with a
// *scalar.MalformedSequenceError if s is not valid UTF-8 (Go string values
// carry no such guarantee).
func NewView(s string) (View, error) {
	b := []byte(s)
	if err := validate(b); err != nil {
		return View{}, err
	}
	return View{data: b}, nil
}

// MustView is NewView for literals known to be valid; it panics on
// malformed input.
func MustView(s string) View {
	v, err := NewView(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ViewBytes builds a View borrowing b directly, without copying. The caller
// must not mutate b while the View (or anything sliced from it) is in use.
// It fails with a *scalar.MalformedSequenceError if b is not valid UTF-8.
func ViewBytes(b []byte) (View, error) {
	if err := validate(b); err != nil {
		return View{}, err
	}
	return View{data: b}, nil
}

// validate scans b with the strict codec so the error carries the offset and
// cause of the first malformed sequence.
func validate(b []byte) error {
	for off := 0; off < len(b); {
		_, n, err := scalar.DecodeOne(b, off)
		if err != nil {
			return err
		}
		off += n
	}
	return nil
}

func (v View) check() {
	if v.owner != nil && v.owner.version != v.gen {
		panic("text: View used after its Buffer was mutated")
	}
}

// Len returns the length of the View in bytes.
func (v View) Len() int {
	v.check()
	return len(v.data)
}

// IsEmpty reports whether the View covers no bytes.
func (v View) IsEmpty() bool {
	v.check()
	return len(v.data) == 0
}

// CharCount returns the number of scalars in the View. It scans the whole
// window: O(n) in bytes, by construction of UTF-8.
func (v View) CharCount() int {
	v.check()
	return utf8.RuneCount(v.data)
}

// GraphemeCount returns the number of user-perceived characters (grapheme
// clusters) in the View. O(n).
func (v View) GraphemeCount() int {
	v.check()
	return grapheme.Count(v.data)
}

// Width returns the number of terminal cells the View occupies when
// displayed in a monospaced font. O(n).
func (v View) Width() int {
	v.check()
	return grapheme.Width(v.data)
}

// String returns the View's bytes as a string. The result is an independent
// copy.
func (v View) String() string {
	v.check()
	return string(v.data)
}

// Equal reports whether v and other cover byte-identical content.
func (v View) Equal(other View) bool {
	v.check()
	other.check()
	return bytes.Equal(v.data, other.data)
}

// Slice returns the sub-View covering bytes [start, end) of v. It fails
// with a *BoundaryError if the bounds are out of range or either offset
// falls inside a multi-byte scalar.
func (v View) Slice(start, end int) (View, error) {
	v.check()
	if start < 0 || end < start || end > len(v.data) {
		return View{}, &BoundaryError{Start: start, End: end, Len: len(v.data)}
	}
	if !scalar.IsBoundary(v.data, start) || !scalar.IsBoundary(v.data, end) {
		return View{}, &BoundaryError{Start: start, End: end, Len: len(v.data)}
	}
	return v.narrow(start, end), nil
}

// narrow returns the sub-window [start, end), keeping the borrow
// relationship to the owning Buffer, if any.
func (v View) narrow(start, end int) View {
	return View{data: v.data[start:end:end], owner: v.owner, gen: v.gen}
}

// Index returns the byte offset of the first occurrence of needle in v, or
// -1 if needle is absent. The search is plain byte-sequence matching.
func (v View) Index(needle View) int {
	v.check()
	needle.check()
	return bytes.Index(v.data, needle.data)
}

// Contains reports whether needle occurs in v.
func (v View) Contains(needle View) bool {
	return v.Index(needle) >= 0
}

// HasPrefix reports whether v begins with the bytes of prefix.
func (v View) HasPrefix(prefix View) bool {
	v.check()
	prefix.check()
	return bytes.HasPrefix(v.data, prefix.data)
}

// HasSuffix reports whether v ends with the bytes of suffix.
func (v View) HasSuffix(suffix View) bool {
	v.check()
	suffix.check()
	return bytes.HasSuffix(v.data, suffix.data)
}

// Trim returns the narrower View obtained by excluding leading and trailing
// whitespace scalars. It never allocates; the result shares v's storage.
func (v View) Trim() View {
	v.check()

	start := 0
	for start < len(v.data) {
		s, n, err := scalar.DecodeOne(v.data, start)
		if err != nil {
			// Views hold valid UTF-8 by construction.
			panic(err)
		}
		if !s.IsSpace() {
			break
		}
		start += n
	}

	end := len(v.data)
	for end > start {
		prev := end - 1
		for !scalar.IsBoundary(v.data, prev) {
			prev--
		}
		s, _, err := scalar.DecodeOne(v.data, prev)
		if err != nil {
			panic(err)
		}
		if !s.IsSpace() {
			break
		}
		end = prev
	}

	return v.narrow(start, end)
}
