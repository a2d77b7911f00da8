package text

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iw2rmb/strand/scalar"
)

// Buffer is an owned, growable byte sequence that always holds valid,
// complete UTF-8 over [0, Len()). Every mutating operation either fully
// succeeds or leaves the previous content unchanged.
//
// A Buffer carries a generation counter bumped on every mutation. Views
// borrowed via AsView record the generation at borrow time, which is how
// stale borrows are caught. A Buffer expects at most one mutator at a time;
// wrap it in external locking if shared across goroutines.
type Buffer struct {
	data     []byte
	version  uint64
	reallocs int
}

// New returns an empty Buffer with no allocated storage. The first push
// allocates.
func New() *Buffer {
	return &Buffer{}
}

// WithCapacity returns an empty Buffer with room for at least n bytes, so
// that pushes totalling up to n bytes need no reallocation.
func WithCapacity(n int) *Buffer {
	if n <= 0 {
		return &Buffer{}
	}
	return &Buffer{data: make([]byte, 0, n)}
}

// FromView returns a Buffer holding a copy of v's bytes. The Buffer's
// storage is independent of v from that point on.
func FromView(v View) *Buffer {
	v.check()
	data := make([]byte, len(v.data))
	copy(data, v.data)
	return &Buffer{data: data}
}

// FromString returns a Buffer holding a copy of s. It fails with a
// *scalar.MalformedSequenceError if s is not valid UTF-8.
func FromString(s string) (*Buffer, error) {
	v, err := NewView(s)
	if err != nil {
		return nil, err
	}
	return FromView(v), nil
}

// Len returns the Buffer's length in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the Buffer's capacity in bytes. Cap() >= Len() always holds.
func (b *Buffer) Cap() int { return cap(b.data) }

// IsEmpty reports whether the Buffer holds no bytes.
func (b *Buffer) IsEmpty() bool { return len(b.data) == 0 }

// String returns the Buffer's content as a string. The result is an
// independent copy.
func (b *Buffer) String() string { return string(b.data) }

// AsView returns a zero-copy View over the Buffer's full content. The View
// borrows the Buffer's storage: it stays valid until the Buffer's next
// mutation, after which any use of it panics. Callers that need the content
// beyond the next mutation should copy via FromView or View.String.
func (b *Buffer) AsView() View {
	return View{
		data:  b.data[:len(b.data):len(b.data)],
		owner: b,
		gen:   b.version,
	}
}

// Reserve guarantees capacity for at least n more bytes beyond the current
// length. If storage is reallocated, outstanding Views are invalidated.
func (b *Buffer) Reserve(n int) {
	if n <= 0 {
		return
	}
	before := b.reallocs
	b.ensure(n)
	if b.reallocs != before {
		b.version++
	}
}

// Push encodes s and appends it to the Buffer, growing storage first if
// needed.
func (b *Buffer) Push(s scalar.Scalar) {
	var tmp [scalar.UTFMax]byte
	enc := scalar.AppendEncode(tmp[:0], s)
	b.ensure(len(enc))
	b.data = append(b.data, enc...)
	b.version++
}

// PushView appends all bytes of v, growing storage first if needed. Passing
// a View borrowed from b itself is allowed, but like every mutation this
// invalidates all of b's outstanding Views, including v.
func (b *Buffer) PushView(v View) {
	v.check()
	if len(v.data) == 0 {
		return
	}
	b.ensure(len(v.data))
	b.data = append(b.data, v.data...)
	b.version++
}

// PushString appends the bytes of s. It fails with a
// *scalar.MalformedSequenceError if s is not valid UTF-8, in which case the
// Buffer is unchanged.
func (b *Buffer) PushString(s string) error {
	v, err := NewView(s)
	if err != nil {
		return err
	}
	b.PushView(v)
	return nil
}

// Pop removes and returns the last scalar. It reports false on an empty
// Buffer.
func (b *Buffer) Pop() (scalar.Scalar, bool) {
	if len(b.data) == 0 {
		return scalar.Scalar{}, false
	}

	start := len(b.data) - 1
	for !scalar.IsBoundary(b.data, start) {
		start--
	}
	s, _, err := scalar.DecodeOne(b.data, start)
	if err != nil {
		// The Buffer invariant guarantees valid UTF-8.
		panic(err)
	}

	b.data = b.data[:start]
	b.version++
	return s, true
}

// Clear resets the Buffer to zero length, keeping its capacity.
func (b *Buffer) Clear() {
	if len(b.data) == 0 {
		return
	}
	b.data = b.data[:0]
	b.version++
}

// Concat returns a new Buffer holding b's content followed by each of the
// given views in order. b is not mutated.
func (b *Buffer) Concat(views ...View) *Buffer {
	total := len(b.data)
	for _, v := range views {
		v.check()
		total += len(v.data)
	}

	out := WithCapacity(total)
	out.data = append(out.data, b.data...)
	for _, v := range views {
		out.data = append(out.data, v.data...)
	}
	return out
}

// ToUpper returns a new Buffer with the full language-neutral uppercase
// mapping of b's content. The result's length may differ from b's.
func (b *Buffer) ToUpper() *Buffer {
	return &Buffer{data: []byte(cases.Upper(language.Und).String(string(b.data)))}
}

// ToLower returns a new Buffer with the full language-neutral lowercase
// mapping of b's content.
func (b *Buffer) ToLower() *Buffer {
	return &Buffer{data: []byte(cases.Lower(language.Und).String(string(b.data)))}
}
