package text

import "github.com/iw2rmb/strand/scalar"

// Chars iterates over the scalars of a View in order. The zero value is not
// usable; obtain one from View.Chars.
//
// The iterator holds a private cursor and caches nothing on the View, so any
// number of independent iterations may be in flight at once.
type Chars struct {
	data  []byte
	next  int
	cur   scalar.Scalar
	off   int
	owner *Buffer
	gen   uint64
}

// Chars returns a fresh scalar iterator positioned before the first scalar.
// Each call starts an independent scan from the beginning of the View.
func (v View) Chars() *Chars {
	v.check()
	return &Chars{data: v.data, owner: v.owner, gen: v.gen}
}

// Next advances to the next scalar. It returns false once the View is
// exhausted.
func (c *Chars) Next() bool {
	if c.owner != nil && c.owner.version != c.gen {
		panic("text: iterator used after its Buffer was mutated")
	}
	if c.next >= len(c.data) {
		return false
	}
	s, n, err := scalar.DecodeOne(c.data, c.next)
	if err != nil {
		// Views hold valid UTF-8 by construction.
		panic(err)
	}
	c.cur = s
	c.off = c.next
	c.next += n
	return true
}

// Scalar returns the scalar at the current position. Valid only after a
// Next call that returned true.
func (c *Chars) Scalar() scalar.Scalar { return c.cur }

// Offset returns the byte offset of the current scalar within the View.
func (c *Chars) Offset() int { return c.off }

// ByteIter iterates over the raw bytes of a View. Obtain one from
// View.Bytes.
type ByteIter struct {
	data  []byte
	next  int
	owner *Buffer
	gen   uint64
}

// Bytes returns a fresh byte iterator positioned before the first byte.
// Each call starts an independent scan.
func (v View) Bytes() *ByteIter {
	v.check()
	return &ByteIter{data: v.data, owner: v.owner, gen: v.gen}
}

// Next advances to the next byte. It returns false once the View is
// exhausted.
func (it *ByteIter) Next() bool {
	if it.owner != nil && it.owner.version != it.gen {
		panic("text: iterator used after its Buffer was mutated")
	}
	if it.next >= len(it.data) {
		return false
	}
	it.next++
	return true
}

// Byte returns the byte at the current position. Valid only after a Next
// call that returned true.
func (it *ByteIter) Byte() byte { return it.data[it.next-1] }

// Offset returns the byte offset of the current byte within the View.
func (it *ByteIter) Offset() int { return it.next - 1 }
