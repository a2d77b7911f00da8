// Package scalar implements the Unicode scalar value type for strand and the
// strict UTF-8 codec that converts between scalars and byte sequences.
//
// A Scalar is always a valid Unicode scalar value: surrogate code points and
// values above U+10FFFF cannot be constructed. The codec is strict by
// default — malformed input is reported, never silently replaced; the lossy
// variant is a separately named function.
package scalar
