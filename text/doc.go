// Package text implements the two text containers of strand: Buffer, an
// owned growable sequence of valid UTF-8 bytes, and View, an immutable
// non-owning window into valid UTF-8.
//
// A Buffer always holds well-formed UTF-8 over its whole length; every
// mutating operation either fully succeeds or leaves the previous content
// unchanged. Views borrowed from a Buffer record the Buffer's generation and
// become invalid on the next mutation; using a stale View panics.
//
// There is deliberately no O(1) indexed scalar access: UTF-8 is
// variable-width, so per-scalar access is offered only through iteration and
// explicit O(n) scans.
package text
