package text

import "bytes"

// Replace returns a new Buffer in which every non-overlapping occurrence of
// needle in b is substituted with replacement. The scan runs left to right
// and each match consumes its full length before the scan resumes, so
// overlapping candidates are not double-counted. b is not mutated.
//
// An empty needle matches nothing; the result is then a plain copy of b.
func (b *Buffer) Replace(needle, replacement View) *Buffer {
	needle.check()
	replacement.check()

	if len(needle.data) == 0 || len(b.data) == 0 {
		return FromView(b.AsView())
	}

	out := WithCapacity(len(b.data))
	rest := b.data
	for {
		i := bytes.Index(rest, needle.data)
		if i < 0 {
			out.ensure(len(rest))
			out.data = append(out.data, rest...)
			return out
		}
		out.ensure(i + len(replacement.data))
		out.data = append(out.data, rest[:i]...)
		out.data = append(out.data, replacement.data...)
		rest = rest[i+len(needle.data):]
	}
}
