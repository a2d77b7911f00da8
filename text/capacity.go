package text

// growCapacity picks the capacity for a reallocation: at least need, and at
// least double the current capacity. Doubling keeps a run of appends at
// amortized O(1) bytes copied per byte appended.
func growCapacity(cur, need int) int {
	doubled := cur * 2
	if doubled > need {
		return doubled
	}
	return need
}

// ensure guarantees room for extra more bytes, reallocating if required.
// Existing content is preserved; the length does not change.
func (b *Buffer) ensure(extra int) {
	need := len(b.data) + extra
	if need <= cap(b.data) {
		return
	}
	next := make([]byte, len(b.data), growCapacity(cap(b.data), need))
	copy(next, b.data)
	b.data = next
	b.reallocs++
}
