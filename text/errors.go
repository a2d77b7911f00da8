package text

import "fmt"

// BoundaryError reports a slice request whose bounds are out of range or do
// not fall on scalar boundaries of the sliced View.
type BoundaryError struct {
	Start int
	End   int
	Len   int
}

func (e *BoundaryError) Error() string {
	if e.Start < 0 || e.End < e.Start || e.End > e.Len {
		return fmt.Sprintf("slice bounds [%d:%d] out of range for %d-byte view", e.Start, e.End, e.Len)
	}
	return fmt.Sprintf("slice bounds [%d:%d] split a multi-byte scalar", e.Start, e.End)
}
