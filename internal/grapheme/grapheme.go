package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in b.
func Count(b []byte) int {
	n := 0
	state := -1
	for len(b) > 0 {
		_, b, _, state = uniseg.FirstGraphemeCluster(b, state)
		n++
	}
	return n
}

// Width returns the number of terminal cells b occupies, summed per
// grapheme cluster so multi-rune clusters (emoji, combining marks) count
// once.
func Width(b []byte) int {
	total := 0
	state := -1
	var cluster []byte
	for len(b) > 0 {
		cluster, b, _, state = uniseg.FirstGraphemeCluster(b, state)
		total += runewidth.StringWidth(string(cluster))
	}
	return total
}
