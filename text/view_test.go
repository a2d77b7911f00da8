package text

import (
	"errors"
	"testing"

	"github.com/iw2rmb/strand/scalar"
)

func TestNewView_RejectsInvalidUTF8(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{name: "bare-continuation", in: "a\x80b"},
		{name: "truncated-tail", in: "ok\xC3"},
		{name: "overlong", in: "\xC0\xAF"},
	}

	for _, tc := range cases {
		_, err := NewView(tc.in)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		var mse *scalar.MalformedSequenceError
		if !errors.As(err, &mse) {
			t.Fatalf("%s: error type %T, want *scalar.MalformedSequenceError", tc.name, err)
		}
	}
}

func TestView_LenAndCharCount(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		bytes     int
		chars     int
		graphemes int
	}{
		{name: "empty", in: "", bytes: 0, chars: 0, graphemes: 0},
		{name: "ascii", in: "Rust", bytes: 4, chars: 4, graphemes: 4},
		{name: "devanagari", in: "नमस्ते", bytes: 18, chars: 6, graphemes: 4},
		{name: "emoji", in: "hi😀", bytes: 6, chars: 3, graphemes: 3},
	}

	for _, tc := range cases {
		v := MustView(tc.in)
		if got := v.Len(); got != tc.bytes {
			t.Fatalf("%s: Len=%d, want %d", tc.name, got, tc.bytes)
		}
		if got := v.CharCount(); got != tc.chars {
			t.Fatalf("%s: CharCount=%d, want %d", tc.name, got, tc.chars)
		}
		if got := v.GraphemeCount(); got != tc.graphemes {
			t.Fatalf("%s: GraphemeCount=%d, want %d", tc.name, got, tc.graphemes)
		}
	}
}

func TestView_Slice(t *testing.T) {
	v := MustView("Rust is fun!")

	got, err := v.Slice(0, 4)
	if err != nil {
		t.Fatalf("Slice(0,4): unexpected error %v", err)
	}
	if got.String() != "Rust" {
		t.Fatalf("Slice(0,4)=%q, want %q", got.String(), "Rust")
	}

	whole, err := v.Slice(0, v.Len())
	if err != nil || !whole.Equal(v) {
		t.Fatalf("Slice(0,Len) should equal the full view, got %q, err=%v", whole.String(), err)
	}

	empty, err := v.Slice(4, 4)
	if err != nil || !empty.IsEmpty() {
		t.Fatalf("Slice(4,4) should be empty, err=%v", err)
	}
}

func TestView_Slice_BoundaryErrors(t *testing.T) {
	multi := MustView("नमस्ते")
	ascii := MustView("Rust")

	cases := []struct {
		name  string
		v     View
		start int
		end   int
	}{
		{name: "mid-sequence-start", v: multi, start: 1, end: 6},
		{name: "mid-sequence-end", v: multi, start: 0, end: 4},
		{name: "negative-start", v: ascii, start: -1, end: 2},
		{name: "end-before-start", v: ascii, start: 3, end: 1},
		{name: "end-past-length", v: ascii, start: 0, end: 5},
	}

	for _, tc := range cases {
		_, err := tc.v.Slice(tc.start, tc.end)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		var be *BoundaryError
		if !errors.As(err, &be) {
			t.Fatalf("%s: error type %T, want *BoundaryError", tc.name, err)
		}
		if be.Start != tc.start || be.End != tc.end {
			t.Fatalf("%s: error bounds (%d,%d), want (%d,%d)", tc.name, be.Start, be.End, tc.start, tc.end)
		}
	}
}

func TestView_Search(t *testing.T) {
	v := MustView("I like C++. I use C++.")

	cases := []struct {
		name     string
		needle   string
		contains bool
		index    int
	}{
		{name: "present", needle: "C++", contains: true, index: 7},
		{name: "absent", needle: "Rust", contains: false, index: -1},
		{name: "empty-needle", needle: "", contains: true, index: 0},
		{name: "multibyte", needle: "नम", contains: false, index: -1},
	}

	for _, tc := range cases {
		n := MustView(tc.needle)
		if got := v.Contains(n); got != tc.contains {
			t.Fatalf("%s: Contains=%v, want %v", tc.name, got, tc.contains)
		}
		if got := v.Index(n); got != tc.index {
			t.Fatalf("%s: Index=%d, want %d", tc.name, got, tc.index)
		}
	}

	if !v.HasPrefix(MustView("I like")) {
		t.Fatalf("HasPrefix(%q) should hold", "I like")
	}
	if v.HasPrefix(MustView("like")) {
		t.Fatalf("HasPrefix(%q) should not hold", "like")
	}
	if !v.HasSuffix(MustView("C++.")) {
		t.Fatalf("HasSuffix(%q) should hold", "C++.")
	}
	if v.HasSuffix(MustView("C++")) {
		t.Fatalf("HasSuffix(%q) should not hold", "C++")
	}
}

func TestView_Trim(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "both-sides", in: "  Rust is awesome!  ", want: "Rust is awesome!"},
		{name: "nothing-to-trim", in: "Rust", want: "Rust"},
		{name: "all-whitespace", in: " \t\n ", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "unicode-space", in: "　abc　", want: "abc"},
		{name: "inner-space-kept", in: "\ta b\n", want: "a b"},
	}

	for _, tc := range cases {
		v := MustView(tc.in)
		got := v.Trim()
		if got.String() != tc.want {
			t.Fatalf("%s: Trim=%q, want %q", tc.name, got.String(), tc.want)
		}

		// Trim is idempotent.
		if again := got.Trim(); !again.Equal(got) {
			t.Fatalf("%s: Trim(Trim)=%q, want %q", tc.name, again.String(), got.String())
		}
	}
}

func TestView_Trim_SharesBufferStorage(t *testing.T) {
	b, err := FromString(" Rust is awesome! ")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}

	before := b.reallocs
	trimmed := b.AsView().Trim()
	if trimmed.String() != "Rust is awesome!" {
		t.Fatalf("Trim=%q", trimmed.String())
	}
	if b.reallocs != before {
		t.Fatalf("Trim must not touch Buffer storage")
	}
	if trimmed.owner != b {
		t.Fatalf("trimmed view should still borrow from the buffer")
	}
}

func TestView_StaleBorrowPanics(t *testing.T) {
	b, err := FromString("hi")
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	v := b.AsView()
	b.Push(scalar.MustFromRune('!'))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on stale View use")
		}
	}()
	_ = v.Len()
}
