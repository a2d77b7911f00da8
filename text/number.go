package text

import (
	"strconv"

	"github.com/juju/errors"
)

// Numeric conversions bridging Views and numbers. The grammar is entirely
// strconv's; this package only adds the View plumbing and error context.
// Malformed input is reported to the caller, never panicked on.

// ParseInt parses the View as a base-10 signed integer.
func ParseInt(v View) (int64, error) {
	s := v.String()
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Annotatef(err, "parsing %q as integer", s)
	}
	return n, nil
}

// ParseFloat parses the View as a floating-point number.
func ParseFloat(v View) (float64, error) {
	s := v.String()
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Annotatef(err, "parsing %q as float", s)
	}
	return f, nil
}

// FormatInt returns a Buffer holding the base-10 text of n.
func FormatInt(n int64) *Buffer {
	return &Buffer{data: strconv.AppendInt(nil, n, 10)}
}

// FormatFloat returns a Buffer holding the shortest text that re-parses to
// f exactly.
func FormatFloat(f float64) *Buffer {
	return &Buffer{data: strconv.AppendFloat(nil, f, 'g', -1, 64)}
}
