// Public domain.

package bsc

import (
	"math"
	"strconv"
	"strings"
)

// Record is a single line of the Bright Star Catalogue, line terminator
// removed.
//
// Column ranges passed to the accessors are 0-based and half-open.  Ranges
// that extend past the end of the line are clipped, so a short line yields
// empty fields rather than a panic.
type Record string

// Field returns columns lo through hi-1, clipped to the record length.
func (r Record) Field(lo, hi int) string {
	if hi > len(r) {
		hi = len(r)
	}
	if lo >= hi {
		return ""
	}
	return string(r[lo:hi])
}

// Byte returns the byte in column i, or a space if the record is shorter.
func (r Record) Byte(i int) byte {
	if i < 0 || i >= len(r) {
		return ' '
	}
	return r[i]
}

// Text returns the field with leading and trailing white space removed
// and internal runs of white space collapsed to single spaces.
func (r Record) Text(lo, hi int) string {
	return strings.Join(strings.Fields(r.Field(lo, hi)), " ")
}

// Int parses the trimmed field as a decimal integer.
func (r Record) Int(lo, hi int) (int, error) {
	return strconv.Atoi(strings.TrimSpace(r.Field(lo, hi)))
}

// Float parses the trimmed field as a floating point number.  Blank,
// non-numeric and non-finite fields come back missing.
func (r Record) Float(lo, hi int) Float {
	return ParseFloat(r.Field(lo, hi))
}

// Float is a numeric field value that may be missing.
//
// The zero value is missing.
type Float struct {
	V     float64
	Valid bool
}

// Some returns a valid Float holding v.
func Some(v float64) Float { return Float{V: v, Valid: true} }

// ParseFloat parses s, ignoring surrounding white space.
func ParseFloat(s string) Float {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Float{}
	}
	return Some(v)
}

// Map applies f to a valid value.  A missing value stays missing.
func (f Float) Map(fn func(float64) float64) Float {
	if !f.Valid {
		return f
	}
	return Some(fn(f.V))
}

// NaN returns the value, or math.NaN() if missing.
func (f Float) NaN() float64 {
	if !f.Valid {
		return math.NaN()
	}
	return f.V
}
