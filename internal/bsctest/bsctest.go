// Public domain.

// Package bsctest builds synthetic Bright Star Catalogue lines for tests.
package bsctest

import (
	"fmt"
	"strings"
)

// LineLen is the length of a full catalog record.
const LineLen = 197

// Star holds the raw column text of a catalog record.  Fields are copied
// into place as given; an empty field leaves its columns blank.
type Star struct {
	HR    int
	Name  string // 10 columns
	RA    string // hhmmss.s
	Dec   string // sddmmss
	Mag   string // 5 columns
	Sp    string
	PMRA  string // 6 columns
	PMDec string // 6 columns
	Par   string // 5 columns
	RV    string // 4 columns
}

// Sirius is a complete, valid record.
var Sirius = Star{
	HR:    2491,
	Name:  "  9Alp CMa",
	RA:    "064508.9",
	Dec:   "-164258",
	Mag:   "-1.46",
	Sp:    "A",
	PMRA:  "-0.553",
	PMDec: "-1.205",
	Par:   "+.375",
	RV:    "  -8",
}

// Line renders s as a full length record.
func (s Star) Line() string {
	b := []byte(strings.Repeat(" ", LineLen))
	put := func(col int, v string) { copy(b[col:], v) }
	put(0, fmt.Sprintf("%4d", s.HR))
	put(4, s.Name)
	put(75, s.RA)
	put(83, s.Dec)
	put(102, s.Mag)
	put(129, s.Sp)
	put(148, s.PMRA)
	put(154, s.PMDec)
	put(161, s.Par)
	put(166, s.RV)
	return string(b)
}

// With returns a copy of s with HR number hr and magnitude mag.
func (s Star) With(hr int, mag string) Star {
	s.HR = hr
	s.Mag = mag
	return s
}

// Catalog joins the lines of stars, newline terminated.
func Catalog(stars ...Star) string {
	var sb strings.Builder
	for _, s := range stars {
		sb.WriteString(s.Line())
		sb.WriteByte('\n')
	}
	return sb.String()
}
