// Public domain.

// Package bsc reads the Yale Bright Star Catalogue, 5th revised edition,
// and its auxiliary name tables.
//
// Catalog lines are fixed-width records.  Only the columns listed below are
// used.  A numeric field that does not parse is missing; the record is
// still usable.  Only the HR number, the J2000 position, and the visual
// magnitude are required of a record.
package bsc

import (
	"errors"
	"fmt"

	"github.com/soniakeys/coord"
	sexa "github.com/soniakeys/sexagesimal"
)

// Catalog columns, 0-based, half-open.
const (
	colHR0, colHR1     = 0, 4
	colName0, colName1 = 4, 14
	colRAh0, colRAh1   = 75, 77
	colRAm0, colRAm1   = 77, 79
	colRAs0, colRAs1   = 79, 83
	colDecSign         = 83
	colDecd0, colDecd1 = 84, 86
	colDecm0, colDecm1 = 86, 88
	colDecs0, colDecs1 = 88, 90
	colMag0, colMag1   = 102, 107
	colSpType          = 129
	colPMRA0, colPMRA1 = 148, 154
	colPMDe0, colPMDe1 = 154, 160
	colPar0, colPar1   = 161, 166
	colRV0, colRV1     = 166, 170
)

// Entry holds the values of one catalog record, converted to the units
// of the star table.
type Entry struct {
	HR          int    // catalog index
	Designation string // Flamsteed/Bayer, from the catalog
	ProperName  string // see Attach
	IAUName     string

	Mag      float64
	Parallax Float // arc seconds
	Distance Float // light years
	Pos      coord.Equa
	RV       Float // km/s
	PMRA     Float // radians/year, not corrected for cos(Dec)
	PMDec    Float // radians/year
	SpType   byte
}

// RecordError reports a record that cannot produce an Entry.
type RecordError struct {
	Field string
	Text  string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("invalid %s (%q): %v", e.Field, e.Text, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

var errMissing = errors.New("missing value")

// ParseEntry parses a catalog record.
//
// An invalid HR number, position, or magnitude is returned as a
// *RecordError.  Any other field that does not parse is left missing.
func ParseEntry(r Record) (*Entry, error) {
	hr, err := r.Int(colHR0, colHR1)
	if err != nil {
		return nil, &RecordError{"HR number", r.Field(colHR0, colHR1), err}
	}

	var rah, ram int
	var ras Float
	rah, err = r.Int(colRAh0, colRAh1)
	if err == nil {
		ram, err = r.Int(colRAm0, colRAm1)
		if err == nil {
			if ras = r.Float(colRAs0, colRAs1); !ras.Valid {
				err = errMissing
			}
		}
	}
	if err != nil {
		return nil, &RecordError{"RA", r.Field(colRAh0, colRAs1), err}
	}

	decg := r.Byte(colDecSign) // minus sign
	var decd, decm int
	var decs Float
	decd, err = r.Int(colDecd0, colDecd1)
	if err == nil {
		decm, err = r.Int(colDecm0, colDecm1)
		if err == nil {
			if decs = r.Float(colDecs0, colDecs1); !decs.Valid {
				err = errMissing
			}
		}
	}
	if err != nil {
		return nil, &RecordError{"Dec", r.Field(colDecSign, colDecs1), err}
	}

	mag := r.Float(colMag0, colMag1)
	if !mag.Valid {
		return nil, &RecordError{"magnitude", r.Field(colMag0, colMag1), errMissing}
	}

	e := &Entry{
		HR:          hr,
		Designation: r.Text(colName0, colName1),
		Mag:         mag.V,
		Pos: coord.Equa{
			RA:  NewRA(rah, ram, ras.V),
			Dec: NewDec(decg, decd, decm, decs.V),
		},
		RV:     r.Float(colRV0, colRV1),
		PMRA:   ArcsecRate(r.Float(colPMRA0, colPMRA1)),
		PMDec:  ArcsecRate(r.Float(colPMDe0, colPMDe1)),
		SpType: r.Byte(colSpType),
	}
	e.ProperName = e.Designation
	// zero parallax gives no distance and is dropped along with it.
	e.Parallax = r.Float(colPar0, colPar1)
	if e.Distance = Distance(e.Parallax); !e.Distance.Valid {
		e.Parallax = Float{}
	}
	return e, nil
}

// Attach sets the name fields of e from the two name tables.
//
// A proper name from the names table replaces the catalog designation.
// Either table may be nil.
func (e *Entry) Attach(proper, iau NameTable) {
	if n, ok := proper[e.HR]; ok && n != "" {
		e.ProperName = n
	}
	if n, ok := iau[e.HR]; ok {
		e.IAUName = n
	}
}

// String formats the entry for diagnostics.
func (e *Entry) String() string {
	return fmt.Sprintf("HR %d %q V=%.2f %.1s %.0s",
		e.HR, e.ProperName, e.Mag,
		sexa.FmtRA(e.Pos.RA), sexa.FmtAngle(e.Pos.Dec))
}

// RADec returns the position in radians.
func (e *Entry) RADec() (ra, dec float64) {
	return e.Pos.RA.Rad(), e.Pos.Dec.Rad()
}
