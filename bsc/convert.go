// Public domain.

package bsc

import "github.com/soniakeys/unit"

// LightYearsPerParsec is the conversion factor used by Distance.
const LightYearsPerParsec = 3.26

// NewRA converts hours, minutes, and seconds of time to a right ascension.
func NewRA(h, m int, s float64) unit.RA {
	return unit.NewRA(h, m, s)
}

// NewDec converts degrees, minutes, and seconds of arc to a declination.
// Sign '-' gives a negative result, any other byte a positive one.
func NewDec(sign byte, d, m int, s float64) unit.Angle {
	return unit.NewAngle(sign, d, m, s)
}

// ArcsecRate converts a rate in arc seconds to radians per the same time
// unit.
//
// It is used unchanged for both proper motion components.  In particular
// the RA component is not divided by cos(Dec).
func ArcsecRate(arcsec Float) Float {
	return arcsec.Map(func(s float64) float64 {
		return unit.AngleFromSec(s).Rad()
	})
}

// Distance converts a parallax in arc seconds to a distance in light years.
// A missing or zero parallax gives a missing distance.
func Distance(parallax Float) Float {
	if !parallax.Valid || parallax.V == 0 {
		return Float{}
	}
	return Some(LightYearsPerParsec / parallax.V)
}
