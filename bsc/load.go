// Public domain.

package bsc

import (
	"bufio"
	"cmp"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slices"
)

// Load reads all catalog records from r and returns them brightest first.
//
// Records without a valid magnitude have no place in the order and are
// dropped; their count is returned in dropped.  Records of equal magnitude
// keep their catalog order.  Read errors are returned as is.
func Load(r io.Reader) (recs []Record, dropped int, err error) {
	type keyed struct {
		mag float64
		rec Record
	}
	var ks []keyed
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 512), 64*1024)
	for sc.Scan() {
		rec := Record(strings.TrimRight(sc.Text(), "\r"))
		mag := rec.Float(colMag0, colMag1)
		if !mag.Valid {
			// novae, galaxies, and the like
			dropped++
			continue
		}
		ks = append(ks, keyed{mag.V, rec})
	}
	if err = sc.Err(); err != nil {
		return nil, 0, err
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		return cmp.Compare(a.mag, b.mag)
	})
	recs = make([]Record, len(ks))
	for i, k := range ks {
		recs[i] = k.rec
	}
	return recs, dropped, nil
}

// LoadFile opens and loads the catalog file fn.
func LoadFile(fn string) (recs []Record, dropped int, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return Load(f)
}
