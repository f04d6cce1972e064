// Public domain.

package bsc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// NameTable maps HR numbers to names.
type NameTable map[int]string

// IAUMarker is the catalog column value that identifies rows of the IAU
// star names list carrying an HR number.
const IAUMarker = "HR"

// ReadNames reads a names file.
//
// Each line holds a 4 column HR number, and starting in column 6, a name
// which runs to the end of the line.  Later lines replace earlier lines
// for the same HR number.  Any line without a valid HR number is an error.
func ReadNames(r io.Reader) (NameTable, error) {
	t := NameTable{}
	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		line := Record(strings.TrimRight(sc.Text(), "\r"))
		hr, err := line.Int(0, 4)
		if err != nil {
			return nil, fmt.Errorf("names line %d: invalid HR number (%q): %w",
				ln, line.Field(0, 4), err)
		}
		t[hr] = strings.TrimSpace(line.Field(6, len(line)))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadIAUNames reads a white space separated IAU star names list.
//
// Lines where the second field equals marker map the HR number in the
// third field to the name in the first.  Other lines are skipped.  A line
// with fewer than two fields, or a marked line without a valid HR number,
// is an error.
func ReadIAUNames(r io.Reader, marker string) (NameTable, error) {
	t := NameTable{}
	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		f := strings.Fields(sc.Text())
		if len(f) < 2 {
			return nil, fmt.Errorf("IAU names line %d: %d fields", ln, len(f))
		}
		if f[1] != marker {
			continue
		}
		if len(f) < 3 {
			return nil, fmt.Errorf("IAU names line %d: no %s number", ln, marker)
		}
		hr, err := strconv.Atoi(f[2])
		if err != nil {
			return nil, fmt.Errorf("IAU names line %d: %w", ln, err)
		}
		t[hr] = f[0]
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadNamesFile reads the names file fn.
func ReadNamesFile(fn string) (NameTable, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadNames(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return t, nil
}

// ReadIAUNamesFile reads the IAU star names list fn.
func ReadIAUNamesFile(fn, marker string) (NameTable, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadIAUNames(f, marker)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return t, nil
}
