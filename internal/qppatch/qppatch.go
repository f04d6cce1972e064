// Public domain.

// Package qppatch substitutes array element assignments in generated code.
//
// A line assigning element i of the patched array, like
//
//	QP[17] = new float[]{...};
//
// is replaced by line i of a replacement list.  All other lines are copied
// unchanged.
package qppatch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// DefaultVariable is the array patched when none is given.
const DefaultVariable = "QP"

// Matcher returns the expression matching assignment lines of variable.
// Submatch 1 is the element index.
func Matcher(variable string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*` + regexp.QuoteMeta(variable) + `\[(\d+)\]`)
}

// Patch copies src to dst, replacing assignment lines of variable with the
// repl line of the same index.  Replacement lines are written newline
// terminated.  It returns the number of lines replaced.
//
// An index with no replacement line is an error.
func Patch(dst io.Writer, src io.Reader, repl []string, variable string) (n int, err error) {
	rx := Matcher(variable)
	br := bufio.NewReader(src)
	bw := bufio.NewWriter(dst)
	for ln := 1; ; ln++ {
		line, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return n, rerr
		}
		if m := rx.FindStringSubmatch(line); m != nil {
			i, err := strconv.Atoi(m[1])
			if err != nil || i >= len(repl) {
				return n, fmt.Errorf("line %d: %s[%s]: %d replacement lines",
					ln, variable, m[1], len(repl))
			}
			line = repl[i] + "\n"
			n++
		}
		if _, err := bw.WriteString(line); err != nil {
			return n, err
		}
		if rerr == io.EOF {
			break
		}
	}
	return n, bw.Flush()
}

// ReadLines reads replacement lines, without line terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

// ReadLinesFile reads replacement lines from file fn.
func ReadLinesFile(fn string) ([]string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return lines, nil
}
