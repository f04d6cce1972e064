// Public domain.

// Package javagen writes star table entries as Java static initializer
// code.
//
// Output consists of one private static method per batch of entries,
// followed by a method calling each batch method in order.  Java limits
// method size, which is why the statements are split up at all.
package javagen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mkreidl/bsc2java/bsc"
)

// Naming holds the Java identifiers used in generated code.
type Naming struct {
	Index        string `yaml:"index"`
	Designation  string `yaml:"designation"`
	IAUName      string `yaml:"iau_name"`
	Mag          string `yaml:"mag"`
	Parallax     string `yaml:"parallax"`
	Phase        string `yaml:"phase"`
	SpectralType string `yaml:"spectral_type"`
	Method       string `yaml:"method"`
}

// DefaultNaming matches the star table arrays of the host application.
var DefaultNaming = Naming{
	Index:        "BRIGHT_STAR_NUMBER",
	Designation:  "FLAMSTEED_BAYER",
	IAUName:      "IAU_NAME",
	Mag:          "MAG",
	Parallax:     "PAR",
	Phase:        "QP",
	SpectralType: "SPECTRAL_TYPE",
	Method:       "initializeStars",
}

// DefaultBatchSize is the number of entries per batch method.
const DefaultBatchSize = 100

// Options configure a Writer.  Zero values select defaults.
type Options struct {
	Naming    Naming
	BatchSize int
}

// NaN is the literal written for missing values.
const NaN = "Float.NaN"

var errClosed = errors.New("javagen: write after close")

// Writer writes generated code.  Entries are numbered in the order written,
// starting at 0.
type Writer struct {
	w      *bufio.Writer
	n      Naming
	batch  int
	count  int
	closed bool
	err    error
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer, opt Options) *Writer {
	if opt.BatchSize <= 0 {
		opt.BatchSize = DefaultBatchSize
	}
	return &Writer{
		w:     bufio.NewWriter(w),
		n:     opt.Naming.withDefaults(),
		batch: opt.BatchSize,
	}
}

func (n Naming) withDefaults() Naming {
	def := func(s *string, d string) {
		if *s == "" {
			*s = d
		}
	}
	def(&n.Index, DefaultNaming.Index)
	def(&n.Designation, DefaultNaming.Designation)
	def(&n.IAUName, DefaultNaming.IAUName)
	def(&n.Mag, DefaultNaming.Mag)
	def(&n.Parallax, DefaultNaming.Parallax)
	def(&n.Phase, DefaultNaming.Phase)
	def(&n.SpectralType, DefaultNaming.SpectralType)
	def(&n.Method, DefaultNaming.Method)
	return n
}

func (w *Writer) printf(format string, a ...interface{}) {
	if w.err == nil {
		_, w.err = fmt.Fprintf(w.w, format, a...)
	}
}

// BatchMethod returns the name of the batch method holding entry c.
func (w *Writer) BatchMethod(c int) string {
	c -= c % w.batch
	return fmt.Sprintf("%s_%04d_%04d", w.n.Method, c, c+w.batch-1)
}

// Write writes the statements for e.
func (w *Writer) Write(e *bsc.Entry) error {
	if w.closed {
		return errClosed
	}
	c := w.count
	if c%w.batch == 0 {
		if c > 0 {
			w.printf("}\n")
		}
		w.printf("\nprivate static void %s()\n{\n", w.BatchMethod(c))
	}
	n := &w.n
	w.printf("%s[%d] = %d;\n", n.Index, c, e.HR)
	if e.ProperName != "" {
		w.printf("%s[%d] = %s;\n", n.Designation, c, String(e.ProperName))
	}
	if e.IAUName != "" {
		w.printf("%s[%d] = %s;\n", n.IAUName, c, String(e.IAUName))
	}
	w.printf("%s[%d] = %s;\n", n.Mag, c, Decimal(bsc.Some(e.Mag)))
	w.printf("%s[%d] = %s;\n", n.Parallax, c, Decimal(e.Parallax))
	ra, dec := e.RADec()
	w.printf("%s[%d] = new float[]{%s, %s, %s, %s, %s, %s};\n", n.Phase, c,
		Sci(e.Distance, 3),
		Sci(bsc.Some(ra), 2),
		Sci(bsc.Some(dec), 2),
		Sci(e.RV, 2),
		Sci(e.PMRA, 2),
		Sci(e.PMDec, 2))
	w.printf("%s[%d] = %s;\n", n.SpectralType, c, Char(e.SpType))
	w.count++
	return w.err
}

// Close ends the last batch method, writes the method that calls all
// batch methods, and flushes.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true
	if w.count > 0 {
		w.printf("}\n")
	}
	w.printf("\nprivate static void %s()\n{\n", w.n.Method)
	for c := 0; c < w.count; c += w.batch {
		w.printf("%s();\n", w.BatchMethod(c))
	}
	w.printf("}\n")
	if w.err == nil {
		w.err = w.w.Flush()
	}
	return w.err
}

// Count returns the number of entries written.
func (w *Writer) Count() int { return w.count }

// Batches returns the number of batch methods started.
func (w *Writer) Batches() int { return (w.count + w.batch - 1) / w.batch }

// Sci formats f as a float literal in scientific notation with prec
// digits after the decimal point.
func Sci(f bsc.Float, prec int) string {
	if !f.Valid {
		return NaN
	}
	return strconv.FormatFloat(f.V, 'e', prec, 64) + "f"
}

// Decimal formats f as a float literal with the fewest digits that read
// back exactly.
func Decimal(f bsc.Float) string {
	if !f.Valid {
		return NaN
	}
	s := strconv.FormatFloat(f.V, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "f"
}

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// String formats s as a Java string literal.
func String(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// Char formats b as a Java char literal.
func Char(b byte) string {
	switch b {
	case '\'', '\\':
		return `'\` + string(b) + `'`
	}
	return "'" + string(b) + "'"
}
