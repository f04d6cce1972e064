// Public domain.

package bscprog

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap/zaptest"

	"github.com/mkreidl/bsc2java/internal/bsctest"
	"github.com/mkreidl/bsc2java/internal/config"
	"github.com/mkreidl/bsc2java/internal/diag"
)

func writeFile(t *testing.T, fn, data string) {
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, fn string) string {
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

// testDir writes a small catalog and name files into a new directory:
// Sirius, a fainter star, one without magnitude, one with a bad RA.
func testDir(t *testing.T) string {
	dir := t.TempDir()
	badRA := bsctest.Sirius.With(3, " 3.00")
	badRA.RA = "xx0000.0"
	writeFile(t, filepath.Join(dir, config.CatalogFile), bsctest.Catalog(
		bsctest.Sirius.With(2, " 2.50"),
		bsctest.Sirius.With(4, "     "),
		badRA,
		bsctest.Sirius,
	))
	writeFile(t, filepath.Join(dir, config.NamesFile), "2491  Alhabor\n")
	writeFile(t, filepath.Join(dir, config.IAUNamesFile), "Sirius HR 2491 CMa\n")
	return dir
}

func TestRun(t *testing.T) {
	dir := testDir(t)
	c := config.Default()
	c.Path = dir
	c.Arrow = filepath.Join(dir, "stars.arrow")
	c.Metrics = filepath.Join(dir, "bsc2java.prom")
	st := diag.NewStats()
	res, err := Run(&c, zaptest.NewLogger(t), st)
	if err != nil {
		t.Fatal(err)
	}
	want := Result{Read: 4, Dropped: 1, Skipped: 1, Emitted: 2, Batches: 1}
	if res != want {
		t.Fatalf("got %+v, want %+v", res, want)
	}
	for _, tc := range []struct {
		name      string
		got, want float64
	}{
		{"read", testutil.ToFloat64(st.Read), 4},
		{"dropped", testutil.ToFloat64(st.Dropped), 1},
		{"skipped", testutil.ToFloat64(st.Skipped), 1},
		{"emitted", testutil.ToFloat64(st.Emitted), 2},
		{"batches", testutil.ToFloat64(st.Batches), 1},
		{"proper names", testutil.ToFloat64(st.ProperNames), 1},
		{"iau names", testutil.ToFloat64(st.IAUNames), 1},
	} {
		if tc.got != tc.want {
			t.Errorf("%s: %g, want %g", tc.name, tc.got, tc.want)
		}
	}

	java := readFile(t, filepath.Join(dir, config.OutputFile))
	for _, s := range []string{
		"BRIGHT_STAR_NUMBER[0] = 2491;\nFLAMSTEED_BAYER[0] = \"Alhabor\";\nIAU_NAME[0] = \"Sirius\";\n",
		"BRIGHT_STAR_NUMBER[1] = 2;\nFLAMSTEED_BAYER[1] = \"9Alp CMa\";\nMAG[1] = 2.5f;\n",
		"\nprivate static void initializeStars()\n{\ninitializeStars_0000_0099();\n}\n",
	} {
		if !strings.Contains(java, s) {
			t.Fatalf("missing %q in\n%s", s, java)
		}
	}
	if strings.Contains(java, "= 3;") || strings.Contains(java, "= 4;") {
		t.Fatal("skipped record emitted")
	}

	r, err := ipc.NewFileReader(bytes.NewReader([]byte(readFile(t, c.Arrow))))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	rec, err := r.Record(0)
	if err != nil {
		t.Fatal(err)
	}
	if rec.NumRows() != 2 {
		t.Fatal("arrow rows", rec.NumRows())
	}

	if prom := readFile(t, c.Metrics); !strings.Contains(prom, "bsc2java_entries_emitted_total 2\n") {
		t.Fatal(prom)
	}
}

func TestRunMissingNames(t *testing.T) {
	dir := testDir(t)
	c := config.Default()
	c.Path = dir
	c.IAUNames = filepath.Join(dir, "nope.txt")
	_, err := Run(&c, zaptest.NewLogger(t), diag.NewStats())
	if err == nil || !strings.Contains(err.Error(), "nope.txt") {
		t.Fatal("error should name the file:", err)
	}
	if _, err := os.Stat(filepath.Join(dir, config.OutputFile)); !os.IsNotExist(err) {
		t.Fatal("output written after failure")
	}
}

func TestRunBadOutputDir(t *testing.T) {
	c := config.Default()
	c.Path = testDir(t)
	c.Output = filepath.Join(c.Path, "no", "such", "out.java")
	if _, err := Run(&c, zaptest.NewLogger(t), diag.NewStats()); err == nil {
		t.Fatal("expected error")
	}
}

func TestCommandLine(t *testing.T) {
	dir := t.TempDir()
	cfn := filepath.Join(dir, "bsc2java.yaml")
	writeFile(t, cfn, "path: fromfile\noutput: file.java\nbatch_size: 7\n")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cl, err := parseCommandLine(fs, []string{"-c", cfn, "-p", "fromflag", "-n", "my.names"})
	if err != nil {
		t.Fatal(err)
	}
	c, err := cl.config()
	if err != nil {
		t.Fatal(err)
	}
	if c.Path != "fromflag" || c.BatchSize != 7 {
		t.Fatalf("%+v", c)
	}
	for _, tc := range []struct{ got, want string }{
		{c.OutputFile(), "file.java"},
		{c.NamesFile(), "my.names"},
		{c.CatalogFile(), filepath.Join("fromflag", "catalog")},
	} {
		if tc.got != tc.want {
			t.Errorf("got %s, want %s", tc.got, tc.want)
		}
	}

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := parseCommandLine(fs, []string{"extra"}); err == nil {
		t.Fatal("positional argument accepted")
	}
	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := parseCommandLine(fs, []string{"-h"}); err != flag.ErrHelp {
		t.Fatal(err)
	}
}
