// Public domain.

package qppatch_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkreidl/bsc2java/internal/qppatch"
)

const generated = `
private static void initializeStars_0000_0099()
{
BRIGHT_STAR_NUMBER[0] = 2491;
QP[0] = new float[]{8.693e+00f, 1.77e+00f, -2.92e-01f, -8.00e+00f, -2.68e-06f, -5.84e-06f};
BRIGHT_STAR_NUMBER[1] = 2326;
  QP[1] = new float[]{Float.NaN, 1.68e+00f, -9.18e-01f, 2.05e+01f, 9.70e-08f, 1.14e-07f};
QPX[1] = 0;
// QP[0] in a comment
}`

var repl = []string{"A", "B"}

func TestPatch(t *testing.T) {
	var out bytes.Buffer
	n, err := qppatch.Patch(&out, strings.NewReader(generated), repl, "QP")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatal("replaced", n)
	}
	want := strings.Replace(generated,
		"QP[0] = new float[]{8.693e+00f, 1.77e+00f, -2.92e-01f, -8.00e+00f, -2.68e-06f, -5.84e-06f}", "A", 1)
	want = strings.Replace(want,
		"  QP[1] = new float[]{Float.NaN, 1.68e+00f, -9.18e-01f, 2.05e+01f, 9.70e-08f, 1.14e-07f}", "B", 1)
	want = strings.Replace(want, "A;\n", "A\n", 1)
	want = strings.Replace(want, "B;\n", "B\n", 1)
	if got := out.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPatchVariable(t *testing.T) {
	var out bytes.Buffer
	n, err := qppatch.Patch(&out, strings.NewReader(generated), []string{"x", "y"}, "BRIGHT_STAR_NUMBER")
	if err != nil || n != 2 {
		t.Fatal(n, err)
	}
	if strings.Contains(out.String(), "2491") || !strings.Contains(out.String(), "\nx\n") {
		t.Fatal(out.String())
	}
}

func TestPatchRange(t *testing.T) {
	var out bytes.Buffer
	_, err := qppatch.Patch(&out, strings.NewReader(generated), repl[:1], "QP")
	if err == nil || !strings.Contains(err.Error(), "line 7") {
		t.Fatal("expected error naming line 7:", err)
	}
}

func TestReadLines(t *testing.T) {
	lines, err := qppatch.ReadLines(strings.NewReader("a\r\nb\n\nc"))
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprintf("%q", lines) != `["a" "b" "" "c"]` {
		t.Fatalf("%q", lines)
	}
	fn := filepath.Join(t.TempDir(), "pos")
	if err := os.WriteFile(fn, []byte("p0\np1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if lines, err = qppatch.ReadLinesFile(fn); err != nil || len(lines) != 2 {
		t.Fatal(lines, err)
	}
}

func ExamplePatch() {
	src := "MAG[0] = 1.0f;\n    QP[1] = old;\n"
	qppatch.Patch(os.Stdout, strings.NewReader(src), []string{"zero", "one"}, "QP")
	// Output:
	// MAG[0] = 1.0f;
	// one
}
