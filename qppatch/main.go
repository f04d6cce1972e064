// Public domain.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/soniakeys/exit"
	"go.uber.org/zap"

	"github.com/mkreidl/bsc2java/internal/diag"
	"github.com/mkreidl/bsc2java/internal/outfile"
	"github.com/mkreidl/bsc2java/internal/qppatch"
)

const versionString = "qppatch version 1.0"
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(
			"Usage: qppatch [options] <generated.java> <replacements>\n")
		flag.PrintDefaults()
		os.Stderr.WriteString(`
For full documentation:
   go doc github.com/mkreidl/bsc2java/qppatch
`)
	}
	variable := flag.String("var", qppatch.DefaultVariable, "array variable to patch")
	ofn := flag.String("o", "", "output file, default standard output")
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		return
	}
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	lg, err := diag.NewLogger(diag.LogConfig{})
	if err != nil {
		exit.Log(err)
	}
	defer lg.Sync()

	repl, err := qppatch.ReadLinesFile(flag.Arg(1))
	if err != nil {
		exit.Log(err)
	}
	src, err := os.Open(flag.Arg(0))
	if err != nil {
		exit.Log(err)
	}
	defer src.Close()

	var n int
	if *ofn == "" {
		n, err = qppatch.Patch(os.Stdout, src, repl, *variable)
	} else {
		n, err = patchFile(*ofn, src, repl, *variable)
	}
	if err != nil {
		exit.Log(fmt.Errorf("%s: %w", flag.Arg(0), err))
	}
	lg.Info("patched", zap.String("file", flag.Arg(0)),
		zap.String("variable", *variable), zap.Int("lines", n),
		zap.Int("replacements", len(repl)))
}

// patchFile writes the patched output to fn, replacing fn only on success.
func patchFile(fn string, src io.Reader, repl []string, variable string) (int, error) {
	f, err := outfile.Create(fn, true)
	if err != nil {
		return 0, err
	}
	n, err := qppatch.Patch(f, src, repl, variable)
	if err != nil {
		f.Abort()
		return n, err
	}
	return n, f.Commit()
}
