// Public domain.

// Package bscprog is the bsc2java command.
package bscprog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/soniakeys/exit"
	"go.uber.org/zap"

	"github.com/mkreidl/bsc2java/bsc"
	"github.com/mkreidl/bsc2java/internal/config"
	"github.com/mkreidl/bsc2java/internal/diag"
	"github.com/mkreidl/bsc2java/internal/javagen"
	"github.com/mkreidl/bsc2java/internal/outfile"
	"github.com/mkreidl/bsc2java/internal/startable"
)

const versionString = "bsc2java version 1.0 Go source."
const copyrightString = "Public domain."

func Main() {
	defer exit.Handler()

	fs := flag.NewFlagSet("bsc2java", flag.ContinueOnError)
	cl, err := parseCommandLine(fs, os.Args[1:])
	switch {
	case err == flag.ErrHelp:
		printHelp(os.Stdout)
		return
	case err != nil:
		os.Exit(1) // usage already shown
	case cl.v:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		return
	}
	cfg, err := cl.config()
	if err != nil {
		exit.Log(err)
	}
	lg, err := diag.NewLogger(cfg.Log)
	if err != nil {
		exit.Log(err)
	}
	defer lg.Sync()
	if _, err := Run(&cfg, lg, diag.NewStats()); err != nil {
		exit.Log(err)
	}
}

type commandLine struct {
	c string // config file
	p string // default path
	b string // catalog
	n string // names
	i string // IAU names
	o string // output
	v bool   // -v option
}

func parseCommandLine(fs *flag.FlagSet, args []string) (*commandLine, error) {
	var cl commandLine
	fs.StringVar(&cl.c, "c", "", "")
	fs.StringVar(&cl.p, "p", "", "")
	fs.StringVar(&cl.b, "b", "", "")
	fs.StringVar(&cl.n, "n", "", "")
	fs.StringVar(&cl.i, "i", "", "")
	fs.StringVar(&cl.o, "o", "", "")
	fs.BoolVar(&cl.v, "v", false, "")
	fs.Usage = func() {
		fs.Output().Write([]byte(`
Usage: bsc2java [options]     generate Java star table initializers
       bsc2java -h            display help
       bsc2java -v            display version and copyright

Options:
       -c <config-file>
       -p <path>
       -b <catalog-file>
       -n <names-file>
       -i <IAU-names-file>
       -o <output-file>
`))
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return nil, errors.New("unexpected arguments")
	}
	return &cl, nil
}

// config loads the config file and applies command line overrides.
func (cl *commandLine) config() (config.Config, error) {
	c, err := config.Load(cl.c)
	if err != nil {
		return c, err
	}
	set := func(dst *string, v string) {
		if v > "" {
			*dst = v
		}
	}
	set(&c.Path, cl.p)
	set(&c.Catalog, cl.b)
	set(&c.Names, cl.n)
	set(&c.IAUNames, cl.i)
	set(&c.Output, cl.o)
	return c, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, `
Bsc2java converts the Yale Bright Star Catalogue into Java static
initializer code for a star table, brightest stars first.  Proper names
and IAU names are merged in from two name files.

Default files, in the -p directory:
   `+config.CatalogFile+`
   `+config.NamesFile+`
   `+config.IAUNamesFile+`
   `+config.OutputFile+`

Config file keys (YAML):
   path catalog names iau_names output arrow metrics
   atomic iau_marker batch_size naming log

For full documentation:
   go doc github.com/mkreidl/bsc2java`)
}

// Result counts catalog records by outcome.
type Result struct {
	Read    int // lines in the catalog
	Dropped int // no magnitude
	Skipped int // RecordError
	Emitted int
	Batches int
}

// Run reads the name files and the catalog named by c and writes the
// generated code, plus the Arrow table and metrics file if configured.
//
// Counts are added to st.  Output is committed only after everything has
// been written.
func Run(c *config.Config, lg *zap.Logger, st *diag.Stats) (res Result, err error) {
	fn := c.NamesFile()
	proper, err := bsc.ReadNamesFile(fn)
	if err != nil {
		return res, err
	}
	st.ProperNames.Set(float64(len(proper)))
	lg.Info("read names", zap.String("file", fn), zap.Int("names", len(proper)))

	fn = c.IAUNamesFile()
	iau, err := bsc.ReadIAUNamesFile(fn, c.IAUMarker)
	if err != nil {
		return res, err
	}
	st.IAUNames.Set(float64(len(iau)))
	lg.Info("read IAU names", zap.String("file", fn), zap.Int("names", len(iau)))

	fn = c.CatalogFile()
	recs, dropped, err := bsc.LoadFile(fn)
	if err != nil {
		return res, fmt.Errorf("catalog %s: %w", fn, err)
	}
	res.Read = len(recs) + dropped
	res.Dropped = dropped
	st.Read.Add(float64(res.Read))
	st.Dropped.Add(float64(dropped))
	lg.Info("read catalog", zap.String("file", fn),
		zap.Int("records", res.Read), zap.Int("dropped", dropped))

	var tab *startable.Table
	if c.Arrow > "" {
		tab = startable.New(nil)
		defer tab.Release()
	}

	out, err := outfile.Create(c.OutputFile(), c.Atomic)
	if err != nil {
		return res, err
	}
	jw := javagen.NewWriter(out, c.Options())
	for _, r := range recs {
		e, err := bsc.ParseEntry(r)
		var re *bsc.RecordError
		if errors.As(err, &re) {
			res.Skipped++
			st.Skipped.Inc()
			lg.Debug("skipped record",
				zap.String("hr", r.Field(0, 4)), zap.Error(re))
			continue
		}
		if err != nil {
			out.Abort()
			return res, err
		}
		e.Attach(proper, iau)
		if tab != nil {
			tab.Append(jw.Count(), e)
		}
		if err := jw.Write(e); err != nil {
			out.Abort()
			return res, fmt.Errorf("writing %s: %w", out.Name(), err)
		}
		lg.Debug("entry", zap.Int("count", jw.Count()-1), zap.Stringer("star", e))
	}
	if err := jw.Close(); err != nil {
		out.Abort()
		return res, fmt.Errorf("writing %s: %w", out.Name(), err)
	}
	if err := out.Commit(); err != nil {
		return res, fmt.Errorf("writing %s: %w", out.Name(), err)
	}
	res.Emitted = jw.Count()
	res.Batches = jw.Batches()
	st.Emitted.Add(float64(res.Emitted))
	st.Batches.Add(float64(res.Batches))
	lg.Info("wrote star table", zap.String("file", out.Name()),
		zap.Int("entries", res.Emitted), zap.Int("batches", res.Batches),
		zap.Int("skipped", res.Skipped))

	if tab != nil {
		if err := writeTable(tab, c.Arrow, c.Atomic); err != nil {
			return res, err
		}
		lg.Info("wrote arrow table", zap.String("file", c.Arrow),
			zap.Int("rows", res.Emitted))
	}
	if c.Metrics > "" {
		if err := st.WriteTextfile(c.Metrics); err != nil {
			return res, fmt.Errorf("metrics %s: %w", c.Metrics, err)
		}
	}
	return res, nil
}

func writeTable(tab *startable.Table, fn string, atomic bool) error {
	f, err := outfile.Create(fn, atomic)
	if err != nil {
		return err
	}
	if err := tab.Encode(f); err != nil {
		f.Abort()
		return fmt.Errorf("arrow table %s: %w", fn, err)
	}
	if err := f.Commit(); err != nil {
		return fmt.Errorf("arrow table %s: %w", fn, err)
	}
	return nil
}
