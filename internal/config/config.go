// Public domain.

// Package config holds bsc2java settings.
//
// Settings come from defaults, then an optional YAML file, then command
// line flags.  Input and output file names that are not set resolve to
// default names in the Path directory.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/mkreidl/bsc2java/bsc"
	"github.com/mkreidl/bsc2java/internal/diag"
	"github.com/mkreidl/bsc2java/internal/javagen"
)

// Default file names, relative to Path.
const (
	CatalogFile  = "catalog"
	NamesFile    = "names.dat"
	IAUNamesFile = "IAU_starnames_2017.txt"
	OutputFile   = "catalog.java"
)

// Config is the complete set of settings for a run.
type Config struct {
	Path     string `yaml:"path"` // directory for default file names
	Catalog  string `yaml:"catalog"`
	Names    string `yaml:"names"`
	IAUNames string `yaml:"iau_names"`
	Output   string `yaml:"output"`
	Arrow    string `yaml:"arrow"`   // optional Arrow IPC table
	Metrics  string `yaml:"metrics"` // optional prometheus textfile

	Atomic    bool           `yaml:"atomic"`
	IAUMarker string         `yaml:"iau_marker"`
	BatchSize int            `yaml:"batch_size"`
	Naming    javagen.Naming `yaml:"naming"`
	Log       diag.LogConfig `yaml:"log"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		Atomic:    true,
		IAUMarker: bsc.IAUMarker,
		BatchSize: javagen.DefaultBatchSize,
		Naming:    javagen.DefaultNaming,
	}
}

// Decode reads YAML settings over the defaults.  Unknown keys are errors.
// An empty document leaves the defaults.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, err
	}
	return c, c.Validate()
}

// Load reads settings from the YAML file fn.  An empty fn gives the
// defaults.
func Load(fn string) (Config, error) {
	if fn == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	c, err := Decode(bytes.NewReader(b))
	if err != nil {
		return c, fmt.Errorf("config file %s: %w", fn, err)
	}
	return c, nil
}

var javaIdent = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate checks settings that would otherwise fail late or produce
// code that doesn't compile.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size %d: must be positive", c.BatchSize)
	}
	if c.IAUMarker == "" {
		return errors.New("iau_marker: empty")
	}
	n := c.Naming
	for _, id := range []struct{ key, v string }{
		{"index", n.Index},
		{"designation", n.Designation},
		{"iau_name", n.IAUName},
		{"mag", n.Mag},
		{"parallax", n.Parallax},
		{"phase", n.Phase},
		{"spectral_type", n.SpectralType},
		{"method", n.Method},
	} {
		if id.v != "" && !javaIdent.MatchString(id.v) {
			return fmt.Errorf("naming.%s %q: not a Java identifier", id.key, id.v)
		}
	}
	return c.Log.Validate()
}

// resolve returns fnSpec if set, otherwise fnDefault in the Path
// directory.
func (c *Config) resolve(fnSpec, fnDefault string) string {
	if fnSpec > "" {
		return fnSpec
	}
	return filepath.Join(c.Path, fnDefault)
}

func (c *Config) CatalogFile() string  { return c.resolve(c.Catalog, CatalogFile) }
func (c *Config) NamesFile() string    { return c.resolve(c.Names, NamesFile) }
func (c *Config) IAUNamesFile() string { return c.resolve(c.IAUNames, IAUNamesFile) }
func (c *Config) OutputFile() string   { return c.resolve(c.Output, OutputFile) }

// Options returns the code generator options.
func (c *Config) Options() javagen.Options {
	return javagen.Options{Naming: c.Naming, BatchSize: c.BatchSize}
}
