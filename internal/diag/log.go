// Public domain.

// Package diag sets up logging and run statistics for the generator.
package diag

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig configures NewLogger.  Zero values select info level console
// output to stderr.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
	Output string `yaml:"output"` // file name, stderr or stdout
}

// Validate checks level and format.
func (c LogConfig) Validate() error {
	if c.Level != "" {
		if _, err := zap.ParseAtomicLevel(c.Level); err != nil {
			return fmt.Errorf("log level: %w", err)
		}
	}
	switch c.Format {
	case "", "console", "json":
		return nil
	}
	return fmt.Errorf("log format %q: want console or json", c.Format)
}

// NewLogger builds a logger from c.  Every entry carries a "run" field
// unique to the logger.
func NewLogger(c LogConfig) (*zap.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Sampling = nil
	if c.Level != "" {
		zc.Level, _ = zap.ParseAtomicLevel(c.Level)
	}
	if c.Format == "json" {
		zc.Encoding = "json"
	} else {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if c.Output != "" {
		zc.OutputPaths = []string{c.Output}
	}
	zc.InitialFields = map[string]interface{}{"run": uuid.NewString()}
	return zc.Build()
}
