// Public domain.

// Package outfile writes output files that either appear complete or not
// at all.
//
// In atomic mode data goes to a temporary file in the destination
// directory which replaces the destination on Commit.  Otherwise the
// destination is truncated and written in place.
package outfile

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
)

const (
	permFile = 0o644
	bufSize  = 64 * 1024
)

var errDone = errors.New("outfile: already committed or aborted")

// File is an output file being written.
type File struct {
	*bufio.Writer
	f      *os.File
	dest   string
	atomic bool
	done   bool
}

// Create starts writing path.
func Create(path string, atomic bool) (*File, error) {
	if !atomic {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, permFile)
		if err != nil {
			return nil, err
		}
		return &File{Writer: bufio.NewWriterSize(f, bufSize), f: f, dest: path}, nil
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return nil, err
	}
	_ = os.Chmod(f.Name(), permFile)
	return &File{
		Writer: bufio.NewWriterSize(f, bufSize),
		f:      f,
		dest:   path,
		atomic: true,
	}, nil
}

// Name returns the destination path.
func (f *File) Name() string { return f.dest }

// Commit flushes and closes the file.  In atomic mode it then replaces
// the destination.  On error the temporary file is removed.
func (f *File) Commit() error {
	if f.done {
		return errDone
	}
	f.done = true
	if !f.atomic {
		err := f.Flush()
		if cerr := f.f.Close(); err == nil {
			err = cerr
		}
		return err
	}
	tmp := f.f.Name()
	fail := func(err error) error {
		_ = f.f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Flush(); err != nil {
		return fail(err)
	}
	if err := f.f.Sync(); err != nil {
		return fail(err)
	}
	if err := f.f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := replace(tmp, f.dest); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	_ = syncDir(filepath.Dir(f.dest))
	return nil
}

// Abort discards the file.  In atomic mode the destination is left as it
// was.  Abort after Commit does nothing.
func (f *File) Abort() error {
	if f.done {
		return nil
	}
	f.done = true
	err := f.f.Close()
	if f.atomic {
		if rerr := os.Remove(f.f.Name()); err == nil {
			err = rerr
		}
	}
	return err
}
