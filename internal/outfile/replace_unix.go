// Public domain.

//go:build !windows

package outfile

import "os"

func replace(tmp, dest string) error {
	return os.Rename(tmp, dest)
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
