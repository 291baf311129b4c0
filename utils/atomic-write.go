// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

var _ = fmt.Print

// AtomicWriteFile replaces the contents of path with data, either fully or
// not at all: data is written to a temporary file in the same directory
// which is then renamed over path. An interrupted write never leaves a
// partially written file at path. If path is a symlink the target is
// replaced instead.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) (err error) {
	if q, serr := filepath.EvalSymlinks(path); serr == nil {
		path = q
	}
	if path, err = filepath.Abs(path); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".")
	if err != nil {
		return err
	}
	renamed := false
	defer func() {
		f.Close()
		if !renamed {
			os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Chmod(perm); err != nil {
		return err
	}
	if err = os.Rename(f.Name(), path); err == nil {
		renamed = true
	}
	return err
}
