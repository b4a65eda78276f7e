package util

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func FileExists(path string) (exists bool, _ error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil
	} else if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else {
		return false, err
	}
}

// WriteFileAtomic writes to a uniquely named sibling of path and renames it
// over path once write succeeds. On failure path is left untouched and the
// temporary file is removed.
func WriteFileAtomic(path string, write func(w io.Writer) error) (err error) {
	tmpPath := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())

	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to create %q", tmpPath)
	}
	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	buffered := bufio.NewWriter(file)
	if err := write(buffered); err != nil {
		return err
	}
	if err := buffered.Flush(); err != nil {
		return errors.Wrapf(err, "failed to write %q", tmpPath)
	}
	if err := file.Sync(); err != nil {
		return errors.Wrapf(err, "failed to sync %q", tmpPath)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %q", tmpPath)
	}

	return errors.Wrapf(os.Rename(tmpPath, path), "failed to move %q to %q", tmpPath, path)
}
