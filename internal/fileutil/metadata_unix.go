//go:build unix

package fileutil

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// PreserveMetadata copies the permission bits and access/modification times
// of src onto dst.
func PreserveMetadata(src, dst string) error {
	var st unix.Stat_t
	if err := unix.Stat(src, &st); err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if err := os.Chmod(dst, os.FileMode(st.Mode&0o777)); err != nil {
		return fmt.Errorf("chmod destination: %w", err)
	}
	atime := time.Unix(st.Atim.Unix())
	mtime := time.Unix(st.Mtim.Unix())
	if err := os.Chtimes(dst, atime, mtime); err != nil {
		return fmt.Errorf("set destination times: %w", err)
	}
	return nil
}

func isCrossDevice(err error) bool {
	if errors.Is(err, syscall.EXDEV) {
		return true
	}
	var le *os.LinkError
	return errors.As(err, &le) && errors.Is(le.Err, syscall.EXDEV)
}
