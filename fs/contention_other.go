//go:build !windows

package fs

import (
	"errors"
	"syscall"
)

// IsContention reports whether err means another process holds the file.
func IsContention(err error) bool {
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EBUSY)
}
