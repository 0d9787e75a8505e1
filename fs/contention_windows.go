//go:build windows

package fs

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// IsContention reports whether err means another process holds the file.
// Windows refuses the open with a sharing or lock violation.
func IsContention(err error) bool {
	return errors.Is(err, windows.ERROR_SHARING_VIOLATION) ||
		errors.Is(err, windows.ERROR_LOCK_VIOLATION) ||
		errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EBUSY)
}
