//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package nwgerror

import (
	"errors"

	"golang.org/x/sys/unix"
)

// platformProbe reports success: Go returns errno from each call instead of
// leaving it in a per-thread slot, so there is nothing to read after the
// fact. Build system errors with SystemFromErr to keep the failing errno.
func platformProbe() (uint32, string) { return 0, statusText(0) }

func statusText(code uint32) string {
	if code == 0 {
		return "Success"
	}
	return unix.Errno(code).Error()
}

func statusName(code uint32) string {
	if code == 0 {
		return ""
	}
	return unix.ErrnoName(unix.Errno(code))
}

func errnoCode(err error) (uint32, bool) {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return uint32(errno), true
	}
	return 0, false
}
