//go:build windows

package nwgerror

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
)

// platformProbe reads the calling thread's GetLastError slot.
func platformProbe() (uint32, string) {
	var code uint32
	var errno windows.Errno
	if err := windows.GetLastError(); errors.As(err, &errno) {
		code = uint32(errno)
	}
	return code, statusText(code)
}

// statusText asks the system message table for code. Windows terminates
// messages with ".\r\n"; both are trimmed so the text embeds cleanly.
func statusText(code uint32) string {
	buf := make([]uint16, 512)
	flags := uint32(windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS)
	n, err := windows.FormatMessage(flags, 0, code, 0, buf, nil)
	if err != nil || n == 0 {
		return fmt.Sprintf("Unknown error 0x%08X", code)
	}
	return strings.TrimRight(windows.UTF16ToString(buf[:n]), " \r\n.")
}

// Windows error codes have no short symbolic names in the message table.
func statusName(uint32) string { return "" }

func errnoCode(err error) (uint32, bool) {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return uint32(errno), true
	}
	return 0, false
}
