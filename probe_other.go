//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos || windows)

package nwgerror

import "fmt"

func platformProbe() (uint32, string) { return 0, statusText(0) }

func statusText(code uint32) string {
	if code == 0 {
		return "Success"
	}
	return fmt.Sprintf("os error %d", code)
}

func statusName(uint32) string { return "" }

func errnoCode(error) (uint32, bool) { return 0, false }
