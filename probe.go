// probe.go — the OS Error Probe: where system errors get their OS code.
//
// The probe is process-wide and swappable so tests (and embedders with their
// own OS layer) can substitute a deterministic source. Platform defaults live
// in probe_windows.go, probe_unix.go and probe_other.go.
//
// Threading: on Windows the default probe reads GetLastError, which is
// per-thread. Goroutines migrate between threads, so a caller that depends on
// it must hold runtime.LockOSThread from the failing call until the status is
// captured (System / Describe).
package nwgerror

import (
	"fmt"
	"sync/atomic"
)

// Probe reports the last OS error code recorded for the calling thread and
// the OS-provided text for it.
type Probe func() (code uint32, text string)

// OSStatus is a snapshot of what a Probe reported.
type OSStatus struct {
	Code uint32
	Text string
}

// String renders the status the way system descriptions embed it.
func (o OSStatus) String() string {
	return fmt.Sprintf("ID %d - %s", o.Code, o.Text)
}

// Name returns the symbolic name of the code on this platform (e.g. "EACCES"),
// or "" when the platform has none.
func (o OSStatus) Name() string { return StatusName(o.Code) }

var currentProbe atomic.Pointer[Probe]

// CurrentProbe returns the probe used by System and SystemError.Describe.
func CurrentProbe() Probe {
	if p := currentProbe.Load(); p != nil {
		return *p
	}
	return platformProbe
}

// SetProbe installs p as the process-wide probe and returns a function that
// restores the previous one. A nil p reinstalls the platform probe.
func SetProbe(p Probe) (restore func()) {
	var next *Probe
	if p != nil {
		next = &p
	}
	prev := currentProbe.Swap(next)
	return func() { currentProbe.Store(prev) }
}

// PlatformProbe returns the default probe for the running OS.
func PlatformProbe() Probe { return platformProbe }

// Capture runs p once and snapshots the result. A nil p uses the platform
// probe.
func Capture(p Probe) OSStatus {
	if p == nil {
		p = platformProbe
	}
	code, text := p()
	return OSStatus{Code: code, Text: text}
}

// StaticProbe returns a probe that always reports the given status.
func StaticProbe(code uint32, text string) Probe {
	return func() (uint32, string) { return code, text }
}

// StatusOf derives an OSStatus from an error returned by an OS call. An
// errno anywhere in the chain supplies the code and platform text;
// any other error yields code 0 with the error's message; nil yields the
// platform text for code 0.
func StatusOf(err error) OSStatus {
	if err == nil {
		return OSStatus{Code: 0, Text: StatusText(0)}
	}
	if code, ok := errnoCode(err); ok {
		return OSStatus{Code: code, Text: StatusText(code)}
	}
	return OSStatus{Code: 0, Text: err.Error()}
}

// StatusText returns the OS-provided message for code.
func StatusText(code uint32) string { return statusText(code) }

// StatusName returns the symbolic name for code, or "".
func StatusName(code uint32) string { return statusName(code) }
