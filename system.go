// system.go — OS-level failure categories nested inside Error.
package nwgerror

import "fmt"

// SystemError is an OS-level failure raised while the toolkit talks to the
// platform. It carries no payload; the OS code is read from a Probe when the
// tag is described.
type SystemError uint8

const (
	SystemClassCreation SystemError = iota + 1
	WindowCreationFail
	UiCreation
)

// AllSystemErrors returns every declared system tag in declaration order.
func AllSystemErrors() []SystemError {
	return []SystemError{SystemClassCreation, WindowCreationFail, UiCreation}
}

// String returns the variant name, e.g. "WindowCreationFail".
func (s SystemError) String() string {
	switch s {
	case SystemClassCreation:
		return "SystemClassCreation"
	case WindowCreationFail:
		return "WindowCreationFail"
	case UiCreation:
		return "UiCreation"
	}
	return fmt.Sprintf("SystemError(%d)", uint8(s))
}

// Sentence returns the fixed category sentence, without trailing period or
// OS details.
func (s SystemError) Sentence() string {
	switch s {
	case SystemClassCreation:
		return "Failed to create a system class for a control"
	case WindowCreationFail:
		return "Failed to create a system window for a control"
	case UiCreation:
		return "The system could not initialize the Ui"
	}
	return "Unknown system error"
}

// Describe returns the category sentence followed by the OS code and text
// reported by the current probe at the moment of the call:
//
//	Failed to create a system window for a control.
//	ID 5 - Access is denied
//
// Any OS call made on this thread between the failure and Describe changes
// the reported code. Use System/SystemFromErr to pin the status early.
func (s SystemError) Describe() string {
	return s.DescribeWith(CurrentProbe())
}

// DescribeWith is like Describe but reads the given probe.
func (s SystemError) DescribeWith(p Probe) string {
	return s.describeStatus(Capture(p))
}

func (s SystemError) describeStatus(st OSStatus) string {
	return fmt.Sprintf("%s.\nID %d - %s", s.Sentence(), st.Code, st.Text)
}

// Error implements the error interface; it is exactly Describe().
func (s SystemError) Error() string { return s.Describe() }

var _ error = SystemError(0)
