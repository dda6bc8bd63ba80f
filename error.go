// error.go — the toolkit-level error value for nwg-error.
//
// Scope:
//   - One closed set of toolkit failures, modelled as a comparable value type.
//   - Each value renders a fixed English sentence via Describe/Error.
//   - System failures nest a SystemError plus the OS status captured when the
//     value was built.
//
// Interop:
//   - errors.Is matches on kind, event and nested system tag (see Is).
//   - errors.As works against Error (value) and SystemError.
package nwgerror

import "fmt"

// Kind identifies which toolkit failure an Error denotes.
type Kind uint8

const (
	KindKeyExists Kind = iota + 1
	KindKeyNotFound
	KindBadType
	KindBorrowError
	KindEventNotSupported
	KindControlRequired
	KindControlOrResourceRequired
	KindControlInUse
	KindUnimplemented
	KindSystem
)

var kindNames = [...]string{
	KindKeyExists:                 "KeyExists",
	KindKeyNotFound:               "KeyNotFound",
	KindBadType:                   "BadType",
	KindBorrowError:               "BorrowError",
	KindEventNotSupported:         "EventNotSupported",
	KindControlRequired:           "ControlRequired",
	KindControlOrResourceRequired: "ControlOrResourceRequired",
	KindControlInUse:              "ControlInUse",
	KindUnimplemented:             "Unimplemented",
	KindSystem:                    "System",
}

// String returns the variant name, e.g. "ControlInUse".
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= KindKeyExists && k <= KindSystem }

// AllKinds returns every declared kind in declaration order.
func AllKinds() []Kind {
	out := make([]Kind, 0, int(KindSystem))
	for k := KindKeyExists; k <= KindSystem; k++ {
		out = append(out, k)
	}
	return out
}

// EventKind names a category of UI event (click, resize, ...). The toolkit
// owns the catalogue; this package only interpolates it into messages.
type EventKind string

// Error is a toolkit failure. It is a small immutable value: copy it, compare
// it, pass it up the call chain.
//
// Two Errors are equal (Equal, errors.Is) when they share kind, event and
// nested system tag. The == operator additionally compares the captured OS
// status of System errors, so prefer errors.Is for those.
type Error struct {
	kind  Kind
	event EventKind
	sys   SystemError
	os    OSStatus
}

// Sentinels for the payload-free kinds.
var (
	ErrKeyExists                 = Error{kind: KindKeyExists}
	ErrKeyNotFound               = Error{kind: KindKeyNotFound}
	ErrBadType                   = Error{kind: KindBadType}
	ErrBorrowError               = Error{kind: KindBorrowError}
	ErrControlRequired           = Error{kind: KindControlRequired}
	ErrControlOrResourceRequired = Error{kind: KindControlOrResourceRequired}
	ErrControlInUse              = Error{kind: KindControlInUse}
	ErrUnimplemented             = Error{kind: KindUnimplemented}
)

// Sentinel returns the payload-free Error for k. EventNotSupported and System
// carry a payload and report false, as do undeclared kinds.
func Sentinel(k Kind) (Error, bool) {
	switch {
	case !k.Valid(), k == KindEventNotSupported, k == KindSystem:
		return Error{}, false
	}
	return Error{kind: k}, true
}

// EventNotSupported reports that a control does not emit events of kind ev.
func EventNotSupported(ev EventKind) Error {
	return Error{kind: KindEventNotSupported, event: ev}
}

// System wraps an OS-level failure. The current probe is read immediately, so
// build the value right after the failing OS call.
//
// The captured status is part of the value, so two System errors for the same
// tag built under different OS states are not ==. Compare them with Equal or
// errors.Is.
func System(s SystemError) Error {
	return SystemWith(s, CurrentProbe())
}

// SystemWith is like System but reads the given probe.
func SystemWith(s SystemError, p Probe) Error {
	return Error{kind: KindSystem, sys: s, os: Capture(p)}
}

// SystemFromErr wraps an OS-level failure using the error returned by the
// failing call (typically a syscall.Errno) instead of the probe.
func SystemFromErr(s SystemError, cause error) Error {
	return Error{kind: KindSystem, sys: s, os: StatusOf(cause)}
}

// Kind returns the failure kind; the zero Error reports 0.
func (e Error) Kind() Kind { return e.kind }

// Event returns the unsupported event kind for EventNotSupported errors.
func (e Error) Event() (EventKind, bool) {
	return e.event, e.kind == KindEventNotSupported
}

// SystemError returns the nested OS failure for System errors.
func (e Error) SystemError() (SystemError, bool) {
	return e.sys, e.kind == KindSystem
}

// OS returns the OS status captured when a System error was built.
func (e Error) OS() (OSStatus, bool) {
	return e.os, e.kind == KindSystem
}

// Describe returns the human-readable diagnostic for e.
func (e Error) Describe() string {
	switch e.kind {
	case KindKeyExists:
		return "The same key already exists in the UI"
	case KindKeyNotFound:
		return "The key was not found in the ui"
	case KindBadType:
		return "The key exists in the Ui, but the type requested did not match the type of the underlying object"
	case KindBorrowError:
		return "The Ui element was already borrowed"
	case KindEventNotSupported:
		return fmt.Sprintf("The event of type %v is not supported on this control", e.event)
	case KindControlRequired:
		return "The key passed to the command must identify a control"
	case KindControlOrResourceRequired:
		return "The key passed to the command must identify a control or a resource"
	case KindControlInUse:
		return "Impossible to modify the control, it is currently in use."
	case KindUnimplemented:
		return "Feature not yet implemented"
	case KindSystem:
		return "A system error was raised: " + e.sys.describeStatus(e.os)
	default:
		return "Unknown error"
	}
}

// Error implements the error interface; it is exactly Describe().
func (e Error) Error() string { return e.Describe() }

// Equal reports whether e and o denote the same failure. The OS status of
// System errors is not compared.
func (e Error) Equal(o Error) bool {
	return e.kind == o.kind && e.event == o.event && e.sys == o.sys
}

// Is lets errors.Is match an Error against another Error (see Equal) or,
// for System errors, against the bare SystemError tag.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case Error:
		return e.Equal(t)
	case *Error:
		return t != nil && e.Equal(*t)
	case SystemError:
		return e.kind == KindSystem && e.sys == t
	}
	return false
}

// Unwrap exposes the nested SystemError of System errors.
func (e Error) Unwrap() error {
	if e.kind == KindSystem {
		return e.sys
	}
	return nil
}

var _ error = Error{}
