// doc.go — package documentation for nwg-error
//
// Package nwgerror is the error taxonomy of a native GUI toolkit binding. It
// defines two closed sets of failures and the text shown for each:
//   - SystemError: OS-level failures (class registration, window creation,
//     UI initialization). Described with the OS error code and its text.
//   - Error: toolkit-level failures (missing/duplicate keys, type mismatch,
//     borrow conflicts, unsupported events, busy controls, unimplemented
//     features) plus System, which nests a SystemError.
//
// Both are small immutable values. Construct them at the failure site, return
// them up the call chain, and render them with Describe / Error / %v.
//
// # Messages
//
//	ErrControlInUse.Describe()
//	// Impossible to modify the control, it is currently in use.
//
//	EventNotSupported("Click").Describe()
//	// The event of type Click is not supported on this control
//
//	WindowCreationFail.Describe() // with a probe reporting (5, "Access is denied")
//	// Failed to create a system window for a control.
//	// ID 5 - Access is denied
//
//	System(WindowCreationFail).Describe()
//	// A system error was raised: Failed to create a system window for a control.
//	// ID 5 - Access is denied
//
// # When Is the OS Status Read?
//
//	+-------------------------------+------------------------------------------+
//	| Operation                     | OS status comes from                     |
//	+-------------------------------+------------------------------------------+
//	| SystemError.Describe()        | current probe, at Describe time          |
//	| SystemError.DescribeWith(p)   | p, at Describe time                      |
//	| System(s)                     | current probe, at construction (snapshot)|
//	| SystemWith(s, p)              | p, at construction (snapshot)            |
//	| SystemFromErr(s, err)         | the errno carried by err                 |
//	+-------------------------------+------------------------------------------+
//
// A bare SystemError has no payload, so describing it reports whatever the OS
// recorded most recently on the calling thread. Prefer building an Error with
// System or SystemFromErr right after the failing call: the snapshot travels
// with the value and later OS calls cannot overwrite it.
//
// # Probes
//
// The probe is process-wide and replaceable with SetProbe. On Windows the
// default reads GetLastError/FormatMessage via golang.org/x/sys/windows, which
// is per-thread state: lock the goroutine to its thread (runtime.LockOSThread)
// between the failing call and the capture. Elsewhere Go hands errno back from
// each call, so the default probe reports success and SystemFromErr is the way
// to keep the code.
//
// # Equality
//
// Error.Equal and errors.Is compare the kind, the event of EventNotSupported
// and the nested tag of System. The captured OS status is not compared, so
// errors.Is(System(WindowCreationFail), WindowCreationFail) holds for any
// status. Plain == compares the snapshot too.
//
// # Formatting
//
//   - %v, %s → Describe()
//   - %+v    → code, kind, event / system tag and OS status on separate lines
//   - %q     → quoted Describe()
//
// Use Join to keep several failures of one batch operation together; its %+v
// recurses into each child.
//
// # Adapters
//
// Logging and error-bridging adapters live in sub-packages: zlog (zerolog)
// and oopsx (samber/oops). Error implements slog.LogValuer and
// json.Marshaler directly.
package nwgerror
