// format.go — fmt.Formatter implementations.
//
// Behavior:
//
//   %s, %v   → Describe(), exactly.
//   %q       → quoted Describe().
//   %+v      → verbose, structured multi-line format:
//                code=<code> kind=<Kind> msg="<sentence>"
//                event: <EventKind>            (EventNotSupported only)
//                system: <code> <SystemError>  (System only)
//                os: ID <code> - <text> (<NAME>)
package nwgerror

import (
	"fmt"
	"io"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	_, _ = io.WriteString(w, e.Error())
}

func writeOS(w io.Writer, st OSStatus) {
	_, _ = fmt.Fprintf(w, "\nos: %s", st)
	if name := st.Name(); name != "" {
		_, _ = fmt.Fprintf(w, " (%s)", name)
	}
}

func (e Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(nwgerror.Error=%s)", verb, e.Error())
	}
}

func (e Error) formatVerbose(w io.Writer) {
	msg := e.Describe()
	if e.kind == KindSystem {
		// The OS part is printed on its own line below.
		msg = "A system error was raised: " + e.sys.Sentence()
	}
	_, _ = fmt.Fprintf(w, "code=%s kind=%s msg=%q", e.Code(), e.kind, msg)

	switch e.kind {
	case KindEventNotSupported:
		_, _ = fmt.Fprintf(w, "\nevent: %v", e.event)
	case KindSystem:
		_, _ = fmt.Fprintf(w, "\nsystem: %s %s", e.sys.Code(), e.sys.String())
		writeOS(w, e.os)
	}
}

// SystemError verbose output probes the current probe, like Describe.
func (s SystemError) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') {
			_, _ = fmt.Fprintf(st, "code=%s kind=%s msg=%q", s.Code(), s.String(), s.Sentence())
			writeOS(st, Capture(CurrentProbe()))
			return
		}
		formatConcise(st, s)
	case 's':
		formatConcise(st, s)
	case 'q':
		_, _ = fmt.Fprintf(st, "%q", s.Error())
	case 'd':
		_, _ = fmt.Fprintf(st, "%d", uint8(s))
	default:
		_, _ = fmt.Fprintf(st, "%%!%c(nwgerror.SystemError=%s)", verb, s.String())
	}
}
