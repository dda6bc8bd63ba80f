// join.go — formatting-aware multi-error join.
//
// Batch operations (building a window with its children, binding a set of
// events) can fail in several places at once. Join keeps them together:
//   • Unwrap() []error for tree traversal (errors.Is/As pre-order DFS).
//   • Error() == newline-joined child Error() strings (like errors.Join).
//   • "%+v" prints each child with its own "%+v" (codes, event, OS status).
package nwgerror

import (
	"fmt"
	"strings"
)

// multi mirrors errors.Join for Error()/Unwrap() and implements fmt.Formatter
// so "%+v" recurses into children.
type multi struct {
	errs []error // non-nil children only
}

func (m *multi) Error() string {
	var sb strings.Builder
	for i, e := range m.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

func (m *multi) Unwrap() []error { return m.errs }

// Format implements fmt.Formatter.
//   %v, %s  → Error().
//   %q      → quoted Error().
//   %+v     → each child with %+v, separated by a blank line.
func (m *multi) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for i, e := range m.errs {
				if i > 0 {
					_, _ = fmt.Fprint(s, "\n\n")
				}
				_, _ = fmt.Fprintf(s, "%+v", e)
			}
			return
		}
		formatConcise(s, m)
	case 's':
		formatConcise(s, m)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", m.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%T)", verb, m)
	}
}

// Join returns an error that wraps the given errors, ignoring nils.
//   • All nil → nil
//   • One non-nil → that error (identity preserved)
//   • 2+ non-nil → a multi-error whose Error() newline-joins like errors.Join
func Join(errs ...error) error {
	nz := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			nz = append(nz, e)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		return nz[0]
	default:
		return &multi{errs: nz}
	}
}

// Append appends more errors to an existing head, following Join semantics.
func Append(head error, more ...error) error {
	if head == nil {
		return Join(more...)
	}
	combined := make([]error, 0, 1+len(more))
	combined = append(combined, head)
	combined = append(combined, more...)
	return Join(combined...)
}
