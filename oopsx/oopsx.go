// Package oopsx bridges nwg-error values into github.com/samber/oops errors.
//
// The resulting oops error keeps the toolkit error as its cause, so
// errors.Is(wrapped, nwgerror.ErrKeyNotFound) still holds, and adds what oops
// consumers expect: a code, the "nwg" domain, tags, structured context and a
// recovery hint.
package oopsx

import (
	"errors"

	"github.com/samber/oops"

	nwgerror "github.com/nwg-io/nwg-error"
)

// Domain is the oops domain assigned to toolkit errors.
const Domain = "nwg"

var hints = map[nwgerror.Kind]string{
	nwgerror.KindKeyExists:                 "Pick a key that is not registered yet, or remove the existing entry first",
	nwgerror.KindKeyNotFound:               "Check that the key was registered before it is used",
	nwgerror.KindBadType:                   "Request the key with the type it was registered with",
	nwgerror.KindBorrowError:               "Release the outstanding borrow before borrowing the element again",
	nwgerror.KindEventNotSupported:         "Bind the event on a control type that emits it",
	nwgerror.KindControlRequired:           "Pass the key of a control",
	nwgerror.KindControlOrResourceRequired: "Pass the key of a control or a resource",
	nwgerror.KindControlInUse:              "Retry once the control is no longer in use",
	nwgerror.KindUnimplemented:             "This feature is not available in the toolkit yet",
	nwgerror.KindSystem:                    "Check the OS error code; the platform refused the request",
}

// Hint returns the recovery suggestion for k, or "".
func Hint(k nwgerror.Kind) string { return hints[k] }

// Builder returns an oops builder preloaded with the toolkit context found in
// err. Foreign errors get the domain and tag only.
func Builder(err error) oops.OopsErrorBuilder {
	b := oops.In(Domain).Tags(Domain)

	var e nwgerror.Error
	if !errors.As(err, &e) {
		if s, ok := nwgerror.SystemOf(err); ok {
			return b.Code(string(s.Code())).
				Tags(s.String()).
				With("system", string(s.Code())).
				Hint(Hint(nwgerror.KindSystem))
		}
		return b
	}

	b = b.Code(string(e.Code())).
		Tags(e.Kind().String()).
		With("kind", e.Kind().String()).
		Hint(Hint(e.Kind()))

	if ev, ok := e.Event(); ok {
		b = b.With("event", string(ev))
	}
	if s, ok := e.SystemError(); ok {
		st, _ := e.OS()
		b = b.Tags(s.String()).
			With("system", string(s.Code()), "os_code", st.Code, "os_text", st.Text)
		if name := st.Name(); name != "" {
			b = b.With("os_name", name)
		}
	}
	return b
}

// Wrap converts err into an oops error carrying its toolkit context.
// Wrap(nil) returns nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return Builder(err).Wrap(err)
}

// Wrapf is like Wrap but prefixes the message, e.g. with the operation that
// failed.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Builder(err).Wrapf(err, format, args...)
}
