// predicates.go — stdlib-aligned classification helpers.
//
// All helpers walk the unwrap graph (Walk, errors.As, errors.Is), so they see
// Error values, or pointers to them, that are wrapped (fmt.Errorf("%w")),
// joined (errors.Join, Join) or nested.
package nwgerror

import "errors"

// firstError returns the first Error, by value or pointer, in err's unwrap
// graph in depth-first order.
func firstError(err error) (Error, bool) {
	var (
		found Error
		ok    bool
	)
	Walk(err, func(n error) bool {
		switch e := n.(type) {
		case Error:
			found, ok = e, true
		case *Error:
			if e != nil {
				found, ok = *e, true
			}
		}
		return !ok
	})
	return found, ok
}

// KindOf returns the Kind of the first Error found along err's chain, or 0.
func KindOf(err error) Kind {
	if e, ok := firstError(err); ok {
		return e.kind
	}
	return 0
}

// HasKind reports whether any Error in err's unwrap graph has kind k.
func HasKind(err error, k Kind) bool {
	if err == nil {
		return false
	}
	found := false
	Walk(err, func(n error) bool {
		switch e := n.(type) {
		case Error:
			found = e.kind == k
		case *Error:
			found = e != nil && e.kind == k
		}
		return !found
	})
	return found
}

// IsSystem reports whether err is (or wraps) an OS-level failure.
func IsSystem(err error) bool {
	_, ok := SystemOf(err)
	return ok
}

// SystemOf returns the first SystemError along err's chain.
func SystemOf(err error) (SystemError, bool) {
	if err == nil {
		return 0, false
	}
	var s SystemError
	if errors.As(err, &s) {
		return s, true
	}
	return 0, false
}

// CodeOf returns the Code of the first Error along err's chain, or "".
// A bare SystemError reports its system code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	if e, ok := firstError(err); ok {
		return e.Code()
	}
	if s, ok := SystemOf(err); ok {
		return s.Code()
	}
	return ""
}

// IsBusy reports whether err says the target is temporarily held elsewhere:
// an outstanding borrow or a control that is in use.
func IsBusy(err error) bool {
	return errors.Is(err, ErrBorrowError) || errors.Is(err, ErrControlInUse)
}
