// unwrap.go — traversal helpers over single- and multi-wrapped errors.
//
// Traversal semantics:
//   - Walk:    pre-order (visit, then expand children). Stops early if fn returns false.
//   - Flatten: collects LEAVES only (nodes with no children) in DFS order.
//   - Root:    first DFS leaf, nil-safe.
//   - Has:     nil-safe wrapper over errors.Is.
//   - Kinds:   every toolkit Kind found in the graph, in DFS order.
//
// A map[error] "seen" set is unsafe for non-comparable dynamic types (it
// panics), so cycles are guarded by comparable value or pointer identity and
// everything else is bounded by depth.
package nwgerror

import (
	"errors"
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxWalkDepth = 1 << 12

type seenSet struct {
	errs map[error]struct{}
	ptrs map[uintptr]struct{}
}

func newSeenSet() *seenSet {
	return &seenSet{
		errs: make(map[error]struct{}, 16),
		ptrs: make(map[uintptr]struct{}, 16),
	}
}

// mark returns true if err was newly marked, false if already seen.
func (s *seenSet) mark(err error) bool {
	if err == nil {
		return false
	}
	switch err.(type) {
	case Error, SystemError:
		// Plain values: equal values are the same node.
		if _, ok := s.errs[err]; ok {
			return false
		}
		s.errs[err] = struct{}{}
		return true
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		id := rv.Pointer()
		if _, ok := s.ptrs[id]; ok {
			return false
		}
		s.ptrs[id] = struct{}{}
		return true
	}
	if rv.Type().Comparable() {
		if _, ok := s.errs[err]; ok {
			return false
		}
		s.errs[err] = struct{}{}
	}
	return true
}

// Walk traverses an error graph depth-first and calls visit for each distinct
// node in pre-order. A node reachable twice is visited at its first position.
// If visit returns false, traversal stops. Nil is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	seen := newSeenSet()
	stack := make([]error, 0, 8)
	stack = append(stack, err)

	for steps := 0; len(stack) > 0 && steps < maxWalkDepth; steps++ {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !seen.mark(cur) {
			continue
		}
		if !visit(cur) {
			return
		}
		if e, ok := cur.(*Error); ok && e == nil {
			// Unwrap has a value receiver.
			continue
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			// Push in reverse for left-to-right DFS.
			for i := len(kids) - 1; i >= 0; i-- {
				if c := kids[i]; c != nil {
					stack = append(stack, c)
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil {
				stack = append(stack, c)
			}
		}
	}
}

// Flatten returns the leaf errors (nodes with no children) of err's graph in
// depth-first order. If err is nil, it returns nil.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	var out []error
	Walk(err, func(n error) bool {
		switch u := n.(type) {
		case *Error:
			if u != nil && u.Unwrap() != nil {
				return true
			}
		case multiUnwrapper:
			if len(u.Unwrap()) > 0 {
				return true
			}
		case singleUnwrapper:
			if u.Unwrap() != nil {
				return true
			}
		}
		out = append(out, n)
		return true
	})
	return out
}

// Root returns the first DFS leaf. If err is nil, Root returns nil.
func Root(err error) error {
	leaves := Flatten(err)
	if len(leaves) == 0 {
		return nil
	}
	return leaves[0]
}

// Has reports whether target appears anywhere in err's unwrap graph.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}

// Kinds lists the toolkit kinds present in err's graph, in DFS order and
// without duplicates.
func Kinds(err error) []Kind {
	var out []Kind
	var seen [KindSystem + 1]bool
	Walk(err, func(n error) bool {
		var k Kind
		switch e := n.(type) {
		case Error:
			k = e.kind
		case *Error:
			if e != nil {
				k = e.kind
			}
		}
		if k.Valid() && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
		return true
	})
	return out
}
