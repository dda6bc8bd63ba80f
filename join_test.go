package nwgerror

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestJoin_NilHandling(t *testing.T) {
	t.Parallel()

	if got := Join(); got != nil {
		t.Fatalf("Join()=%v want nil", got)
	}
	if got := Join(nil, nil); got != nil {
		t.Fatalf("Join(nil,nil)=%v want nil", got)
	}
	if got := Join(nil, ErrKeyExists, nil); got != error(ErrKeyExists) {
		t.Fatalf("Join with one non-nil should return it unchanged, got %#v", got)
	}
}

func TestJoin_ErrorAndTraversal(t *testing.T) {
	t.Parallel()

	a := ErrKeyNotFound
	b := EventNotSupported("Click")
	joined := Join(a, b)

	want := a.Describe() + "\n" + b.Describe()
	if joined.Error() != want {
		t.Fatalf("Error()=%q want %q", joined.Error(), want)
	}
	if !errors.Is(joined, a) || !errors.Is(joined, b) {
		t.Fatalf("errors.Is should find both children")
	}
	if errors.Is(joined, ErrControlInUse) {
		t.Fatalf("errors.Is matched an absent kind")
	}
	if fmt.Sprintf("%v", joined) != want || fmt.Sprintf("%s", joined) != want {
		t.Fatalf("%%v/%%s should match Error()")
	}
}

func TestJoin_VerboseRecurses(t *testing.T) {
	t.Parallel()

	joined := Join(ErrBadType, SystemWith(UiCreation, StaticProbe(5, "Access is denied")))
	got := fmt.Sprintf("%+v", joined)
	if !containsInOrder(got, "code=bad_type", "\n\n", "code=system", "\nos: ID 5 - Access is denied") {
		t.Fatalf("%%+v=\n%s", got)
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()

	if got := Append(nil); got != nil {
		t.Fatalf("Append(nil)=%v", got)
	}
	if got := Append(ErrBadType, nil, nil); got != error(ErrBadType) {
		t.Fatalf("Append(head, nils) should return head")
	}
	got := Append(ErrBadType, ErrKeyExists)
	if !errors.Is(got, ErrBadType) || !errors.Is(got, ErrKeyExists) {
		t.Fatalf("Append should keep head and more")
	}
	if n := strings.Count(got.Error(), "\n"); n != 1 {
		t.Fatalf("Append(2) Error() should have one newline, got %d", n)
	}
}
