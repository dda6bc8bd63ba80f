package nwgerror

import (
	"fmt"
	"strings"
	"testing"
)

// containsInOrder reports whether all needles appear in haystack in order.
func containsInOrder(haystack string, needles ...string) bool {
	pos := 0
	for _, n := range needles {
		i := strings.Index(haystack[pos:], n)
		if i < 0 {
			return false
		}
		pos += i + len(n)
	}
	return true
}

func TestFormat_ConciseIsDescribe(t *testing.T) {
	t.Parallel()

	errs := []Error{
		ErrKeyExists,
		EventNotSupported("Resize"),
		SystemWith(UiCreation, StaticProbe(5, "Access is denied")),
	}
	for _, e := range errs {
		if got := fmt.Sprintf("%v", e); got != e.Describe() {
			t.Fatalf("%%v=%q want %q", got, e.Describe())
		}
		if got := fmt.Sprintf("%s", e); got != e.Describe() {
			t.Fatalf("%%s=%q want %q", got, e.Describe())
		}
		if got := fmt.Sprintf("%q", e); got != fmt.Sprintf("%q", e.Describe()) {
			t.Fatalf("%%q=%s", got)
		}
	}
}

func TestFormat_VerboseEvent(t *testing.T) {
	t.Parallel()

	got := fmt.Sprintf("%+v", EventNotSupported("Click"))
	want := `code=event_not_supported kind=EventNotSupported msg="The event of type Click is not supported on this control"` +
		"\nevent: Click"
	if got != want {
		t.Fatalf("%%+v=\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_VerboseSystem(t *testing.T) {
	t.Parallel()

	e := SystemWith(WindowCreationFail, StaticProbe(5, "Access is denied"))
	got := fmt.Sprintf("%+v", e)
	if !containsInOrder(got,
		"code=system",
		"kind=System",
		`msg="A system error was raised: Failed to create a system window for a control"`,
		"\nsystem: window_creation_fail WindowCreationFail",
		"\nos: ID 5 - Access is denied",
	) {
		t.Fatalf("%%+v missing fragments:\n%s", got)
	}
}

func TestFormat_VerbosePlain(t *testing.T) {
	t.Parallel()

	got := fmt.Sprintf("%+v", ErrBorrowError)
	want := `code=borrow_error kind=BorrowError msg="The Ui element was already borrowed"`
	if got != want {
		t.Fatalf("%%+v=%q want %q", got, want)
	}
}

func TestFormat_SystemError(t *testing.T) {
	withProbe(t, 5, "Access is denied")

	if got := fmt.Sprintf("%v", UiCreation); got != UiCreation.Describe() {
		t.Fatalf("%%v=%q", got)
	}
	if got := fmt.Sprintf("%d", UiCreation); got != "3" {
		t.Fatalf("%%d=%q", got)
	}
	verbose := fmt.Sprintf("%+v", SystemClassCreation)
	if !containsInOrder(verbose, "code=system_class_creation", "kind=SystemClassCreation", "\nos: ID 5 - Access is denied") {
		t.Fatalf("%%+v=%q", verbose)
	}
}

func TestFormat_UnsupportedVerb(t *testing.T) {
	t.Parallel()

	got := fmt.Sprintf("%x", ErrKeyExists)
	if !strings.HasPrefix(got, "%!x(nwgerror.Error=") {
		t.Fatalf("%%x=%q", got)
	}
}
