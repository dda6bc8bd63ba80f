package nwgerror

import (
	"testing"
	"testing/synctest"
)

// TestConcurrentDescribe_Synctest checks that shared error values can be
// described and compared from many goroutines without changing. It runs in a
// synctest bubble for deterministic scheduling.
func TestConcurrentDescribe_Synctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		shared := []Error{
			ErrControlInUse,
			EventNotSupported("Click"),
			SystemWith(WindowCreationFail, StaticProbe(5, "Access is denied")),
		}
		want := make([]string, len(shared))
		for i, e := range shared {
			want[i] = e.Describe()
		}

		const N = 64
		results := make(chan []string, N)
		for i := 0; i < N; i++ {
			go func() {
				out := make([]string, len(shared))
				for j, e := range shared {
					out[j] = e.Describe()
					_ = e.Equal(shared[j])
				}
				results <- out
			}()
		}
		synctest.Wait()

		for i := 0; i < N; i++ {
			got := <-results
			for j := range got {
				if got[j] != want[j] {
					t.Fatalf("goroutine result %d: got %q want %q", j, got[j], want[j])
				}
			}
		}
		for i, e := range shared {
			if e.Describe() != want[i] {
				t.Fatalf("shared value %d changed: %q", i, e.Describe())
			}
		}
	})
}
