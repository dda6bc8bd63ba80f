package nwgerror

import "testing"

// withProbe installs a fixed probe for the duration of the test. Tests that
// call it must not run in parallel: the probe is process-wide.
func withProbe(t *testing.T, code uint32, text string) {
	t.Helper()
	restore := SetProbe(StaticProbe(code, text))
	t.Cleanup(restore)
}
