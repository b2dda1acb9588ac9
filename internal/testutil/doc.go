// Package testutil provides shared test utilities for statewindow.
//
// # Fixtures
//
// The fixtures.go file provides sample histories for testing:
//
//   - History(t, s) - parses a compact history string or fails the test
//   - SampleLongProgress(), SampleLongHalf() - long windows for ratio mode
//   - SampleShortSaturated(), SampleShortQuiet() - short windows
//   - SampleObservations() - a stream that rises, holds, and falls
//
// # Environment Helpers
//
// The env.go file provides test environment setup:
//
//   - WriteConfig(t, content) - writes a config.yaml into a temp dir
//   - WriteTestFile(t, base, path, content) - writes a file in test dir
//
// # Assertions
//
// The assertions.go file provides custom test assertions:
//
//   - AssertResult(t, expected, actual) - compares all three flags
//   - AssertFlags(t, r, inProgress, start, end) - positional shortcut
//   - AssertAllFalse(t, r) - no flag set
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    r, err := verdict.Ratio(testutil.SampleLongHalf(), testutil.SampleShortSaturated())
//	    require.NoError(t, err)
//	    testutil.AssertFlags(t, r, false, true, false)
//	}
package testutil
