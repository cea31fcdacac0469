package wrangle

import (
	"errors"

	"github.com/stretchr/testify/assert"
)

// AssertFlagsMatch checks that actual holds every expected name->value
// pair (flags in actual that are absent from expected are not checked),
// using a colocated Assert* helper per result shape
// rather than repeating the same field-by-field comparison at every call
// site.
func AssertFlagsMatch(a *assert.Assertions, expected map[string]any, actual FlagValues) bool {
	ok := true
	for name, want := range expected {
		if !a.Truef(actual.Present(name) || actual.Value(name) != nil, "flag %q not set", name) {
			ok = false
			continue
		}
		ok = a.Equalf(want, actual.Value(name), "flag %q value mismatch", name) && ok
	}
	return ok
}

// AssertPositionalsMatch checks a ScanResult's bound positionals.
func AssertPositionalsMatch(a *assert.Assertions, expected []string, actual *ScanResult) bool {
	return a.Equal(expected, actual.Positionals, "positionals do not match")
}

// AssertScanErrorsMatch checks that actual contains errors of exactly the
// given ErrorKinds, in order, without requiring exact message text (the
// catalog is free to localize messages independent of behavior).
func AssertScanErrorsMatch(a *assert.Assertions, expectedKinds []ErrorKind, actual []error) bool {
	if !a.Len(actual, len(expectedKinds), "error count mismatch") {
		return false
	}
	ok := true
	for i, kind := range expectedKinds {
		var se ScanError
		if !a.Truef(errors.As(actual[i], &se), "error at index %d is not a ScanError", i) {
			ok = false
			continue
		}
		ok = a.Equalf(kind, se.Kind(), "error kind mismatch at index %d", i) && ok
	}
	return ok
}
