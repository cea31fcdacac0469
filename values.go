package wrangle

import "github.com/dekarrin/wrangle/internal/sliceops"

// HelpLevel records whether, and how broadly, help was requested during
// routing or argument scanning.
type HelpLevel int

const (
	HelpNone HelpLevel = iota
	HelpBrief
	HelpAll
)

// FlagValues is the scanner's output for flags: an ordered mapping from
// declared flag name to its parsed value. Order matches declaration
// order, not input order.
type FlagValues struct {
	names   []string
	present map[string]bool
	values  map[string]any
}

func newFlagValues() FlagValues {
	return FlagValues{present: map[string]bool{}, values: map[string]any{}}
}

// declare records name in declaration order without assigning a value yet,
// so FlagValues.Names() reflects schema order even before any value (or
// default) is installed.
func (fv *FlagValues) declare(name string) {
	if sliceops.Index(fv.names, name) < 0 {
		fv.names = append(fv.names, name)
	}
}

func (fv *FlagValues) set(name string, value any) {
	fv.declare(name)
	fv.values[name] = value
	fv.present[name] = true
}

// setDefault installs value for name without marking it present, used when
// a flag was absent from input but has a declared default.
func (fv *FlagValues) setDefault(name string, value any) {
	fv.declare(name)
	if _, ok := fv.values[name]; !ok {
		fv.values[name] = value
	}
}

// Names returns every declared flag name, in declaration order.
func (fv FlagValues) Names() []string {
	out := make([]string, len(fv.names))
	copy(out, fv.names)
	return out
}

// Present reports whether name was explicitly supplied on the command
// line (as opposed to having only its default installed).
func (fv FlagValues) Present(name string) bool { return fv.present[name] }

// Value returns the raw (possibly nil) stored value for name.
func (fv FlagValues) Value(name string) any { return fv.values[name] }

// Bool returns the boolean value of name, or false if unset/wrong type.
func (fv FlagValues) Bool(name string) bool {
	v, _ := fv.values[name].(bool)
	return v
}

// Count returns the counter value of name, or 0 if unset/wrong type.
func (fv FlagValues) Count(name string) int {
	v, _ := fv.values[name].(int)
	return v
}

// String returns the string value of name (enum, or a parsed flag whose
// value happens to be a string), or "" if unset/wrong type.
func (fv FlagValues) String(name string) string {
	v, _ := fv.values[name].(string)
	return v
}

// List returns the []any accumulated by a variadic parsed flag, or nil.
func (fv FlagValues) List(name string) []any {
	v, _ := fv.values[name].([]any)
	return v
}

// ScanResult is the argument scanner's full output: flags, bound
// positionals, help level, and any collected errors. Errors is populated
// even when the scan otherwise "succeeded" in the
// sense of producing usable Flags/Positionals, enabling multi-error
// reporting.
type ScanResult struct {
	Flags       FlagValues
	Positionals []string
	Help        HelpLevel
	Errors      []error
}

// OK reports whether the scan completed with no errors.
func (r *ScanResult) OK() bool { return len(r.Errors) == 0 }
