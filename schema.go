package wrangle

import "strings"

// Reserved names and aliases. A CollidingFlagName error is raised at
// construction time for anything declared using one of these (modulo the version-alias
// asymmetry recorded in DESIGN.md's Open Question (a)).
const (
	ReservedFlagHelp     = "help"
	ReservedFlagHelpAll  = "helpAll"
	ReservedFlagHelpAllK = "help-all"
	ReservedAliasHelp    = "h"
	ReservedAliasHelpAll = "H"
	ReservedAliasVersion = "v"
)

// ValueParser converts a raw command-line token into a typed value, or
// fails with a parse error. The error returned is wrapped by
// NewInvalidParsedValueError before it reaches the caller of the scanner.
type ValueParser func(raw string) (any, error)

// ParserOf adapts a typed parse function into the type-erased ValueParser
// the scanning engine operates over, so builder call sites can still write
// parsers against a concrete Go type.
func ParserOf[T any](fn func(string) (T, error)) ValueParser {
	return func(raw string) (any, error) {
		return fn(raw)
	}
}

// FlagKind discriminates the four kinds of flag a schema can declare.
type FlagKind int

const (
	FlagBoolean FlagKind = iota
	FlagCounter
	FlagEnum
	FlagParsed
)

// VariadicKind discriminates how a variadic parsed flag accumulates values.
type VariadicKind int

const (
	// VariadicNone marks a non-variadic flag: a second occurrence is an error.
	VariadicNone VariadicKind = iota
	// VariadicRepeat accumulates one parsed value per occurrence of the flag.
	VariadicRepeat
	// VariadicSplit accumulates parsed values from splitting a single
	// occurrence's value on Separator.
	VariadicSplit
)

// Variadic describes a parsed flag's repetition behavior.
type Variadic struct {
	Kind      VariadicKind
	Separator string // only meaningful when Kind == VariadicSplit
}

// FlagDef is one entry of a command's parameter schema. Which fields are
// meaningful depends on Kind; see BuildCommand's validation for the
// invariants enforced across fields.
type FlagDef struct {
	// Name is the internal/long-flag name, declared in camelCase. Required,
	// and must not collide with a reserved name (schema.go's Reserved*
	// constants) or another flag's negated forms.
	Name string

	Kind FlagKind

	Hidden   bool
	Optional bool

	// Placeholder is the value-slot name shown in usage, e.g. "PATH". If
	// empty, the formatter shows "VALUE".
	Placeholder string

	Brief string

	// BoolDefault is the default value for Kind == FlagBoolean.
	BoolDefault bool
	// WithNegated controls whether `--no<Camel>`/`--no-kebab` forms are
	// accepted for a boolean flag. If nil, it is computed as true exactly
	// when BoolDefault is true (a default-true flag auto-gains negation).
	WithNegated *bool

	// Values is the ordered, non-empty set of allowed values for Kind ==
	// FlagEnum.
	Values      []string
	EnumDefault *string

	// Parse is the parser for Kind == FlagParsed.
	Parse ValueParser
	// ParsedDefault is the raw string run through Parse to produce the
	// default value when the flag is absent from input.
	ParsedDefault *string
	Variadic      Variadic
}

// negatedAllowed reports whether this boolean flag accepts negated forms.
func (f FlagDef) negatedAllowed() bool {
	if f.WithNegated != nil {
		return *f.WithNegated
	}
	return f.BoolDefault
}

// PositionalKind discriminates tuple vs. array positional schemas.
type PositionalKind int

const (
	PositionalTuple PositionalKind = iota
	PositionalArray
)

// PositionalSlot is one ordered element of a tuple positional schema.
type PositionalSlot struct {
	Placeholder string
	Parse       ValueParser
	Optional    bool
	// Values, if non-empty, marks this slot as an enum positional: a token
	// that is not one of Values is reported as EnumValueNotAllowed. The
	// scanner does not call Parse on positional tokens; they reach the
	// command as the raw strings.
	Values []string
}

// PositionalSchema describes how trailing tokens (after routing and flag
// parsing) are bound to positional arguments.
type PositionalSchema struct {
	Kind PositionalKind

	// Tuple is used when Kind == PositionalTuple: an ordered list of
	// slots, with at most one contiguous run of optional slots and only
	// at the end (the "tail").
	Tuple []PositionalSlot

	// Array is used when Kind == PositionalArray: a single homogeneous
	// slot repeated Minimum..Maximum times. Maximum < 0 means unbounded.
	Array    PositionalSlot
	Minimum  int
	Maximum  int
}

func (p PositionalSchema) placeholderFor(index int) string {
	switch p.Kind {
	case PositionalArray:
		if p.Array.Placeholder != "" {
			return p.Array.Placeholder
		}
		return "ARG"
	default:
		if index < len(p.Tuple) && p.Tuple[index].Placeholder != "" {
			return p.Tuple[index].Placeholder
		}
		return "ARG"
	}
}

// knownFlagNames returns every declared long-flag name, used to build
// "did you mean" candidate lists.
func knownFlagNames(flags []FlagDef) []string {
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, f.Name)
	}
	return names
}

// findFlagByName looks up a flag by its declared long name.
func findFlagByName(flags []FlagDef, name string) (FlagDef, bool) {
	for _, f := range flags {
		if f.Name == name {
			return f, true
		}
	}
	return FlagDef{}, false
}

// isReservedFlagName reports whether name is one of the library-reserved
// flag names that no schema may declare.
func isReservedFlagName(name string) bool {
	switch name {
	case ReservedFlagHelp, ReservedFlagHelpAll, ReservedFlagHelpAllK:
		return true
	default:
		return false
	}
}

// isReservedAlias reports whether alias is reserved. versioned is true when
// the owning application has version info configured, which additionally
// reserves "v" (Open Question (a): "version" the flag name stays
// unreserved regardless).
func isReservedAlias(alias string, versioned bool) bool {
	switch alias {
	case ReservedAliasHelp, ReservedAliasHelpAll:
		return true
	case ReservedAliasVersion:
		return versioned
	default:
		return false
	}
}

// trimEquals splits "name=value" into ("name", "value", true), or returns
// (s, "", false) when there is no '='.
func trimEquals(s string) (string, string, bool) {
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		return s[:idx], s[idx+1:], true
	}
	return s, "", false
}
