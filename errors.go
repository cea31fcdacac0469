package wrangle

import (
	"fmt"
	"strings"
)

// ErrorKind is a stable, machine-readable identifier for a scanner or
// routing error. Rendering of the human-readable message is handled by the
// text catalog (see catalog.go); the kind lets callers branch on the
// failure without string-matching a message.
type ErrorKind int

const (
	// ErrUnknown is never returned by this package; it is the zero value.
	ErrUnknown ErrorKind = iota
	ErrRouteNotFound
	ErrFlagNotFound
	ErrAliasNotFound
	ErrDuplicateFlag
	ErrMissingValueForFlag
	ErrMissingArgument
	ErrTooManyArguments
	ErrEnumValueNotAllowed
	ErrInvalidParsedValue
	ErrNegationNotAllowed
	ErrCollidingFlagName
)

func (k ErrorKind) String() string {
	switch k {
	case ErrRouteNotFound:
		return "RouteNotFound"
	case ErrFlagNotFound:
		return "FlagNotFound"
	case ErrAliasNotFound:
		return "AliasNotFound"
	case ErrDuplicateFlag:
		return "DuplicateFlag"
	case ErrMissingValueForFlag:
		return "MissingValueForFlag"
	case ErrMissingArgument:
		return "MissingArgument"
	case ErrTooManyArguments:
		return "TooManyArguments"
	case ErrEnumValueNotAllowed:
		return "EnumValueNotAllowed"
	case ErrInvalidParsedValue:
		return "InvalidParsedValue"
	case ErrNegationNotAllowed:
		return "NegationNotAllowed"
	case ErrCollidingFlagName:
		return "CollidingFlagName"
	default:
		return "Unknown"
	}
}

// ScanError is satisfied by every error the argument scanner or route
// scanner can produce. Use errors.As to recover the structured fields.
type ScanError interface {
	error
	Kind() ErrorKind
}

type routeNotFoundError struct {
	Input      string
	KnownNames []string
}

func (e *routeNotFoundError) Kind() ErrorKind { return ErrRouteNotFound }
func (e *routeNotFoundError) Error() string {
	return fmt.Sprintf("no route registered for %q", e.Input)
}

// NewRouteNotFoundError reports that input did not match any route or alias
// in a route map. knownNames is the full set of route names and aliases
// considered, used by the correction utility to build a "did you mean"
// suggestion.
func NewRouteNotFoundError(input string, knownNames []string) error {
	return &routeNotFoundError{Input: input, KnownNames: knownNames}
}

type flagNotFoundError struct {
	Input      string
	KnownFlags []string
}

func (e *flagNotFoundError) Kind() ErrorKind { return ErrFlagNotFound }
func (e *flagNotFoundError) Error() string {
	return fmt.Sprintf("no flag registered with name %q", e.Input)
}

// NewFlagNotFoundError reports that a long-flag token did not resolve to
// any declared flag. knownFlags is used for "did you mean" suggestions.
func NewFlagNotFoundError(input string, knownFlags []string) error {
	return &flagNotFoundError{Input: input, KnownFlags: knownFlags}
}

type aliasNotFoundError struct {
	Input string
}

func (e *aliasNotFoundError) Kind() ErrorKind { return ErrAliasNotFound }
func (e *aliasNotFoundError) Error() string {
	return fmt.Sprintf("No flag registered with alias %q", e.Input)
}

// NewAliasNotFoundError reports that a short-cluster character did not
// resolve to any declared alias.
func NewAliasNotFoundError(input string) error {
	return &aliasNotFoundError{Input: input}
}

type duplicateFlagError struct {
	Name string
}

func (e *duplicateFlagError) Kind() ErrorKind { return ErrDuplicateFlag }
func (e *duplicateFlagError) Error() string {
	return fmt.Sprintf("flag %q was given more than once", e.Name)
}

// NewDuplicateFlagError reports that a non-variadic flag appeared more than
// once in the token stream.
func NewDuplicateFlagError(name string) error {
	return &duplicateFlagError{Name: name}
}

type missingValueForFlagError struct {
	Name string
}

func (e *missingValueForFlagError) Kind() ErrorKind { return ErrMissingValueForFlag }
func (e *missingValueForFlagError) Error() string {
	return fmt.Sprintf("flag %q requires a value", e.Name)
}

// NewMissingValueForFlagError reports that a value-taking flag had no value
// available by either the `=value` or following-token forms.
func NewMissingValueForFlagError(name string) error {
	return &missingValueForFlagError{Name: name}
}

type missingArgumentError struct {
	Placeholder string
}

func (e *missingArgumentError) Kind() ErrorKind { return ErrMissingArgument }
func (e *missingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument %s", e.Placeholder)
}

// NewMissingArgumentError reports that a required positional slot was never
// filled. placeholder is the slot's display name.
func NewMissingArgumentError(placeholder string) error {
	return &missingArgumentError{Placeholder: placeholder}
}

type tooManyArgumentsError struct {
	Extra []string
}

func (e *tooManyArgumentsError) Kind() ErrorKind { return ErrTooManyArguments }
func (e *tooManyArgumentsError) Error() string {
	return fmt.Sprintf("too many arguments: %s", strings.Join(e.Extra, ", "))
}

// NewTooManyArgumentsError reports that positional tokens remained after
// every declared positional slot (and any trailing array) was filled.
func NewTooManyArgumentsError(extra []string) error {
	return &tooManyArgumentsError{Extra: extra}
}

type enumValueNotAllowedError struct {
	Name    string
	Value   string
	Allowed []string
}

func (e *enumValueNotAllowedError) Kind() ErrorKind { return ErrEnumValueNotAllowed }
func (e *enumValueNotAllowedError) Error() string {
	return fmt.Sprintf("%q is not one of (%s)", e.Value, strings.Join(e.Allowed, "|"))
}

// NewEnumValueNotAllowedError reports that a value for an enum flag or
// positional was not one of its declared values.
func NewEnumValueNotAllowedError(name, value string, allowed []string) error {
	return &enumValueNotAllowedError{Name: name, Value: value, Allowed: allowed}
}

type invalidParsedValueError struct {
	Name  string
	Value string
	Cause error
}

func (e *invalidParsedValueError) Kind() ErrorKind { return ErrInvalidParsedValue }
func (e *invalidParsedValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Name, e.Cause)
}
func (e *invalidParsedValueError) Unwrap() error { return e.Cause }

// NewInvalidParsedValueError wraps the error a parser function returned
// while parsing the raw token (or declared default) for the named flag.
func NewInvalidParsedValueError(name, value string, cause error) error {
	return &invalidParsedValueError{Name: name, Value: value, Cause: cause}
}

type negationNotAllowedError struct {
	Name string
}

func (e *negationNotAllowedError) Kind() ErrorKind { return ErrNegationNotAllowed }
func (e *negationNotAllowedError) Error() string {
	return fmt.Sprintf("flag %q does not allow negation", e.Name)
}

// NewNegationNotAllowedError reports that a `no-`/`no<Camel>` token matched
// a known boolean flag name but that flag was not declared as negatable.
func NewNegationNotAllowedError(name string) error {
	return &negationNotAllowedError{Name: name}
}

type collidingFlagNameError struct {
	Name   string
	Reason string
}

func (e *collidingFlagNameError) Kind() ErrorKind { return ErrCollidingFlagName }
func (e *collidingFlagNameError) Error() string {
	return fmt.Sprintf("flag name %q: %s", e.Name, e.Reason)
}

// NewCollidingFlagNameError is a builder-time error: it reports that a flag
// name collides with a reserved name, another flag's negated form, or some
// other name it is not allowed to share with.
func NewCollidingFlagNameError(name, reason string) error {
	return &collidingFlagNameError{Name: name, Reason: reason}
}

// BuilderError reports a programmer error detected by BuildCommand,
// BuildRouteMap, or BuildApplication, other than reserved-name, reserved-alias
// and negation collisions, which are reported with NewCollidingFlagNameError.
// It is always fatal: these are mistakes in how the application was
// assembled, not runtime input errors.
type BuilderError struct {
	Rule    string
	Message string
}

func (e *BuilderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Message)
}

// NewBuilderError constructs a BuilderError identifying the violated rule
// (a short stable slug, e.g. "reserved-flag-name") and a human message.
func NewBuilderError(rule, message string) error {
	return &BuilderError{Rule: rule, Message: message}
}
