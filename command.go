package wrangle

import (
	"sort"

	"github.com/dekarrin/wrangle/internal/sliceops"
	"github.com/dekarrin/wrangle/internal/strcase"
)

// CommandFunc is the implementation a command ultimately invokes: given the
// scanned flags, positionals, and a context, it runs the command's action.
// A non-nil error is treated as a returned command error; a panic
// propagating out of a CommandFunc is treated as a thrown exception.
type CommandFunc func(ctx CommandContext, flags FlagValues, positionals []string) error

// CommandLoader lazily produces a CommandFunc. Run calls it
// once, immediately before argument scanning, so that commands with
// expensive dependencies only pay that cost when actually invoked. An
// eagerly-available implementation can be adapted with LoaderOf.
type CommandLoader func(ctx LoadContext) (CommandFunc, error)

// LoaderOf adapts an already-available CommandFunc into a CommandLoader
// for commands that have no lazy-loading needs.
func LoaderOf(fn CommandFunc) CommandLoader {
	return func(LoadContext) (CommandFunc, error) {
		return fn, nil
	}
}

// LoadContext is handed to a CommandLoader. Prefix is the routed display
// path accumulated so far, as route names only (e.g. []string{"config",
// "set"}); the application name is not included.
type LoadContext struct {
	Prefix []string
}

// CommandContext is handed to a CommandFunc. It carries whatever a host
// application's Context.ForCommand builder produced, boxed as any so the
// core stays agnostic to per-application context shapes; callers type-
// assert it back to their own context type.
type CommandContext struct {
	Value any
}

// CommandDocs holds a command's documentation strings.
type CommandDocs struct {
	// Brief is the one-line summary shown next to the command's name in a
	// parent route map's COMMANDS section.
	Brief string
	// Full is the long-form description shown in the command's own help.
	// If empty, Brief is used.
	Full string
}

// Command is a leaf routing target: a parameter schema plus a lazy
// implementation loader.
type Command struct {
	Flags       []FlagDef
	Aliases     map[string]string // short alias -> flag name
	Positionals PositionalSchema
	Loader      CommandLoader
	Docs        CommandDocs
	Hidden      bool
}

// CommandConfig is the literal passed to BuildCommand.
type CommandConfig struct {
	Flags       []FlagDef
	Aliases     map[string]string
	Positionals PositionalSchema
	Docs        CommandDocs
	Hidden      bool

	// Func, if set, is used to build an eager CommandLoader via LoaderOf.
	// Exactly one of Func or Loader must be set.
	Func   CommandFunc
	Loader CommandLoader
}

// usesFlag reports whether the command declares a flag with the given
// name.
func (c *Command) usesFlag(name string) bool {
	_, ok := findFlagByName(c.Flags, name)
	return ok
}

// usesAlias reports whether short is already claimed by this command's
// alias table.
func (c *Command) usesAlias(short string) bool {
	_, ok := c.Aliases[short]
	return ok
}

// formatUsageLine renders "<prefix> [--flag value]... [positional...]" for
// this command, without ANSI styling; help.go wraps this with styling and
// wrapping.
func (c *Command) formatUsageLine(prefix string) string {
	parts := []string{prefix}

	names := make([]string, len(c.Flags))
	for i, f := range c.Flags {
		names[i] = f.Name
	}
	sort.Strings(names)

	for _, name := range names {
		f, _ := findFlagByName(c.Flags, name)
		parts = append(parts, formatFlagUsageToken(f))
	}

	parts = append(parts, formatPositionalUsageTokens(c.Positionals)...)

	return joinSpace(parts)
}

func joinSpace(parts []string) string {
	out := ""
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i > 0 && out != "" {
			out += " "
		}
		out += p
	}
	return out
}

func formatFlagUsageToken(f FlagDef) string {
	placeholder := f.Placeholder
	if placeholder == "" && (f.Kind == FlagParsed || f.Kind == FlagEnum) {
		placeholder = "VALUE"
	}

	token := "--" + f.Name
	if f.Kind == FlagParsed || f.Kind == FlagEnum {
		token += " " + placeholder
	}
	if f.Kind == FlagParsed && f.Variadic.Kind != VariadicNone {
		token += "..."
	}

	if f.Optional || f.Kind == FlagBoolean || f.Kind == FlagCounter {
		token = "[" + token + "]"
	}
	return token
}

func formatPositionalUsageTokens(p PositionalSchema) []string {
	var tokens []string
	switch p.Kind {
	case PositionalArray:
		name := p.placeholderFor(0) + "..."
		if p.Minimum == 0 {
			name = "[" + name + "]"
		}
		tokens = append(tokens, name)
	default:
		for i, slot := range p.Tuple {
			name := slot.Placeholder
			if name == "" {
				name = p.placeholderFor(i)
			}
			if slot.Optional {
				name = "[" + name + "]"
			}
			tokens = append(tokens, name)
		}
	}
	return tokens
}

// BuildCommand validates cfg's declared flags, aliases, and positional
// schema and returns a frozen Command, or an error describing the first
// violated rule: a CollidingFlagName ScanError for a reserved name, a
// reserved alias, or a negation collision, and a BuilderError otherwise.
func BuildCommand(cfg CommandConfig) (*Command, error) {
	if cfg.Func == nil && cfg.Loader == nil {
		return nil, NewBuilderError("command-needs-implementation", "exactly one of Func or Loader must be set")
	}
	if cfg.Func != nil && cfg.Loader != nil {
		return nil, NewBuilderError("command-needs-implementation", "only one of Func or Loader may be set")
	}

	if err := validateFlagSchema(cfg.Flags, false); err != nil {
		return nil, err
	}
	if err := validateAliasTable(cfg.Aliases, cfg.Flags, false); err != nil {
		return nil, err
	}
	if err := validatePositionalSchema(cfg.Positionals); err != nil {
		return nil, err
	}

	loader := cfg.Loader
	if loader == nil {
		loader = LoaderOf(cfg.Func)
	}

	cmd := &Command{
		Flags:       cfg.Flags,
		Aliases:     cfg.Aliases,
		Positionals: cfg.Positionals,
		Loader:      loader,
		Docs:        cfg.Docs,
		Hidden:      cfg.Hidden,
	}
	return cmd, nil
}

// validateFlagSchema enforces the per-flag invariants: no reserved names,
// no negation collisions, non-empty enum value lists,
// non-empty/whitespace-free variadic separators. versioned reserves the
// "v" alias additionally (checked by the caller via validateAliasTable).
func validateFlagSchema(flags []FlagDef, versioned bool) error {
	seen := map[string]bool{}
	for _, f := range flags {
		if f.Name == "" {
			return NewBuilderError("empty-flag-name", "flag name must not be empty")
		}
		if isReservedFlagName(f.Name) {
			return NewCollidingFlagNameError(f.Name, "flag name is reserved")
		}
		if seen[f.Name] {
			return NewBuilderError("duplicate-flag-name", "flag \""+f.Name+"\" declared more than once")
		}
		seen[f.Name] = true

		switch f.Kind {
		case FlagEnum:
			if len(f.Values) == 0 {
				return NewBuilderError("empty-enum-values", "enum flag \""+f.Name+"\" must declare at least one value")
			}
		case FlagParsed:
			if f.Parse == nil {
				return NewBuilderError("missing-parser", "parsed flag \""+f.Name+"\" must declare a Parse function")
			}
			if f.Variadic.Kind == VariadicSplit {
				sep := f.Variadic.Separator
				if sep == "" || hasWhitespace(sep) {
					return NewBuilderError("invalid-variadic-separator", "variadic separator for \""+f.Name+"\" must be non-empty and contain no whitespace")
				}
			}
		}
	}

	// negation-collision check: for every boolean flag that allows negation,
	// neither of its negated spellings may equal another flag's own name.
	for _, f := range flags {
		if f.Kind != FlagBoolean || !f.negatedAllowed() {
			continue
		}
		camel, kebab := negatedForms(f.Name)
		if seen[camel] || seen[kebab] {
			return NewCollidingFlagNameError(f.Name, "negated form collides with another flag name")
		}
	}

	return nil
}

func hasWhitespace(s string) bool {
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return true
		}
	}
	return false
}

// validateAliasTable enforces that no alias is reserved and every alias
// resolves to a declared flag.
func validateAliasTable(aliases map[string]string, flags []FlagDef, versioned bool) error {
	for short, name := range aliases {
		if short == "" {
			return NewBuilderError("empty-alias", "alias must not be empty")
		}
		if isReservedAlias(short, versioned) {
			return NewCollidingFlagNameError(short, "alias is reserved")
		}
		if _, ok := findFlagByName(flags, name); !ok {
			return NewBuilderError("alias-unknown-flag", "alias \""+short+"\" refers to undeclared flag \""+name+"\"")
		}
	}
	return nil
}

// validatePositionalSchema enforces the contiguous-optional-tail rule: a
// tuple may have at most one contiguous run of optional slots, and it must
// be the tail (no required slot may follow an optional one). Enforced here
// at build time rather than left for argument-scan time to discover.
func validatePositionalSchema(p PositionalSchema) error {
	switch p.Kind {
	case PositionalArray:
		if p.Maximum >= 0 && p.Maximum < p.Minimum {
			return NewBuilderError("invalid-array-bounds", "positional array maximum must be >= minimum")
		}
	default:
		seenOptional := false
		for _, slot := range p.Tuple {
			if slot.Optional {
				seenOptional = true
				continue
			}
			if seenOptional {
				return NewBuilderError("non-contiguous-optional-tail", "required positional follows an optional one; optionals must form a contiguous tail")
			}
		}
	}
	return nil
}

// negatedForms is a package-local indirection over internal/strcase kept
// here so command.go and argscanner.go share one call site.
func negatedForms(name string) (camel, kebab string) {
	return strcase.NegatedForms(name)
}

// hiddenFilteredNames returns names with any whose matching flag is Hidden
// removed, unless helpAll is set. Used by help.go.
func hiddenFilteredNames(flags []FlagDef, helpAll bool) []string {
	names := knownFlagNames(flags)
	if helpAll {
		return names
	}
	return sliceops.Filter(names, func(n string) bool {
		f, _ := findFlagByName(flags, n)
		return !f.Hidden
	})
}
