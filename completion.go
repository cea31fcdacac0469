package wrangle

import (
	"sort"
	"strings"
)

// CompletionKind discriminates what a Completion represents.
type CompletionKind int

const (
	CompletionRoute CompletionKind = iota
	CompletionRouteAlias
	CompletionFlagName
	CompletionFlagAlias
	CompletionValue
)

// Completion is one proposed shell completion: a kind, the completion text
// itself, and an optional one-line brief.
type Completion struct {
	Kind       CompletionKind
	Completion string
	Brief      string
}

// CompletionConfig configures ProposeCompletions.
type CompletionConfig struct {
	CaseStyle CaseStyle
	// IncludeAliases additionally proposes route aliases, not just route
	// names, when completing at a route-map boundary.
	IncludeAliases bool
}

// proposeCompletions replays the route scanner over argv (the full token
// vector, with an implicit trailing empty string already appended by the
// caller when the source line ends with a separator) and derives
// completions for the last token from whatever the scanner resolved. The
// public entry point is Application.ProposeCompletions (driver.go), which
// supplies root/cfg from the application's own configuration.
func proposeCompletions(root *RouteMap, argv []string, cfg CompletionConfig) []Completion {
	if len(argv) == 0 {
		return routeCompletions(root, "", cfg)
	}

	partial := argv[len(argv)-1]
	leading := argv[:len(argv)-1]

	result, err := ScanRoute(root, leading, cfg.CaseStyle)
	if err != nil {
		return nil
	}

	switch t := result.Target.(type) {
	case *RouteMap:
		return routeCompletions(t, partial, cfg)
	case *Command:
		return commandCompletions(t, result.UnprocessedInputs, partial, cfg)
	}
	return nil
}

func routeCompletions(rm *RouteMap, partial string, cfg CompletionConfig) []Completion {
	var out []Completion
	for _, e := range rm.Entries() {
		if e.Hidden {
			continue
		}
		if strings.HasPrefix(e.Name, partial) {
			out = append(out, Completion{Kind: CompletionRoute, Completion: e.Name, Brief: routeBrief(e.Target)})
		}
		if cfg.IncludeAliases {
			for _, alias := range e.Aliases {
				if strings.HasPrefix(alias, partial) {
					out = append(out, Completion{Kind: CompletionRouteAlias, Completion: alias, Brief: routeBrief(e.Target)})
				}
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Completion < out[j].Completion })
	return out
}

// commandCompletions derives completions for a command terminal:
// already-scanned leading tokens decide whether the partial sits on a
// flag-name slot, an alias slot, a flag-value slot, or a positional slot.
func commandCompletions(cmd *Command, priorTokens []string, partial string, cfg CompletionConfig) []Completion {
	if name, valuePartial, ok := pendingFlagValueSlot(cmd, priorTokens, partial); ok {
		f, _ := findFlagByName(cmd.Flags, name)
		return enumCompletions(f.Values, valuePartial)
	}

	if name, ok := pendingEnumValueToken(cmd, priorTokens); ok {
		f, _ := findFlagByName(cmd.Flags, name)
		return enumCompletions(f.Values, partial)
	}

	if strings.HasPrefix(partial, "--") {
		return flagNameCompletions(cmd, priorTokens, partial, cfg)
	}
	if strings.HasPrefix(partial, "-") && len(partial) >= 1 {
		return flagAliasCompletions(cmd, partial)
	}

	return positionalCompletions(cmd, priorTokens, partial)
}

// pendingFlagValueSlot treats a partial of the form `--flag=<partial-value>`
// as always a value-slot completion for that flag, never a long-flag-name
// completion, even though it begins with `--`.
func pendingFlagValueSlot(cmd *Command, priorTokens []string, partial string) (name, valuePartial string, ok bool) {
	if !strings.HasPrefix(partial, "--") {
		return "", "", false
	}
	name, value, hasInline := trimEquals(partial[2:])
	if !hasInline {
		return "", "", false
	}
	if _, found := findFlagByName(cmd.Flags, name); found {
		return name, value, true
	}
	return "", "", false
}

// pendingEnumValueToken detects the separate-token form `--flag <TAB>` (or
// `-alias <TAB>`): the last consumed token names an enum flag that takes its
// value as the following token, rather than via an inline `=`. In that case
// the partial being completed belongs to that flag's value slot, not a flag
// name or positional slot.
func pendingEnumValueToken(cmd *Command, priorTokens []string) (name string, ok bool) {
	if len(priorTokens) == 0 {
		return "", false
	}
	last := priorTokens[len(priorTokens)-1]

	if strings.HasPrefix(last, "--") {
		flagName, _, hasInline := trimEquals(last[2:])
		if hasInline {
			return "", false
		}
		if f, found := findFlagByName(cmd.Flags, flagName); found && f.Kind == FlagEnum {
			return f.Name, true
		}
		return "", false
	}

	if strings.HasPrefix(last, "-") && len(last) >= 2 {
		short, _, hasInline := trimEquals(last[1:])
		if hasInline {
			return "", false
		}
		if flagName, found := cmd.Aliases[short]; found {
			if f, ok := findFlagByName(cmd.Flags, flagName); ok && f.Kind == FlagEnum {
				return f.Name, true
			}
		}
	}

	return "", false
}

func enumCompletions(values []string, partial string) []Completion {
	var out []Completion
	for _, v := range values {
		if strings.HasPrefix(v, partial) {
			out = append(out, Completion{Kind: CompletionValue, Completion: v})
		}
	}
	return out
}

func flagNameCompletions(cmd *Command, priorTokens []string, partial string, cfg CompletionConfig) []Completion {
	already := presentNonVariadicFlags(cmd, priorTokens)

	var out []Completion
	for _, f := range cmd.Flags {
		if f.Hidden {
			continue
		}
		if already[f.Name] {
			continue
		}
		token := "--" + f.Name
		if strings.HasPrefix(token, partial) {
			out = append(out, Completion{Kind: CompletionFlagName, Completion: token, Brief: f.Brief})
		}
	}
	return out
}

func flagAliasCompletions(cmd *Command, partial string) []Completion {
	var out []Completion
	for short, name := range cmd.Aliases {
		token := "-" + short
		if strings.HasPrefix(token, partial) {
			f, _ := findFlagByName(cmd.Flags, name)
			out = append(out, Completion{Kind: CompletionFlagAlias, Completion: token, Brief: f.Brief})
		}
	}
	return out
}

// presentNonVariadicFlags scans priorTokens lightly (not a full
// ScanArguments pass) to find which non-variadic flags have already been
// supplied, so they're excluded from further name completions.
func presentNonVariadicFlags(cmd *Command, priorTokens []string) map[string]bool {
	present := map[string]bool{}
	for _, tok := range priorTokens {
		if !strings.HasPrefix(tok, "--") {
			continue
		}
		name, _, _ := trimEquals(tok[2:])
		f, ok := findFlagByName(cmd.Flags, name)
		if !ok {
			continue
		}
		if f.Kind == FlagParsed && f.Variadic.Kind != VariadicNone {
			continue
		}
		present[f.Name] = true
	}
	return present
}

func positionalCompletions(cmd *Command, priorTokens []string, partial string) []Completion {
	positionals := nonFlagTokens(priorTokens)
	slotIndex := len(positionals)

	p := cmd.Positionals
	var values []string
	switch p.Kind {
	case PositionalArray:
		values = p.Array.Values
	default:
		if slotIndex < len(p.Tuple) {
			values = p.Tuple[slotIndex].Values
		}
	}

	var out []Completion
	for _, v := range values {
		if strings.HasPrefix(v, partial) {
			out = append(out, Completion{Kind: CompletionValue, Completion: v})
		}
	}
	return out
}

func nonFlagTokens(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "-") && len(tok) >= 2 {
			continue
		}
		out = append(out, tok)
	}
	return out
}
