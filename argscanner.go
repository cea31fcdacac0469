package wrangle

import (
	"strings"

	"github.com/dekarrin/wrangle/internal/strcase"
)

// ScanArguments consumes tokens (everything left after routing) against
// cmd's schema and scfg: token classification, long/short flag resolution,
// negation, value acquisition, variadic accumulation, positional binding,
// and default installation. It never panics on malformed input; every
// failure becomes an entry in the returned ScanResult.Errors, and scanning
// continues so multiple errors can be reported together.
func ScanArguments(cmd *Command, tokens []string, scfg ScannerConfig) *ScanResult {
	s := &argScanState{
		cmd:        cmd,
		scfg:       scfg,
		result:     &ScanResult{Flags: newFlagValues()},
		duplicates: map[string]bool{},
	}
	for _, f := range cmd.Flags {
		s.result.Flags.declare(f.Name)
	}
	s.run(tokens)
	s.installDefaults()
	s.bindPositionals()
	return s.result
}

type argScanState struct {
	cmd        *Command
	scfg       ScannerConfig
	result     *ScanResult
	positional []string
	escaped    bool
	stopped    bool // true once help was requested; no further tokens processed
	duplicates map[string]bool
}

func (s *argScanState) addErr(err error) { s.result.Errors = append(s.result.Errors, err) }

func isFlagLooking(tok string) bool {
	return strings.HasPrefix(tok, "-") && len(tok) >= 2
}

func isHelpToken(tok string) (HelpLevel, bool) {
	switch tok {
	case "--help", "-h":
		return HelpBrief, true
	case "--helpAll", "--help-all", "-H":
		return HelpAll, true
	default:
		return HelpNone, false
	}
}

func (s *argScanState) run(tokens []string) {
	i := 0
	for i < len(tokens) {
		if s.stopped {
			break
		}
		tok := tokens[i]

		if s.escaped {
			s.positional = append(s.positional, tok)
			i++
			continue
		}

		if level, ok := isHelpToken(tok); ok {
			s.result.Help = level
			s.stopped = true
			break
		}

		if s.scfg.AllowArgumentEscapeSequence && tok == "--" {
			s.escaped = true
			i++
			continue
		}

		switch {
		case strings.HasPrefix(tok, "--"):
			i = s.handleLongFlag(tokens, i)
		case strings.HasPrefix(tok, "-") && len(tok) >= 2:
			i = s.handleShortCluster(tokens, i)
		default:
			s.positional = append(s.positional, tok)
			i++
		}
	}
}

// acquireValue resolves the value for a flag that needs one: inline
// (`=value`) takes precedence, then the following token if it doesn't
// itself look like a flag (unless the escape sequence was already
// entered).
func (s *argScanState) acquireValue(tokens []string, i int, inline string, hasInline bool) (value string, consumed int, ok bool) {
	if hasInline {
		return inline, 0, true
	}
	next := i + 1
	if next < len(tokens) && (s.escaped || !isFlagLooking(tokens[next])) {
		return tokens[next], 1, true
	}
	return "", 0, false
}

func (s *argScanState) handleLongFlag(tokens []string, i int) int {
	raw := tokens[i][2:]
	name, inline, hasInline := trimEquals(raw)

	if name == "" {
		s.addErr(NewFlagNotFoundError("", knownFlagNames(s.cmd.Flags)))
		return i + 1
	}

	resolved := name
	if _, ok := findFlagByName(s.cmd.Flags, resolved); !ok && s.scfg.CaseStyle == CaseStyleAllowKebabForCamel {
		if _, ok2 := findFlagByName(s.cmd.Flags, strcase.ToCamel(name)); ok2 {
			resolved = strcase.ToCamel(name)
		}
	}

	if f, ok := findFlagByName(s.cmd.Flags, resolved); ok {
		return s.applyFlagToken(f, tokens, i, inline, hasInline)
	}

	// negation check
	if negated, negName, ok := s.resolveNegation(name); ok {
		f, _ := findFlagByName(s.cmd.Flags, negName)
		if !f.negatedAllowed() {
			s.addErr(NewNegationNotAllowedError(negName))
		} else {
			s.result.Flags.set(negName, !negated)
		}
		return i + 1
	}

	s.addErr(NewFlagNotFoundError(name, knownFlagNames(s.cmd.Flags)))
	return i + 1
}

// resolveNegation checks whether name is the `no<Camel>` or `no-kebab`
// spelling of a known boolean flag. negated is always true when ok (the
// return shape keeps the call site symmetric with a hypothetical positive
// spelling check).
func (s *argScanState) resolveNegation(name string) (negated bool, flagName string, ok bool) {
	for _, f := range s.cmd.Flags {
		if f.Kind != FlagBoolean {
			continue
		}
		camel, kebab := strcase.NegatedForms(f.Name)
		if name == camel || (s.scfg.CaseStyle == CaseStyleAllowKebabForCamel && name == kebab) {
			return true, f.Name, true
		}
		if s.scfg.CaseStyle != CaseStyleAllowKebabForCamel && name == kebab {
			// original case style still allows matching whichever literal
			// spelling the flag name itself used; kebab is accepted as a
			// literal alternate spelling only under allow-kebab-for-camel.
			continue
		}
	}
	return false, "", false
}

// applyFlagToken applies one occurrence of flag f found as a long-flag
// token (or via its alias in short-cluster value mode) at tokens[i].
func (s *argScanState) applyFlagToken(f FlagDef, tokens []string, i int, inline string, hasInline bool) int {
	switch f.Kind {
	case FlagBoolean:
		if hasInline {
			v, err := BooleanParser(inline)
			if err != nil {
				s.addErr(NewInvalidParsedValueError(f.Name, inline, err))
			} else {
				s.result.Flags.set(f.Name, v)
			}
		} else {
			s.result.Flags.set(f.Name, true)
		}
		return i + 1

	case FlagCounter:
		cur := s.result.Flags.Count(f.Name)
		s.result.Flags.set(f.Name, cur+1)
		return i + 1

	case FlagEnum:
		value, consumed, ok := s.acquireValue(tokens, i, inline, hasInline)
		if !ok {
			s.addErr(NewMissingValueForFlagError(f.Name))
			return i + 1
		}
		if s.duplicates[f.Name] {
			s.addErr(NewDuplicateFlagError(f.Name))
		} else {
			s.duplicates[f.Name] = true
			if !containsString(f.Values, value) {
				s.addErr(NewEnumValueNotAllowedError(f.Name, value, f.Values))
			} else {
				s.result.Flags.set(f.Name, value)
			}
		}
		return i + 1 + consumed

	case FlagParsed:
		value, consumed, ok := s.acquireValue(tokens, i, inline, hasInline)
		if !ok {
			s.addErr(NewMissingValueForFlagError(f.Name))
			return i + 1
		}
		s.applyParsedValue(f, value)
		return i + 1 + consumed
	}
	return i + 1
}

func (s *argScanState) applyParsedValue(f FlagDef, rawValue string) {
	switch f.Variadic.Kind {
	case VariadicRepeat:
		v, err := f.Parse(rawValue)
		if err != nil {
			s.addErr(NewInvalidParsedValueError(f.Name, rawValue, err))
			return
		}
		list := s.result.Flags.List(f.Name)
		list = append(list, v)
		s.result.Flags.set(f.Name, list)

	case VariadicSplit:
		parts := strings.Split(rawValue, f.Variadic.Separator)
		list := s.result.Flags.List(f.Name)
		for _, part := range parts {
			v, err := f.Parse(part)
			if err != nil {
				s.addErr(NewInvalidParsedValueError(f.Name, part, err))
				continue
			}
			list = append(list, v)
		}
		s.result.Flags.set(f.Name, list)

	default:
		if s.duplicates[f.Name] {
			s.addErr(NewDuplicateFlagError(f.Name))
			return
		}
		s.duplicates[f.Name] = true
		v, err := f.Parse(rawValue)
		if err != nil {
			s.addErr(NewInvalidParsedValueError(f.Name, rawValue, err))
			return
		}
		s.result.Flags.set(f.Name, v)
	}
}

func (s *argScanState) handleShortCluster(tokens []string, i int) int {
	raw := tokens[i][1:]
	if raw == "" {
		s.addErr(NewAliasNotFoundError(""))
		return i + 1
	}

	first := raw[0:1]
	if flagName, ok := s.cmd.Aliases[first]; ok {
		f, _ := findFlagByName(s.cmd.Flags, flagName)
		if f.Kind == FlagEnum || f.Kind == FlagParsed {
			rest := strings.TrimPrefix(raw[1:], "=")
			if rest != "" {
				s.applyAliasValue(f, rest)
				return i + 1
			}
			value, consumed, ok := s.acquireValue(tokens, i, "", false)
			if !ok {
				s.addErr(NewMissingValueForFlagError(f.Name))
				return i + 1
			}
			s.applyAliasValue(f, value)
			return i + 1 + consumed
		}
	}

	// batch mode: resolve each character independently
	for _, ch := range raw {
		short := string(ch)
		flagName, ok := s.cmd.Aliases[short]
		if !ok {
			s.addErr(NewAliasNotFoundError(short))
			continue
		}
		f, _ := findFlagByName(s.cmd.Flags, flagName)
		switch f.Kind {
		case FlagCounter:
			cur := s.result.Flags.Count(f.Name)
			s.result.Flags.set(f.Name, cur+1)
		case FlagBoolean:
			s.result.Flags.set(f.Name, true)
		default:
			s.addErr(NewMissingValueForFlagError(f.Name))
		}
	}
	return i + 1
}

func (s *argScanState) applyAliasValue(f FlagDef, value string) {
	if f.Kind == FlagEnum {
		if s.duplicates[f.Name] {
			s.addErr(NewDuplicateFlagError(f.Name))
			return
		}
		s.duplicates[f.Name] = true
		if !containsString(f.Values, value) {
			s.addErr(NewEnumValueNotAllowedError(f.Name, value, f.Values))
			return
		}
		s.result.Flags.set(f.Name, value)
		return
	}
	s.applyParsedValue(f, value)
}

func containsString(sl []string, v string) bool {
	for _, s := range sl {
		if s == v {
			return true
		}
	}
	return false
}

// installDefaults installs declared defaults for every flag absent from
// input, after all token processing, in declaration order.
func (s *argScanState) installDefaults() {
	if s.result.Help != HelpNone {
		return
	}
	for _, f := range s.cmd.Flags {
		if s.result.Flags.Present(f.Name) {
			s.result.Flags.declare(f.Name)
			continue
		}
		switch f.Kind {
		case FlagBoolean:
			s.result.Flags.setDefault(f.Name, f.BoolDefault)
		case FlagCounter:
			s.result.Flags.setDefault(f.Name, 0)
		case FlagEnum:
			if f.EnumDefault != nil {
				s.result.Flags.setDefault(f.Name, *f.EnumDefault)
			} else {
				s.result.Flags.declare(f.Name)
			}
		case FlagParsed:
			if f.ParsedDefault != nil {
				v, err := f.Parse(*f.ParsedDefault)
				if err != nil {
					s.addErr(NewInvalidParsedValueError(f.Name, *f.ParsedDefault, err))
					continue
				}
				s.result.Flags.setDefault(f.Name, v)
			} else {
				s.result.Flags.declare(f.Name)
			}
		}
	}
}

// bindPositionals binds the collected positional tokens against the
// command's positional schema.
func (s *argScanState) bindPositionals() {
	if s.result.Help != HelpNone {
		s.result.Positionals = s.positional
		return
	}

	p := s.cmd.Positionals
	switch p.Kind {
	case PositionalArray:
		s.bindArrayPositionals(p)
	default:
		s.bindTuplePositionals(p)
	}
}

func (s *argScanState) bindTuplePositionals(p PositionalSchema) {
	tokens := s.positional
	bound := make([]string, 0, len(tokens))

	for idx, slot := range p.Tuple {
		if idx >= len(tokens) {
			if !slot.Optional {
				placeholder := p.placeholderFor(idx)
				s.addErr(NewMissingArgumentError(placeholder))
			}
			continue
		}
		tok := tokens[idx]
		if len(slot.Values) > 0 && !containsString(slot.Values, tok) {
			s.addErr(NewEnumValueNotAllowedError(slot.Placeholder, tok, slot.Values))
		}
		bound = append(bound, tok)
	}

	if len(tokens) > len(p.Tuple) {
		s.addErr(NewTooManyArgumentsError(tokens[len(p.Tuple):]))
	}

	s.result.Positionals = bound
}

func (s *argScanState) bindArrayPositionals(p PositionalSchema) {
	tokens := s.positional
	if len(tokens) < p.Minimum {
		s.addErr(NewMissingArgumentError(p.placeholderFor(len(tokens))))
	}
	if p.Maximum >= 0 && len(tokens) > p.Maximum {
		s.addErr(NewTooManyArgumentsError(tokens[p.Maximum:]))
	}

	for _, tok := range tokens {
		if len(p.Array.Values) > 0 && !containsString(p.Array.Values, tok) {
			s.addErr(NewEnumValueNotAllowedError(p.Array.Placeholder, tok, p.Array.Values))
		}
	}

	s.result.Positionals = tokens
}
