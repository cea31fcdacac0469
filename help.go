package wrangle

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	defaultWrapWidth = 80
	noColorEnv       = "WRANGLE_NO_COLOR"
)

// TerminalWidth probes the real terminal width of the file descriptor fd,
// falling back to 80 when the descriptor isn't a terminal. Hosts wire this
// into a Stream's Width field (e.g. `Width: func() int { return
// wrangle.TerminalWidth(os.Stdout.Fd()) }`) so help rendering can wrap to
// the actual terminal without the core itself touching os.Stdout.
func TerminalWidth(fd uintptr) int {
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return defaultWrapWidth
	}
	return w
}

// wrapText wraps s to width, preserving paragraph breaks, the way morc's
// wrapTerminalText wraps cobra Long text via rosed.
func wrapText(s string, width int) string {
	return rosed.
		Edit(s).
		WrapOpts(width, rosed.Options{PreserveParagraphs: true}).
		String()
}

// shouldUseAnsiColor gates styling: config must allow color (not
// ColorNever) and the WRANGLE_NO_COLOR env var must be unset or "0"; under
// ColorAuto the stream must also report a color depth >= 4 bits, while
// ColorAlways skips the depth check.
func shouldUseAnsiColor(proc Process, stream Stream, mode ColorMode) bool {
	if mode == ColorNever {
		return false
	}
	if v, ok := proc.lookupEnv(noColorEnv); ok && v != "" && v != "0" {
		return false
	}
	if mode == ColorAlways {
		return true
	}
	return stream.colorDepth() >= 4
}

// helpStyler applies or strips ANSI styling for one rendering pass,
// depending on whether shouldUseAnsiColor determined styling is available.
type helpStyler struct {
	enabled bool
}

func newHelpStyler(enabled bool) helpStyler { return helpStyler{enabled: enabled} }

func (s helpStyler) header(text string) string {
	if !s.enabled {
		return text
	}
	return color.New(color.Bold).Sprint(text)
}

func (s helpStyler) brief(text string) string {
	if !s.enabled {
		return text
	}
	return color.New(color.Faint).Sprint(text)
}

func (s helpStyler) dim(text string) string {
	if !s.enabled {
		return text
	}
	return color.New(color.Faint).Sprint(text)
}

func (s helpStyler) routeName(text string) string {
	if !s.enabled {
		return text
	}
	return color.New(color.FgCyan).Sprint(text)
}

// HelpRenderConfig bundles what RenderHelp needs beyond the target itself:
// the accumulated display prefix, the application's docs config, and
// whether help-all (hidden items included) was requested.
type HelpRenderConfig struct {
	Prefix   []string
	Docs     DocsConfig
	Aliases  []string
	HelpAll  bool
	Stream   Stream
	Process  Process
	Width    int // 0 means "use Stream's Width, or 80 if that reports 0"
}

// RenderHelp formats full help text for target (a *Command or *RouteMap):
// a USAGE line, an optional ALIASES line, and kind-specific sections
// (FLAGS/ARGUMENTS for a command, COMMANDS for a route map).
func RenderHelp(target Target, cfg HelpRenderConfig) string {
	width := cfg.Width
	if width <= 0 {
		width = cfg.Stream.width()
	}
	if width <= 0 {
		width = defaultWrapWidth
	}
	styler := newHelpStyler(shouldUseAnsiColor(cfg.Process, cfg.Stream, cfg.Docs.Color))

	prefix := strings.Join(cfg.Prefix, " ")

	var sb strings.Builder
	switch t := target.(type) {
	case *Command:
		renderCommandHelp(&sb, t, prefix, cfg, styler, width)
	case *RouteMap:
		renderRouteMapHelp(&sb, t, prefix, cfg, styler, width)
	}
	return sb.String()
}

func renderCommandHelp(sb *strings.Builder, cmd *Command, prefix string, cfg HelpRenderConfig, styler helpStyler, width int) {
	sb.WriteString(styler.header("USAGE"))
	sb.WriteString("\n  ")
	sb.WriteString(cmd.formatUsageLine(prefix))
	sb.WriteString("\n")

	if len(cfg.Aliases) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styler.header("ALIASES"))
		sb.WriteString("\n  ")
		sb.WriteString(strings.Join(cfg.Aliases, ", "))
		sb.WriteString("\n")
	}

	full := cmd.Docs.Full
	if full == "" {
		full = cmd.Docs.Brief
	}
	if full != "" {
		sb.WriteString("\n")
		sb.WriteString(wrapText(full, width))
		sb.WriteString("\n")
	}

	names := hiddenFilteredNames(cmd.Flags, cfg.HelpAll)
	if len(names) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styler.header("FLAGS"))
		sb.WriteString("\n")
		for _, name := range names {
			f, _ := findFlagByName(cmd.Flags, name)
			renderFlagLine(sb, f, cmd.Aliases, cfg, styler)
		}
	}

	if posTokens := formatPositionalUsageTokens(cmd.Positionals); len(posTokens) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styler.header("ARGUMENTS"))
		sb.WriteString("\n")
		renderPositionalLines(sb, cmd.Positionals, styler)
	}
}

func renderFlagLine(sb *strings.Builder, f FlagDef, aliases map[string]string, cfg HelpRenderConfig, styler helpStyler) {
	line := "  --" + f.Name
	if !cfg.Docs.UseAliasInUsageLine {
		if alias := aliasForFlag(aliases, f.Name); alias != "" {
			line += ", -" + alias
		}
	}

	switch f.Kind {
	case FlagEnum:
		line += " (" + strings.Join(f.Values, "|") + ")"
	case FlagParsed:
		placeholder := f.Placeholder
		if placeholder == "" {
			placeholder = "VALUE"
		}
		line += " " + placeholder
		if f.Variadic.Kind != VariadicNone {
			line += "..."
			if f.Variadic.Kind == VariadicSplit {
				line += fmt.Sprintf(" (separator = %q)", f.Variadic.Separator)
			}
		}
	}

	if f.Brief != "" {
		line += "  " + styler.brief(f.Brief)
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	if f.Kind == FlagBoolean && f.negatedAllowed() {
		camel, kebab := negatedForms(f.Name)
		sb.WriteString("    --" + camel + " / --" + kebab)
		sb.WriteString("\n")
	}

	if f.Kind == FlagBoolean && f.BoolDefault {
		sb.WriteString("    " + styler.dim("[default: true]"))
		sb.WriteString("\n")
	}
	if f.Kind == FlagEnum && f.EnumDefault != nil {
		sb.WriteString("    " + styler.dim("[default: "+*f.EnumDefault+"]"))
		sb.WriteString("\n")
	}
	if f.Kind == FlagParsed && f.ParsedDefault != nil {
		sb.WriteString("    " + styler.dim("[default: "+*f.ParsedDefault+"]"))
		sb.WriteString("\n")
	}
}

// aliasForFlag finds the short alias (if any) mapped to flagName in a
// command's alias table.
func aliasForFlag(aliases map[string]string, flagName string) string {
	for short, name := range aliases {
		if name == flagName {
			return short
		}
	}
	return ""
}

func renderPositionalLines(sb *strings.Builder, p PositionalSchema, styler helpStyler) {
	switch p.Kind {
	case PositionalArray:
		name := p.placeholderFor(0)
		sb.WriteString("  " + name + "...")
		if len(p.Array.Values) > 0 {
			sb.WriteString(" (" + strings.Join(p.Array.Values, "|") + ")")
		}
		sb.WriteString("\n")
	default:
		for i, slot := range p.Tuple {
			name := slot.Placeholder
			if name == "" {
				name = p.placeholderFor(i)
			}
			sb.WriteString("  " + name)
			if len(slot.Values) > 0 {
				sb.WriteString(" (" + strings.Join(slot.Values, "|") + ")")
			}
			if slot.Optional {
				sb.WriteString(" " + styler.dim("[optional]"))
			}
			sb.WriteString("\n")
		}
	}
}

func renderRouteMapHelp(sb *strings.Builder, rm *RouteMap, prefix string, cfg HelpRenderConfig, styler helpStyler, width int) {
	sb.WriteString(styler.header("USAGE"))
	sb.WriteString("\n  ")
	sb.WriteString(joinSpace([]string{prefix, "[command]"}))
	sb.WriteString("\n")

	if len(cfg.Aliases) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styler.header("ALIASES"))
		sb.WriteString("\n  ")
		sb.WriteString(strings.Join(cfg.Aliases, ", "))
		sb.WriteString("\n")
	}

	if rm.Docs.Full != "" {
		sb.WriteString("\n")
		sb.WriteString(wrapText(rm.Docs.Full, width))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(styler.header("COMMANDS"))
	sb.WriteString("\n")

	entries := visibleRouteEntries(rm, cfg.HelpAll)
	if len(rm.Docs.Groups) == 0 {
		renderRouteEntryLines(sb, entries, styler)
		return
	}

	grouped := map[string]bool{}
	for _, g := range rm.Docs.Groups {
		sb.WriteString("  " + styler.header(g.Title) + "\n")
		for _, name := range g.Routes {
			grouped[name] = true
			if e, ok := findRouteEntry(entries, name); ok {
				renderRouteEntryLines(sb, []RouteEntry{e}, styler)
			}
		}
	}

	var rest []RouteEntry
	for _, e := range entries {
		if !grouped[e.Name] {
			rest = append(rest, e)
		}
	}
	if len(rest) > 0 {
		sb.WriteString("  " + styler.header("Additional Commands") + "\n")
		renderRouteEntryLines(sb, rest, styler)
	}
}

func visibleRouteEntries(rm *RouteMap, helpAll bool) []RouteEntry {
	all := rm.Entries()
	if helpAll {
		return all
	}
	var out []RouteEntry
	for _, e := range all {
		if !e.Hidden {
			out = append(out, e)
		}
	}
	return out
}

func findRouteEntry(entries []RouteEntry, name string) (RouteEntry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return RouteEntry{}, false
}

func renderRouteEntryLines(sb *strings.Builder, entries []RouteEntry, styler helpStyler) {
	for _, e := range entries {
		line := "  " + styler.routeName(e.Name)
		if len(e.Aliases) > 0 {
			line += " (" + strings.Join(e.Aliases, ", ") + ")"
		}
		if brief := routeBrief(e.Target); brief != "" {
			line += "  " + styler.brief(brief)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

func routeBrief(t Target) string {
	switch target := t.(type) {
	case *Command:
		return target.Docs.Brief
	case *RouteMap:
		return target.Docs.Brief
	}
	return ""
}
