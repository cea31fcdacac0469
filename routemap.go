package wrangle

import (
	"sort"

	"github.com/dekarrin/wrangle/internal/distance"
	"github.com/dekarrin/wrangle/internal/strcase"
)

// Target is anything a route can resolve to: a *Command or a *RouteMap.
type Target interface {
	isTarget()
}

func (c *Command) isTarget()  {}
func (r *RouteMap) isTarget() {}

// RouteDocs holds a route map's own documentation, plus per-route hide
// flags layered on top of each child's own Hidden setting.
type RouteDocs struct {
	Brief string
	Full  string

	// HiddenRoutes lists route names that should be treated as hidden in
	// this map's COMMANDS section even if the underlying target isn't
	// itself marked Hidden.
	HiddenRoutes []string

	// Groups, if set, clusters COMMANDS output under named headers, the
	// the way morc clusters its own subcommands with cobra.Group. A
	// route name not mentioned in any group falls into an "Additional
	// Commands" section, mirroring cobra's own fallback behavior.
	Groups []HelpGroup
}

// HelpGroup is one named cluster of route names in a COMMANDS section.
type HelpGroup struct {
	Title string
	// Routes holds the route names belonging to this group, in display
	// order.
	Routes []string
}

// routeEdge is one entry of a route map's ordered route table.
type routeEdge struct {
	name   string
	target Target
}

// RouteMap is an internal routing node: it dispatches on the next token to
// a child Command or RouteMap.
type RouteMap struct {
	routes  []routeEdge
	aliases map[string]string // alias -> route name
	// defaultRoute, if set, is the route name descended into when no token
	// matches, or when routing stops on this map with no help requested.
	defaultRoute string
	Docs         RouteDocs
}

// RouteMapConfig is the literal passed to BuildRouteMap.
type RouteMapConfig struct {
	// Routes is ordered: iteration and help rendering preserve this order.
	Routes  []RouteEntryConfig
	Aliases map[string]string
	// DefaultCommand names a route in Routes that should be descended into
	// automatically; it must resolve to a Command, not a RouteMap.
	DefaultCommand string
	Docs           RouteDocs
}

// RouteEntryConfig pairs a route name with its target.
type RouteEntryConfig struct {
	Name   string
	Target Target
}

// RouteEntry is a read-only view of one route, used by help rendering and
// completion. It exposes the route's name in both casing styles so the
// formatter and proposer don't need to re-derive it.
type RouteEntry struct {
	Name       string
	KebabName  string
	CamelName  string
	Aliases    []string
	Hidden     bool
	Target     Target
}

// Lookup resolves token to a target by exact name or alias. Case handling
// (allow-kebab-for-camel) is the caller's responsibility (route scanner),
// since only it knows the configured CaseStyle.
func (r *RouteMap) Lookup(token string) (Target, bool) {
	for _, e := range r.routes {
		if e.name == token {
			return e.target, true
		}
	}
	if name, ok := r.aliases[token]; ok {
		for _, e := range r.routes {
			if e.name == name {
				return e.target, true
			}
		}
	}
	return nil, false
}

// LookupCased resolves token honoring CaseStyleAllowKebabForCamel: if the
// literal token doesn't match, its kebab<->camel counterpart is tried.
func (r *RouteMap) LookupCased(token string, style CaseStyle) (Target, bool) {
	if t, ok := r.Lookup(token); ok {
		return t, true
	}
	if style != CaseStyleAllowKebabForCamel {
		return nil, false
	}
	if t, ok := r.Lookup(strcase.ToCamel(token)); ok {
		return t, true
	}
	if t, ok := r.Lookup(strcase.ToKebab(token)); ok {
		return t, true
	}
	return nil, false
}

// DefaultCommand returns the route map's default command target, if any.
func (r *RouteMap) DefaultCommand() (*Command, bool) {
	if r.defaultRoute == "" {
		return nil, false
	}
	t, ok := r.Lookup(r.defaultRoute)
	if !ok {
		return nil, false
	}
	cmd, ok := t.(*Command)
	return cmd, ok
}

// OtherAliasesForInput returns the declared aliases, sorted, of the route
// that input resolves to (input is resolved with LookupCased under style).
// Aliases are returned as declared; no kebab/camel variants of them are
// added.
func (r *RouteMap) OtherAliasesForInput(input string, style CaseStyle) []string {
	canonical := input
	if t, ok := r.LookupCased(input, style); ok {
		for _, e := range r.routes {
			if e.target == t {
				canonical = e.name
				break
			}
		}
	}

	var out []string
	for alias, name := range r.aliases {
		if name == canonical {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// Entries returns every route in declaration order, annotated with its
// aliases and hidden status.
func (r *RouteMap) Entries() []RouteEntry {
	entries := make([]RouteEntry, 0, len(r.routes))
	for _, e := range r.routes {
		hidden := isRouteHidden(e.name, e.target, r.Docs.HiddenRoutes)
		entries = append(entries, RouteEntry{
			Name:      e.name,
			KebabName: strcase.ToKebab(e.name),
			CamelName: strcase.ToCamel(e.name),
			Aliases:   r.aliasesFor(e.name),
			Hidden:    hidden,
			Target:    e.target,
		})
	}
	return entries
}

func (r *RouteMap) aliasesFor(name string) []string {
	var out []string
	for alias, n := range r.aliases {
		if n == name {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

func isRouteHidden(name string, t Target, hiddenList []string) bool {
	for _, h := range hiddenList {
		if h == name {
			return true
		}
	}
	switch target := t.(type) {
	case *Command:
		return target.Hidden
	case *RouteMap:
		return false
	}
	return false
}

// routeNameCandidates returns every route name plus (optionally) alias,
// used for RouteNotFound correction suggestions.
func (r *RouteMap) routeNameCandidates(includeAliases bool) []string {
	names := make([]string, 0, len(r.routes)+len(r.aliases))
	for _, e := range r.routes {
		names = append(names, e.name)
	}
	if includeAliases {
		for alias := range r.aliases {
			names = append(names, alias)
		}
	}
	return names
}

// correctionsFor computes "did you mean" suggestions for an unresolved
// route token, using the application's configured correction weights and
// threshold.
func (r *RouteMap) correctionsFor(input string, includeAliases bool, weights distance.Weights, threshold int) []string {
	candidates := r.routeNameCandidates(includeAliases)
	return distance.Corrections(input, candidates, weights, threshold)
}

// BuildRouteMap validates cfg against the route-map invariants (non-empty
// routes, no alias/route-name collisions, a default command that resolves
// to an actual command) and returns a frozen RouteMap.
func BuildRouteMap(cfg RouteMapConfig) (*RouteMap, error) {
	if len(cfg.Routes) == 0 {
		return nil, NewBuilderError("empty-route-map", "a route map must declare at least one route")
	}

	seenNames := map[string]bool{}
	edges := make([]routeEdge, 0, len(cfg.Routes))
	for _, entry := range cfg.Routes {
		if entry.Name == "" {
			return nil, NewBuilderError("empty-route-name", "route name must not be empty")
		}
		if seenNames[entry.Name] {
			return nil, NewBuilderError("duplicate-route-name", "route \""+entry.Name+"\" declared more than once")
		}
		seenNames[entry.Name] = true
		edges = append(edges, routeEdge{name: entry.Name, target: entry.Target})
	}

	for alias, name := range cfg.Aliases {
		if alias == "" {
			return nil, NewBuilderError("empty-route-alias", "route alias must not be empty")
		}
		if seenNames[alias] {
			return nil, NewBuilderError("alias-shadows-route", "alias \""+alias+"\" collides with an existing route name")
		}
		if !seenNames[name] {
			return nil, NewBuilderError("alias-unknown-route", "alias \""+alias+"\" refers to undeclared route \""+name+"\"")
		}
	}

	if cfg.DefaultCommand != "" {
		if !seenNames[cfg.DefaultCommand] {
			return nil, NewBuilderError("default-command-unknown", "default command \""+cfg.DefaultCommand+"\" is not a declared route")
		}
		for _, e := range edges {
			if e.name == cfg.DefaultCommand {
				if _, ok := e.target.(*Command); !ok {
					return nil, NewBuilderError("default-command-not-a-command", "default command \""+cfg.DefaultCommand+"\" must resolve to a command, not a route map")
				}
			}
		}
	}

	rm := &RouteMap{
		routes:       edges,
		aliases:      cfg.Aliases,
		defaultRoute: cfg.DefaultCommand,
		Docs:         cfg.Docs,
	}
	return rm, nil
}
