package wrangle

// RouteScanResult is the route scanner's output: the resolved terminal,
// whatever tokens weren't consumed by routing, the help level requested
// during routing, the display prefix accumulated so far, the root route
// map, and the alias spellings of the terminal route (for help rendering).
type RouteScanResult struct {
	Target            Target
	UnprocessedInputs []string
	Help              HelpLevel
	Prefix            []string
	Root              *RouteMap
	Aliases           []string
}

// routeScanner walks a route tree token by token, classifying help
// requests and descending through route maps until a command terminal or
// an unresolvable token is reached.
type routeScanner struct {
	style  CaseStyle
	root   *RouteMap
	parent *RouteMap

	current Target
	prefix  []string

	target     Target
	unprocessed []string
	help       HelpLevel

	err error
}

func newRouteScanner(root *RouteMap, style CaseStyle) *routeScanner {
	return &routeScanner{style: style, root: root, current: root}
}

// next consumes one token through the seven-step routing rule: help
// tokens, frozen targets, command terminals, route lookups, and default
// commands are each checked in order. Once err is set, subsequent calls
// are no-ops.
func (s *routeScanner) next(token string) {
	if s.err != nil {
		return
	}

	if level, ok := isHelpToken(token); ok {
		if s.help == HelpNone || level > s.help {
			s.help = level
		}
		if s.target == nil {
			s.target = s.current
		}
		return
	}

	if s.target != nil {
		s.unprocessed = append(s.unprocessed, token)
		return
	}

	if _, ok := s.current.(*Command); ok {
		s.target = s.current
		s.unprocessed = append(s.unprocessed, token)
		return
	}

	rm := s.current.(*RouteMap)
	if t, ok := rm.LookupCased(token, s.style); ok {
		s.parent = rm
		s.current = t
		if name := s.routeNameFor(rm, t); name != "" {
			s.prefix = append(s.prefix, name)
		} else {
			s.prefix = append(s.prefix, token)
		}
		return
	}

	if cmd, ok := rm.DefaultCommand(); ok {
		s.parent = rm
		s.current = cmd
		s.unprocessed = append(s.unprocessed, token)
		return
	}

	s.err = NewRouteNotFoundError(token, rm.routeNameCandidates(true))
}

// finish descends into a still-unresolved route map's default command (if
// any help wasn't requested) and assembles the final result.
func (s *routeScanner) finish() (*RouteScanResult, error) {
	if s.err != nil {
		return nil, s.err
	}

	target := s.target
	if target == nil {
		target = s.current
	}

	if rm, ok := target.(*RouteMap); ok && s.help == HelpNone {
		if cmd, ok := rm.DefaultCommand(); ok {
			s.parent = rm
			target = cmd
		}
	}

	var aliases []string
	if s.parent != nil {
		if name := s.routeNameFor(s.parent, target); name != "" {
			aliases = s.parent.aliasesFor(name)
		}
	}

	return &RouteScanResult{
		Target:            target,
		UnprocessedInputs: s.unprocessed,
		Help:              s.help,
		Prefix:            s.prefix,
		Root:              s.root,
		Aliases:           aliases,
	}, nil
}

func (s *routeScanner) routeNameFor(rm *RouteMap, target Target) string {
	for _, e := range rm.routes {
		if e.target == target {
			return e.name
		}
	}
	return ""
}

// ScanRoute walks argv against root, returning the resolved target,
// unprocessed tail, and routing metadata, or a RouteNotFound error (see
// NewRouteNotFoundError) if a token fails to resolve.
func ScanRoute(root *RouteMap, argv []string, style CaseStyle) (*RouteScanResult, error) {
	s := newRouteScanner(root, style)
	for _, tok := range argv {
		s.next(tok)
	}
	return s.finish()
}
