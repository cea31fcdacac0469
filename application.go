package wrangle

import (
	"io"

	"github.com/dekarrin/wrangle/internal/distance"
)

// CaseStyle controls how the argument scanner and route scanner compare
// input tokens against declared names.
type CaseStyle int

const (
	// CaseStyleOriginal requires an exact, case-sensitive match.
	CaseStyleOriginal CaseStyle = iota
	// CaseStyleAllowKebabForCamel additionally tries the kebab<->camel
	// counterpart of a declared camelCase name.
	CaseStyleAllowKebabForCamel
)

// ScannerConfig configures both the argument scanner and the route
// scanner.
type ScannerConfig struct {
	CaseStyle CaseStyle

	// AllowArgumentEscapeSequence enables the bare "--" token to switch
	// all remaining tokens to positionals.
	AllowArgumentEscapeSequence bool

	// CorrectionWeights are the Damerau-Levenshtein operation weights used
	// for both route and flag "did you mean" suggestions. The zero value
	// is treated as distance.Unweighted by BuildApplication.
	CorrectionWeights CorrectionWeights
	// CorrectionThreshold is the maximum distance a correction candidate
	// may have. Zero is treated as 2 by BuildApplication.
	CorrectionThreshold int
}

// CorrectionWeights mirrors internal/distance.Weights without exposing the
// internal package on the public API surface.
type CorrectionWeights struct {
	Insertion     int
	Deletion      int
	Substitution  int
	Transposition int
}

// ColorMode controls whether help output may use ANSI styling.
type ColorMode int

const (
	// ColorAuto applies styling only when shouldUseAnsiColor determines the
	// stream supports it.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// DocsConfig configures help/usage rendering.
type DocsConfig struct {
	// UseAliasInUsageLine, when true, omits the ", -a" alias suffix from
	// the FLAGS section. The USAGE line does not show flag aliases in
	// either setting.
	UseAliasInUsageLine bool
	Color               ColorMode
}

// VersionConfig configures version reporting and the startup
// latest-version check.
type VersionConfig struct {
	// Current is the application's own version string. A zero-value
	// (empty) VersionConfig means the application has no version info, and
	// --version/-v are not recognized. Note the asymmetry this implies:
	// "version" itself stays available as an ordinary flag *name* on any
	// command even when VersionConfig is set — only the "v" short alias
	// becomes reserved.
	Current string

	// GetLatestVersion, if set, is called once per Run to compare against
	// Current. A returned version different from Current produces a
	// stderr warning.
	GetLatestVersion func() (string, error)

	// UpgradeCommand, if set, is named in the out-of-date warning.
	UpgradeCommand string
}

// HasVersion reports whether version reporting is enabled.
func (v VersionConfig) HasVersion() bool { return v.Current != "" }

// LocalizationConfig configures the text catalog.
type LocalizationConfig struct {
	// Catalogs maps a BCP-47 locale tag string (e.g. "fr", "pt-BR") to a
	// Catalog. The empty-tag entry, if present, is the default; otherwise
	// DefaultCatalog() is used.
	Catalogs map[string]Catalog
}

// ExitCode is a stable, application-visible exit status.
type ExitCode int

const (
	Success          ExitCode = 0
	CommandFailed    ExitCode = 1
	InvalidArgument  ExitCode = 2
	UnknownCommand   ExitCode = 3
	CommandLoadError ExitCode = 4
	ContextLoadError ExitCode = 5
)

// ExitCodePolicy lets a host application remap a command's runtime failure
// to a different exit code.
type ExitCodePolicy struct {
	// DetermineExitCode, if set, is consulted for both thrown (panic-
	// recovered) and returned command errors. A nil return means "use the
	// default" (CommandFailed).
	DetermineExitCode func(err error) *ExitCode
}

// toDistanceWeights converts the public CorrectionWeights into the
// internal/distance package's Weights type.
func (w CorrectionWeights) toDistanceWeights() distance.Weights {
	return distance.Weights{
		Insertion:     w.Insertion,
		Deletion:      w.Deletion,
		Substitution:  w.Substitution,
		Transposition: w.Transposition,
	}
}

func (p ExitCodePolicy) resolve(err error) ExitCode {
	if p.DetermineExitCode != nil {
		if code := p.DetermineExitCode(err); code != nil {
			return *code
		}
	}
	return CommandFailed
}

// Application is the top-level, immutable envelope produced by
// BuildApplication.
type Application struct {
	Name         string
	Root         Target
	Scanner      ScannerConfig
	Docs         DocsConfig
	Localization LocalizationConfig
	Version      VersionConfig
	ExitPolicy   ExitCodePolicy
}

// ApplicationConfig is the literal passed to BuildApplication.
type ApplicationConfig struct {
	Name         string
	Scanner      ScannerConfig
	Docs         DocsConfig
	Localization LocalizationConfig
	Version      VersionConfig
	ExitPolicy   ExitCodePolicy
}

// ColorDepthFunc reports a stream's color depth in bits (0 = no color),
// the optional capability probe a host's stdout/stderr stream may supply.
type ColorDepthFunc func() int

// WidthFunc reports a stream's terminal width in columns (0 = unknown),
// the optional capability probe a host's stdout/stderr stream may supply.
type WidthFunc func() int

// Stream is one of an application's stdout/stderr sinks.
type Stream struct {
	io.Writer
	// ColorDepth is optional; nil means "unknown", treated as 0.
	ColorDepth ColorDepthFunc
	// Width is optional; nil means "unknown", treated as 0 (the caller
	// falls back to a fixed default wrap width).
	Width WidthFunc
}

func (s Stream) colorDepth() int {
	if s.ColorDepth == nil {
		return 0
	}
	return s.ColorDepth()
}

func (s Stream) width() int {
	if s.Width == nil {
		return 0
	}
	return s.Width()
}

// Process bundles the streams and environment a Context exposes.
type Process struct {
	Stdout Stream
	Stderr Stream
	// Env looks up an environment variable by name, reporting whether it
	// was set. A nil Env is treated as "nothing set".
	Env func(name string) (string, bool)
}

func (p Process) lookupEnv(name string) (string, bool) {
	if p.Env == nil {
		return "", false
	}
	return p.Env(name)
}

// ForCommandFunc builds a per-invocation CommandContext, given the routed
// display prefix.
type ForCommandFunc func(info LoadContext) (CommandContext, error)

// Context is the caller-owned runtime environment passed to Run and
// ProposeCompletions.
type Context struct {
	Process Process
	// Locale requests a specific catalog locale; empty means "use the
	// application's default".
	Locale string
	// ForCommand, if set, is called once routing resolves to a command,
	// to build that command's CommandContext.
	ForCommand ForCommandFunc
}

// BuildApplication validates cfg and root against the application-level
// invariants (reserved aliases, version collisions) and returns a frozen
// Application.
func BuildApplication(root Target, cfg ApplicationConfig) (*Application, error) {
	if root == nil {
		return nil, NewBuilderError("missing-root", "application root must not be nil")
	}

	if cfg.Scanner.CorrectionWeights == (CorrectionWeights{}) {
		cfg.Scanner.CorrectionWeights = CorrectionWeights{Insertion: 1, Deletion: 1, Substitution: 1, Transposition: 1}
	}
	if cfg.Scanner.CorrectionThreshold == 0 {
		cfg.Scanner.CorrectionThreshold = 2
	}

	if err := validateTargetTree(root, cfg.Version.HasVersion()); err != nil {
		return nil, err
	}

	app := &Application{
		Name:         cfg.Name,
		Root:         root,
		Scanner:      cfg.Scanner,
		Docs:         cfg.Docs,
		Localization: cfg.Localization,
		Version:      cfg.Version,
		ExitPolicy:   cfg.ExitPolicy,
	}
	return app, nil
}

// validateTargetTree re-checks the reserved-alias/version-collision rule
// against every command reachable from root: BuildCommand/BuildRouteMap
// already validated everything except the application-level "v" reservation,
// which depends on whether VersionConfig is present and therefore cannot be
// known until BuildApplication runs.
func validateTargetTree(t Target, versioned bool) error {
	if !versioned {
		return nil
	}
	switch target := t.(type) {
	case *Command:
		if target.usesAlias(ReservedAliasVersion) {
			return NewCollidingFlagNameError(ReservedAliasVersion, "alias is reserved once version info is configured")
		}
		return nil
	case *RouteMap:
		for _, e := range target.routes {
			if err := validateTargetTree(e.target, versioned); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}
