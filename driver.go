package wrangle

import (
	"fmt"

	"github.com/dekarrin/wrangle/internal/distance"
)

const skipVersionCheckEnv = "WRANGLE_SKIP_VERSION_CHECK"

// Run drives one invocation end to end: locale resolution, the startup
// version check, routing, help-or-dispatch, context/loader construction,
// argument scanning, and command invocation with panic recovery mapped to
// an ExitCode.
func Run(app *Application, argv []string, ctx Context) ExitCode {
	catalog := resolveRunCatalog(app, ctx)

	runVersionCheck(app, ctx, catalog)

	if app.Version.HasVersion() && len(argv) > 0 && (argv[0] == "--version" || argv[0] == "-v") {
		writeLine(ctx.Process.Stdout, app.Version.Current)
		return Success
	}

	root, ok := app.Root.(*RouteMap)
	if !ok {
		// a bare *Command root has no routing to perform; treat all of argv
		// as its own tokens.
		return runCommand(app, ctx, catalog, app.Root.(*Command), nil, argv)
	}

	result, err := ScanRoute(root, argv, app.Scanner.CaseStyle)
	if err != nil {
		return reportRouteNotFound(app, ctx, catalog, root, err)
	}

	if result.Help != HelpNone {
		writeLine(ctx.Process.Stdout, RenderHelp(result.Target, helpConfigFor(app, ctx, result)))
		return Success
	}

	switch target := result.Target.(type) {
	case *RouteMap:
		writeLine(ctx.Process.Stdout, RenderHelp(target, helpConfigFor(app, ctx, result)))
		return Success
	case *Command:
		return runCommand(app, ctx, catalog, target, result.Prefix, result.UnprocessedInputs)
	}
	return Success
}

// ProposeCompletions is the application's completion entry point: it
// resolves the root route map and replays routing over argv, handing the
// result to the completion proposer. A bare *Command root (no routing
// tree) never produces completions.
func (a *Application) ProposeCompletions(argv []string) []Completion {
	root, ok := a.Root.(*RouteMap)
	if !ok {
		return nil
	}
	cfg := CompletionConfig{CaseStyle: a.Scanner.CaseStyle, IncludeAliases: true}
	return proposeCompletions(root, argv, cfg)
}

func resolveRunCatalog(app *Application, ctx Context) Catalog {
	catalog, warning := ResolveCatalog(ctx.Locale, app.Localization.Catalogs)
	if warning != "" {
		writeLine(ctx.Process.Stderr, warning)
	}
	return catalog
}

func runVersionCheck(app *Application, ctx Context, catalog Catalog) {
	if !app.Version.HasVersion() || app.Version.GetLatestVersion == nil {
		return
	}
	if v, ok := ctx.Process.lookupEnv(skipVersionCheckEnv); ok && v != "" && v != "0" {
		return
	}
	latest, err := app.Version.GetLatestVersion()
	if err != nil || latest == "" || latest == app.Version.Current {
		return
	}
	writeLine(ctx.Process.Stderr, catalog.CurrentVersionIsNotLatest(app.Version.Current, latest, app.Version.UpgradeCommand))
}

func reportRouteNotFound(app *Application, ctx Context, catalog Catalog, rm *RouteMap, err error) ExitCode {
	var input string
	var candidates []string
	if rnf, ok := err.(*routeNotFoundError); ok {
		input = rnf.Input
		candidates = rnf.KnownNames
	}
	corrections := distanceCorrectionsFor(app, input, candidates)
	writeLine(ctx.Process.Stderr, catalog.NoCommandRegisteredForInput(input, corrections))
	return UnknownCommand
}

// distanceCorrectionsFor computes "did you mean" route-name suggestions.
// Under CaseStyleAllowKebabForCamel, route matching itself is
// case-insensitive-tolerant (LookupCased tries kebab<->camel forms), so
// corrections are scored the same way via CorrectionsCI: a typo like "FOo"
// still suggests "foo" instead of paying a spurious case-difference edit
// cost against every candidate.
func distanceCorrectionsFor(app *Application, input string, candidates []string) []string {
	weights := app.Scanner.CorrectionWeights.toDistanceWeights()
	threshold := app.Scanner.CorrectionThreshold
	if app.Scanner.CaseStyle == CaseStyleAllowKebabForCamel {
		return distance.CorrectionsCI(input, candidates, weights, threshold)
	}
	return distance.Corrections(input, candidates, weights, threshold)
}

func helpConfigFor(app *Application, ctx Context, result *RouteScanResult) HelpRenderConfig {
	return HelpRenderConfig{
		Prefix:  result.Prefix,
		Docs:    app.Docs,
		Aliases: result.Aliases,
		HelpAll: result.Help == HelpAll,
		Stream:  ctx.Process.Stdout,
		Process: ctx.Process,
	}
}

func runCommand(app *Application, ctx Context, catalog Catalog, cmd *Command, prefix []string, rest []string) (code ExitCode) {
	loadCtx := LoadContext{Prefix: prefix}

	var cmdCtx CommandContext
	if ctx.ForCommand != nil {
		built, err := ctx.ForCommand(loadCtx)
		if err != nil {
			writeLine(ctx.Process.Stderr, catalog.CommandErrorContextLoad(err))
			return ContextLoadError
		}
		cmdCtx = built
	}

	fn, err := cmd.Loader(loadCtx)
	if err != nil {
		writeLine(ctx.Process.Stderr, catalog.ExceptionWhileLoadingCommandFunction(err))
		return CommandLoadError
	}

	scan := ScanArguments(cmd, rest, app.Scanner)
	if !scan.OK() {
		writeLine(ctx.Process.Stderr, catalog.ExceptionWhileParsingArguments(scan.Errors))
		return InvalidArgument
	}
	if scan.Help != HelpNone {
		writeLine(ctx.Process.Stdout, RenderHelp(cmd, HelpRenderConfig{
			Prefix:  prefix,
			Docs:    app.Docs,
			HelpAll: scan.Help == HelpAll,
			Stream:  ctx.Process.Stdout,
			Process: ctx.Process,
		}))
		return Success
	}

	defer func() {
		if r := recover(); r != nil {
			writeLine(ctx.Process.Stderr, catalog.ExceptionWhileRunningCommand(r))
			code = app.ExitPolicy.resolve(fmt.Errorf("%v", r))
		}
	}()

	if err := fn(cmdCtx, scan.Flags, scan.Positionals); err != nil {
		writeLine(ctx.Process.Stderr, catalog.CommandErrorResult(err))
		return app.ExitPolicy.resolve(err)
	}
	return Success
}
