// Package wrangle builds command-line applications out of typed parameter
// schemas and a hierarchical routing tree, without depending on a
// surrounding CLI framework.
//
// A Command declares its flags and positionals with BuildCommand; a
// RouteMap groups commands (and nested route maps) under names and
// aliases with BuildRouteMap; BuildApplication ties a root Target to
// scanner, help, localization, and exit-code configuration. Run drives a
// single invocation end to end: routing, argument scanning, command
// loading and execution, and error-to-exit-code mapping. ProposeCompletions
// drives shell completion against the same routing tree and schemas.
package wrangle
