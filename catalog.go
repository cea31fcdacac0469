package wrangle

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Catalog supplies every string the library itself emits: help chrome,
// warnings, and scanner-error renderings. Only library-generated chrome is
// localized — user-provided briefs are passed through untranslated.
type Catalog interface {
	// NoCommandRegisteredForInput renders the RouteNotFound diagnostic,
	// e.g. `No command registered for `fo`, did you mean `foo`?`.
	NoCommandRegisteredForInput(input string, suggestions []string) string

	// CommandErrorContextLoad renders a failure from Context.ForCommand.
	CommandErrorContextLoad(err error) string
	// ExceptionWhileLoadingCommandFunction renders a failure from a
	// CommandLoader.
	ExceptionWhileLoadingCommandFunction(err error) string
	// ExceptionWhileParsingArguments renders one or more argument-scanner
	// errors, joined grammatically.
	ExceptionWhileParsingArguments(errs []error) string
	// CommandErrorResult renders an error value returned by a command.
	CommandErrorResult(err error) string
	// ExceptionWhileRunningCommand renders a panic recovered while running
	// a command.
	ExceptionWhileRunningCommand(recovered any) string

	// CurrentVersionIsNotLatest renders the startup out-of-date warning.
	CurrentVersionIsNotLatest(current, latest, upgradeCommand string) string
	// LocaleFallbackWarning renders the warning shown when a requested
	// locale has no matching catalog.
	LocaleFallbackWarning(requested string) string

	// RenderScanError renders a single scanner error's human message.
	// Scanner errors already carry a reasonable default via their Error()
	// method; catalogs may override this for localization.
	RenderScanError(err error) string
}

// englishCatalog is the library's built-in, always-available catalog.
type englishCatalog struct{}

// DefaultCatalog returns the built-in English catalog used when no locale
// is requested or no other catalog matches.
func DefaultCatalog() Catalog { return englishCatalog{} }

func (englishCatalog) NoCommandRegisteredForInput(input string, suggestions []string) string {
	msg := fmt.Sprintf("No command registered for `%s`", input)
	if len(suggestions) == 0 {
		return msg + "."
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = "`" + s + "`"
	}
	return fmt.Sprintf("%s, did you mean %s?", msg, joinWithConjunction(quoted, "or", false))
}

func (englishCatalog) CommandErrorContextLoad(err error) string {
	return fmt.Sprintf("failed to load command context: %v", err)
}

func (englishCatalog) ExceptionWhileLoadingCommandFunction(err error) string {
	return fmt.Sprintf("failed to load command: %v", err)
}

func (englishCatalog) ExceptionWhileParsingArguments(errs []error) string {
	if len(errs) == 0 {
		return ""
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return joinWithConjunction(msgs, "and", true)
}

func (englishCatalog) CommandErrorResult(err error) string {
	return err.Error()
}

func (englishCatalog) ExceptionWhileRunningCommand(recovered any) string {
	return fmt.Sprintf("command panicked: %v", recovered)
}

func (englishCatalog) CurrentVersionIsNotLatest(current, latest, upgradeCommand string) string {
	msg := fmt.Sprintf("You are running version %s, but %s is available.", current, latest)
	if upgradeCommand != "" {
		msg += fmt.Sprintf(" Run `%s` to upgrade.", upgradeCommand)
	}
	return msg
}

func (englishCatalog) LocaleFallbackWarning(requested string) string {
	return fmt.Sprintf("locale %q is not available; falling back to default", requested)
}

func (englishCatalog) RenderScanError(err error) string {
	return err.Error()
}

// ResolveCatalog picks the best catalog for requested (a BCP-47 tag
// string) out of available, falling back to the empty-tag entry of
// available if there is one, else to DefaultCatalog(). warning is non-empty
// exactly when a requested locale was given but didn't match closely enough
// to use without comment; it is rendered by the fallback catalog's
// LocaleFallbackWarning.
func ResolveCatalog(requested string, available map[string]Catalog) (catalog Catalog, warning string) {
	fallback := DefaultCatalog()
	if c, ok := available[""]; ok && c != nil {
		fallback = c
	}
	if requested == "" || len(available) == 0 {
		return fallback, ""
	}

	tags := make([]language.Tag, 0, len(available))
	names := make([]string, 0, len(available))
	for tagStr := range available {
		tag, err := language.Parse(tagStr)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, tagStr)
	}
	if len(tags) == 0 {
		return fallback, fallback.LocaleFallbackWarning(requested)
	}

	reqTag, err := language.Parse(requested)
	if err != nil {
		return fallback, fallback.LocaleFallbackWarning(requested)
	}

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(reqTag)
	if confidence == language.No {
		return fallback, fallback.LocaleFallbackWarning(requested)
	}

	return available[names[index]], ""
}

// joinWithConjunction is adapted from morc's cmd/morc/cmdio.IO.OxfordCommaJoin,
// generalized to take the joining word (multi-error rendering needs both
// "and" and "or" joins) and to make the serial comma optional.
func joinWithConjunction(items []string, conjunction string, serialComma bool) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conjunction + " " + items[1]
	}

	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		if i+1 == len(items) {
			if serialComma {
				sb.WriteString(conjunction + " ")
			} else {
				// replace the trailing ", " just written with " <conj> "
				s := sb.String()
				sb.Reset()
				sb.WriteString(strings.TrimSuffix(s, ", "))
				sb.WriteString(" " + conjunction + " ")
			}
		}
		sb.WriteString(item)
	}
	return sb.String()
}
