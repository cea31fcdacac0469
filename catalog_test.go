package wrangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCatalog_NoRequestFallsBackToDefault(t *testing.T) {
	cat, warning := ResolveCatalog("", nil)
	assert.Equal(t, DefaultCatalog(), cat)
	assert.Empty(t, warning)
}

func TestResolveCatalog_MatchesAvailableLocale(t *testing.T) {
	fr := englishCatalog{}
	cat, warning := ResolveCatalog("fr-CA", map[string]Catalog{"fr": fr})
	assert.Equal(t, fr, cat)
	assert.Empty(t, warning)
}

func TestResolveCatalog_UnmatchedLocaleWarns(t *testing.T) {
	cat, warning := ResolveCatalog("ja", map[string]Catalog{"fr": englishCatalog{}})
	assert.Equal(t, DefaultCatalog(), cat)
	assert.NotEmpty(t, warning)
}

func TestJoinWithConjunction(t *testing.T) {
	assert.Equal(t, "", joinWithConjunction(nil, "and", true))
	assert.Equal(t, "a", joinWithConjunction([]string{"a"}, "and", true))
	assert.Equal(t, "a and b", joinWithConjunction([]string{"a", "b"}, "and", true))
	assert.Equal(t, "a, b, and c", joinWithConjunction([]string{"a", "b", "c"}, "and", true))
	assert.Equal(t, "a, b and c", joinWithConjunction([]string{"a", "b", "c"}, "and", false))
}

func TestEnglishCatalog_NoCommandRegisteredForInput(t *testing.T) {
	cat := englishCatalog{}
	assert.Equal(t, "No command registered for `fo`.", cat.NoCommandRegisteredForInput("fo", nil))
	assert.Equal(t, "No command registered for `fo`, did you mean `foo`?", cat.NoCommandRegisteredForInput("fo", []string{"foo"}))
}
