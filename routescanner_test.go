package wrangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleTree(t *testing.T) *RouteMap {
	t.Helper()
	status := mustCommand(t, CommandConfig{})
	start := mustCommand(t, CommandConfig{})

	env, err := BuildRouteMap(RouteMapConfig{
		Routes: []RouteEntryConfig{
			{Name: "status", Target: status},
			{Name: "start", Target: start},
		},
		DefaultCommand: "status",
	})
	require.NoError(t, err)

	root, err := BuildRouteMap(RouteMapConfig{
		Routes: []RouteEntryConfig{
			{Name: "env", Target: env},
		},
		Aliases: map[string]string{"e": "env"},
	})
	require.NoError(t, err)
	return root
}

func TestScanRoute_ResolvesCommand(t *testing.T) {
	root := buildSampleTree(t)

	result, err := ScanRoute(root, []string{"env", "start"}, CaseStyleOriginal)
	require.NoError(t, err)
	assert.Equal(t, []string{"env", "start"}, result.Prefix)
	assert.IsType(t, &Command{}, result.Target)
	assert.Empty(t, result.UnprocessedInputs)
}

func TestScanRoute_UsesRouteAlias(t *testing.T) {
	root := buildSampleTree(t)

	result, err := ScanRoute(root, []string{"e", "start"}, CaseStyleOriginal)
	require.NoError(t, err)
	assert.Equal(t, []string{"env", "start"}, result.Prefix)
}

func TestScanRoute_DefaultCommandOnFinish(t *testing.T) {
	root := buildSampleTree(t)

	result, err := ScanRoute(root, []string{"env"}, CaseStyleOriginal)
	require.NoError(t, err)
	assert.IsType(t, &Command{}, result.Target)
}

func TestScanRoute_RouteNotFound(t *testing.T) {
	root := buildSampleTree(t)

	_, err := ScanRoute(root, []string{"bogus"}, CaseStyleOriginal)
	assert.Error(t, err)
	var rnf ScanError
	require.ErrorAs(t, err, &rnf)
	assert.Equal(t, ErrRouteNotFound, rnf.Kind())
}

func TestScanRoute_HelpFreezesTarget(t *testing.T) {
	root := buildSampleTree(t)

	result, err := ScanRoute(root, []string{"env", "--help"}, CaseStyleOriginal)
	require.NoError(t, err)
	assert.Equal(t, HelpBrief, result.Help)
}

func TestScanRoute_ExtraTokensAfterCommandAreUnprocessed(t *testing.T) {
	root := buildSampleTree(t)

	result, err := ScanRoute(root, []string{"env", "start", "--flag", "pos"}, CaseStyleOriginal)
	require.NoError(t, err)
	assert.Equal(t, []string{"--flag", "pos"}, result.UnprocessedInputs)
}
