package wrangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposeCompletions_RouteNames(t *testing.T) {
	root := buildSampleTree(t)

	got := proposeCompletions(root, []string{"e"}, CompletionConfig{IncludeAliases: true})
	var names []string
	for _, c := range got {
		names = append(names, c.Completion)
	}
	assert.Contains(t, names, "env")
}

func TestProposeCompletions_FlagNames(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func: noopFunc,
		Flags: []FlagDef{
			{Name: "verbose", Kind: FlagBoolean},
			{Name: "format", Kind: FlagEnum, Values: []string{"json", "yaml"}},
		},
	})
	require.NoError(t, err)

	root, err := BuildRouteMap(RouteMapConfig{Routes: []RouteEntryConfig{{Name: "run", Target: cmd}}})
	require.NoError(t, err)

	got := proposeCompletions(root, []string{"run", "--ver"}, CompletionConfig{})
	require.Len(t, got, 1)
	assert.Equal(t, "--verbose", got[0].Completion)
}

func TestProposeCompletions_EnumValueSlot(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func:  noopFunc,
		Flags: []FlagDef{{Name: "format", Kind: FlagEnum, Values: []string{"json", "yaml"}}},
	})
	require.NoError(t, err)

	root, err := BuildRouteMap(RouteMapConfig{Routes: []RouteEntryConfig{{Name: "run", Target: cmd}}})
	require.NoError(t, err)

	got := proposeCompletions(root, []string{"run", "--format=ya"}, CompletionConfig{})
	require.Len(t, got, 1)
	assert.Equal(t, "yaml", got[0].Completion)
}

func TestProposeCompletions_EnumValueSlot_SeparateToken(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func:  noopFunc,
		Flags: []FlagDef{{Name: "format", Kind: FlagEnum, Values: []string{"json", "yaml"}}},
	})
	require.NoError(t, err)

	root, err := BuildRouteMap(RouteMapConfig{Routes: []RouteEntryConfig{{Name: "run", Target: cmd}}})
	require.NoError(t, err)

	got := proposeCompletions(root, []string{"run", "--format", "ya"}, CompletionConfig{})
	require.Len(t, got, 1)
	assert.Equal(t, "yaml", got[0].Completion)
}

func TestProposeCompletions_EnumValueSlot_SeparateTokenAlias(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func:    noopFunc,
		Flags:   []FlagDef{{Name: "format", Kind: FlagEnum, Values: []string{"json", "yaml"}}},
		Aliases: map[string]string{"f": "format"},
	})
	require.NoError(t, err)

	root, err := BuildRouteMap(RouteMapConfig{Routes: []RouteEntryConfig{{Name: "run", Target: cmd}}})
	require.NoError(t, err)

	got := proposeCompletions(root, []string{"run", "-f", "js"}, CompletionConfig{})
	require.Len(t, got, 1)
	assert.Equal(t, "json", got[0].Completion)
}
