package wrangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopFunc(ctx CommandContext, flags FlagValues, positionals []string) error { return nil }

func TestBuildCommand_RequiresExactlyOneImplementation(t *testing.T) {
	_, err := BuildCommand(CommandConfig{})
	assert.Error(t, err)

	_, err = BuildCommand(CommandConfig{
		Func:   noopFunc,
		Loader: LoaderOf(noopFunc),
	})
	assert.Error(t, err)

	cmd, err := BuildCommand(CommandConfig{Func: noopFunc})
	require.NoError(t, err)
	assert.NotNil(t, cmd)
}

func TestBuildCommand_RejectsReservedFlagName(t *testing.T) {
	_, err := BuildCommand(CommandConfig{
		Func:  noopFunc,
		Flags: []FlagDef{{Name: "help", Kind: FlagBoolean}},
	})
	assert.Error(t, err)
}

func TestBuildCommand_RejectsNegationCollision(t *testing.T) {
	_, err := BuildCommand(CommandConfig{
		Func: noopFunc,
		Flags: []FlagDef{
			{Name: "color", Kind: FlagBoolean, BoolDefault: true},
			{Name: "noColor", Kind: FlagBoolean},
		},
	})
	assert.Error(t, err)
}

func TestBuildCommand_RejectsNonContiguousOptionalTail(t *testing.T) {
	_, err := BuildCommand(CommandConfig{
		Func: noopFunc,
		Positionals: PositionalSchema{
			Kind: PositionalTuple,
			Tuple: []PositionalSlot{
				{Placeholder: "A", Optional: true},
				{Placeholder: "B"},
			},
		},
	})
	assert.Error(t, err)
}

func TestBuildCommand_AliasMustReferenceDeclaredFlag(t *testing.T) {
	_, err := BuildCommand(CommandConfig{
		Func:    noopFunc,
		Flags:   []FlagDef{{Name: "other", Kind: FlagBoolean}},
		Aliases: map[string]string{"x": "missing"},
	})
	assert.Error(t, err)
}

func TestFormatUsageLine(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func: noopFunc,
		Flags: []FlagDef{
			{Name: "verbose", Kind: FlagBoolean},
			{Name: "output", Kind: FlagParsed, Parse: ParserOf(func(s string) (string, error) { return s, nil })},
		},
		Positionals: PositionalSchema{
			Kind:  PositionalTuple,
			Tuple: []PositionalSlot{{Placeholder: "FILE"}},
		},
	})
	require.NoError(t, err)

	got := cmd.formatUsageLine("myapp do")
	assert.Contains(t, got, "myapp do")
	assert.Contains(t, got, "[--verbose]")
	assert.Contains(t, got, "--output VALUE")
	assert.Contains(t, got, "FILE")
}
