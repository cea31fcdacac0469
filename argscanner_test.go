package wrangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringParser(s string) (string, error) { return s, nil }

func TestScanArguments_BooleanFlag(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func:  noopFunc,
		Flags: []FlagDef{{Name: "verbose", Kind: FlagBoolean}},
	})
	require.NoError(t, err)

	result := ScanArguments(cmd, []string{"--verbose"}, ScannerConfig{})
	require.True(t, result.OK())
	assert.True(t, result.Flags.Bool("verbose"))
}

func TestScanArguments_NegatedBoolean(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func:  noopFunc,
		Flags: []FlagDef{{Name: "color", Kind: FlagBoolean, BoolDefault: true}},
	})
	require.NoError(t, err)

	result := ScanArguments(cmd, []string{"--noColor"}, ScannerConfig{})
	require.True(t, result.OK())
	assert.False(t, result.Flags.Bool("color"))
}

func TestScanArguments_EnumFlag(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func:  noopFunc,
		Flags: []FlagDef{{Name: "format", Kind: FlagEnum, Values: []string{"json", "yaml"}}},
	})
	require.NoError(t, err)

	result := ScanArguments(cmd, []string{"--format=yaml"}, ScannerConfig{})
	require.True(t, result.OK())
	assert.Equal(t, "yaml", result.Flags.String("format"))

	result = ScanArguments(cmd, []string{"--format", "xml"}, ScannerConfig{})
	require.False(t, result.OK())
	AssertScanErrorsMatch(assertionsFor(t), []ErrorKind{ErrEnumValueNotAllowed}, result.Errors)
}

func TestScanArguments_UnknownFlag(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{Func: noopFunc})
	require.NoError(t, err)

	result := ScanArguments(cmd, []string{"--nope"}, ScannerConfig{})
	AssertScanErrorsMatch(assertionsFor(t), []ErrorKind{ErrFlagNotFound}, result.Errors)
}

func TestScanArguments_ShortClusterCounters(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func:    noopFunc,
		Flags:   []FlagDef{{Name: "verbose", Kind: FlagCounter}},
		Aliases: map[string]string{"v": "verbose"},
	})
	require.NoError(t, err)

	result := ScanArguments(cmd, []string{"-vvv"}, ScannerConfig{})
	require.True(t, result.OK())
	assert.Equal(t, 3, result.Flags.Count("verbose"))
}

func TestScanArguments_PositionalTupleMissingRequired(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func: noopFunc,
		Positionals: PositionalSchema{
			Kind:  PositionalTuple,
			Tuple: []PositionalSlot{{Placeholder: "SRC"}, {Placeholder: "DST"}},
		},
	})
	require.NoError(t, err)

	result := ScanArguments(cmd, []string{"only-one"}, ScannerConfig{})
	AssertScanErrorsMatch(assertionsFor(t), []ErrorKind{ErrMissingArgument}, result.Errors)
}

func TestScanArguments_PositionalArrayTooMany(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func: noopFunc,
		Positionals: PositionalSchema{
			Kind:    PositionalArray,
			Array:   PositionalSlot{Placeholder: "FILE"},
			Minimum: 0,
			Maximum: 1,
		},
	})
	require.NoError(t, err)

	result := ScanArguments(cmd, []string{"a", "b"}, ScannerConfig{})
	AssertScanErrorsMatch(assertionsFor(t), []ErrorKind{ErrTooManyArguments}, result.Errors)
}

func TestScanArguments_VariadicRepeat(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func: noopFunc,
		Flags: []FlagDef{{
			Name:     "tag",
			Kind:     FlagParsed,
			Parse:    ParserOf(stringParser),
			Variadic: Variadic{Kind: VariadicRepeat},
		}},
	})
	require.NoError(t, err)

	result := ScanArguments(cmd, []string{"--tag=a", "--tag=b"}, ScannerConfig{})
	require.True(t, result.OK())
	assert.Equal(t, []any{"a", "b"}, result.Flags.List("tag"))
}

func TestScanArguments_EscapeSequence(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{
		Func: noopFunc,
		Positionals: PositionalSchema{
			Kind:    PositionalArray,
			Array:   PositionalSlot{Placeholder: "ARG"},
			Maximum: -1,
		},
	})
	require.NoError(t, err)

	result := ScanArguments(cmd, []string{"--", "--verbose"}, ScannerConfig{AllowArgumentEscapeSequence: true})
	require.True(t, result.OK())
	assert.Equal(t, []string{"--verbose"}, result.Positionals)
}

func TestScanArguments_HelpStopsParsing(t *testing.T) {
	cmd, err := BuildCommand(CommandConfig{Func: noopFunc})
	require.NoError(t, err)

	result := ScanArguments(cmd, []string{"--help"}, ScannerConfig{})
	assert.Equal(t, HelpBrief, result.Help)
}

func assertionsFor(t *testing.T) *assert.Assertions { return assert.New(t) }
