package wrangle

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcess() (Process, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	proc := Process{
		Stdout: Stream{Writer: &out},
		Stderr: Stream{Writer: &errOut},
		Env:    func(string) (string, bool) { return "", false },
	}
	return proc, &out, &errOut
}

func TestRun_DispatchesToCommand(t *testing.T) {
	var gotFlags FlagValues
	fn := func(ctx CommandContext, flags FlagValues, positionals []string) error {
		gotFlags = flags
		return nil
	}
	cmd := mustCommand(t, CommandConfig{Func: fn, Flags: []FlagDef{{Name: "verbose", Kind: FlagBoolean}}})
	rm, err := BuildRouteMap(RouteMapConfig{Routes: []RouteEntryConfig{{Name: "run", Target: cmd}}})
	require.NoError(t, err)

	app, err := BuildApplication(rm, ApplicationConfig{Name: "myapp"})
	require.NoError(t, err)

	proc, _, _ := newTestProcess()
	code := Run(app, []string{"run", "--verbose"}, Context{Process: proc})

	assert.Equal(t, Success, code)
	assert.True(t, gotFlags.Bool("verbose"))
}

func TestRun_UnknownCommandReportsCorrection(t *testing.T) {
	cmd := mustCommand(t, CommandConfig{})
	rm, err := BuildRouteMap(RouteMapConfig{Routes: []RouteEntryConfig{{Name: "status", Target: cmd}}})
	require.NoError(t, err)

	app, err := BuildApplication(rm, ApplicationConfig{Name: "myapp"})
	require.NoError(t, err)

	proc, _, errOut := newTestProcess()
	code := Run(app, []string{"sttus"}, Context{Process: proc})

	assert.Equal(t, UnknownCommand, code)
	assert.Contains(t, errOut.String(), "status")
}

func TestRun_CommandErrorMapsToExitCode(t *testing.T) {
	fn := func(ctx CommandContext, flags FlagValues, positionals []string) error {
		return errors.New("boom")
	}
	cmd := mustCommand(t, CommandConfig{Func: fn})
	app, err := BuildApplication(cmd, ApplicationConfig{Name: "myapp"})
	require.NoError(t, err)

	proc, _, errOut := newTestProcess()
	code := Run(app, nil, Context{Process: proc})

	assert.Equal(t, CommandFailed, code)
	assert.Contains(t, errOut.String(), "boom")
}

func TestRun_ArgumentScanErrorReturnsInvalidArgument(t *testing.T) {
	cmd := mustCommand(t, CommandConfig{
		Func: noopFunc,
		Positionals: PositionalSchema{
			Kind:  PositionalTuple,
			Tuple: []PositionalSlot{{Placeholder: "FILE"}},
		},
	})
	app, err := BuildApplication(cmd, ApplicationConfig{Name: "myapp"})
	require.NoError(t, err)

	proc, _, _ := newTestProcess()
	code := Run(app, nil, Context{Process: proc})
	assert.Equal(t, InvalidArgument, code)
}

func TestApplication_ProposeCompletions(t *testing.T) {
	root := buildSampleTree(t)
	app, err := BuildApplication(root, ApplicationConfig{Name: "myapp"})
	require.NoError(t, err)

	got := app.ProposeCompletions([]string{"e"})
	var found bool
	for _, c := range got {
		if c.Completion == "env" {
			found = true
		}
	}
	assert.True(t, found)
}
